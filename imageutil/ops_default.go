//go:build !gocv

package imageutil

func probeOps() Ops { return portableOps{} }
