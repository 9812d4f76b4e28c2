package main

import (
	"fmt"

	"github.com/ElevateDynasty/ASCII-ART/imageutil"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info IMAGE",
	Short: "Show information about an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := imageutil.Info(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("file:   %s\n", info.Path)
		fmt.Printf("format: %s\n", info.Format)
		fmt.Printf("size:   %d x %d pixels\n", info.Width, info.Height)
		fmt.Printf("bytes:  %s\n", formatFileSize(info.FileSize))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func formatFileSize(size int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	v := float64(size)
	for _, unit := range units {
		if v < 1024 {
			return fmt.Sprintf("%.1f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.1f TB", v)
}
