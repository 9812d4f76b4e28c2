package main

import (
	"fmt"
	"path/filepath"
	"strings"

	asciiart "github.com/ElevateDynasty/ASCII-ART"
	"github.com/ElevateDynasty/ASCII-ART/imageutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var batchFlags struct {
	width     int
	outputDir string
	emoji     bool
	emojiSet  string
}

var batchCmd = &cobra.Command{
	Use:   "batch [DIR]",
	Short: "Convert every supported image in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBatch,
}

func init() {
	f := batchCmd.Flags()
	f.IntVarP(&batchFlags.width, "width", "w", 80, "output width")
	f.StringVarP(&batchFlags.outputDir, "output-dir", "o", "", "directory for output files (default: next to each image)")
	f.BoolVar(&batchFlags.emoji, "emoji", false, "convert to emoji art")
	f.StringVar(&batchFlags.emojiSet, "emoji-set", "brightness", "emoji set to use")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	images, err := imageutil.ListImages(dir)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		color.Yellow("no images found in %s", dir)
		return nil
	}

	fmt.Printf("found %d images\n", len(images))

	var failed int
	for i, path := range images {
		fmt.Printf("(%d/%d) %s\n", i+1, len(images), filepath.Base(path))

		s := asciiart.DefaultSettings()
		s.Width = batchFlags.width
		suffix := "_ascii"
		if batchFlags.emoji {
			s.UseEmoji = true
			s.EmojiSet = asciiart.EmojiSetByName(batchFlags.emojiSet)
			suffix = "_emoji_" + batchFlags.emojiSet
		}

		art, err := asciiart.ConvertFile(path, s)
		if err != nil {
			color.Red("  %v", err)
			failed++
			continue
		}

		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		out := stem + suffix + ".txt"
		if batchFlags.outputDir != "" {
			out = filepath.Join(batchFlags.outputDir, out)
		} else {
			out = filepath.Join(filepath.Dir(path), out)
		}

		if _, err := art.Save(out); err != nil {
			color.Red("  %v", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(images))
	}
	color.Green("batch conversion complete")
	return nil
}
