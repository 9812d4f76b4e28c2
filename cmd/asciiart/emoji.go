package main

import (
	"fmt"
	"path/filepath"
	"strings"

	asciiart "github.com/ElevateDynasty/ASCII-ART"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var emojiFlags struct {
	width      int
	emojiSet   string
	colorEmoji bool
	html       bool
	output     string
	contrast   float64
}

var emojiCmd = &cobra.Command{
	Use:   "emoji IMAGE",
	Short: "Convert an image to emoji art",
	Args:  cobra.ExactArgs(1),
	RunE:  runEmoji,
}

func init() {
	f := emojiCmd.Flags()
	f.IntVarP(&emojiFlags.width, "width", "w", 50, "output width in emoji")
	f.StringVarP(&emojiFlags.emojiSet, "emoji-set", "e", "brightness", "emoji set (see the emojisets command)")
	f.BoolVar(&emojiFlags.colorEmoji, "color-emoji", false, "map emoji by dominant color instead of brightness")
	f.BoolVar(&emojiFlags.html, "html", false, "output a standalone HTML document")
	f.StringVarP(&emojiFlags.output, "output", "o", "", "save to file instead of printing")
	f.Float64Var(&emojiFlags.contrast, "contrast", 1.2, "contrast factor (1.0 = neutral)")
	rootCmd.AddCommand(emojiCmd)
}

func runEmoji(cmd *cobra.Command, args []string) error {
	s := asciiart.DefaultSettings()
	s.Width = emojiFlags.width
	s.Contrast = emojiFlags.contrast
	s.UseEmoji = true
	s.EmojiSet = asciiart.EmojiSetByName(emojiFlags.emojiSet)
	s.ColorEmoji = emojiFlags.colorEmoji
	if emojiFlags.html {
		s.ColorMode = asciiart.ColorHTMLFg
	}

	art, err := asciiart.ConvertFile(args[0], s)
	if err != nil {
		return err
	}

	output := emojiFlags.output
	if output == "" && emojiFlags.html {
		// HTML is unreadable on a terminal; derive a file name next to
		// the input instead.
		stem := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
		output = stem + "_emoji.html"
	}

	if output != "" {
		path, err := art.Save(output)
		if err != nil {
			return err
		}
		color.Green("saved to %s", path)
		return nil
	}

	fmt.Println(art)
	return nil
}
