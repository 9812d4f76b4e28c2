package main

import (
	"fmt"

	asciiart "github.com/ElevateDynasty/ASCII-ART"
	"github.com/spf13/cobra"
)

var previewFlags struct {
	width int
	emoji bool
}

var previewCmd = &cobra.Command{
	Use:   "preview IMAGE",
	Short: "Quick preview of an image as ASCII or emoji art",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	f := previewCmd.Flags()
	f.IntVarP(&previewFlags.width, "width", "w", 60, "preview width")
	f.BoolVar(&previewFlags.emoji, "emoji", false, "preview as emoji art")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	s := asciiart.DefaultSettings()
	s.Width = previewFlags.width
	if previewFlags.emoji {
		s.UseEmoji = true
		if !cmd.Flags().Changed("width") {
			s.Width = 40
		}
	}

	art, err := asciiart.ConvertFile(args[0], s)
	if err != nil {
		return err
	}
	fmt.Println(art)
	return nil
}
