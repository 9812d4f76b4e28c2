package main

import (
	"fmt"
	"strings"

	asciiart "github.com/ElevateDynasty/ASCII-ART"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var charsetsCmd = &cobra.Command{
	Use:   "charsets",
	Short: "List the available character sets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range asciiart.CharsetNames() {
			glyphs := strings.Join(asciiart.CharsetByName(name), "")
			if len([]rune(glyphs)) > 25 {
				glyphs = string([]rune(glyphs)[:25]) + "..."
			}
			color.New(color.FgGreen).Printf("%-10s", name)
			fmt.Printf(" %s\n", glyphs)
		}
	},
}

var emojiSetsCmd = &cobra.Command{
	Use:   "emojisets",
	Short: "List the available emoji sets",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range asciiart.EmojiSetNames() {
			glyphs := strings.Join(asciiart.EmojiSetByName(name), " ")
			color.New(color.FgGreen).Printf("%-12s", name)
			fmt.Printf(" %s\n", glyphs)
		}
	},
}

func init() {
	rootCmd.AddCommand(charsetsCmd)
	rootCmd.AddCommand(emojiSetsCmd)
}
