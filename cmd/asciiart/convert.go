package main

import (
	"fmt"
	"os"

	asciiart "github.com/ElevateDynasty/ASCII-ART"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var convertFlags struct {
	width       int
	height      int
	charset     string
	colorMode   string
	invert      bool
	output      string
	contrast    float64
	brightness  float64
	edge        bool
	noDenoise   bool
	sharpen     float64
	autoEnhance bool
}

var convertCmd = &cobra.Command{
	Use:   "convert IMAGE",
	Short: "Convert an image to ASCII art",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.IntVarP(&convertFlags.width, "width", "w", 100, "output width in characters")
	f.IntVar(&convertFlags.height, "height", 0, "explicit output height (0 derives it from the aspect ratio)")
	f.StringVarP(&convertFlags.charset, "charset", "c", "detailed", "character set: standard, detailed, simple, blocks, numbers, letters")
	f.StringVar(&convertFlags.colorMode, "color", "none", "color mode: none, ansi-fg, ansi-bg, html-fg, html-bg")
	f.BoolVarP(&convertFlags.invert, "invert", "i", false, "invert brightness mapping")
	f.StringVarP(&convertFlags.output, "output", "o", "", "save to file instead of printing")
	f.Float64Var(&convertFlags.contrast, "contrast", 1.2, "contrast factor (1.0 = neutral)")
	f.Float64Var(&convertFlags.brightness, "brightness", 1.0, "brightness factor (1.0 = neutral)")
	f.BoolVar(&convertFlags.edge, "edge", false, "edge detection mode")
	f.BoolVar(&convertFlags.noDenoise, "no-denoise", false, "disable denoising")
	f.Float64Var(&convertFlags.sharpen, "sharpen", 1.0, "sharpen factor (1.0 = neutral)")
	f.BoolVar(&convertFlags.autoEnhance, "auto-enhance", false, "automatic contrast enhancement")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	mode, err := asciiart.ParseColorMode(convertFlags.colorMode)
	if err != nil {
		return err
	}

	s := asciiart.DefaultSettings()
	s.Width = convertFlags.width
	s.Height = convertFlags.height
	s.Charset = asciiart.CharsetByName(convertFlags.charset)
	s.ColorMode = mode
	s.Invert = convertFlags.invert
	s.Contrast = convertFlags.contrast
	s.Brightness = convertFlags.brightness
	s.EdgeDetection = convertFlags.edge
	s.Denoise = !convertFlags.noDenoise
	s.Sharpen = convertFlags.sharpen
	s.AutoEnhance = convertFlags.autoEnhance

	art, err := asciiart.ConvertFile(args[0], s)
	if err != nil {
		return err
	}

	if convertFlags.output != "" {
		path, err := art.Save(convertFlags.output)
		if err != nil {
			return err
		}
		color.Green("saved to %s", path)
	} else {
		fmt.Println(art)
	}

	color.New(color.Faint).Fprintf(os.Stderr, "%dx%d\n", art.Width, art.Height)
	return nil
}
