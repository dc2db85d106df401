package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

const bannerText = `
     ██╗ ██████╗ ██████╗  █████╗ ██████╗ ███████╗
     ██║██╔═══██╗██╔══██╗██╔══██╗██╔══██╗██╔════╝
     ██║██║   ██║██████╔╝███████║██║  ██║███████╗
██   ██║██║   ██║██╔══██╗██╔══██║██║  ██║╚════██║
╚█████╔╝╚██████╔╝██████╔╝██║  ██║██████╔╝███████║
 ╚════╝  ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚═════╝ ╚══════╝
`

var (
	bannerFrom = pterm.NewRGB(0, 170, 255)
	bannerTo   = pterm.NewRGB(190, 90, 255)
)

// ColorizeText fades text from one colour to another, character by character
func ColorizeText(text string, from, to pterm.RGB) string {
	chars := strings.Split(text, "")
	if len(chars) == 0 {
		return text
	}

	var b strings.Builder
	steps := float32(len(chars))
	for i, ch := range chars {
		b.WriteString(from.Fade(0, steps, float32(i), to).Sprint(ch))
	}
	return b.String()
}

// PrintBanner displays the application banner
func PrintBanner(w io.Writer, silence bool) {
	if silence {
		return
	}
	fmt.Fprintln(w, ColorizeText(bannerText, bannerFrom, bannerTo))
}
