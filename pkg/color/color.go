package color

import (
	"fmt"

	"github.com/muesli/termenv"
)

// ANSI colour indexes understood by termenv
const (
	Green     = "2"
	Yellow    = "3"
	Blue      = "4"
	Cyan      = "6"
	Gray      = "8"
	BrightRed = "9"
)

var profile = termenv.ANSI

func init() {
	if termenv.EnvNoColor() || termenv.EnvColorProfile() == termenv.Ascii {
		profile = termenv.Ascii
	}
}

func EnableColor(enable bool) {
	if enable {
		profile = termenv.ANSI
		return
	}
	profile = termenv.Ascii
}

func IsColorEnabled() bool {
	return profile != termenv.Ascii
}

func Colorize(color, text string) string {
	if !IsColorEnabled() {
		return text
	}
	return termenv.String(text).Foreground(profile.Color(color)).String()
}

func BrightRedText(text string) string {
	return Colorize(BrightRed, text)
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func BlueText(text string) string {
	return Colorize(Blue, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

func BoldText(text string) string {
	if !IsColorEnabled() {
		return text
	}
	return termenv.String(text).Bold().String()
}

// Line renders a source line reference the way diagnostics print it
func Line(n int) string {
	return YellowText(fmt.Sprintf("Line: %d", n))
}
