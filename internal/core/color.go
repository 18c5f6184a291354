package core

import (
	"fmt"
	"strings"
)

// Color is a foreground colour for a screen cell. The platform layer decides
// how each one is shown; ColorDefault leaves the terminal's own colour.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = [...]string{
	ColorDefault:      "default",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorYellow:       "yellow",
	ColorBlue:         "blue",
	ColorMagenta:      "magenta",
	ColorCyan:         "cyan",
	ColorWhite:        "white",
	ColorBrightRed:    "bright_red",
	ColorBrightYellow: "bright_yellow",
	ColorBrightWhite:  "bright_white",
	ColorOrange:       "orange",
	ColorGray:         "gray",
}

// String returns the colour's config name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor looks up a colour by name. Matching ignores case and treats
// '-' and ' ' like '_'; "grey" is accepted for gray.
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if key == "grey" {
		key = "gray"
	}
	for i, n := range colorNames {
		if n == key {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}
