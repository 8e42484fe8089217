package material

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorOption is one selectable finish.
type ColorOption struct {
	Name    string `yaml:"name"`
	Display string `yaml:"display"`
	Value   uint32 `yaml:"value"`
}

// DefaultColors returns the four finishes offered by the color picker.
func DefaultColors() []ColorOption {
	return []ColorOption{
		{Name: "black", Display: "#1a1a1a", Value: 0x1a1a1a},
		{Name: "white", Display: "#f8f8f8", Value: 0xf8f8f8},
		{Name: "blue", Display: "#4285f4", Value: 0x4285f4},
		{Name: "red", Display: "#ff3b30", Value: 0xff3b30},
	}
}

// ParseDisplay parses a "#rrggbb" or "#rgb" string into a packed value.
func ParseDisplay(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	return uint32(v), nil
}

// FindColor returns the option with the given name.
func FindColor(options []ColorOption, name string) (ColorOption, bool) {
	for _, o := range options {
		if o.Name == name {
			return o, true
		}
	}
	return ColorOption{}, false
}
