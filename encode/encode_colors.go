package encode

import (
	"fmt"

	"github.com/fatih/color"
)

// Colors holds the rendering functions used by the pretty printer, one per
// drawn element.
type Colors struct {
	Key    func(string, ...any) string
	String func(string, ...any) string
	Number func(string, ...any) string
	Bool   func(string, ...any) string
	Date   func(string, ...any) string
	Data   func(string, ...any) string
	Sep    func(string, ...any) string
}

func plain(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// NewColors returns the default color scheme.
func NewColors() *Colors {
	return &Colors{
		Key:    color.RGB(196, 96, 16).SprintfFunc(),
		String: color.GreenString,
		Number: color.RGB(128, 216, 236).SprintfFunc(),
		Bool:   color.MagentaString,
		Date:   color.CyanString,
		Data:   color.YellowString,
		Sep:    color.RGB(255, 0, 196).SprintfFunc(),
	}
}

// PlainColors returns pass-through rendering functions.
func PlainColors() *Colors {
	return &Colors{
		Key:    plain,
		String: plain,
		Number: plain,
		Bool:   plain,
		Date:   plain,
		Data:   plain,
		Sep:    plain,
	}
}
