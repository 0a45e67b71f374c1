package progress

import (
	"io"
	"os"

	"golang.org/x/term"
)

// defaultWidth stands in when the output is not a terminal.
const defaultWidth = 80

func (c *config) terminalWidth() int {
	if c.width > 0 {
		return c.width
	}
	return terminalWidth(c.out)
}

// terminalWidth returns the column count of w, or defaultWidth when w
// is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < 1 {
		return defaultWidth
	}
	return width
}
