// Package terminal reads prompted input and tidies the prompts away afterwards.
package terminal

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

// defaultWidth is assumed when the terminal size cannot be read.
const defaultWidth = 80

// ClearPreviousLines erases a prompt of textLength characters that was
// written to w, together with the empty line the cursor sits on after Enter.
// fd is the terminal w writes to and is only used to read its width.
func ClearPreviousLines(w io.Writer, fd int, textLength int) {
	width := defaultWidth
	if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
		width = cols
	}

	lines := (textLength + width - 1) / width
	if lines < 1 {
		lines = 1
	}
	lines++

	for i := 0; i < lines; i++ {
		fmt.Fprint(w, "\r\x1b[2K")
		if i < lines-1 {
			fmt.Fprint(w, "\x1b[1A")
		}
	}
}
