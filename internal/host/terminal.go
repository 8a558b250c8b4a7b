package host

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/chip8vm/internal/display"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// cursorHome moves the cursor to the top left corner of the terminal.
const cursorHome = "\x1b[H"

// clearScreen clears the terminal and moves the cursor home.
const clearScreen = "\x1b[2J" + cursorHome

// Terminal presents the display as text. On an interactive terminal every
// changed frame is redrawn in place, otherwise only the last frame is
// written when the terminal is closed.
type Terminal struct {
	writer      io.Writer
	interactive bool
	started     bool
	last        string
}

// NewTerminal returns a terminal presenter writing to the given writer.
func NewTerminal(logger *log.Logger, writer io.Writer) *Terminal {
	interactive := false
	if file, ok := writer.(*os.File); ok {
		fd := int(file.Fd())
		interactive = term.IsTerminal(fd)
		if interactive {
			width, height, err := term.GetSize(fd)
			if err == nil && (width < display.Width+2 || height < display.Height+2) {
				logger.Warn("Terminal is smaller than the display",
					log.Int("columns", width),
					log.Int("rows", height))
			}
		}
	}
	return newTerminal(writer, interactive)
}

func newTerminal(writer io.Writer, interactive bool) *Terminal {
	return &Terminal{
		writer:      writer,
		interactive: interactive,
	}
}

// Present renders the display if it changed since the last frame.
func (t *Terminal) Present(d *display.Display) error {
	frame := render(d)
	if t.started && frame == t.last {
		return nil
	}
	t.last = frame
	if !t.interactive {
		t.started = true
		return nil
	}

	prefix := cursorHome
	if !t.started {
		prefix = clearScreen
		t.started = true
	}
	if _, err := io.WriteString(t.writer, prefix+frame); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Close writes the last frame for non interactive output.
func (t *Terminal) Close() error {
	if t.interactive || !t.started {
		return nil
	}
	if _, err := io.WriteString(t.writer, t.last); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// render draws the display inside a border.
func render(d *display.Display) string {
	border := "+" + strings.Repeat("-", display.Width) + "+\n"

	var b strings.Builder
	b.Grow((display.Width + 3) * (display.Height + 2))
	b.WriteString(border)
	for row := range display.Height {
		b.WriteByte('|')
		for col := range display.Width {
			if d.Pixel(row, col) {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}
