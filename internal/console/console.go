// Package console is the editor's command line: a single input line whose
// submissions run through the command registry.
package console

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"scene-editor/internal/commands"
)

// ControlID is the control id the console claims for keyboard focus and for
// the pointer while it hovers the console bar.
const ControlID = 2

// Console holds the input line and submission history. It starts closed.
type Console struct {
	reg     *commands.Registry
	log     logrus.FieldLogger
	open    bool
	input   string
	history []string
	histPos int
}

// New returns a closed console running lines through reg.
func New(reg *commands.Registry, log logrus.FieldLogger) *Console {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Console{reg: reg, log: log}
}

// Toggle opens or closes the console. Closing keeps the typed input.
func (c *Console) Toggle() { c.open = !c.open }

// IsOpen reports whether the console is capturing the keyboard.
func (c *Console) IsOpen() bool { return c.open }

// Input returns the line being typed.
func (c *Console) Input() string { return c.input }

// Type appends s to the input line.
func (c *Console) Type(s string) {
	c.input += s
}

// Backspace removes the last rune of the input line.
func (c *Console) Backspace() {
	if c.input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(c.input)
	c.input = c.input[:len(c.input)-size]
}

// Submit runs the input line and clears it. Blank lines are ignored.
func (c *Console) Submit() error {
	line := c.input
	c.input = ""
	args := commands.Parse(line)
	if len(args) == 0 {
		return nil
	}
	c.history = append(c.history, line)
	c.histPos = len(c.history)

	c.log.WithField("line", line).Info("console")
	if err := c.reg.Execute(args); err != nil {
		c.log.WithError(err).Warn("command failed")
		return err
	}
	return nil
}

// Prev replaces the input with the previous history entry.
func (c *Console) Prev() {
	if c.histPos == 0 {
		return
	}
	c.histPos--
	c.input = c.history[c.histPos]
}

// Next moves forward through history; past the newest entry the input is cleared.
func (c *Console) Next() {
	if c.histPos >= len(c.history) {
		return
	}
	c.histPos++
	if c.histPos == len(c.history) {
		c.input = ""
		return
	}
	c.input = c.history[c.histPos]
}
