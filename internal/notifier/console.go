package notifier

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var _ Subscriber = (*Console)(nil)

// Console prints notifications for a named observer such as a coach or analyst.
type Console struct {
	Role   string
	Name   string
	Detail string
	Out    io.Writer
}

// NewConsole creates a console subscriber writing to stdout.
func NewConsole(role, name, detail string) *Console {
	return &Console{Role: role, Name: name, Detail: detail, Out: os.Stdout}
}

// Label is the observer's display name, e.g. "Player Emma Davis (Setter)".
func (c *Console) Label() string {
	label := c.Name
	if c.Detail != "" {
		label += " (" + c.Detail + ")"
	}
	return label
}

func (c *Console) Receive(message string) {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	role := color.New(color.FgCyan, color.Bold).Sprint(c.Role)
	fmt.Fprintf(out, "%s %s received notification: %s\n", role, c.Label(), message)
}
