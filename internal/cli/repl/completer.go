package repl

import (
	"sort"
	"strings"
)

// Completer provides command completion for the shell.
type Completer struct {
	commands []string
}

// NewCompleter creates a new Completer over the given command names.
func NewCompleter(commands ...string) *Completer {
	c := &Completer{commands: append([]string(nil), commands...)}
	sort.Strings(c.commands)
	return c
}

// Complete returns completion suggestions for the given prefix.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}

// Resolve expands an unambiguous prefix to its command. Exact matches
// always win.
func (c *Completer) Resolve(prefix string) (string, bool) {
	matches := c.Complete(prefix)
	for _, m := range matches {
		if m == prefix {
			return m, true
		}
	}
	if len(matches) == 1 {
		return matches[0], true
	}
	return "", false
}
