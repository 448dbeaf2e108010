package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// choiceValue is a string flag restricted to a fixed set of values
type choiceValue struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*choiceValue)(nil)

func newChoiceValue(def string, allowed ...string) *choiceValue {
	return &choiceValue{value: def, allowed: allowed}
}

func (c *choiceValue) String() string {
	return c.value
}

func (c *choiceValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range c.allowed {
		if s == a {
			c.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(c.allowed, ", "))
}

func (c *choiceValue) Type() string {
	return strings.Join(c.allowed, "|")
}

// valueOr returns the flag value when it was set on the command line,
// otherwise fallback
func valueOr(flags *pflag.FlagSet, name, fallback string) string {
	f := flags.Lookup(name)
	if f == nil || !f.Changed {
		return fallback
	}
	return f.Value.String()
}
