package whitelist

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"regexp"
)

// Matcher matches a host or a path either literally or with an unanchored regular expression
type Matcher struct {
	Literal string
	Pattern *regexp.Regexp
}

// Literal returns a matcher requiring equality with value
func Literal(value string) Matcher {
	return Matcher{Literal: value}
}

// Regexp returns a matcher testing expr against the input
func Regexp(expr *regexp.Regexp) Matcher {
	return Matcher{Pattern: expr}
}

// MustCompile compiles expr into a Regexp matcher, it panics on an invalid expression
func MustCompile(expr string) Matcher {
	return Regexp(regexp.MustCompile(expr))
}

// Match returns true if value matches
func (m Matcher) Match(value string) bool {
	if m.Pattern != nil {
		return m.Pattern.MatchString(value)
	}
	return m.Literal == value
}

func (m Matcher) String() string {
	if m.Pattern != nil {
		return "/" + m.Pattern.String() + "/"
	}
	return m.Literal
}

type regexpNode struct {
	Regexp string `yaml:"regexp"`
}

// UnmarshalYAML accepts either a scalar literal or a {regexp: expr} mapping
func (m *Matcher) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var literal string
		if err := value.Decode(&literal); err != nil {
			return err
		}
		*m = Literal(literal)
		return nil
	case yaml.MappingNode:
		node := regexpNode{}
		if err := value.Decode(&node); err != nil {
			return err
		}
		if node.Regexp == "" {
			return fmt.Errorf("line %d: regexp matcher requires a non empty 'regexp'", value.Line)
		}
		expr, err := regexp.Compile(node.Regexp)
		if err != nil {
			return fmt.Errorf("line %d: invalid regexp %q: %w", value.Line, node.Regexp, err)
		}
		*m = Regexp(expr)
		return nil
	}
	return fmt.Errorf("line %d: unsupported matcher node", value.Line)
}

// MarshalYAML writes the matcher back in the form UnmarshalYAML accepts
func (m Matcher) MarshalYAML() (interface{}, error) {
	if m.Pattern != nil {
		return regexpNode{Regexp: m.Pattern.String()}, nil
	}
	return m.Literal, nil
}
