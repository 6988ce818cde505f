package whitelist

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"net/http"
	"net/url"
	"strings"
)

// Entry is a single whitelist rule. Without Paths it matches on host alone,
// with Paths the host must match and at least one path must match the request path.
type Entry struct {
	Domain Matcher
	Paths  []Matcher
}

// Host returns an entry matching on host alone
func Host(domain Matcher) *Entry {
	return &Entry{Domain: domain}
}

// Domain returns an entry matching host and any of paths
func Domain(domain Matcher, paths ...Matcher) *Entry {
	return &Entry{Domain: domain, Paths: paths}
}

// Match returns true if the entry accepts host and path
func (e *Entry) Match(host, path string) bool {
	if !e.Domain.Match(host) {
		return false
	}
	if len(e.Paths) == 0 {
		return true
	}
	for _, candidate := range e.Paths {
		if candidate.Match(path) {
			return true
		}
	}
	return false
}

type entryNode struct {
	Domain *Matcher  `yaml:"domain"`
	Paths  []Matcher `yaml:"paths"`
	Regexp string    `yaml:"regexp"`
}

// UnmarshalYAML accepts a host literal, a {regexp: expr} host pattern, or a {domain, paths} mapping
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&e.Domain)
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: unsupported whitelist entry", value.Line)
	}
	node := entryNode{}
	if err := value.Decode(&node); err != nil {
		return err
	}
	if node.Regexp != "" {
		if node.Domain != nil || len(node.Paths) > 0 {
			return fmt.Errorf("line %d: whitelist entry cannot mix 'regexp' with 'domain' or 'paths'", value.Line)
		}
		return value.Decode(&e.Domain)
	}
	if node.Domain == nil {
		return fmt.Errorf("line %d: whitelist entry requires 'domain'", value.Line)
	}
	e.Domain = *node.Domain
	e.Paths = node.Paths
	return nil
}

// MarshalYAML writes the entry back in the form UnmarshalYAML accepts
func (e Entry) MarshalYAML() (interface{}, error) {
	if len(e.Paths) == 0 {
		return e.Domain.MarshalYAML()
	}
	return map[string]interface{}{"domain": e.Domain, "paths": e.Paths}, nil
}

// List is an ordered whitelist, a request is whitelisted when any entry matches.
type List []*Entry

// Match reports whether the request destination is whitelisted.
//
// A request whose URL has no host, such as a relative same-origin target, or whose URL
// cannot be parsed is treated as whitelisted. This fail-open default is a convenience for
// same-origin calls and must not be relied on as a security boundary.
func (l List) Match(req *http.Request) bool {
	if req == nil || req.URL == nil {
		return true
	}
	return l.match(req.URL)
}

// MatchURL is like Match for a raw URL
func (l List) MatchURL(rawURL string) bool {
	target, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	return l.match(target)
}

func (l List) match(target *url.URL) bool {
	if target.Host == "" {
		return true
	}
	host, path := hostOf(target), pathOf(target)
	for _, entry := range l {
		if entry != nil && entry.Match(host, path) {
			return true
		}
	}
	return false
}

// hostOf returns the lowercased host with port, a port matching the scheme default is dropped
func hostOf(target *url.URL) string {
	host := strings.ToLower(target.Host)
	switch port := target.Port(); {
	case port == "80" && strings.EqualFold(target.Scheme, "http"),
		port == "443" && strings.EqualFold(target.Scheme, "https"):
		host = strings.TrimSuffix(host, ":"+port)
	}
	return host
}

// pathOf returns the escaped path, "/" for a bare host
func pathOf(target *url.URL) string {
	if path := target.EscapedPath(); path != "" {
		return path
	}
	return "/"
}

// Predicate returns the list as a destination predicate
func (l List) Predicate() Predicate {
	return Sync(l.Match)
}
