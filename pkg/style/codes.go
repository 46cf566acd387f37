// Package style resolves symbolic style names to terminal control fragments
// and wraps text with them.
//
// Names live in three disjoint namespaces: foreground colors, background
// colors and text effects (bold, underline, ...). Lookups are total: a name
// that is not in the table resolves to the empty fragment, so a typo simply
// leaves the text unstyled.
//
//	style.Render("done", style.Spec{Foreground: "green", Style: "bold"})
//
// The default table is embedded from codes.yaml. Plain returns a registry
// with no fragments at all, which turns every Render into the identity.
package style

import (
	_ "embed"
	"sort"
	"strconv"
	"sync"

	"github.com/arthur-debert/sugary/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Namespace selects one of the three name tables.
type Namespace int

const (
	Foreground Namespace = iota
	Background
	Effect
)

func (ns Namespace) String() string {
	switch ns {
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	case Effect:
		return "style"
	default:
		return "unknown"
	}
}

// Namespaces lists every namespace in render order of the CLI listing.
var Namespaces = []Namespace{Foreground, Background, Effect}

// CodeTable is the YAML shape of a style-code table.
type CodeTable struct {
	Prefix     string         `yaml:"prefix"`
	Suffix     string         `yaml:"suffix"`
	Reset      *int           `yaml:"reset,omitempty"`
	Foreground map[string]int `yaml:"foreground"`
	Background map[string]int `yaml:"background"`
	Styles     map[string]int `yaml:"styles"`
}

// Registry is an immutable name to fragment table. The zero value has no
// fragments.
type Registry struct {
	prefix    string
	suffix    string
	reset     string
	fragments [3]map[string]string
}

//go:embed codes.yaml
var embeddedCodes []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared ANSI registry built from the embedded table.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := LoadRegistry(embeddedCodes)
		if err != nil {
			// codes.yaml ships inside the binary; failing here is a build defect
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Plain returns a registry that resolves every name to the empty fragment.
func Plain() *Registry {
	return &Registry{}
}

// LoadRegistry parses a YAML code table.
func LoadRegistry(data []byte) (*Registry, error) {
	var table CodeTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse style codes")
	}
	return NewRegistry(table), nil
}

// NewRegistry renders a code table into fragments.
func NewRegistry(table CodeTable) *Registry {
	r := &Registry{prefix: table.Prefix, suffix: table.Suffix}
	switch {
	case table.Reset != nil:
		r.reset = r.fragment(*table.Reset)
	case table.Prefix != "":
		// SGR 0 clears everything
		r.reset = r.fragment(0)
	}
	for ns, codes := range map[Namespace]map[string]int{
		Foreground: table.Foreground,
		Background: table.Background,
		Effect:     table.Styles,
	} {
		r.fragments[ns] = make(map[string]string, len(codes))
		for name, code := range codes {
			r.fragments[ns][name] = r.fragment(code)
		}
	}
	return r
}

func (r *Registry) fragment(code int) string {
	return r.prefix + strconv.Itoa(code) + r.suffix
}

// Resolve returns the fragment for name, or "" when either the namespace or
// the name is unknown.
func (r *Registry) Resolve(ns Namespace, name string) string {
	if r == nil || ns < Foreground || ns > Effect || name == "" {
		return ""
	}
	return r.fragments[ns][name]
}

// Reset returns the sequence clearing all active styling.
func (r *Registry) Reset() string {
	if r == nil {
		return ""
	}
	return r.reset
}

// Names returns the sorted names of a namespace.
func (r *Registry) Names(ns Namespace) []string {
	if r == nil || ns < Foreground || ns > Effect {
		return nil
	}
	names := make([]string, 0, len(r.fragments[ns]))
	for name := range r.fragments[ns] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
