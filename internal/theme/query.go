package theme

import (
	"fmt"
	"strings"
)

// ControlState is transient UI interaction state. No supported format
// colors states differently, so every resolver ignores it.
type ControlState uint8

const (
	Active ControlState = iota
	Inactive
	Hover
)

// AllControlStates enumerates the control states.
func AllControlStates() []ControlState {
	return []ControlState{Active, Inactive, Hover}
}

func (c ControlState) String() string {
	switch c {
	case Active:
		return "active"
	case Inactive:
		return "inactive"
	case Hover:
		return "hover"
	default:
		return fmt.Sprintf("ControlState(%d)", uint8(c))
	}
}

// ParseControlState accepts "active", "inactive" or "hover".
func ParseControlState(s string) (ControlState, error) {
	for _, c := range AllControlStates() {
		if c.String() == strings.ToLower(s) {
			return c, nil
		}
	}
	return Active, fmt.Errorf("unknown control state %q", s)
}

// Context is the interaction state and appearance a query is asked under.
type Context struct {
	ControlState ControlState
	Variant      Variant
}

// NewContext returns an active context for v.
func NewContext(v Variant) Context {
	return Context{ControlState: Active, Variant: v}
}

// AllContexts enumerates every control state for every variant.
func AllContexts() []Context {
	out := make([]Context, 0, 12)
	for _, v := range AllVariants() {
		for _, c := range AllControlStates() {
			out = append(out, Context{ControlState: c, Variant: v})
		}
	}
	return out
}

// Query asks for the style of a key in a context. Queries are comparable
// and usable as map keys.
type Query struct {
	Key     Key
	Context Context
}

// NewQuery returns an active-state query for key under v.
func NewQuery(key Key, v Variant) Query {
	return Query{Key: key, Context: NewContext(v)}
}

// String renders the canonical form <key>|<state>|<scheme>|<contrast>.
func (q Query) String() string {
	return strings.Join([]string{
		q.Key.String(),
		q.Context.ControlState.String(),
		q.Context.Variant.ColorScheme.String(),
		q.Context.Variant.Contrast.String(),
	}, "|")
}

// ParseQuery reads the form produced by Query.String.
func ParseQuery(s string) (Query, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 4 {
		return Query{}, fmt.Errorf("query %q: expected 4 fields, got %d", s, len(parts))
	}
	key, err := ParseKey(parts[0])
	if err != nil {
		return Query{}, err
	}
	state, err := ParseControlState(parts[1])
	if err != nil {
		return Query{}, err
	}
	scheme, err := ParseColorScheme(parts[2])
	if err != nil {
		return Query{}, err
	}
	contrast, err := ParseContrast(parts[3])
	if err != nil {
		return Query{}, err
	}
	return Query{
		Key: key,
		Context: Context{
			ControlState: state,
			Variant:      Variant{ColorScheme: scheme, Contrast: contrast},
		},
	}, nil
}

// MarshalText implements encoding.TextMarshaler so queries can key JSON,
// YAML and TOML maps.
func (q Query) MarshalText() ([]byte, error) {
	if !q.Key.Valid() {
		return nil, fmt.Errorf("invalid query key")
	}
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Query) UnmarshalText(text []byte) error {
	parsed, err := ParseQuery(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// AllQueries enumerates the full query space: every key under every context.
func AllQueries() []Query {
	keys := AllKeys()
	contexts := AllContexts()
	out := make([]Query, 0, len(keys)*len(contexts))
	for _, k := range keys {
		for _, c := range contexts {
			out = append(out, Query{Key: k, Context: c})
		}
	}
	return out
}
