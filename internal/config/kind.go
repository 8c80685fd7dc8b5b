package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind selects which pattern is shown.
type Kind int

const (
	KindSpiral Kind = iota
	KindKochStatic
	KindKochAnimated
	KindSierpinski
	KindTreeStatic
	KindTreeAnimated
)

var kindNames = [...]string{
	KindSpiral:       "spiral",
	KindKochStatic:   "koch-static",
	KindKochAnimated: "koch-animated",
	KindSierpinski:   "sierpinski",
	KindTreeStatic:   "tree-static",
	KindTreeAnimated: "tree-animated",
}

// AllKinds lists every pattern in selection order.
func AllKinds() []Kind {
	return []Kind{KindSpiral, KindKochStatic, KindKochAnimated, KindSierpinski, KindTreeStatic, KindTreeAnimated}
}

// Valid reports whether k names a known pattern.
func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Title returns the human readable name, e.g. "Koch Animated".
func (k Kind) Title() string {
	return cases.Title(language.English).String(strings.ReplaceAll(k.String(), "-", " "))
}

// ParseKind converts a pattern name to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown pattern %q (want one of %s)", s, strings.Join(kindNames[:], ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown pattern kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Set implements pflag.Value so a Kind can be bound to a command line flag.
func (k *Kind) Set(s string) error {
	return k.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (k *Kind) Type() string {
	return "pattern"
}
