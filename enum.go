package zenum

import (
	"errors"
	"strings"

	zerr "github.com/brimdata/zenum/errors"
)

var ErrOrdinal = errors.New("enum ordinal out of bounds")

// sentinel is the capability that lets Define mint constants.  A fresh one
// is allocated for every Define call and never leaves this package.
type sentinel struct {
	_ byte
}

// A Type is an enum type produced by one call to Define.  Its set of
// constants is closed and nothing about it changes after Define returns.
type Type struct {
	name    string
	key     *sentinel
	values  []*Constant
	byName  map[string]*Constant
	methods map[string]Method
	display string
}

func newType(name string, key *sentinel, n int) *Type {
	return &Type{
		name:    name,
		key:     key,
		values:  make([]*Constant, 0, n),
		byName:  make(map[string]*Constant, n),
		methods: make(map[string]Method),
	}
}

// mint creates a constant of t.  It fails unless key is the sentinel t
// was created with.
func (t *Type) mint(key *sentinel, name string, ordinal int) (*Constant, error) {
	if key == nil || key != t.key {
		return nil, illegal(t.name)
	}
	return &Constant{typ: t, name: name, ordinal: ordinal}, nil
}

func illegal(name string) error {
	if name == "" {
		return zerr.E(zerr.IllegalInstantiation, "constant was not created by Define")
	}
	return zerr.E(zerr.IllegalInstantiation, "cannot instantiate an instance of %s", name)
}

func (t *Type) Name() string {
	return t.name
}

// Values returns t's constants in definition order.  The slice is a copy;
// its elements are the singleton constants.
func (t *Type) Values() []*Constant {
	out := make([]*Constant, len(t.values))
	copy(out, t.values)
	return out
}

func (t *Type) Len() int {
	return len(t.values)
}

// At returns the constant with the given ordinal.
func (t *Type) At(ordinal int) (*Constant, error) {
	if ordinal < 0 || ordinal >= len(t.values) {
		return nil, ErrOrdinal
	}
	return t.values[ordinal], nil
}

// FromName returns the constant of t named name.
func (t *Type) FromName(name string) (*Constant, error) {
	if c, ok := t.byName[name]; ok {
		return c, nil
	}
	return nil, zerr.E(zerr.UnknownConstant, "%s does not have a constant with name %s", t.name, name)
}

// MustFromName is like FromName but panics if there is no such constant.
// It is intended for initializing package-level variables.
func (t *Type) MustFromName(name string) *Constant {
	c, err := t.FromName(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the ordinal of the constant named name or -1.
func (t *Type) Lookup(name string) int {
	if c, ok := t.byName[name]; ok {
		return c.ordinal
	}
	return -1
}

// Has reports whether c is one of t's constants.
func (t *Type) Has(c *Constant) bool {
	return t.Check(c) == nil
}

// Check returns an IllegalInstantiation error unless c is one of the
// constants Define created for t.  A zero Constant or a copy of a real one
// fails the check.
func (t *Type) Check(c *Constant) error {
	if c == nil || c.typ == nil {
		return illegal("")
	}
	if c.typ != t {
		return zerr.E(zerr.IllegalInstantiation, "%s is a constant of %s, not %s", c.name, c.typ.name, t.name)
	}
	if c.ordinal < 0 || c.ordinal >= len(t.values) || t.values[c.ordinal] != c {
		return illegal(t.name)
	}
	return nil
}

// HasMethod reports whether t shares a method named name with all of its
// constants.
func (t *Type) HasMethod(name string) bool {
	_, ok := t.methods[name]
	return ok
}

// String returns a summary of the form "Name { A, B, C }".
func (t *Type) String() string {
	return t.display
}

func formatType(name string, values []*Constant) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" { ")
	for k, c := range values {
		if k > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.name)
	}
	b.WriteString(" }")
	return b.String()
}
