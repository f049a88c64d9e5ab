package zenum

import (
	"fmt"

	zerr "github.com/brimdata/zenum/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A Constant is one singleton value of an enum Type.  Constants are created
// only by Define and are compared by pointer.  A Constant is never modified
// after Define returns so it may be shared freely between goroutines.
type Constant struct {
	typ     *Type
	name    string
	ordinal int
	attrs   Object
}

// Type returns the enum type this constant belongs to, or nil for a
// Constant that was not created by Define.
func (c *Constant) Type() *Type {
	return c.typ
}

func (c *Constant) Name() string {
	return c.name
}

func (c *Constant) Ordinal() int {
	return c.ordinal
}

// String returns the constant's name.
func (c *Constant) String() string {
	return c.name
}

// MarshalText returns the constant's name, which is its primitive value.
func (c *Constant) MarshalText() ([]byte, error) {
	if c.typ == nil {
		return nil, illegal("")
	}
	return []byte(c.name), nil
}

// Values returns the constants of c's type in definition order.
func (c *Constant) Values() []*Constant {
	if c.typ == nil {
		return nil
	}
	return c.typ.Values()
}

// FromName looks up a sibling of c by name.
func (c *Constant) FromName(name string) (*Constant, error) {
	if c.typ == nil {
		return nil, illegal("")
	}
	return c.typ.FromName(name)
}

// Attr returns the attribute named name.  Container values are returned
// as copies.
func (c *Constant) Attr(name string) (interface{}, bool) {
	v, ok := c.attrs.Get(name)
	if !ok {
		return nil, false
	}
	return mustSeal(v), true
}

func (c *Constant) HasAttr(name string) bool {
	return c.attrs.Has(name)
}

// AttrNames returns the names of c's attributes in definition order.
func (c *Constant) AttrNames() []string {
	return c.attrs.Keys()
}

// Attrs returns a copy of c's attribute bag.
func (c *Constant) Attrs() Object {
	if c.attrs == nil {
		return nil
	}
	return mustSeal(c.attrs).(Object)
}

// AttrOf returns the attribute named name of c if it is present and has
// type T.
func AttrOf[T any](c *Constant, name string) (T, bool) {
	var zero T
	v, ok := c.Attr(name)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Call invokes method name with c as its receiver.  An attribute of c
// holding a Method takes precedence over a method shared by c's type.
func (c *Constant) Call(name string, args ...interface{}) (interface{}, error) {
	if c.typ == nil {
		return nil, illegal("")
	}
	if m, ok := c.ownMethod(name); ok {
		return m(c, args...)
	}
	if m, ok := c.typ.methods[name]; ok {
		return m(c, args...)
	}
	return nil, zerr.E(zerr.UnknownMethod, "%s.%s has no method %s", c.typ.name, c.name, name)
}

// MustCall is like Call but panics on error.
func (c *Constant) MustCall(name string, args ...interface{}) interface{} {
	v, err := c.Call(name, args...)
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Constant) HasMethod(name string) bool {
	if _, ok := c.ownMethod(name); ok {
		return true
	}
	if c.typ == nil {
		return false
	}
	_, ok := c.typ.methods[name]
	return ok
}

// Methods returns the sorted names of every method c can Call.
func (c *Constant) Methods() []string {
	names := make(map[string]struct{})
	if c.typ != nil {
		for name := range c.typ.methods {
			names[name] = struct{}{}
		}
	}
	for _, f := range c.attrs {
		if _, ok := asMethod(f.Value); ok {
			names[f.Key] = struct{}{}
		}
	}
	out := maps.Keys(names)
	slices.Sort(out)
	return out
}

func (c *Constant) ownMethod(name string) (Method, bool) {
	v, ok := c.attrs.Get(name)
	if !ok {
		return nil, false
	}
	return asMethod(v)
}

// GoString makes %#v print the qualified constant name.
func (c *Constant) GoString() string {
	if c.typ == nil {
		return "zenum.Constant{}"
	}
	return fmt.Sprintf("%s.%s", c.typ.name, c.name)
}
