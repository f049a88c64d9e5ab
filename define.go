// Package zenum defines closed, enumerated constant sets at run time in the
// style of class-based enums.
//
// A type is defined either from a sequence of names,
//
//	Colors, err := zenum.Define("Colors", []string{"RED", "GREEN", "BLUE"})
//
// or from an Object carrying per-constant attributes and shared methods,
//
//	Numbers, err := zenum.Define("Numbers", zenum.Object{
//		{"constants", zenum.Object{
//			{"ONE", zenum.Object{{"value", 1}}},
//			{"TWO", zenum.Object{{"value", 2}}},
//		}},
//		{"methods", zenum.Object{
//			{"add", zenum.Method(add)},
//		}},
//	})
//
// Every constant is a singleton created by Define with an ordinal equal to
// its position in the definition.  No other code can create constants of a
// defined type and nothing about a type or its constants can change after
// Define returns, so types are safe for concurrent use.
package zenum

import zerr "github.com/brimdata/zenum/errors"

// Define validates definition and returns a new enum type named typeName.
// The definition is a []string, a []interface{} of strings, or an Object
// (or *Object) with a "constants" field holding an Object of attribute
// bags and an optional "methods" field holding an Object of Methods.
// Define either returns a complete type or an error of kind zerr.Invalid;
// there is no partial result.
func Define(typeName string, definition interface{}) (*Type, error) {
	d, err := parse(typeName, definition)
	if err != nil {
		return nil, err
	}
	return d.build()
}

// MustDefine is like Define but panics on error.
func MustDefine(typeName string, definition interface{}) *Type {
	t, err := Define(typeName, definition)
	if err != nil {
		panic(err)
	}
	return t
}

func (d *definition) build() (*Type, error) {
	key := &sentinel{}
	t := newType(d.typeName, key, len(d.names))
	for name, m := range d.methods {
		t.methods[name] = m
	}
	for ordinal, name := range d.names {
		c, err := t.mint(key, name, ordinal)
		if err != nil {
			return nil, err
		}
		if d.attrs != nil {
			attrs, err := sealObject(d.attrs[ordinal])
			if err != nil {
				return nil, zerr.E(zerr.Invalid, "attributes of %s cannot be copied: %w", name, err)
			}
			c.attrs = attrs
		}
		t.values = append(t.values, c)
		t.byName[name] = c
	}
	t.display = formatType(t.name, t.values)
	return t, nil
}
