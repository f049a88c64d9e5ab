package zenum

// An Object is an ordered keyed structure.  It is the form a keyed
// definition takes: a Go map cannot be used since constants take their
// ordinals from the order in which they were written.
type Object []Field

type Field struct {
	Key   string
	Value interface{}
}

// Get returns the value of the first field named key.
func (o Object) Get(key string) (interface{}, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func (o Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns the field names in order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for _, f := range o {
		keys = append(keys, f.Key)
	}
	return keys
}

// With returns a copy of o with the field key appended, or replaced in
// place if o already has it.
func (o Object) With(key string, value interface{}) Object {
	out := make(Object, len(o), len(o)+1)
	copy(out, o)
	for k := range out {
		if out[k].Key == key {
			out[k].Value = value
			return out
		}
	}
	return append(out, Field{key, value})
}
