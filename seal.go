package zenum

import (
	"reflect"

	"github.com/mitchellh/copystructure"
)

// sealer deep-copies attribute values.  Constants and types are singletons
// compared by pointer, so an attribute referring to one keeps the pointer.
var sealer = copystructure.Config{
	ShallowCopiers: map[reflect.Type]struct{}{
		reflect.TypeOf((*Constant)(nil)): {},
		reflect.TypeOf((*Type)(nil)):     {},
	},
}

// seal returns a deep copy of v so that nothing the caller still references
// can reach into a defined constant.  Slices, maps, arrays, pointers and
// the exported fields of structs are copied at every level; funcs and
// scalars are kept as is.
func seal(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return sealer.Copy(v)
}

func sealObject(o Object) (Object, error) {
	if o == nil {
		return nil, nil
	}
	v, err := seal(o)
	if err != nil {
		return nil, err
	}
	return v.(Object), nil
}

// mustSeal copies a value that was already sealed once by Define, which
// cannot fail.
func mustSeal(v interface{}) interface{} {
	out, err := seal(v)
	if err != nil {
		panic(err)
	}
	return out
}
