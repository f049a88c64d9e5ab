package zenum

import (
	"errors"
	"regexp"
	"sync"

	zerr "github.com/brimdata/zenum/errors"
	"github.com/go-playground/validator/v10"
)

var enumName = regexp.MustCompile(`(?i)^[a-z$_][0-9a-z$_]*$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func nameValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		err := validate.RegisterValidation("enumname", func(fl validator.FieldLevel) bool {
			return enumName.MatchString(fl.Field().String())
		})
		if err != nil {
			panic(err)
		}
	})
	return validate
}

// ValidName reports whether name may be used as the name of an enum type.
func ValidName(name string) bool {
	return checkName(name) == nil
}

func checkName(name string) error {
	err := nameValidator().Var(name, "required,enumname")
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "required" {
		return zerr.E(zerr.Invalid, "a name is required")
	}
	return zerr.E(zerr.Invalid, "invalid enum name %q: enum names can only consist of numbers, letters, $, and _, and can only start with letters, $, or _", name)
}

// definition is a validated Define argument.  attrs is nil for the
// sequence form and otherwise parallel to names.
type definition struct {
	typeName string
	names    []string
	attrs    []Object
	methods  map[string]Method
}

func parse(typeName string, def interface{}) (*definition, error) {
	if err := checkName(typeName); err != nil {
		return nil, err
	}
	if def == nil {
		return nil, zerr.E(zerr.Invalid, "constants are required")
	}
	d := &definition{typeName: typeName}
	var err error
	switch def := def.(type) {
	case []string:
		err = d.parseNames(def)
	case []interface{}:
		names := make([]string, 0, len(def))
		for _, elem := range def {
			s, ok := elem.(string)
			if !ok {
				return nil, zerr.E(zerr.Invalid, "one or more elements in the constant sequence is not a string: %v", elem)
			}
			names = append(names, s)
		}
		err = d.parseNames(names)
	case Object:
		err = d.parseObject(def)
	case *Object:
		if def == nil {
			return nil, zerr.E(zerr.Invalid, "constants are required")
		}
		err = d.parseObject(*def)
	default:
		return nil, zerr.E(zerr.Invalid, "the definition must either be a sequence of names or an Object, not %T", def)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (d *definition) parseNames(names []string) error {
	if len(names) == 0 {
		return zerr.E(zerr.Invalid, "need to provide at least one constant")
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return zerr.E(zerr.Invalid, "constant names cannot be empty")
		}
		if _, ok := seen[name]; ok {
			return zerr.E(zerr.Invalid, "duplicate constant %s in %s", name, d.typeName)
		}
		seen[name] = struct{}{}
	}
	d.names = names
	return nil
}

func (d *definition) parseObject(o Object) error {
	v, ok := o.Get("constants")
	if !ok || v == nil {
		return zerr.E(zerr.Invalid, "if the definition is an Object, it must have a constants field")
	}
	constants, ok := asObject(v)
	if !ok {
		return zerr.E(zerr.Invalid, "the constants field must be an Object, not %T", v)
	}
	if len(constants) == 0 {
		return zerr.E(zerr.Invalid, "the constants field cannot be empty")
	}
	attrs := make([]Object, 0, len(constants))
	for _, f := range constants {
		bag, ok := asObject(f.Value)
		if !ok {
			return zerr.E(zerr.Invalid, "one or more values in the constants field is not an Object: %s", f.Key)
		}
		attrs = append(attrs, bag)
	}
	if err := d.parseNames(constants.Keys()); err != nil {
		return err
	}
	d.attrs = attrs
	d.methods = make(map[string]Method)
	v, ok = o.Get("methods")
	if !ok || v == nil {
		return nil
	}
	methods, ok := asObject(v)
	if !ok {
		return zerr.E(zerr.Invalid, "the methods field must be an Object, not %T", v)
	}
	for _, f := range methods {
		m, ok := asMethod(f.Value)
		if !ok {
			return zerr.E(zerr.Invalid, "one or more values in the methods field is not a Method: %s", f.Key)
		}
		d.methods[f.Key] = m
	}
	return nil
}

func asObject(v interface{}) (Object, bool) {
	switch v := v.(type) {
	case Object:
		if v == nil {
			return Object{}, true
		}
		return v, true
	case *Object:
		if v == nil {
			return nil, false
		}
		return asObject(*v)
	}
	return nil, false
}
