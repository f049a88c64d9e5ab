// Package yamldef reads enum definitions from YAML.
//
// A document is a mapping from type name to definition.  A definition is
// either a sequence of constant names or a mapping with a "constants" field
// of attribute bags and an optional "methods" field listing the names of
// shared methods, which are bound from a MethodTable:
//
//	Numbers:
//	  constants:
//	    ONE: {value: 1}
//	    TWO: {value: 2}
//	  methods: [add]
//	Colors: [RED, GREEN, BLUE]
//
// Mapping keys keep their document order, so ordinals follow the file.
package yamldef

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/brimdata/zenum"
	zerr "github.com/brimdata/zenum/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// A MethodTable supplies shared methods by type name and method name.
type MethodTable map[string]map[string]zenum.Method

// A Definition is one enum definition as read from a document.
type Definition struct {
	Name string
	// Def is a []interface{} or a zenum.Object ready for zenum.Define.
	Def  interface{}
	Line int
}

// Parse reads every document in r and returns the definitions in document
// order.  Method names are left unresolved as []interface{} values.
func Parse(r io.Reader) ([]Definition, error) {
	dec := yaml.NewDecoder(r)
	var defs []Definition
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return defs, nil
		}
		if err != nil {
			return nil, zerr.E(zerr.Invalid, err)
		}
		more, err := parseDocument(&doc)
		if err != nil {
			return nil, err
		}
		defs = append(defs, more...)
	}
}

func parseDocument(doc *yaml.Node) ([]Definition, error) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, nil
	}
	root := resolve(doc.Content[0])
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, zerr.E(zerr.Invalid, "line %d: a definition document must be a mapping of type names", root.Line)
	}
	var defs []Definition
	for k := 0; k+1 < len(root.Content); k += 2 {
		key, val := root.Content[k], root.Content[k+1]
		def, err := toValue(val)
		if err != nil {
			return nil, err
		}
		defs = append(defs, Definition{
			Name: key.Value,
			Def:  def,
			Line: key.Line,
		})
	}
	return defs, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// toValue converts a node to the values zenum.Define understands: mappings
// become zenum.Object, sequences []interface{} and scalars whatever yaml.v3
// decodes them to.
func toValue(n *yaml.Node) (interface{}, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.MappingNode:
		o := make(zenum.Object, 0, len(n.Content)/2)
		for k := 0; k+1 < len(n.Content); k += 2 {
			key := resolve(n.Content[k])
			if key.Kind != yaml.ScalarNode {
				return nil, zerr.E(zerr.Invalid, "line %d: mapping keys must be scalars", key.Line)
			}
			v, err := toValue(n.Content[k+1])
			if err != nil {
				return nil, err
			}
			o = append(o, zenum.Field{Key: key.Value, Value: v})
		}
		return o, nil
	case yaml.SequenceNode:
		out := make([]interface{}, 0, len(n.Content))
		for _, elem := range n.Content {
			v, err := toValue(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		var v interface{}
		if err := n.Decode(&v); err != nil {
			return nil, zerr.E(zerr.Invalid, "line %d: %w", n.Line, err)
		}
		return v, nil
	}
	return nil, zerr.E(zerr.Invalid, "line %d: unsupported YAML node", n.Line)
}

// Loader defines the types of YAML documents into a zenum.Context.  With a
// nil MethodTable, declared methods are bound to stubs that fail when
// called, which lets tools inspect files whose methods live in some
// other program.
type Loader struct {
	zctx    *zenum.Context
	methods MethodTable
	logger  *zap.Logger
}

func NewLoader(zctx *zenum.Context, methods MethodTable, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		zctx:    zctx,
		methods: methods,
		logger:  logger,
	}
}

func (l *Loader) LoadFile(path string) ([]*zenum.Type, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	types, err := l.Load(f)
	if err != nil {
		return types, fmt.Errorf("%s: %w", path, err)
	}
	return types, nil
}

// Load defines every type in r.  A type that fails to define does not stop
// the others; the returned error combines every failure and the returned
// types are the ones that succeeded.
func (l *Loader) Load(r io.Reader) ([]*zenum.Type, error) {
	defs, err := Parse(r)
	if err != nil {
		return nil, err
	}
	var types []*zenum.Type
	var errs error
	for _, def := range defs {
		typ, err := l.define(def)
		if err != nil {
			l.logger.Warn("Enum definition rejected",
				zap.String("type", def.Name),
				zap.Int("line", def.Line),
				zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s (line %d): %w", def.Name, def.Line, err))
			continue
		}
		l.logger.Debug("Enum type defined",
			zap.String("type", typ.Name()),
			zap.Int("constants", typ.Len()))
		types = append(types, typ)
	}
	return types, errs
}

func (l *Loader) define(def Definition) (*zenum.Type, error) {
	d, err := l.bindMethods(def)
	if err != nil {
		return nil, err
	}
	return l.zctx.Define(def.Name, d)
}

func (l *Loader) bindMethods(def Definition) (interface{}, error) {
	o, ok := def.Def.(zenum.Object)
	if !ok {
		return def.Def, nil
	}
	v, ok := o.Get("methods")
	if !ok || v == nil {
		return o, nil
	}
	var names []interface{}
	switch v := v.(type) {
	case []interface{}:
		names = v
	case string:
		names = []interface{}{v}
	default:
		return nil, zerr.E(zerr.Invalid, "methods must be a list of method names")
	}
	methods := make(zenum.Object, 0, len(names))
	for _, v := range names {
		name, ok := v.(string)
		if !ok {
			return nil, zerr.E(zerr.Invalid, "method name %v is not a string", v)
		}
		if l.methods == nil {
			methods = append(methods, zenum.Field{Key: name, Value: unbound(def.Name, name)})
			continue
		}
		m, ok := l.methods[def.Name][name]
		if !ok || m == nil {
			return nil, zerr.E(zerr.Invalid, "no method %s for %s", name, def.Name)
		}
		methods = append(methods, zenum.Field{Key: name, Value: m})
	}
	return o.With("methods", methods), nil
}

func unbound(typeName, name string) zenum.Method {
	return func(*zenum.Constant, ...interface{}) (interface{}, error) {
		return nil, zerr.E(zerr.UnknownMethod, "method %s of %s is declared but not bound", name, typeName)
	}
}
