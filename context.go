package zenum

import (
	"sync"

	zerr "github.com/brimdata/zenum/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A Context is a registry of enum types keyed by type name.  Define on its
// own needs no Context; a Context is for programs that define types from
// configuration and look them up by name later.  A Context is safe for
// concurrent use.
type Context struct {
	mu     sync.RWMutex
	byName map[string]*Type
}

func NewContext() *Context {
	return &Context{
		byName: make(map[string]*Type),
	}
}

func (c *Context) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byName = make(map[string]*Type)
}

func (c *Context) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byName)
}

// Define defines a type as the package-level Define does and enters it into
// c.  It fails with zerr.Exists if c already has a type named typeName.
func (c *Context) Define(typeName string, definition interface{}) (*Type, error) {
	d, err := parse(typeName, definition)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byName[typeName]; ok {
		return nil, zerr.E(zerr.Exists, "enum type %s already defined", typeName)
	}
	typ, err := d.build()
	if err != nil {
		return nil, err
	}
	c.byName[typeName] = typ
	return typ, nil
}

// Lookup returns the type named name or nil.
func (c *Context) Lookup(name string) *Type {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byName[name]
}

// LookupType is like Lookup but returns a zerr.NotFound error for a
// missing type.
func (c *Context) LookupType(name string) (*Type, error) {
	if typ := c.Lookup(name); typ != nil {
		return typ, nil
	}
	return nil, zerr.E(zerr.NotFound, "no enum type named %s", name)
}

// LookupConstant resolves a constant by type and constant name.
func (c *Context) LookupConstant(typeName, name string) (*Constant, error) {
	typ, err := c.LookupType(typeName)
	if err != nil {
		return nil, err
	}
	return typ.FromName(name)
}

// Types returns the types in c sorted by name.
func (c *Context) Types() []*Type {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := maps.Keys(c.byName)
	slices.Sort(names)
	types := make([]*Type, 0, len(names))
	for _, name := range names {
		types = append(types, c.byName[name])
	}
	return types
}
