package zenum

import (
	"testing"

	zerr "github.com/brimdata/zenum/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintRequiresSentinel(t *testing.T) {
	typ := MustDefine("Numbers", []string{"ONE"})

	_, err := typ.mint(&sentinel{}, "TWO", 1)
	assert.EqualError(t, err, "illegal instantiation: cannot instantiate an instance of Numbers")
	assert.True(t, zerr.IsTypeError(err))

	_, err = typ.mint(nil, "TWO", 1)
	assert.True(t, zerr.Is(err, zerr.IllegalInstantiation))

	other := MustDefine("Numbers", []string{"ONE"})
	_, err = typ.mint(other.key, "TWO", 1)
	assert.True(t, zerr.Is(err, zerr.IllegalInstantiation))

	c, err := typ.mint(typ.key, "TWO", 1)
	require.NoError(t, err)
	// A minted constant that was never entered into the type is still
	// not one of its members.
	assert.False(t, typ.Has(c))
	assert.Equal(t, 1, typ.Len())
}

func TestSentinelsAreDistinct(t *testing.T) {
	a := MustDefine("A", []string{"X"})
	b := MustDefine("B", []string{"X"})
	assert.NotSame(t, a.key, b.key)
}

func TestSeal(t *testing.T) {
	strs := []string{"a"}
	o := Object{
		{"strs", strs},
		{"nested", Object{{"list", []interface{}{map[string]interface{}{"x": 1}}}}},
		{"ptr", &Object{{"k", "v"}}},
		{"ints", map[string]int{"a": 1}},
	}
	v, err := seal(o)
	require.NoError(t, err)
	sealed := v.(Object)
	strs[0] = "b"
	o[1].Value.(Object)[0].Value.([]interface{})[0].(map[string]interface{})["x"] = 2
	(*o[2].Value.(*Object))[0].Value = "w"
	o[3].Value.(map[string]int)["a"] = 2

	v, _ = sealed.Get("strs")
	assert.Equal(t, []string{"a"}, v)
	v, _ = sealed.Get("nested")
	assert.Equal(t, Object{{"list", []interface{}{map[string]interface{}{"x": 1}}}}, v)
	v, _ = sealed.Get("ptr")
	assert.Equal(t, &Object{{"k", "v"}}, v)
	v, _ = sealed.Get("ints")
	assert.Equal(t, map[string]int{"a": 1}, v)

	v, err = seal(42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	v, err = seal(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

type point struct {
	X, Y int
}

func TestSealAnyContainer(t *testing.T) {
	raw := []byte("abc")
	flags := map[string]bool{"on": true}
	series := map[string][]int{"a": {1, 2}}
	grid := [2]map[string]int{{"x": 1}, {"y": 2}}
	p := &point{1, 2}
	o := Object{{"raw", raw}, {"flags", flags}, {"series", series}, {"grid", grid}, {"point", p}}
	v, err := seal(o)
	require.NoError(t, err)
	sealed := v.(Object)

	raw[0] = 'X'
	flags["on"] = false
	series["a"][0] = 100
	grid[0]["x"] = 100
	p.X = 100

	assert.Equal(t, Object{
		{"raw", []byte("abc")},
		{"flags", map[string]bool{"on": true}},
		{"series", map[string][]int{"a": {1, 2}}},
		{"grid", [2]map[string]int{{"x": 1}, {"y": 2}}},
		{"point", &point{1, 2}},
	}, sealed)
}

func TestSealKeepsConstants(t *testing.T) {
	colors := MustDefine("Colors", []string{"RED"})
	red := colors.MustFromName("RED")
	v, err := seal(Object{{"color", red}, {"type", colors}, {"list", []interface{}{red}}})
	require.NoError(t, err)
	sealed := v.(Object)
	c, _ := sealed.Get("color")
	assert.Same(t, red, c)
	typ, _ := sealed.Get("type")
	assert.Same(t, colors, typ)
	list, _ := sealed.Get("list")
	assert.Same(t, red, list.([]interface{})[0])
	assert.NoError(t, colors.Check(c.(*Constant)))
}

func TestObject(t *testing.T) {
	o := Object{{"a", 1}, {"b", 2}}
	assert.Equal(t, []string{"a", "b"}, o.Keys())
	assert.True(t, o.Has("b"))
	assert.False(t, o.Has("c"))

	o2 := o.With("a", 10).With("c", 3)
	assert.Equal(t, Object{{"a", 10}, {"b", 2}, {"c", 3}}, o2)
	assert.Equal(t, Object{{"a", 1}, {"b", 2}}, o)
}
