package enums

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOptionsInRegistryOrder(t *testing.T) {
	r := New(
		Registry{"side": {"Front", "Back", "Double"}},
		Constants{"Double": 2, "Front": 0, "Back": 1},
	)
	opts, ok, err := r.ResolveOptions("side")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []Option{{"Front", 0}, {"Back", 1}, {"Double", 2}}, opts)
}

func TestResolveOptionsUnknownTypeIsUnconstrained(t *testing.T) {
	r := New(Registry{"side": {"Front"}}, Constants{"Front": 0})
	opts, ok, err := r.ResolveOptions("opacity")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, opts)
}

func TestResolveOptionsNullIsMinusOne(t *testing.T) {
	r := New(
		Registry{"factor": {"null", "One"}},
		Constants{"One": 201, "null": "ignored"},
	)
	opts, ok, err := r.ResolveOptions("factor")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []Option{{"null", -1}, {"One", 201}}, opts)
}

func TestResolveOptionsFailsOnNonNumericConstant(t *testing.T) {
	cases := map[string]Constants{
		"string":       {"Front": 0, "Back": "1"},
		"missing":      {"Front": 0},
		"non-integral": {"Front": 0, "Back": 1.5},
		"too large":    {"Front": 0, "Back": 1e19},
		"too small":    {"Front": 0, "Back": -1e19},
		"infinite":     {"Front": 0, "Back": math.Inf(1)},
		"nan":          {"Front": 0, "Back": math.NaN()},
	}
	for name, consts := range cases {
		t.Run(name, func(t *testing.T) {
			r := New(Registry{"side": {"Front", "Back"}}, consts)
			_, _, err := r.ResolveOptions("side")
			require.ErrorIs(t, err, ErrUnresolvableConstant)
			assert.Contains(t, err.Error(), "side.Back")
			assert.Panics(t, func() { r.MustResolveOptions("side") })
		})
	}
}

func TestResolveOptionsAcceptsDecodedNumbers(t *testing.T) {
	r := New(Registry{"wrap": {"Repeat"}}, Constants{"Repeat": float64(1000)})
	opts := r.MustResolveOptions("wrap")
	assert.Equal(t, []Option{{"Repeat", 1000}}, opts)
}

func TestDefaultTablesAreConsistent(t *testing.T) {
	r := Default()
	require.NotEmpty(t, r.Types())
	for _, typ := range r.Types() {
		opts, ok, err := r.ResolveOptions(typ)
		require.NoError(t, err, typ)
		require.True(t, ok, typ)
		require.NotEmpty(t, opts, typ)
	}

	side := r.MustResolveOptions("side")
	assert.Equal(t, []Option{{"FrontSide", 0}, {"BackSide", 1}, {"DoubleSide", 2}}, side)

	nullable := r.MustResolveOptions("blendFactorOrNull")
	assert.Equal(t, Option{"null", -1}, nullable[0])
	assert.Equal(t, Option{"ZeroFactor", 200}, nullable[1])
}

func TestLabel(t *testing.T) {
	r := Default()
	label, err := r.Label("wrap", 1001)
	require.NoError(t, err)
	assert.Equal(t, "ClampToEdgeWrapping", label)

	label, err = r.Label("wrap", 7)
	require.NoError(t, err)
	assert.Empty(t, label)

	label, err = r.Label("opacity", 1)
	require.NoError(t, err)
	assert.Empty(t, label)
}

func TestSuggest(t *testing.T) {
	r := Default()
	got, ok := r.Suggest("sid")
	require.True(t, ok)
	assert.Equal(t, "side", got)

	got, ok = r.Suggest("tonemapping")
	require.True(t, ok)
	assert.Equal(t, "toneMapping", got)

	_, ok = r.Suggest("xyzzy")
	assert.False(t, ok)
}
