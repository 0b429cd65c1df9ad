package siteswap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueString(t *testing.T) {
	assert.Equal(t, "400", Number(400).String())
	assert.Equal(t, "33.3", Number(33.3).String())
	assert.Equal(t, "133.33333333333334", Number(400.0/3).String())
	assert.Equal(t, "0.5", Number(0.5).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "5b31", String("5b31").String())
}

func TestValueFloat(t *testing.T) {
	n, ok := String(" 300 ").Float()
	require.True(t, ok)
	assert.Equal(t, float64(300), n)

	_, ok = String("wide").Float()
	assert.False(t, ok)

	_, ok = Bool(true).Float()
	assert.False(t, ok)
}

func TestValueEqualComparesCanonicalText(t *testing.T) {
	assert.True(t, Number(400).Equal(String("400")))
	assert.True(t, Bool(false).Equal(String("false")))
	assert.False(t, Number(400).Equal(Number(400.5)))
}

func TestParamsJSON(t *testing.T) {
	params := Params{
		{Key: "pattern", Value: String("3"), Source: SourceBlock},
		{Key: "width", Value: Number(200), Source: SourceSettings},
		{Key: "redirect", Value: Bool(true), Source: SourceForced},
	}

	data, err := json.Marshal(params)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"key":"pattern","value":"3","source":"block"},
		{"key":"width","value":200,"source":"settings"},
		{"key":"redirect","value":true,"source":"forced"}
	]`, string(data))
}

func TestParamsWithKeepsPosition(t *testing.T) {
	params := Params{
		{Key: "a", Value: Number(1)},
		{Key: "b", Value: Number(2)},
	}

	updated := params.With("a", Number(3), SourceBlock).With("c", Number(4), SourceBlock)
	assert.Equal(t, []string{"a", "b", "c"}, updated.Keys())

	a, _ := updated.Get("a")
	assert.Equal(t, "3", a.String())

	original, _ := params.Get("a")
	assert.Equal(t, "1", original.String())
}
