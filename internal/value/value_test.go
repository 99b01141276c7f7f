package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mrbz/internal/value"
)

func TestTruthy(t *testing.T) {
	assert.False(t, value.Nil.Truthy())
	assert.False(t, value.False.Truthy())
	assert.True(t, value.True.Truthy())
	assert.True(t, value.Int(0).Truthy(), "Int(0) is truthy, unlike many scripting languages")
	assert.True(t, value.Symbol(0).Truthy())
	assert.True(t, value.Array(0).Truthy())
}

func TestEqualRequiresSameVariant(t *testing.T) {
	assert.True(t, value.Int(0).Equal(value.Int(0)))
	assert.False(t, value.Int(0).Equal(value.False), "Int(0) and False are different variants")
	assert.False(t, value.Nil.Equal(value.False))
	assert.True(t, value.Symbol(3).Equal(value.Symbol(3)))
	assert.False(t, value.Symbol(3).Equal(value.Symbol(4)))
}

func TestIntWraparound(t *testing.T) {
	assert.Equal(t, int16(32767), value.Int(32767).Int16())
	assert.Equal(t, int16(-32768), value.Int(32768).Int16(), "16-bit signed wraparound on overflow")
	assert.Equal(t, int16(-1), value.Int(65535).Int16())
}

func TestArrayAndSymbolIndices(t *testing.T) {
	assert.Equal(t, uint8(7), value.Array(7).ArrayIndex())
	assert.Equal(t, uint8(200), value.Symbol(200).SymbolIndex())
	assert.True(t, value.Array(0).IsArray())
	assert.False(t, value.Nil.IsArray())
}

func TestStringRendering(t *testing.T) {
	assert.Equal(t, "nil", value.Nil.String())
	assert.Equal(t, "31", value.Int(31).String())
	assert.Equal(t, "true", value.True.String())
}
