package utils

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	n, err := ParseInt("stock", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = ParseInt("stock", "4.2")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "stock", pe.Field)
	assert.Equal(t, "4.2", pe.Value)

	_, err = ParseInt("quantity", "")
	assert.Error(t, err)
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal("selling", "8.50")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("8.5")))

	_, err = ParseDecimal("selling", "eight")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Error(), `"selling"`)
}

func TestRequireText(t *testing.T) {
	s, err := RequireText("name", "  Soap ")
	require.NoError(t, err)
	assert.Equal(t, "Soap", s)

	_, err = RequireText("name", "   ")
	assert.Error(t, err)
}
