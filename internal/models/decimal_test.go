package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDecimal(t *testing.T) {
	d, err := NewDecimal("12.50")
	require.NoError(t, err)
	assert.Equal(t, "12.50", d.StringFixed(2))

	_, err = NewDecimal("not-a-number")
	assert.Error(t, err)
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already two places", "12.50", "12.50"},
		{"half rounds up", "12.505", "12.51"},
		{"below half rounds down", "12.504", "12.50"},
		{"many places", "0.999999", "1.00"},
		{"integer", "7", "7.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := decimal.NewFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, RoundMoney(in).StringFixed(2))
		})
	}
}

func TestZeroMoney(t *testing.T) {
	assert.True(t, ZeroMoney().IsZero())
	assert.Equal(t, "0.00", ZeroMoney().StringFixed(2))
}
