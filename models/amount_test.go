package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountFromSats(t *testing.T) {
	a := AmountFromSats(21)

	assert.Equal(t, int64(21_000), a.Msats())
	assert.Equal(t, int64(21), a.Sats())
	assert.Equal(t, "21 sats", a.String())
	assert.Equal(t, int64(1), Amount(1999).Sats(), "sats are truncated")
}

func TestSatsInRange(t *testing.T) {
	tests := []struct {
		sats int64
		want bool
	}{
		{sats: 0, want: true},
		{sats: 1000, want: true},
		{sats: MaxSats, want: true},
		{sats: -MaxSats, want: true},
		{sats: MaxSats + 1, want: false},
		{sats: 18_446_744_073_709_552, want: false},
		{sats: math.MaxInt64, want: false},
		{sats: math.MinInt64, want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SatsInRange(tt.sats), "sats=%d", tt.sats)
	}

	assert.Equal(t, int64(MaxSats), AmountFromSats(MaxSats).Sats(), "MaxSats converts without wrapping")
}
