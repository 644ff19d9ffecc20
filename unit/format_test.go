package unit

import (
	"math"
	"testing"

	"github.com/hupe1980/fisika/prefix"
	"github.com/stretchr/testify/assert"
)

var inf = math.Inf(1)

func TestFormat(t *testing.T) {
	m := length.Canonical()
	km := length.Unit(prefix.Kilo)
	km2 := area.Unit(prefix.Kilo)

	assert.Equal(t, "5 km", Format(5, km))
	assert.Equal(t, "2.5 km²", Format(2.5, km2))
	assert.Equal(t, "1234.57 km", FormatPrec(1234.5678, km, 2))
	assert.Equal(t, "1 metre", FormatLong(1, m))
	assert.Equal(t, "2 metres", FormatLong(2, m))
	assert.Equal(t, "1.5 metres", FormatLong(1.5, m))
	assert.Equal(t, "0 metres", FormatLong(0, m))
	assert.Equal(t, "1.00 square kilometre", FormatLongPrec(1, km2, 2))
	assert.Equal(t, "3 kilometres per second", FormatLong(3, speed.Unit(prefix.Kilo)))
}

func TestLongName(t *testing.T) {
	m := length.Canonical()

	assert.Equal(t, "metre", LongName(1, m))
	assert.Equal(t, "metre", LongName(1+Epsilon/4, m))
	assert.Equal(t, "metres", LongName(1+4*Epsilon, m))
	assert.Equal(t, "metres", LongName(-1, m))
	assert.True(t, IsOne(1))
	assert.False(t, IsOne(0.999))
}

func TestFormatMagnitude(t *testing.T) {
	tests := []struct {
		m    float64
		prec int
		want string
	}{
		{0, -1, "0"},
		{12, -1, "12"},
		{-0.25, -1, "-0.25"},
		{1e6, -1, "1000000"},
		{0.5, 2, "0.50"},
		{1e-9, -1, "1e-09"},
		{1.5e21, -1, "1.5e+21"},
		{6.02214076e23, 3, "6.022e+23"},
		{inf, -1, "+Inf"},
		{math.NaN(), -1, "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMagnitude(tt.m, tt.prec))
		})
	}
}
