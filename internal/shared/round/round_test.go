package round

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       float64
		places   int32
		expected float64
	}{
		{149.8765, 3, 149.877},
		{149.8764, 3, 149.876},
		{2512.345, 2, 2512.35},
		{100, 2, 100},
		{0.005, 2, 0.01},
		{-1.2345, 2, -1.23},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, To(tt.in, tt.places), "To(%v, %d)", tt.in, tt.places)
	}
}

func TestPtr(t *testing.T) {
	t.Parallel()

	p := Ptr(1.23456, 2)
	if assert.NotNil(t, p) {
		assert.Equal(t, 1.23, *p)
	}
}
