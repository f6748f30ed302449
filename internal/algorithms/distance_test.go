package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	t.Run("zero distance", func(t *testing.T) {
		assert.Equal(t, 0.0, Haversine(43.238949, 76.889709, 43.238949, 76.889709))
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		// 6371 km * pi / 180
		assert.InDelta(t, 111.195, Haversine(0, 0, 1, 0), 0.01)
	})

	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		assert.InDelta(t, 111.195, Haversine(0, 0, 0, 1), 0.01)
	})

	t.Run("longitude shrinks away from the equator", func(t *testing.T) {
		d := Haversine(60, 0, 60, 1)
		assert.InDelta(t, 55.6, d, 0.1)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := Haversine(43.238949, 76.889709, 51.169392, 71.449074)
		b := Haversine(51.169392, 71.449074, 43.238949, 76.889709)
		assert.InDelta(t, a, b, 1e-9)
	})
}
