package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsLost(t *testing.T) {
	assert.Equal(t, 0, PointsLost(0))
	assert.Equal(t, 2, PointsLost(1))
	assert.Equal(t, 6, PointsLost(3))
	assert.Equal(t, 20, PointsLost(10))
}

func TestPointsEarned(t *testing.T) {
	assert.Equal(t, 10, PointsEarned(0))
	assert.Equal(t, 4, PointsEarned(3))
	assert.Equal(t, 0, PointsEarned(5))
}

// Skor boleh negatif — perilaku referensi, jangan di-clamp.
func TestPointsEarnedNegative(t *testing.T) {
	assert.Equal(t, -2, PointsEarned(6))
	assert.Equal(t, -10, PointsEarned(10))
}

func TestRefinementNet(t *testing.T) {
	// contoh kanonik: 3 fixed, 2 missed, 1 baru → 3*5 - 2*5 - 1*3 = 2
	assert.Equal(t, 2, RefinementNet(3, 2, 1))

	assert.Equal(t, 0, RefinementNet(0, 0, 0))
	assert.Equal(t, 15, RefinementNet(3, 0, 0))
	assert.Equal(t, -5, RefinementNet(0, 1, 0))
	assert.Equal(t, -3, RefinementNet(0, 0, 1))
	assert.Equal(t, -13, RefinementNet(0, 2, 1))
}
