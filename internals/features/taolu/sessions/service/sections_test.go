package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSections(t *testing.T) {
	got, err := NormalizeSections([]int{3, 1, 2}, 6)
	require.NoError(t, err)
	assert.Equal(t, pq.Int64Array{1, 2, 3}, got)
}

func TestNormalizeSectionsDedup(t *testing.T) {
	got, err := NormalizeSections([]int{2, 2, 5, 2}, 6)
	require.NoError(t, err)
	assert.Equal(t, pq.Int64Array{2, 5}, got)
}

func TestNormalizeSectionsEmpty(t *testing.T) {
	_, err := NormalizeSections(nil, 6)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestNormalizeSectionsOutOfRange(t *testing.T) {
	_, err := NormalizeSections([]int{1, 7}, 6)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	_, err = NormalizeSections([]int{0}, 6)
	require.Error(t, err)
}
