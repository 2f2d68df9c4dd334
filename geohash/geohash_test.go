package geohash

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeKnownValues(t *testing.T) {
	tests := []struct {
		name      string
		lat, lon  float64
		precision int
		want      string
	}{
		{"jutland", 57.64911, 10.40744, 11, "u4pruydqqvj"},
		{"leon", 42.605, -5.603, 5, "ezs42"},
		{"origin", 0, 0, 12, "s00000000000"},
		{"origin coarse", 0, 0, 1, "s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.lat, tt.lon, tt.precision)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodePrefixNesting(t *testing.T) {
	fine, err := Encode(35.6895, 139.6917, 9)
	require.NoError(t, err)
	coarse, err := Encode(35.6895, 139.6917, 4)
	require.NoError(t, err)
	assert.Equal(t, coarse, fine[:4])
}

func TestEncodeInvalidInput(t *testing.T) {
	_, err := Encode(91, 0, 9)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = Encode(0, -181, 9)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	_, err = Encode(0, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidPrecision)

	_, err = Encode(0, 0, 13)
	assert.ErrorIs(t, err, ErrInvalidPrecision)

	_, err = Encode(91, 0, 0)
	assert.True(t, errors.Is(err, ErrInvalidPrecision), "precision is checked before coordinates")
}

func TestNeighbors(t *testing.T) {
	cell, err := Encode(57.64911, 10.40744, 9)
	require.NoError(t, err)

	neighbors := Neighbors(cell)
	assert.Len(t, neighbors, 8)

	seen := make(map[string]struct{})
	for _, n := range neighbors {
		assert.Len(t, n, len(cell))
		assert.NotEqual(t, cell, n)
		_, dup := seen[n]
		assert.False(t, dup, "neighbor %q repeated", n)
		seen[n] = struct{}{}
	}
}
