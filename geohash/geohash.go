package geohash

import (
	"errors"
	"fmt"

	"github.com/mmcloughlin/geohash"
)

// MaxPrecision is the longest useful geohash string; beyond 12 characters
// the cells are smaller than float64 coordinate resolution.
const MaxPrecision = 12

var (
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	ErrInvalidPrecision  = errors.New("precision out of range")
)

// Encode returns the geohash of (lat, lon) at the given precision.
func Encode(lat, lon float64, precision int) (string, error) {
	if precision < 1 || precision > MaxPrecision {
		return "", fmt.Errorf("%w: %d", ErrInvalidPrecision, precision)
	}
	if lat < -90 || lat > 90 {
		return "", fmt.Errorf("%w: latitude %f", ErrInvalidCoordinate, lat)
	}
	if lon < -180 || lon > 180 {
		return "", fmt.Errorf("%w: longitude %f", ErrInvalidCoordinate, lon)
	}
	return geohash.EncodeWithPrecision(lat, lon, uint(precision)), nil
}

// Neighbors returns the geohashes of cells adjacent to hash, at the same
// precision. Near the poles adjacent cells can coincide, so the result may
// hold fewer than 8 entries.
func Neighbors(hash string) []string {
	seen := make(map[string]struct{}, 8)
	neighbors := make([]string, 0, 8)
	for _, n := range geohash.Neighbors(hash) {
		if n == hash {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		neighbors = append(neighbors, n)
	}
	return neighbors
}
