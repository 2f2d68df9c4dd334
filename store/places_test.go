package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixUpperBound(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"u4pruydqq", "u4pruydqr"},
		{"9", "b"},
		{"s0000", "s0001"},
		{"uz", "v"},
		{"zz", ""},
		{"z", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, prefixUpperBound(tt.prefix), "prefix %q", tt.prefix)
	}
}

func TestBuildPrefixQuery(t *testing.T) {
	query, args := buildPrefixQuery([]string{"u4"}, 100)
	assert.Equal(t,
		`SELECT id, name, latitude, longitude, geohash FROM places WHERE (geohash >= $1 AND geohash < $2) LIMIT $3`,
		query)
	assert.Equal(t, []interface{}{"u4", "u5", 100}, args)
}

func TestBuildPrefixQueryOpenEnded(t *testing.T) {
	query, args := buildPrefixQuery([]string{"u4", "zz"}, 50)
	assert.Equal(t,
		`SELECT id, name, latitude, longitude, geohash FROM places WHERE (geohash >= $1 AND geohash < $2) OR (geohash >= $3) LIMIT $4`,
		query)
	assert.Equal(t, []interface{}{"u4", "u5", "zz", 50}, args)
}
