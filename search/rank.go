package search

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"nearby-search-system/models"
)

// Distance returns the geodesic distance in meters between two points.
func Distance(a, b models.Point) float64 {
	return geo.DistanceHaversine(
		orb.Point{a.Longitude, a.Latitude},
		orb.Point{b.Longitude, b.Latitude},
	)
}

// RankByDistance sorts places in place by ascending distance from center.
// The sort is stable so equidistant rows keep their query order. Ranking is
// deliberately separate from the widening loop: recall is the loop's job,
// ordering happens once on the final candidate set.
func RankByDistance(center models.Point, places []models.Place) {
	sort.SliceStable(places, func(i, j int) bool {
		di := Distance(center, models.Point{Latitude: places[i].Latitude, Longitude: places[i].Longitude})
		dj := Distance(center, models.Point{Latitude: places[j].Latitude, Longitude: places[j].Longitude})
		return di < dj
	})
}
