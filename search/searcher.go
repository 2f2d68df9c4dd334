package search

import (
	"context"
	"errors"
	"fmt"

	"nearby-search-system/geohash"
	"nearby-search-system/models"
)

// ErrInvalidCount rejects requests asking for fewer than one result.
var ErrInvalidCount = errors.New("desired count must be positive")

// Store is the single database dependency of the searcher: given a set of
// geohash prefixes and a row cap, return the matching places.
type Store interface {
	SelectByPrefixes(ctx context.Context, prefixes []string, limit int) ([]models.Place, error)
}

// Request describes one nearby search. MinPrecision and MaxPrecision bound
// the widening loop; RowLimit caps each database query and should be set
// well above DesiredCount so counting is not skewed by truncation.
type Request struct {
	Center       models.Point
	DesiredCount int
	Offset       int
	MinPrecision int
	MaxPrecision int
	RowLimit     int
}

// Result holds the places found plus how the search went. TargetMet is false
// when the loop bottomed out at MinPrecision before finding DesiredCount
// rows; callers should treat that as a cue to fall back to another method,
// not as an error.
type Result struct {
	Places     []models.Place `json:"places"`
	Precision  int            `json:"precision"`
	Iterations int            `json:"iterations"`
	TargetMet  bool           `json:"target_met"`
}

type Searcher struct {
	store Store
}

func NewSearcher(store Store) *Searcher {
	return &Searcher{store: store}
}

// Search finds up to DesiredCount places near the request center by probing
// geohash prefixes at decreasing precision. It starts at the finest grid and
// widens one step at a time: each iteration queries the center cell plus its
// neighbors, so points just across a cell boundary are still seen. The loop
// runs at most MaxPrecision-MinPrecision+1 iterations.
func (s *Searcher) Search(ctx context.Context, req Request) (*Result, error) {
	if req.DesiredCount < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, req.DesiredCount)
	}
	if req.MinPrecision < 1 || req.MaxPrecision < req.MinPrecision {
		return nil, fmt.Errorf("%w: min %d, max %d", geohash.ErrInvalidPrecision, req.MinPrecision, req.MaxPrecision)
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	limit := req.RowLimit
	if limit < req.DesiredCount {
		limit = 4 * req.DesiredCount
	}

	precision := req.MaxPrecision
	result := &Result{}
	for {
		cell, err := geohash.Encode(req.Center.Latitude, req.Center.Longitude, precision)
		if err != nil {
			return nil, err
		}
		prefixes := append(geohash.Neighbors(cell), cell)

		rows, err := s.store.SelectByPrefixes(ctx, prefixes, limit)
		if err != nil {
			return nil, err
		}

		result.Places = dedupeByID(rows)
		result.Precision = precision
		result.Iterations++

		if len(result.Places) >= req.DesiredCount {
			result.TargetMet = true
			break
		}
		if precision <= req.MinPrecision {
			break
		}
		// Widen. Take a double step while nothing at all has been found;
		// sparse data converges faster and the termination bound is
		// unaffected since precision only ever decreases.
		step := 1
		if len(result.Places) == 0 {
			step = 2
		}
		precision -= step
		if precision < req.MinPrecision {
			precision = req.MinPrecision
		}
	}

	RankByDistance(req.Center, result.Places)
	result.Places = paginate(result.Places, req.Offset, req.DesiredCount)
	return result, nil
}

// dedupeByID drops rows already seen, keyed on the place ID. Overlapping
// prefix matches across the 9 queried cells must not double-count.
func dedupeByID(rows []models.Place) []models.Place {
	seen := make(map[int64]struct{}, len(rows))
	unique := rows[:0:0]
	for _, row := range rows {
		if _, ok := seen[row.ID]; ok {
			continue
		}
		seen[row.ID] = struct{}{}
		unique = append(unique, row)
	}
	return unique
}

func paginate(places []models.Place, offset, count int) []models.Place {
	if offset >= len(places) {
		return nil
	}
	end := offset + count
	if end > len(places) {
		end = len(places)
	}
	return places[offset:end]
}
