package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"nearby-search-system/models"
)

// base32 alphabet used by geohash strings, in sort order.
const geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// DataSourceError wraps any database failure so callers can tell
// infrastructure trouble apart from bad input.
type DataSourceError struct {
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source error: %v", e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

type PlaceStore struct {
	db *sql.DB
}

func NewPlaceStore(db *sql.DB) *PlaceStore {
	return &PlaceStore{db: db}
}

// SelectByPrefixes returns places whose geohash starts with any of the given
// prefixes, capped at limit rows. Each prefix becomes a half-open range
// predicate over the sorted geohash column, which the btree index can scan.
func (s *PlaceStore) SelectByPrefixes(ctx context.Context, prefixes []string, limit int) ([]models.Place, error) {
	if len(prefixes) == 0 {
		return nil, nil
	}

	query, args := buildPrefixQuery(prefixes, limit)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &DataSourceError{Err: err}
	}
	defer rows.Close()

	var places []models.Place
	for rows.Next() {
		var p models.Place
		if err := rows.Scan(&p.ID, &p.Name, &p.Latitude, &p.Longitude, &p.Geohash); err != nil {
			return nil, &DataSourceError{Err: err}
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &DataSourceError{Err: err}
	}
	return places, nil
}

// GetByID fetches a single place. Returns sql.ErrNoRows when absent.
func (s *PlaceStore) GetByID(ctx context.Context, id int64) (*models.Place, error) {
	var p models.Place
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, latitude, longitude, geohash FROM places WHERE id=$1`, id,
	).Scan(&p.ID, &p.Name, &p.Latitude, &p.Longitude, &p.Geohash)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, &DataSourceError{Err: err}
	}
	return &p, nil
}

// Insert stores a new place and fills in its generated ID.
func (s *PlaceStore) Insert(ctx context.Context, p *models.Place) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO places (name, latitude, longitude, geohash) VALUES ($1, $2, $3, $4) RETURNING id`,
		p.Name, p.Latitude, p.Longitude, p.Geohash,
	).Scan(&p.ID)
	if err != nil {
		return &DataSourceError{Err: err}
	}
	return nil
}

// buildPrefixQuery assembles the OR-joined range predicates for a prefix
// search. An all-'z' prefix has no upper bound and degenerates to a bare >=.
func buildPrefixQuery(prefixes []string, limit int) (string, []interface{}) {
	clauses := make([]string, 0, len(prefixes))
	args := make([]interface{}, 0, 2*len(prefixes)+1)

	for _, prefix := range prefixes {
		upper := prefixUpperBound(prefix)
		if upper == "" {
			args = append(args, prefix)
			clauses = append(clauses, fmt.Sprintf("(geohash >= $%d)", len(args)))
			continue
		}
		args = append(args, prefix, upper)
		clauses = append(clauses, fmt.Sprintf("(geohash >= $%d AND geohash < $%d)", len(args)-1, len(args)))
	}

	args = append(args, limit)
	query := fmt.Sprintf(
		`SELECT id, name, latitude, longitude, geohash FROM places WHERE %s LIMIT $%d`,
		strings.Join(clauses, " OR "), len(args),
	)
	return query, args
}

// prefixUpperBound returns the smallest geohash string greater than every
// string starting with prefix, or "" when no such bound exists.
func prefixUpperBound(prefix string) string {
	b := []byte(prefix)
	for i := len(b) - 1; i >= 0; i-- {
		idx := strings.IndexByte(geohashAlphabet, b[i])
		if idx >= 0 && idx < len(geohashAlphabet)-1 {
			b[i] = geohashAlphabet[idx+1]
			return string(b[:i+1])
		}
	}
	return ""
}
