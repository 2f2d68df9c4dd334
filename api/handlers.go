package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"nearby-search-system/cache"
	"nearby-search-system/config"
	"nearby-search-system/database"
	"nearby-search-system/geohash"
	"nearby-search-system/models"
	"nearby-search-system/search"
	"nearby-search-system/store"
)

// CreatePlace handles registering a new place
func CreatePlace(w http.ResponseWriter, r *http.Request) {
	var place models.Place
	err := json.NewDecoder(r.Body).Decode(&place)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	hash, err := geohash.Encode(place.Latitude, place.Longitude, config.Cfg.Search.MaxPrecision)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	place.Geohash = hash

	places := store.NewPlaceStore(database.DB)
	if err := places.Insert(r.Context(), &place); err != nil {
		http.Error(w, "Failed to create place", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(place)
}

// GetPlace handles fetching place details by ID
func GetPlace(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	placeID, err := strconv.ParseInt(vars["place_id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid place ID", http.StatusBadRequest)
		return
	}

	places := store.NewPlaceStore(database.DB)
	place, err := places.GetByID(r.Context(), placeID)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Place not found", http.StatusNotFound)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(place)
}

// NearbyPlaces runs the adaptive geohash search around a query point.
func NearbyPlaces(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("latitude"), 64)
	if err != nil {
		http.Error(w, "Invalid latitude", http.StatusBadRequest)
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("longitude"), 64)
	if err != nil {
		http.Error(w, "Invalid longitude", http.StatusBadRequest)
		return
	}

	searchCfg := config.Cfg.Search
	count := searchCfg.DesiredCount
	if v := r.URL.Query().Get("count"); v != "" {
		count, err = strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid count", http.StatusBadRequest)
			return
		}
	}
	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		offset, err = strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid offset", http.StatusBadRequest)
			return
		}
	}

	req := search.Request{
		Center:       models.Point{Latitude: lat, Longitude: lon},
		DesiredCount: count,
		Offset:       offset,
		MinPrecision: searchCfg.MinPrecision,
		MaxPrecision: searchCfg.MaxPrecision,
		RowLimit:     searchCfg.RowLimitPerQuery,
	}

	// Results for the same cell, count and offset are cached briefly.
	ctx := r.Context()
	cacheKey := ""
	if cell, err := geohash.Encode(lat, lon, searchCfg.MaxPrecision); err == nil {
		cacheKey = fmt.Sprintf("nearby:%s:%d:%d", cell, count, offset)
		if cached, err := cache.RedisClient.Get(ctx, cacheKey).Result(); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	searcher := search.NewSearcher(store.NewPlaceStore(database.DB))
	result, err := searcher.Search(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, geohash.ErrInvalidCoordinate),
			errors.Is(err, geohash.ErrInvalidPrecision),
			errors.Is(err, search.ErrInvalidCount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Search failed", http.StatusInternalServerError)
		}
		return
	}

	body, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	if cacheKey != "" {
		ttl := time.Duration(searchCfg.CacheTTLSeconds) * time.Second
		cache.RedisClient.Set(ctx, cacheKey, body, ttl)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// DistanceHandler returns the geodesic distance in meters between two points.
func DistanceHandler(w http.ResponseWriter, r *http.Request) {
	var points struct {
		From models.Point `json:"from"`
		To   models.Point `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&points); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	response := map[string]float64{
		"distance_meters": search.Distance(points.From, points.To),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
