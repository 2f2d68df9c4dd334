package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func RegisterRoutes() http.Handler {
	router := mux.NewRouter()

	// Place endpoints
	router.HandleFunc("/places", CreatePlace).Methods("POST")
	router.HandleFunc("/places/nearby", NearbyPlaces).Methods("GET")
	router.HandleFunc("/places/{place_id}", GetPlace).Methods("GET")

	// Distance endpoint
	router.HandleFunc("/distance", DistanceHandler).Methods("POST")

	// Add CORS support
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return cors(router)
}
