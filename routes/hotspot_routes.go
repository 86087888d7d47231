package routes

import (
	"hotspot_server/controllers"
	"hotspot_server/services"

	"github.com/gorilla/mux"
)

// RegisterHotspotRoutes sets up routes for hotspots under /api/hotspots
func RegisterHotspotRoutes(r *mux.Router, hotspotService *services.HotspotService) {
	controller := controllers.NewHotspotController(hotspotService)

	hotspotRouter := r.PathPrefix("/api/hotspots").Subrouter()

	hotspotRouter.HandleFunc("", controller.HandleCreateHotspot).Methods("POST")
	hotspotRouter.HandleFunc("", controller.HandleListHotspots).Methods("GET")
	hotspotRouter.HandleFunc("/{hotspotId}", controller.HandleGetHotspot).Methods("GET")
}
