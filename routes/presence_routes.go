package routes

import (
	"hotspot_server/controllers"
	"hotspot_server/services"

	"github.com/gorilla/mux"
)

// RegisterPresenceRoutes sets up routes for presence under /api/presence
func RegisterPresenceRoutes(r *mux.Router, presenceService *services.PresenceService) {
	controller := controllers.NewPresenceController(presenceService)

	presenceRouter := r.PathPrefix("/api/presence").Subrouter()

	presenceRouter.HandleFunc("/heartbeat", controller.HandleHeartbeat).Methods("POST")
	presenceRouter.HandleFunc("/leave", controller.HandleLeave).Methods("POST")
	presenceRouter.HandleFunc("/active", controller.HandleListActive).Methods("GET")
	presenceRouter.HandleFunc("/active/count", controller.HandleActiveCount).Methods("GET")
}
