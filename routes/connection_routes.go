package routes

import (
	"hotspot_server/controllers"
	"hotspot_server/services"

	"github.com/gorilla/mux"
)

// RegisterConnectionRoutes sets up routes for connections and direct
// messages under /api/connections
func RegisterConnectionRoutes(r *mux.Router, connectionService *services.ConnectionService) {
	controller := controllers.NewConnectionController(connectionService)

	connectionRouter := r.PathPrefix("/api/connections").Subrouter()

	connectionRouter.HandleFunc("", controller.HandleCreateConnection).Methods("POST")
	connectionRouter.HandleFunc("/messages", controller.HandleSendDirectMessage).Methods("POST")
	connectionRouter.HandleFunc("/messages", controller.HandleGetDirectMessages).Methods("GET")
	connectionRouter.HandleFunc("/messages/mark-as-read", controller.HandleMarkMessagesAsRead).Methods("POST")
}
