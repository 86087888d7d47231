package routes

import (
	"hotspot_server/controllers"
	"hotspot_server/services"

	"github.com/gorilla/mux"
)

// RegisterOfferRoutes sets up routes for merchant offers under /api/offers
func RegisterOfferRoutes(r *mux.Router, offerService *services.OfferService) {
	controller := controllers.NewOfferController(offerService)

	offerRouter := r.PathPrefix("/api/offers").Subrouter()

	offerRouter.HandleFunc("", controller.HandleListOffers).Methods("GET")
	offerRouter.HandleFunc("/redeem", controller.HandleRedeem).Methods("POST")
}
