package routes

import (
	"hotspot_server/controllers"
	"hotspot_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for hotspot chat under /api/chat
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, reactionService *services.ReactionService) {
	controller := controllers.NewChatController(chatService)
	reactionController := controllers.NewReactionController(reactionService)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()

	chatRouter.HandleFunc("/message", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("/messages/live", controller.HandleGetLiveMessages).Methods("GET")
	chatRouter.HandleFunc("/messages/moderate", controller.HandleModerateMessage).Methods("PATCH")
	chatRouter.HandleFunc("/messages/delete", controller.HandleDeleteMessage).Methods("POST")
	chatRouter.HandleFunc("/messages/react", reactionController.HandleToggleReaction).Methods("PATCH")
}
