package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"hotspot_server/reconcile"
	"hotspot_server/routes"
	"hotspot_server/services"
	"hotspot_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func envDuration(name string, unit time.Duration, fallback time.Duration) time.Duration {
	if raw := os.Getenv(name); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return time.Duration(n) * unit
		}
		log.Printf("⚠️ Ignoring invalid %s=%q", name, raw)
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Live reconciled chat state shared by HTTP and socket layers
	hub := reconcile.NewHub()

	// Initialize Services
	presenceService := &services.PresenceService{
		Dynamo:   dynamoService,
		Window:   envDuration("PRESENCE_WINDOW_MINUTES", time.Minute, services.DefaultPresenceWindow),
		Interval: envDuration("PRESENCE_INTERVAL_SECONDS", time.Second, services.DefaultHeartbeatInterval),
	}
	chatService := &services.ChatService{Dynamo: dynamoService, Hub: hub}
	reactionService := &services.ReactionService{Dynamo: dynamoService, Hub: hub}
	offerService := &services.OfferService{Dynamo: dynamoService}
	connectionService := &services.ConnectionService{Dynamo: dynamoService}
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	hotspotService := &services.HotspotService{Dynamo: dynamoService}

	// Socket.IO server carries the broadcast stream into hotspot rooms
	socketServer := socket.NewSocketServer(chatService, presenceService)
	chatService.Broadcast = socket.Broadcaster(socketServer)
	reactionService.Broadcast = socket.Broadcaster(socketServer)

	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket.IO server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Hotspot")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	// Register routes
	routes.RegisterHotspotRoutes(r, hotspotService)
	routes.RegisterChatRoutes(r, chatService, reactionService)
	routes.RegisterPresenceRoutes(r, presenceService)
	routes.RegisterOfferRoutes(r, offerService)
	routes.RegisterConnectionRoutes(r, connectionService)
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterS3Routes(r)

	// Mount the broadcast stream
	r.PathPrefix("/socket.io/").Handler(socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
