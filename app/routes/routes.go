package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"snapfeed/app/controllers"
	"snapfeed/app/graph"
	"snapfeed/app/middleware"
	"snapfeed/app/realtime"
	"snapfeed/app/token"
)

// Deps carries everything the router wires together.
type Deps struct {
	Auth     *controllers.AuthController
	Feed     *controllers.FeedController
	Images   *controllers.ImageController
	Graph    *graph.Handler
	Hub      *realtime.Hub
	Tokens   *token.Service
	ImageDir string
	Log      *logrus.Logger
}

// SetupRoutes defines the application's routes and returns the root handler.
// The auth gate runs globally and only annotates; no route is rejected here.
// CORS wraps the router from outside so preflight requests are answered even
// for methods mux would otherwise reject.
func SetupRoutes(d Deps) http.Handler {
	router := mux.NewRouter()

	router.Use(middleware.Logger(d.Log))
	router.Use(middleware.Recoverer(d.Log))
	router.Use(middleware.Authenticate(d.Tokens))

	// Serve stored images statically
	router.PathPrefix("/images/").Handler(
		http.StripPrefix("/images/", http.FileServer(http.Dir(d.ImageDir))))

	// Auth endpoints
	auth := router.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", d.Auth.Signup).Methods("PUT")
	auth.HandleFunc("/login", d.Auth.Login).Methods("POST")

	// Feed endpoints
	feed := router.PathPrefix("/feed").Subrouter()
	feed.HandleFunc("/posts", d.Feed.GetPosts).Methods("GET")
	feed.HandleFunc("/post", d.Feed.CreatePost).Methods("POST")
	feed.HandleFunc("/post/{postId}", d.Feed.GetPost).Methods("GET")
	feed.HandleFunc("/post/{postId}", d.Feed.UpdatePost).Methods("PUT")
	feed.HandleFunc("/post/{postId}", d.Feed.DeletePost).Methods("DELETE")

	// Image upload used by the GraphQL flow
	router.HandleFunc("/post-image", d.Images.Upload).Methods("PUT")

	// GraphQL endpoint
	router.Handle("/graphql", d.Graph).Methods("GET", "POST")

	// Realtime change feed
	router.HandleFunc("/ws", realtime.Handler(d.Hub, d.Log)).Methods("GET")

	return middleware.CORS(router)
}
