package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"snapfeed/app/controllers"
	"snapfeed/app/graph"
	"snapfeed/app/realtime"
	"snapfeed/app/repositories"
	"snapfeed/app/routes"
	"snapfeed/app/services"
	"snapfeed/app/storage"
	"snapfeed/app/token"
	"snapfeed/config"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("snapfeed version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: snapfeed <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the feed server (configured through the environment).
`
	fmt.Println(helpText)
}

// serve wires the full pipeline together and runs the HTTP server.
func serve() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	db, err := repositories.Open(cfg.Badger.Path)
	if err != nil {
		log.Fatalf("Failed to open document store: %v", err)
	}
	defer db.Close()

	images, err := buildImageStore(cfg, log)
	if err != nil {
		log.Fatalf("Failed to set up image storage: %v", err)
	}

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	tokens := token.NewService(cfg.JWT.Secret)
	hub := realtime.NewHub()

	authService := services.NewAuthService(userRepo, tokens, log)
	feedService := services.NewFeedService(postRepo, userRepo, images, hub, log)

	resolver := graph.NewResolver(authService, feedService)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	router := routes.SetupRoutes(routes.Deps{
		Auth:     controllers.NewAuthController(authService, log),
		Feed:     controllers.NewFeedController(feedService, images, log),
		Images:   controllers.NewImageController(images, log),
		Graph:    graph.NewHandler(schema, log),
		Hub:      hub,
		Tokens:   tokens,
		ImageDir: cfg.Storage.ImageDir,
		Log:      log,
	})

	addr := ":" + cfg.Server.Port
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	log.Infof("Starting feed server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}

func buildImageStore(cfg *config.Config, log *logrus.Logger) (storage.ImageStore, error) {
	switch cfg.Storage.Backend {
	case "minio":
		client, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, err
		}
		return storage.NewMinioStore(context.Background(), client, cfg.Storage.Bucket, log)
	default:
		return storage.NewDiskStore(cfg.Storage.ImageDir, log)
	}
}
