package main

import (
	"context"
	"fmt"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"log"
	"mixtape/cache"
	"mixtape/controllers"
	"mixtape/controllers/account"
	"mixtape/controllers/library"
	"mixtape/credentials"
	"mixtape/logger"
	"mixtape/middleware"
	"mixtape/services/spotify"
	"os"
	"strconv"
	"time"
)

func init() {
	env := os.Getenv("ENV")
	if env == "" {
		log.Println("==⚠️ WARNING: env variable not set. Using dev ⚠️==")
		env = "dev"
	}
	err := godotenv.Load(".env." + env)
	if err != nil {
		log.Println("Error reading the env file")
		log.Println(err)
	}
}

func main() {
	engine := html.New("layouts", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})

	clientID := os.Getenv("CLIENT_ID")
	clientSecret := os.Getenv("CLIENT_SECRET")
	redirectURI := os.Getenv("REDIRECT_URI")
	if clientID == "" || clientSecret == "" || redirectURI == "" {
		log.Println("CLIENT_ID, CLIENT_SECRET and REDIRECT_URI must all be set. Cannot serve authenticated routes without them.")
		panic("missing spotify app configuration")
	}

	zapLogger := logger.NewLogger()
	if os.Getenv("SENTRY_DSN") != "" {
		zapLogger = logger.NewZapSentryLogger(nil)
	}

	sessions := session.New(session.Config{
		Expiration:   24 * time.Hour,
		CookieSecure: os.Getenv("ENV") == "production",
	})

	spotifyService := spotify.NewService(clientID, clientSecret, redirectURI, zapLogger)
	if raw := os.Getenv("UPSTREAM_TIMEOUT"); raw != "" {
		seconds, convErr := strconv.Atoi(raw)
		if convErr != nil {
			log.Printf("Invalid UPSTREAM_TIMEOUT %q, keeping the default", raw)
		} else {
			spotifyService.Timeout = time.Duration(seconds) * time.Second
		}
	}

	// the credential store is session-backed unless the deployment opts
	// into redis, for multi-process setups behind a shared store
	var credentialStore credentials.Store = credentials.NewSessionStore(sessions)
	if os.Getenv("CREDENTIAL_STORE") == "redis" {
		redisOpts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
		if err != nil {
			log.Printf("Error parsing redis url")
			panic(err)
		}

		redisClient := redis.NewClient(redisOpts)
		if redisClient.Ping(context.Background()).Err() != nil {
			log.Printf("\n[main] [error] - Could not connect to redis. Are you sure redis is configured correctly?")
			panic("Could not connect to redis. Please check your redis configuration.")
		}

		encryptionSecret := os.Getenv("ENCRYPTION_SECRET")
		if len(encryptionSecret) != 32 {
			panic("ENCRYPTION_SECRET must be exactly 32 bytes when CREDENTIAL_STORE is redis")
		}

		credentialStore = credentials.NewRedisStore(redisClient, sessions, []byte(encryptionSecret))
		log.Printf("\n[main] [info] - Credentials are stored in redis")
	}

	userCache := cache.NewUserCache()

	authMiddleware := middleware.NewAuthMiddleware(credentialStore, spotifyService, sessions)
	accountController := account.NewAccountController(credentialStore, spotifyService, sessions, userCache, zapLogger)
	libraryController := library.NewLibraryController(userCache, spotifyService, sessions, zapLogger)

	app.Use(cors.New(), middleware.LogIncomingRequest)

	app.Get("/heartbeat", controllers.Heartbeat)
	app.Get("/", authMiddleware.RequireAuth, accountController.Home)
	app.Get("/callback", accountController.Callback)
	app.Get("/get_playlists", authMiddleware.RequireAuth, libraryController.GetPlaylists)
	app.Get("/user/:userId", libraryController.UserPlaylists)
	app.Get("/account", accountController.Account)
	app.Get("/logout", accountController.Logout)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server is up and running on port: %s", port)
	err := app.Listen(fmt.Sprintf(":%s", port))
	if err != nil {
		log.Printf("Error starting server: %v\n", err)
		os.Exit(1)
	}
}
