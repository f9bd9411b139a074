package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"journeymap/config"
	"journeymap/handler"
	"journeymap/middleware"
	"journeymap/repository"
	"journeymap/services"
	"journeymap/usecase"
	"journeymap/utils"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Println("No .env file found, using environment as-is")
	}
	utils.InitValidator()
}

// newStore selects the persistence backend: Mongo when a URI is configured,
// otherwise the single-file local store.
func newStore(cfg config.AppConfig) (repository.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendMongo:
		db := cfg.Database
		clientOptions := options.Client().
			ApplyURI(db.URI).
			SetMaxPoolSize(db.MaxPoolSize).
			SetMinPoolSize(db.MinPoolSize).
			SetMaxConnIdleTime(db.MaxConnIdleTime).
			SetRetryWrites(db.RetryWrites)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, clientOptions)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
		}
		if err := repository.SetupIndexes(client.Database(db.DatabaseName)); err != nil {
			log.Printf("Warning: index setup failed: %v", err)
		}
		return repository.NewMongoStore(client, db.DatabaseName), nil

	case config.BackendLocal:
		return repository.NewLocalStore(cfg.DataFile), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func setupRouter(cfg config.AppConfig, journal *usecase.JournalService, geocoder *services.GeocodingService) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RecoveryMiddleware())

	router.GET("/health", func(c *gin.Context) {
		handler.HealthHandler(c, journal)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		destinations := api.Group("/destinations")
		{
			destinations.GET("", func(c *gin.Context) {
				handler.GetDestinationsHandler(c, journal)
			})
			destinations.POST("", func(c *gin.Context) {
				handler.CreateDestinationHandler(c, journal)
			})
			destinations.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteDestinationHandler(c, journal)
			})

			destinations.POST("/:id/notes", func(c *gin.Context) {
				handler.CreateNoteHandler(c, journal)
			})
			destinations.DELETE("/:id/notes/:noteId", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, journal)
			})
		}

		api.GET("/stats", func(c *gin.Context) {
			handler.GetStatsHandler(c, journal)
		})
		api.GET("/geocode/reverse", func(c *gin.Context) {
			handler.ReverseGeocodeHandler(c, geocoder)
		})

		mapGroup := api.Group("/map")
		{
			mapGroup.GET("/features", func(c *gin.Context) {
				handler.GetMapFeaturesHandler(c, journal)
			})
			mapGroup.GET("/config", func(c *gin.Context) {
				handler.GetMapConfigHandler(c, cfg)
			})
		}
	}

	return router
}

func main() {
	cfg := config.Load()

	store, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s store: %v", cfg.StorageBackend, err)
	}
	log.Printf("Using %s storage backend", store.Name())

	journal := usecase.NewJournalService(store)

	// Populate the cache before serving; a failed load leaves it empty.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := journal.LoadAll(ctx); err != nil {
		log.Printf("Starting with an empty destination list: %v", err)
	}
	cancel()

	geocoder := services.NewGeocodingService(cfg.NominatimURL, cfg.RedisURL, cfg.GeocodeCacheTTL)

	router := setupRouter(cfg, journal, geocoder)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
