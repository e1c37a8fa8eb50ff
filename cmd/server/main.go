package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-wishlist/internal/config"
	"github.com/iliyamo/movie-wishlist/internal/handler"
	"github.com/iliyamo/movie-wishlist/internal/middleware"
	"github.com/iliyamo/movie-wishlist/internal/queue"
	"github.com/iliyamo/movie-wishlist/internal/repository"
	"github.com/iliyamo/movie-wishlist/internal/router"
	queue_publisher "github.com/iliyamo/movie-wishlist/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	// One DynamoDB client for the whole process, shared by both repos.
	ddb, err := config.NewDynamoClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("dynamodb client: %v", err)
	}
	movies := repository.NewMovieRepo(ddb, cfg.MoviesTable, cfg.InterestsTable)
	interests := repository.NewInterestRepo(ddb, cfg.InterestsTable)
	h := handler.NewMovieHandler(movies, interests, queue_publisher.PublishMovieEvent)

	e := echo.New()

	// Rate limiting degrades to a pass-through when redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterMovies(e, h, cfg.JWTSecret)

	// Activity log consumer runs for the lifetime of the process and keeps
	// reconnecting on its own.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
