package entrypoint

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dashkov/book-catalog/internal/config"
	"github.com/dashkov/book-catalog/internal/database"
	"github.com/dashkov/book-catalog/internal/database/books"
	"github.com/dashkov/book-catalog/internal/database/genres"
	"github.com/dashkov/book-catalog/internal/database/reviews"
	http_controllers "github.com/dashkov/book-catalog/internal/http"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM. In-flight requests get the
	// configured timeout to finish.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}

	log.Info().Msg("server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	log.Info().Str("version", version).Msg("starting book catalog")

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	if cfg.Seed.Enabled {
		if err := db.Seed(); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Genres:  genres.NewRepository(db.DB),
		Books:   books.NewRepository(db.DB),
		Reviews: reviews.NewRepository(db.DB),
	})

	Serve(router, cfg)
}
