package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	database "github.com/thinkful-ei20/noteful-app-v3-cam/config"
	controllers "github.com/thinkful-ei20/noteful-app-v3-cam/controllers"
	middleware "github.com/thinkful-ei20/noteful-app-v3-cam/middlewares"
	routes "github.com/thinkful-ei20/noteful-app-v3-cam/routes"
	"github.com/thinkful-ei20/noteful-app-v3-cam/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	database.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("disconnecting from MongoDB")
		}
	}()

	if err := database.EnsureIndexes(ctx, client); err != nil {
		log.Fatal().Err(err).Msg("creating indexes")
	}

	noteController := controllers.NewNoteController(store.NewNoteStore(database.OpenCollection(client, "notes")))
	folderController := controllers.NewFolderController(store.NewFolderStore(database.OpenCollection(client, "folders")))
	tagController := controllers.NewTagController(store.NewTagStore(database.OpenCollection(client, "tags")))

	router := mux.NewRouter()
	router.Use(middleware.RequestLogger)

	routes.NoteRoutes(router, noteController)
	routes.FolderRoutes(router, folderController)
	routes.TagRoutes(router, tagController)

	server := &http.Server{Addr: ":" + database.Port(), Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutting down server")
		}
	}()

	log.Info().Str("port", database.Port()).Msg("server listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server error")
	}
}
