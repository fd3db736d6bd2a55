package main

import (
	"net/http"
	"os"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/registroapp/conciliador/pkg/reconcile"
	"github.com/registroapp/conciliador/pkg/repo"
)

func main() {
	db, err := gorm.Open(postgres.Open(os.Getenv("POSTGRES_CONNECTION_STRING")), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get postgres")
	}

	m := gormigrate.New(db, &gormigrate.Options{
		TableName:                 "gorm_migrations",
		IDColumnName:              "id",
		IDColumnSize:              255,
		UseTransaction:            false,
		ValidateUnknownMigrations: false,
	}, repo.GetMigrations())

	log.Info().Msg("[Db] start migrations")

	if err = m.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	dataRepo := repo.NewPostgres(db)
	reconcileSvc := reconcile.NewService(dataRepo, dataRepo)

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	r := mux.NewRouter()

	handle := NewHandler(reconcileSvc, logger)
	handle.Register(r)

	listenAddr := ":8080"
	if val, ok := os.LookupEnv("PORT"); ok {
		listenAddr = ":" + val
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         listenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", listenAddr).Msg("starting server")

	panic(srv.ListenAndServe())
}
