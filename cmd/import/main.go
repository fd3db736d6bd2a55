package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/registroapp/conciliador/pkg/database"
	"github.com/registroapp/conciliador/pkg/duplicates"
	"github.com/registroapp/conciliador/pkg/importer"
	"github.com/registroapp/conciliador/pkg/printer"
	"github.com/registroapp/conciliador/pkg/repo"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: import <movements.xlsx>")
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read file")
	}

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

	ctx := log.Logger.WithContext(context.Background())

	dataRepo := repo.NewPostgres(db)
	detector := duplicates.NewDetector(dataRepo)

	parsed, err := importer.NewExcel().Parse(ctx, data)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse file")
	}

	var keys []string
	for _, movement := range parsed.Movements {
		keys = append(keys, duplicates.MovementKey(movement))
	}

	existing, err := detector.GetDuplicates(ctx, keys)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to check duplicates")
	}

	var saved []*database.Movement
	var skipped []*database.Movement

	for i, movement := range parsed.Movements {
		hashed := detector.HashKey(keys[i])
		if _, ok := existing[hashed]; ok {
			skipped = append(skipped, movement)
			continue
		}

		if _, err = dataRepo.Save(ctx, movement); err != nil {
			log.Fatal().Err(err).Msg("failed to save movement")
		}

		if err = detector.AddDuplicateKey(ctx, keys[i]); err != nil {
			log.Fatal().Err(err).Msg("failed to add duplicate key")
		}

		// within a single file the same row can repeat too
		existing[hashed] = struct{}{}

		saved = append(saved, movement)
	}

	fmt.Println(printer.NewPrinter().ImportSummary(ctx, saved, skipped, parsed.Skipped))
}
