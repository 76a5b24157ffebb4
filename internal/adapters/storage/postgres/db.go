package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"time"

	"pet-care-companion/internal/domain/documents"
	"pet-care-companion/internal/domain/events"
	"pet-care-companion/internal/domain/pets"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	ErrNotFound = errors.New("not found")
)

//go:embed schema.sql
var schema string

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para MVP (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate crea las tablas si faltan y siembra los datos de demostración
// cuando la base está vacía.
func Migrate(ctx context.Context, db *sql.DB, now time.Time) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return err
	}

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pets`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	petRepo := NewPetsRepo(db)
	for _, p := range pets.Seed() {
		if err := petRepo.Create(ctx, p); err != nil {
			return err
		}
	}

	eventRepo := NewEventsRepo(db)
	for _, e := range events.Seed(now) {
		if err := eventRepo.Create(ctx, e); err != nil {
			return err
		}
	}

	docRepo := NewDocumentsRepo(db)
	for _, d := range documents.Seed() {
		if err := docRepo.Create(ctx, d); err != nil {
			return err
		}
	}

	return nil
}
