package main

import (
	"database/sql"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"gmao-system/migrations"
	"gmao-system/pkg/config"
)

func main() {
	cfg := config.New()

	db, err := sql.Open("pgx", cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("Ouverture de la base impossible : %v", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Dialecte goose invalide : %v", err)
	}

	if err := goose.Up(db, "."); err != nil {
		log.Fatalf("Échec des migrations : %v", err)
	}
	log.Println("✅ Migrations appliquées")
}
