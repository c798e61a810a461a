package main

import (
	"gmao-system/pkg/config"
	"gmao-system/pkg/database/postgresql"
	"gmao-system/seeders"
)

func main() {
	cfg := config.New()
	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	seeders.SeedDemoData(db)
}
