package postgresql

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectDB(dsn string) *pgxpool.Pool {
	dbpool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("Erreur de création du pool de connexions : %v", err)
	}

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Impossible de joindre PostgreSQL : %v", err)
	}

	log.Println("✅ Connecté à PostgreSQL")
	return dbpool
}
