package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedDemoData remplit la base avec un jeu de données de démonstration :
// départements, types de panne, équipements, pannes et maintenances.
// Idempotent : ne fait rien si des départements existent déjà.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Chargement du jeu de données de démonstration...")

	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		log.Fatalf("❌ Vérification des départements impossible : %v", err)
	}
	if count > 0 {
		log.Println("ℹ️  Données déjà présentes, seed ignoré.")
		return
	}

	if err := seedDepartments(ctx, db); err != nil {
		log.Fatalf("❌ Erreur de seed des départements : %v", err)
	}
	if err := seedPanneTypes(ctx, db); err != nil {
		log.Fatalf("❌ Erreur de seed des types de panne : %v", err)
	}
	if err := seedEquipments(ctx, db); err != nil {
		log.Fatalf("❌ Erreur de seed des équipements : %v", err)
	}
	if err := seedPannes(ctx, db); err != nil {
		log.Fatalf("❌ Erreur de seed des pannes : %v", err)
	}
	if err := seedMaintenances(ctx, db); err != nil {
		log.Fatalf("❌ Erreur de seed des maintenances : %v", err)
	}

	log.Println("✅ Jeu de données de démonstration chargé !")
}
