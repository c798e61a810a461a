package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Statuts du parc. La colonne reste du texte libre : l'application historique
// autorise des statuts personnalisés en plus de ces trois valeurs.
const (
	EquipmentStatusOperational = "operational"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusDown        = "down"
)

const (
	WarrantyValid   = "valid"
	WarrantyExpired = "expired"
)

type Equipment struct {
	ID           uint64       `json:"id"`
	Name         string       `json:"name"`
	Status       string       `json:"status"`
	Warranty     string       `json:"warranty"`
	PurchaseDate null.Time    `json:"purchase_date"`
	Price        null.Float64 `json:"price"`
	DepartmentID null.Int64   `json:"department_id"`
	Category     null.String  `json:"category"`
	Model        null.String  `json:"model"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Renseigné par jointure, pas une colonne.
	Department *Department `json:"department,omitempty" db:"-"`
}
