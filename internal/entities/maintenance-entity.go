package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Littéraux hérités de l'application d'origine : statut, type et priorité
// des maintenances sont des chaînes libres comparées telles quelles.
const (
	MaintenanceStatusInProgress = "En cours"
	MaintenanceStatusPlanned    = "Planifiée"
	MaintenanceTypePreventive   = "Préventive"
	MaintenancePriorityHigh     = "Haute"
)

type Maintenance struct {
	ID            uint64       `json:"id"`
	Description   string       `json:"description"`
	Status        string       `json:"status"`
	Type          string       `json:"type"`
	Priority      string       `json:"priority"`
	ScheduledDate null.Time    `json:"scheduled_date"`
	Cost          null.Float64 `json:"cost"`
	StartDate     null.Time    `json:"start_date"`
	EquipmentID   null.Int64   `json:"equipment_id"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	Equipment *Equipment `json:"equipment,omitempty" db:"-"`
}
