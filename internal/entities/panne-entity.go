package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Seul ce littéral compte pour le taux de résolution ; tout autre statut
// est considéré comme non résolu.
const PanneStatusResolved = "Résolue"

type PanneType struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type Panne struct {
	ID           uint64     `json:"id"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	TypeID       null.Int64 `json:"type_id"`
	DepartmentID null.Int64 `json:"department_id"`
	CreatedAt    time.Time  `json:"created_at"`

	Type       *PanneType  `json:"type,omitempty" db:"-"`
	Department *Department `json:"department,omitempty" db:"-"`
}
