package types

import (
	"time"

	"github.com/aarondl/null/v8"
)

// GroupCount est le résultat générique des agrégations "group by nom + count".
type GroupCount struct {
	GroupName string `json:"group_name" db:"group_name"`
	Count     int64  `json:"count" db:"count"`
}

type EquipmentRow struct {
	Name           string       `json:"name" db:"name"`
	Status         string       `json:"status" db:"status"`
	Warranty       string       `json:"warranty" db:"warranty"`
	PurchaseDate   null.Time    `json:"purchase_date" db:"purchase_date"`
	Price          null.Float64 `json:"price" db:"price"`
	DepartmentName string       `json:"department_name" db:"department_name"`
}

type MaintenanceRow struct {
	Description   string       `json:"description" db:"description"`
	Status        string       `json:"status" db:"status"`
	Type          string       `json:"type" db:"type"`
	Priority      string       `json:"priority" db:"priority"`
	ScheduledDate null.Time    `json:"scheduled_date" db:"scheduled_date"`
	Cost          null.Float64 `json:"cost" db:"cost"`
}

type PanneRow struct {
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	TypeName    string    `json:"type_name" db:"type_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type ResolutionStats struct {
	Total    int64 `json:"total" db:"total"`
	Resolved int64 `json:"resolved" db:"resolved"`
}

// DepartmentParcStat alimente le rapport d'inventaire du parc.
type DepartmentParcStat struct {
	Name             string `json:"name" db:"name"`
	TotalCount       int64  `json:"total_count" db:"total_count"`
	OperationalCount int64  `json:"operational_count" db:"operational_count"`
	MaintenanceCount int64  `json:"maintenance_count" db:"maintenance_count"`
	DownCount        int64  `json:"down_count" db:"down_count"`
}
