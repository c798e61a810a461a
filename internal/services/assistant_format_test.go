package services

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"gmao-system/pkg/types"
)

func TestBulletList(t *testing.T) {
	result := bulletList([]string{"ligne 1", "ligne 2"})
	assert.Equal(t, "• ligne 1\n• ligne 2", result)
}

func TestFormatEuro(t *testing.T) {
	assert.Equal(t, "1234.50€", formatEuro(1234.5))
	assert.Equal(t, "0.00€", formatEuro(0))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "40.0%", formatPercent(40))
	assert.Equal(t, "33.3%", formatPercent(100.0/3))
}

func TestFormatNullDate(t *testing.T) {
	assert.Equal(t, unknownDateLabel, formatNullDate(null.Time{}))

	d := null.TimeFrom(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "02/01/2026", formatNullDate(d))
}

func TestFormatExtremeDepartment(t *testing.T) {
	g := types.GroupCount{GroupName: "B", Count: 5}
	assert.Equal(t, "Le département avec le plus d'équipements est B avec 5 équipements.", formatExtremeDepartment(true, g))
	assert.Equal(t, "Le département avec le moins d'équipements est B avec 5 équipements.", formatExtremeDepartment(false, g))
}

func TestFormatResolutionRate(t *testing.T) {
	result := formatResolutionRate(&types.ResolutionStats{Total: 10, Resolved: 4})
	assert.Contains(t, result, "40.0%")
	assert.Contains(t, result, "4 résolues sur 10")

	empty := formatResolutionRate(&types.ResolutionStats{})
	assert.Contains(t, empty, "0.0%")
}

func TestFormatGroupCounts(t *testing.T) {
	groups := []types.GroupCount{
		{GroupName: "Cardiologie", Count: 3},
		{GroupName: "Urgences", Count: 0},
	}

	withUnit := formatGroupCounts("Répartition :", groups, "équipements")
	assert.Equal(t, "Répartition :\n• Cardiologie : 3 équipements\n• Urgences : 0 équipements", withUnit)

	withoutUnit := formatGroupCounts("États :", groups, "")
	assert.Contains(t, withoutUnit, "• Cardiologie : 3")
}

func TestFormatRecentEquipments(t *testing.T) {
	rows := []types.EquipmentRow{
		{
			Name:           "Échographe",
			Status:         "operational",
			PurchaseDate:   null.TimeFrom(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
			Price:          null.Float64From(32000),
			DepartmentName: "Cardiologie",
		},
	}
	result := formatRecentEquipments("Récents :", rows)
	assert.Contains(t, result, "• Échographe : acheté le 15/03/2024, 32000.00€, département Cardiologie")
}

func TestContainsHelpers(t *testing.T) {
	assert.True(t, containsAll("le moins d'équipements", "moins", "équipements"))
	assert.False(t, containsAll("le moins de matériel", "moins", "équipements"))
	assert.True(t, containsAny("état du parc", "état", "condition"))
	assert.False(t, containsAny("bonjour", "état", "condition"))
}
