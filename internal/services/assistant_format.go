package services

import (
	"fmt"
	"strings"

	"github.com/aarondl/null/v8"

	"gmao-system/pkg/types"
)

// Format de date court, convention française.
const assistantDateFormat = "02/01/2006"

const unknownDateLabel = "date inconnue"

func bulletList(lines []string) string {
	for i := range lines {
		lines[i] = "• " + lines[i]
	}
	return strings.Join(lines, "\n")
}

func formatEuro(v float64) string {
	return fmt.Sprintf("%.2f€", v)
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func formatNullDate(t null.Time) string {
	if !t.Valid {
		return unknownDateLabel
	}
	return t.Time.Format(assistantDateFormat)
}

// formatGroupCounts rend une agrégation "nom : n unité" en liste à puces.
// L'unité peut être vide (comptage par état, par exemple).
func formatGroupCounts(header string, groups []types.GroupCount, unit string) string {
	lines := make([]string, 0, len(groups))
	for _, g := range groups {
		if unit != "" {
			lines = append(lines, fmt.Sprintf("%s : %d %s", g.GroupName, g.Count, unit))
		} else {
			lines = append(lines, fmt.Sprintf("%s : %d", g.GroupName, g.Count))
		}
	}
	return header + "\n" + bulletList(lines)
}

func formatEquipmentStatusList(header string, rows []types.EquipmentRow) string {
	lines := make([]string, 0, len(rows))
	for _, e := range rows {
		lines = append(lines, fmt.Sprintf("%s (%s) : %s", e.Name, e.Status, e.DepartmentName))
	}
	return header + "\n" + bulletList(lines)
}

func formatRecentEquipments(header string, rows []types.EquipmentRow) string {
	lines := make([]string, 0, len(rows))
	for _, e := range rows {
		lines = append(lines, fmt.Sprintf("%s : acheté le %s, %s, département %s",
			e.Name, formatNullDate(e.PurchaseDate), formatEuro(e.Price.Float64), e.DepartmentName))
	}
	return header + "\n" + bulletList(lines)
}

func formatMaintenanceList(header string, rows []types.MaintenanceRow) string {
	lines := make([]string, 0, len(rows))
	for _, m := range rows {
		lines = append(lines, fmt.Sprintf("%s (priorité %s) : prévue le %s",
			m.Description, m.Priority, formatNullDate(m.ScheduledDate)))
	}
	return header + "\n" + bulletList(lines)
}

func formatPanneList(header string, rows []types.PanneRow) string {
	lines := make([]string, 0, len(rows))
	for _, p := range rows {
		lines = append(lines, fmt.Sprintf("%s (%s) : déclarée le %s, statut %s",
			p.Description, p.TypeName, p.CreatedAt.Format(assistantDateFormat), p.Status))
	}
	return header + "\n" + bulletList(lines)
}

func formatExtremeDepartment(most bool, g types.GroupCount) string {
	qualifier := "moins"
	if most {
		qualifier = "plus"
	}
	return fmt.Sprintf("Le département avec le %s d'équipements est %s avec %d équipements.",
		qualifier, g.GroupName, g.Count)
}

func formatResolutionRate(stats *types.ResolutionStats) string {
	rate := 0.0
	if stats.Total > 0 {
		rate = float64(stats.Resolved) / float64(stats.Total) * 100
	}
	return fmt.Sprintf("Le taux de résolution des pannes est de %s (%d résolues sur %d).",
		formatPercent(rate), stats.Resolved, stats.Total)
}

func formatMonthlyCost(total float64) string {
	return fmt.Sprintf("Le coût total des maintenances depuis le début du mois est de %s.", formatEuro(total))
}
