package services

import (
	"context"
	"strings"
	"time"

	"gmao-system/internal/entities"
	"gmao-system/pkg/types"
)

// intentRule associe un prédicat de mots-clés à son exécuteur d'agrégation.
// Les règles d'une catégorie sont évaluées strictement dans l'ordre de
// déclaration : la première qui matche est exécutée.
type intentRule struct {
	match func(q string) bool
	run   func(ctx context.Context) (string, error)
}

func containsAll(q string, keywords ...string) bool {
	for _, kw := range keywords {
		if !strings.Contains(q, kw) {
			return false
		}
	}
	return true
}

func containsAny(q string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

func (s *AssistantService) equipmentRules() []intentRule {
	return []intentRule{
		{
			match: func(q string) bool { return containsAll(q, "moins", "équipements") },
			run:   s.answerDepartmentWithFewestEquipments,
		},
		{
			match: func(q string) bool { return containsAll(q, "plus", "équipements") },
			run:   s.answerDepartmentWithMostEquipments,
		},
		{
			match: func(q string) bool { return containsAll(q, "combien", "équipements") },
			run:   s.answerEquipmentCountByDepartment,
		},
		{
			match: func(q string) bool { return containsAny(q, "état", "condition") },
			run:   s.answerEquipmentCountByStatus,
		},
		{
			match: func(q string) bool { return containsAny(q, "maintenance", "réparation") },
			run:   s.answerEquipmentsUnderMaintenance,
		},
		{
			match: func(q string) bool { return containsAny(q, "plus récents", "nouveaux") },
			run:   s.answerRecentEquipments,
		},
		{
			match: func(q string) bool { return containsAny(q, "fin de vie", "obsolète") },
			run:   s.answerEndOfLifeEquipments,
		},
	}
}

func (s *AssistantService) maintenanceRules() []intentRule {
	return []intentRule{
		{
			match: func(q string) bool { return containsAny(q, "actuellement", "en cours") },
			run:   s.answerOngoingMaintenances,
		},
		{
			match: func(q string) bool { return containsAny(q, "préventives", "à venir") },
			run:   s.answerPlannedPreventiveMaintenances,
		},
		{
			match: func(q string) bool { return containsAny(q, "coût", "prix") },
			run:   s.answerMonthlyMaintenanceCost,
		},
		{
			match: func(q string) bool { return containsAny(q, "urgente", "prioritaire") },
			run:   s.answerUrgentMaintenances,
		},
	}
}

func (s *AssistantService) departmentRules() []intentRule {
	return []intentRule{
		{
			match: func(q string) bool { return containsAny(q, "actifs", "occupés") },
			run:   s.answerMostActiveDepartments,
		},
		{
			match: func(q string) bool { return containsAny(q, "répartition", "distribution") },
			run:   s.answerEquipmentCountByDepartment,
		},
	}
}

func (s *AssistantService) incidentRules() []intentRule {
	return []intentRule{
		{
			match: func(q string) bool { return containsAny(q, "récents", "derniers") },
			run:   s.answerRecentPannes,
		},
		{
			match: func(q string) bool { return containsAny(q, "taux", "résolution") },
			run:   s.answerPanneResolutionRate,
		},
		{
			match: func(q string) bool { return containsAny(q, "fréquents", "types") },
			run:   s.answerPanneCountByType,
		},
	}
}

// --- Exécuteurs : équipements ---

func (s *AssistantService) answerDepartmentWithFewestEquipments(ctx context.Context) (string, error) {
	groups, err := s.repo.EquipmentCountByDepartment(ctx)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return noDepartmentAnswer, nil
	}
	best := groups[0]
	for _, g := range groups[1:] {
		if g.Count < best.Count {
			best = g
		}
	}
	return formatExtremeDepartment(false, best), nil
}

func (s *AssistantService) answerDepartmentWithMostEquipments(ctx context.Context) (string, error) {
	groups, err := s.repo.EquipmentCountByDepartment(ctx)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return noDepartmentAnswer, nil
	}
	best := groups[0]
	for _, g := range groups[1:] {
		if g.Count > best.Count {
			best = g
		}
	}
	return formatExtremeDepartment(true, best), nil
}

func (s *AssistantService) answerEquipmentCountByDepartment(ctx context.Context) (string, error) {
	groups, err := s.repo.EquipmentCountByDepartment(ctx)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return noDepartmentAnswer, nil
	}
	return formatGroupCounts("Nombre d'équipements par département :", groups, "équipements"), nil
}

func (s *AssistantService) answerEquipmentCountByStatus(ctx context.Context) (string, error) {
	groups, err := s.repo.EquipmentCountByStatus(ctx)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return "Aucun équipement enregistré.", nil
	}
	return formatGroupCounts("État du parc d'équipements :", groups, ""), nil
}

func (s *AssistantService) answerEquipmentsUnderMaintenance(ctx context.Context) (string, error) {
	rows, err := s.repo.EquipmentsByStatuses(ctx, []string{
		entities.EquipmentStatusDown,
		entities.EquipmentStatusMaintenance,
	})
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "Aucun équipement n'est actuellement en maintenance ou en panne.", nil
	}
	return formatEquipmentStatusList("Équipements en maintenance ou en panne :", rows), nil
}

func (s *AssistantService) answerRecentEquipments(ctx context.Context) (string, error) {
	rows, err := s.repo.RecentEquipments(ctx, recentLimit)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "Aucun équipement enregistré.", nil
	}
	return formatRecentEquipments("Les 5 équipements les plus récents :", rows), nil
}

func (s *AssistantService) answerEndOfLifeEquipments(ctx context.Context) (string, error) {
	rows, err := s.repo.EquipmentsByWarranty(ctx, entities.WarrantyExpired)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "Aucun équipement en fin de vie : toutes les garanties sont valides.", nil
	}
	return formatEquipmentStatusList("Équipements en fin de vie (garantie expirée) :", rows), nil
}

// --- Exécuteurs : maintenances ---

func (s *AssistantService) answerOngoingMaintenances(ctx context.Context) (string, error) {
	rows, err := s.repo.MaintenancesByStatus(ctx, entities.MaintenanceStatusInProgress)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "Aucune maintenance n'est en cours actuellement.", nil
	}
	return formatMaintenanceList("Maintenances en cours :", rows), nil
}

func (s *AssistantService) answerPlannedPreventiveMaintenances(ctx context.Context) (string, error) {
	rows, err := s.repo.MaintenancesByTypeAndStatus(ctx,
		entities.MaintenanceTypePreventive, entities.MaintenanceStatusPlanned)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "Aucune maintenance préventive n'est planifiée.", nil
	}
	return formatMaintenanceList("Maintenances préventives à venir :", rows), nil
}

func (s *AssistantService) answerMonthlyMaintenanceCost(ctx context.Context) (string, error) {
	now := time.Now().In(s.loc)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	total, err := s.repo.MaintenanceCostSince(ctx, monthStart)
	if err != nil {
		return "", err
	}
	return formatMonthlyCost(total), nil
}

func (s *AssistantService) answerUrgentMaintenances(ctx context.Context) (string, error) {
	rows, err := s.repo.MaintenancesByPriority(ctx, entities.MaintenancePriorityHigh)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "Aucune maintenance urgente pour le moment.", nil
	}
	return formatMaintenanceList("Maintenances urgentes (priorité haute) :", rows), nil
}

// --- Exécuteurs : départements ---

func (s *AssistantService) answerMostActiveDepartments(ctx context.Context) (string, error) {
	groups, err := s.repo.TopDepartmentsByPannes(ctx, topDepartmentsLimit)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return "Aucune panne enregistrée pour le moment.", nil
	}
	return formatGroupCounts("Départements les plus actifs (par nombre de pannes) :", groups, "pannes"), nil
}

// --- Exécuteurs : pannes ---

func (s *AssistantService) answerRecentPannes(ctx context.Context) (string, error) {
	rows, err := s.repo.RecentPannes(ctx, recentLimit)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "Aucune panne enregistrée pour le moment.", nil
	}
	return formatPanneList("Les 5 pannes les plus récentes :", rows), nil
}

func (s *AssistantService) answerPanneResolutionRate(ctx context.Context) (string, error) {
	stats, err := s.repo.PanneResolutionStats(ctx)
	if err != nil {
		return "", err
	}
	if stats == nil {
		stats = &types.ResolutionStats{}
	}
	return formatResolutionRate(stats), nil
}

func (s *AssistantService) answerPanneCountByType(ctx context.Context) (string, error) {
	groups, err := s.repo.PanneCountByType(ctx)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return "Aucune panne enregistrée pour le moment.", nil
	}
	return formatGroupCounts("Pannes les plus fréquentes par type :", groups, "pannes"), nil
}
