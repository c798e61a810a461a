package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gmao-system/pkg/types"
)

// fakeAnalyticsRepo simule le Domain Store pour tester le moteur sans base.
type fakeAnalyticsRepo struct {
	equipmentByDept      []types.GroupCount
	equipmentByStatus    []types.GroupCount
	equipmentsByStatuses []types.EquipmentRow
	recentEquipments     []types.EquipmentRow
	warrantyEquipments   []types.EquipmentRow
	maintenances         []types.MaintenanceRow
	maintenanceCost      float64
	topDepartments       []types.GroupCount
	panneByType          []types.GroupCount
	recentPannes         []types.PanneRow
	resolutionStats      *types.ResolutionStats

	costSince      time.Time
	requestedLimit uint64

	failWith error
	doPanic  bool
}

func (f *fakeAnalyticsRepo) EquipmentCountByDepartment(ctx context.Context) ([]types.GroupCount, error) {
	if f.doPanic {
		panic("panne simulée du store")
	}
	return f.equipmentByDept, f.failWith
}

func (f *fakeAnalyticsRepo) EquipmentCountByStatus(ctx context.Context) ([]types.GroupCount, error) {
	return f.equipmentByStatus, f.failWith
}

func (f *fakeAnalyticsRepo) EquipmentsByStatuses(ctx context.Context, statuses []string) ([]types.EquipmentRow, error) {
	return f.equipmentsByStatuses, f.failWith
}

func (f *fakeAnalyticsRepo) RecentEquipments(ctx context.Context, limit uint64) ([]types.EquipmentRow, error) {
	f.requestedLimit = limit
	return f.recentEquipments, f.failWith
}

func (f *fakeAnalyticsRepo) EquipmentsByWarranty(ctx context.Context, warranty string) ([]types.EquipmentRow, error) {
	return f.warrantyEquipments, f.failWith
}

func (f *fakeAnalyticsRepo) MaintenancesByStatus(ctx context.Context, status string) ([]types.MaintenanceRow, error) {
	return f.maintenances, f.failWith
}

func (f *fakeAnalyticsRepo) MaintenancesByTypeAndStatus(ctx context.Context, mType, status string) ([]types.MaintenanceRow, error) {
	return f.maintenances, f.failWith
}

func (f *fakeAnalyticsRepo) MaintenancesByPriority(ctx context.Context, priority string) ([]types.MaintenanceRow, error) {
	return f.maintenances, f.failWith
}

func (f *fakeAnalyticsRepo) MaintenanceCostSince(ctx context.Context, since time.Time) (float64, error) {
	f.costSince = since
	return f.maintenanceCost, f.failWith
}

func (f *fakeAnalyticsRepo) TopDepartmentsByPannes(ctx context.Context, limit uint64) ([]types.GroupCount, error) {
	f.requestedLimit = limit
	groups := f.topDepartments
	if uint64(len(groups)) > limit {
		groups = groups[:limit]
	}
	return groups, f.failWith
}

func (f *fakeAnalyticsRepo) PanneCountByType(ctx context.Context) ([]types.GroupCount, error) {
	return f.panneByType, f.failWith
}

func (f *fakeAnalyticsRepo) RecentPannes(ctx context.Context, limit uint64) ([]types.PanneRow, error) {
	f.requestedLimit = limit
	return f.recentPannes, f.failWith
}

func (f *fakeAnalyticsRepo) PanneResolutionStats(ctx context.Context) (*types.ResolutionStats, error) {
	return f.resolutionStats, f.failWith
}

func (f *fakeAnalyticsRepo) DepartmentParcStats(ctx context.Context) ([]types.DepartmentParcStat, error) {
	return nil, f.failWith
}

func newTestAssistant(repo *fakeAnalyticsRepo) *AssistantService {
	return NewAssistantService(repo, nil, zap.NewNop(), time.UTC, time.Minute)
}

func TestAnswer_MostEquipmentsEndToEnd(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		equipmentByDept: []types.GroupCount{
			{GroupName: "B", Count: 5},
			{GroupName: "A", Count: 2},
		},
	}
	svc := newTestAssistant(repo)

	answer := svc.Answer(context.Background(), "Quel département a le plus d'équipements ?")
	assert.Equal(t, "Le département avec le plus d'équipements est B avec 5 équipements.", answer)
}

func TestAnswer_FewestEquipmentsWinsOverOtherCategories(t *testing.T) {
	// La question contient aussi "maintenance" et "département" : la règle
	// "moins + équipements" doit quand même être choisie.
	repo := &fakeAnalyticsRepo{
		equipmentByDept: []types.GroupCount{
			{GroupName: "Radiologie", Count: 7},
			{GroupName: "Urgences", Count: 1},
		},
	}
	svc := newTestAssistant(repo)

	answer := svc.Answer(context.Background(), "Quel département de maintenance a le moins d'équipements ?")
	assert.Equal(t, "Le département avec le moins d'équipements est Urgences avec 1 équipements.", answer)
}

func TestAnswer_NoKeywordsReturnsGlobalFallback(t *testing.T) {
	svc := newTestAssistant(&fakeAnalyticsRepo{})

	for _, question := range []string{"", "Bonjour", "Quelle heure est-il ?"} {
		answer := svc.Answer(context.Background(), question)
		assert.Equal(t, fallbackAnswer, answer, "question: %q", question)
	}
}

func TestAnswer_CategoryMatchButNoRuleReturnsCategoryFallback(t *testing.T) {
	svc := newTestAssistant(&fakeAnalyticsRepo{})

	answer := svc.Answer(context.Background(), "Parlez-moi du matériel de l'hôpital")
	assert.Equal(t, equipmentFallbackAnswer, answer)
}

func TestAnswer_CategoryPriorityOrderIsPreserved(t *testing.T) {
	// "équipements" et "département" sont tous deux présents : la catégorie
	// équipement est testée en premier, donc c'est son fallback qui sort.
	svc := newTestAssistant(&fakeAnalyticsRepo{})

	answer := svc.Answer(context.Background(), "Que savez-vous des équipements du département ?")
	assert.Equal(t, equipmentFallbackAnswer, answer)
	assert.NotEqual(t, departmentFallbackAnswer, answer)
}

func TestAnswer_ResolutionRate(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		resolutionStats: &types.ResolutionStats{Total: 10, Resolved: 4},
	}
	svc := newTestAssistant(repo)

	answer := svc.Answer(context.Background(), "Quel est le taux de résolution des pannes ?")
	assert.Contains(t, answer, "40.0%")
}

func TestAnswer_ResolutionRateWithoutPannesDefaultsToZero(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		resolutionStats: &types.ResolutionStats{},
	}
	svc := newTestAssistant(repo)

	answer := svc.Answer(context.Background(), "Quel est le taux de résolution des pannes ?")
	assert.Contains(t, answer, "0.0%")
}

func TestAnswer_TopDepartmentsLimitedToThree(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		topDepartments: []types.GroupCount{
			{GroupName: "Urgences", Count: 12},
			{GroupName: "Radiologie", Count: 9},
			{GroupName: "Cardiologie", Count: 5},
			{GroupName: "Laboratoire", Count: 3},
			{GroupName: "Bloc opératoire", Count: 1},
		},
	}
	svc := newTestAssistant(repo)

	answer := svc.Answer(context.Background(), "Quels sont les départements les plus actifs ?")
	require.Equal(t, uint64(3), repo.requestedLimit)
	assert.Equal(t, 3, strings.Count(answer, "• "))
	assert.NotContains(t, answer, "Laboratoire")
}

func TestAnswer_MissingDepartmentRendersPlaceholder(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		equipmentsByStatuses: []types.EquipmentRow{
			{Name: "Bistouri électrique", Status: "down", DepartmentName: "non spécifié"},
		},
	}
	svc := newTestAssistant(repo)

	answer := svc.Answer(context.Background(), "Quels équipements sont en maintenance ?")
	assert.Contains(t, answer, "Bistouri électrique")
	assert.Contains(t, answer, "non spécifié")
}

func TestAnswer_StoreFailureReturnsApology(t *testing.T) {
	repo := &fakeAnalyticsRepo{failWith: errors.New("connexion perdue")}
	svc := newTestAssistant(repo)

	answer := svc.Answer(context.Background(), "Combien d'équipements par département ?")
	assert.Equal(t, internalErrorAnswer, answer)
}

func TestAnswer_StorePanicIsRecovered(t *testing.T) {
	repo := &fakeAnalyticsRepo{doPanic: true}
	svc := newTestAssistant(repo)

	var answer string
	require.NotPanics(t, func() {
		answer = svc.Answer(context.Background(), "Quel département a le plus d'équipements ?")
	})
	assert.Equal(t, internalErrorAnswer, answer)
}

func TestAnswer_IsIdempotentOnUnchangedData(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		equipmentByDept: []types.GroupCount{
			{GroupName: "Cardiologie", Count: 4},
			{GroupName: "Urgences", Count: 2},
			{GroupName: "Laboratoire", Count: 0},
		},
	}
	svc := newTestAssistant(repo)

	first := svc.Answer(context.Background(), "Combien d'équipements par département ?")
	second := svc.Answer(context.Background(), "Combien d'équipements par département ?")
	assert.Equal(t, first, second)
	assert.Contains(t, first, "0 équipements")
}

func TestAnswer_MonthlyCostUsesConfiguredTimezoneBoundary(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	repo := &fakeAnalyticsRepo{maintenanceCost: 1250.5}
	svc := NewAssistantService(repo, nil, zap.NewNop(), loc, time.Minute)

	answer := svc.Answer(context.Background(), "Quel est le coût des maintenances ce mois-ci ?")
	assert.Contains(t, answer, "1250.50€")

	now := time.Now().In(loc)
	assert.Equal(t, 1, repo.costSince.Day())
	assert.Equal(t, 0, repo.costSince.Hour())
	assert.Equal(t, now.Month(), repo.costSince.Month())
	assert.Equal(t, loc, repo.costSince.Location())
}

func TestAnswer_RecentPannesListsFiveAtMost(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		recentPannes: []types.PanneRow{
			{Description: "Écran hors service", Status: "Ouverte", TypeName: "Électrique", CreatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)},
		},
	}
	svc := newTestAssistant(repo)

	answer := svc.Answer(context.Background(), "Quels sont les derniers incidents ?")
	assert.Equal(t, uint64(5), repo.requestedLimit)
	assert.Contains(t, answer, "Écran hors service")
	assert.Contains(t, answer, "20/08/2026")
}

// fakeCache vérifie le chemin cache du service.
type fakeCache struct {
	store map[string]string
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if v, ok := f.store[key]; ok {
		return v, nil
	}
	return "", errors.New("clé absente")
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.store[key] = value.(string)
	return nil
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.store, k)
	}
	return nil
}

func TestAnswer_CachedAnswerIsReused(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		equipmentByDept: []types.GroupCount{{GroupName: "A", Count: 1}},
	}
	cache := &fakeCache{store: map[string]string{}}
	svc := NewAssistantService(repo, cache, zap.NewNop(), time.UTC, time.Minute)

	first := svc.Answer(context.Background(), "Quel département a le plus d'équipements ?")

	// Les données changent, mais la réponse en cache reste servie.
	repo.equipmentByDept = []types.GroupCount{{GroupName: "B", Count: 9}}
	second := svc.Answer(context.Background(), "Quel département a le plus d'équipements ?")

	assert.Equal(t, first, second)
}
