package repositories

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gmao-system/pkg/types"
)

// Libellé substitué quand une référence de département ou de type ne se
// résout pas : une donnée orpheline ne doit jamais faire échouer la réponse.
const UnresolvedLabel = "non spécifié"

// AnalyticsRepositoryInterface est le port de lecture du moteur analytique.
// Aucune écriture : le moteur emprunte un accès lecture le temps d'une question.
type AnalyticsRepositoryInterface interface {
	EquipmentCountByDepartment(ctx context.Context) ([]types.GroupCount, error)
	EquipmentCountByStatus(ctx context.Context) ([]types.GroupCount, error)
	EquipmentsByStatuses(ctx context.Context, statuses []string) ([]types.EquipmentRow, error)
	RecentEquipments(ctx context.Context, limit uint64) ([]types.EquipmentRow, error)
	EquipmentsByWarranty(ctx context.Context, warranty string) ([]types.EquipmentRow, error)

	MaintenancesByStatus(ctx context.Context, status string) ([]types.MaintenanceRow, error)
	MaintenancesByTypeAndStatus(ctx context.Context, mType, status string) ([]types.MaintenanceRow, error)
	MaintenancesByPriority(ctx context.Context, priority string) ([]types.MaintenanceRow, error)
	MaintenanceCostSince(ctx context.Context, since time.Time) (float64, error)

	TopDepartmentsByPannes(ctx context.Context, limit uint64) ([]types.GroupCount, error)
	PanneCountByType(ctx context.Context) ([]types.GroupCount, error)
	RecentPannes(ctx context.Context, limit uint64) ([]types.PanneRow, error)
	PanneResolutionStats(ctx context.Context) (*types.ResolutionStats, error)

	DepartmentParcStats(ctx context.Context) ([]types.DepartmentParcStat, error)
}

type AnalyticsRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewAnalyticsRepository(storage *pgxpool.Pool, logger *zap.Logger) AnalyticsRepositoryInterface {
	return &AnalyticsRepository{storage: storage, logger: logger}
}

// equipmentSelect sélectionne le détail d'un équipement avec le nom du
// département résolu par jointure externe.
func equipmentSelect() sq.SelectBuilder {
	return sq.Select(
		"e.name",
		"e.status",
		"e.warranty",
		"e.purchase_date",
		"e.price",
		fmt.Sprintf("COALESCE(d.name, '%s') as department_name", UnresolvedLabel),
	).
		From("equipments e").
		LeftJoin("departments d ON e.department_id = d.id")
}

func (r *AnalyticsRepository) EquipmentCountByDepartment(ctx context.Context) ([]types.GroupCount, error) {
	// LEFT JOIN depuis departments : un département sans équipement compte 0.
	b := sq.Select("d.name as group_name", "COUNT(e.id) as count").
		From("departments d").
		LeftJoin("equipments e ON e.department_id = d.id").
		GroupBy("d.name").
		OrderBy("count DESC", "d.name ASC")

	sqlStr, args, _ := b.PlaceholderFormat(sq.Dollar).ToSql()
	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("équipements par département: %w", err)
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.GroupCount])
}

func (r *AnalyticsRepository) EquipmentCountByStatus(ctx context.Context) ([]types.GroupCount, error) {
	b := sq.Select("e.status as group_name", "COUNT(e.id) as count").
		From("equipments e").
		GroupBy("e.status").
		OrderBy("count DESC", "e.status ASC")

	sqlStr, args, _ := b.PlaceholderFormat(sq.Dollar).ToSql()
	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("équipements par état: %w", err)
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.GroupCount])
}

func (r *AnalyticsRepository) EquipmentsByStatuses(ctx context.Context, statuses []string) ([]types.EquipmentRow, error) {
	b := equipmentSelect().
		Where(sq.Eq{"e.status": statuses}).
		OrderBy("e.name ASC")

	sqlStr, args, _ := b.PlaceholderFormat(sq.Dollar).ToSql()
	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("équipements par statut: %w", err)
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.EquipmentRow])
}

func (r *AnalyticsRepository) RecentEquipments(ctx context.Context, limit uint64) ([]types.EquipmentRow, error) {
	b := equipmentSelect().
		OrderBy("e.purchase_date DESC NULLS LAST", "e.id DESC").
		Limit(limit)

	sqlStr, args, _ := b.PlaceholderFormat(sq.Dollar).ToSql()
	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("équipements récents: %w", err)
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.EquipmentRow])
}

func (r *AnalyticsRepository) EquipmentsByWarranty(ctx context.Context, warranty string) ([]types.EquipmentRow, error) {
	b := equipmentSelect().
		Where(sq.Eq{"e.warranty": warranty}).
		OrderBy("e.purchase_date ASC NULLS LAST", "e.name ASC")

	sqlStr, args, _ := b.PlaceholderFormat(sq.Dollar).ToSql()
	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("équipements par garantie: %w", err)
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.EquipmentRow])
}

func maintenanceSelect() sq.SelectBuilder {
	return sq.Select(
		"m.description",
		"m.status",
		"m.type",
		"m.priority",
		"m.scheduled_date",
		"m.cost",
	).From("maintenances m")
}

func (r *AnalyticsRepository) MaintenancesByStatus(ctx context.Context, status string) ([]types.MaintenanceRow, error) {
	b := maintenanceSelect().
		Where(sq.Eq{"m.status": status}).
		OrderBy("m.scheduled_date ASC NULLS LAST", "m.id ASC")

	sqlStr, args, _ := b.PlaceholderFormat(sq.Dollar).ToSql()
	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("maintenances par statut: %w", err)
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.MaintenanceRow])
}

func (r *AnalyticsRepository) MaintenancesByTypeAndStatus(ctx context.Context, mType, status string) ([]types.MaintenanceRow, error) {
	b := maintenanceSelect().
		Where(sq.Eq{"m.type": mType, "m.status": status}).
		OrderBy("m.scheduled_date ASC NULLS LAST", "m.id ASC")

	sqlStr, args, _ := b.PlaceholderFormat(sq.Dollar).ToSql()
	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("maintenances par type et statut: %w", err)
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.MaintenanceRow])
}

func (r *AnalyticsRepository) MaintenancesByPriority(ctx context.Context, priority string) ([]types.MaintenanceRow, error) {
	b := maintenanceSelect().
		Where(sq.Eq{"m.priority": priority}).
		OrderBy("m.scheduled_date ASC NULLS LAST", "m.id ASC")

	sqlStr, args, _ := b.PlaceholderFormat(sq.Dollar).ToSql()
	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("maintenances par priorité: %w", err)
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.MaintenanceRow])
}

func (r *AnalyticsRepository) MaintenanceCostSince(ctx context.Context, since time.Time) (float64, error) {
	b := sq.Select("COALESCE(SUM(m.cost), 0)").
		From("maintenances m").
		Where(sq.GtOrEq{"m.start_date": since})

	sqlStr, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return 0, err
	}

	var total float64
	if err := r.storage.QueryRow(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("coût des maintenances: %w", err)
	}
	return total, nil
}

func (r *AnalyticsRepository) TopDepartmentsByPannes(ctx context.Context, limit uint64) ([]types.GroupCount, error) {
	b := sq.Select(
		fmt.Sprintf("COALESCE(d.name, '%s') as group_name", UnresolvedLabel),
		"COUNT(p.id) as count",
	).
		From("pannes p").
		LeftJoin("departments d ON p.department_id = d.id").
		GroupBy("d.name").
		OrderBy("count DESC", "group_name ASC").
		Limit(limit)

	sqlStr, args, _ := b.PlaceholderFormat(sq.Dollar).ToSql()
	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("départements par pannes: %w", err)
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.GroupCount])
}

func (r *AnalyticsRepository) PanneCountByType(ctx context.Context) ([]types.GroupCount, error) {
	b := sq.Select(
		fmt.Sprintf("COALESCE(t.name, '%s') as group_name", UnresolvedLabel),
		"COUNT(p.id) as count",
	).
		From("pannes p").
		LeftJoin("panne_types t ON p.type_id = t.id").
		GroupBy("t.name").
		OrderBy("count DESC", "group_name ASC")

	sqlStr, args, _ := b.PlaceholderFormat(sq.Dollar).ToSql()
	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("pannes par type: %w", err)
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.GroupCount])
}

func (r *AnalyticsRepository) RecentPannes(ctx context.Context, limit uint64) ([]types.PanneRow, error) {
	b := sq.Select(
		"p.description",
		"p.status",
		fmt.Sprintf("COALESCE(t.name, '%s') as type_name", UnresolvedLabel),
		"p.created_at",
	).
		From("pannes p").
		LeftJoin("panne_types t ON p.type_id = t.id").
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(limit)

	sqlStr, args, _ := b.PlaceholderFormat(sq.Dollar).ToSql()
	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("pannes récentes: %w", err)
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.PanneRow])
}

func (r *AnalyticsRepository) PanneResolutionStats(ctx context.Context) (*types.ResolutionStats, error) {
	b := sq.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE p.status = 'Résolue')",
	).From("pannes p")

	sqlStr, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	stats := &types.ResolutionStats{}
	if err := r.storage.QueryRow(ctx, sqlStr, args...).Scan(&stats.Total, &stats.Resolved); err != nil {
		return nil, fmt.Errorf("taux de résolution: %w", err)
	}
	return stats, nil
}

func (r *AnalyticsRepository) DepartmentParcStats(ctx context.Context) ([]types.DepartmentParcStat, error) {
	b := sq.Select(
		"d.name",
		"COUNT(e.id) as total_count",
		"COUNT(e.id) FILTER (WHERE e.status = 'operational') as operational_count",
		"COUNT(e.id) FILTER (WHERE e.status = 'maintenance') as maintenance_count",
		"COUNT(e.id) FILTER (WHERE e.status = 'down') as down_count",
	).
		From("departments d").
		LeftJoin("equipments e ON e.department_id = d.id").
		GroupBy("d.name").
		OrderBy("d.name ASC")

	sqlStr, args, _ := b.PlaceholderFormat(sq.Dollar).ToSql()
	rows, err := r.storage.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("statistiques du parc: %w", err)
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowToStructByName[types.DepartmentParcStat])
}
