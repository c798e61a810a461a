package services

import (
	"context"

	"go.uber.org/zap"

	"gmao-system/internal/repositories"
	"gmao-system/pkg/types"
)

type ReportServiceInterface interface {
	GetParcSummary(ctx context.Context) ([]types.DepartmentParcStat, error)
}

// ReportService produit le récapitulatif d'inventaire du parc par
// département, servi en JSON ou exporté en xlsx par le contrôleur.
type ReportService struct {
	repo   repositories.AnalyticsRepositoryInterface
	logger *zap.Logger
}

func NewReportService(repo repositories.AnalyticsRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{repo: repo, logger: logger}
}

func (s *ReportService) GetParcSummary(ctx context.Context) ([]types.DepartmentParcStat, error) {
	stats, err := s.repo.DepartmentParcStats(ctx)
	if err != nil {
		s.logger.Error("échec du récapitulatif du parc", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
