package routes

import (
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gmao-system/internal/controllers"
	"gmao-system/internal/repositories"
	"gmao-system/internal/services"
	"gmao-system/pkg/config"
	"gmao-system/pkg/utils"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) {
	logger.Info("InitRouter : création des routes")

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		if err := dbConn.Ping(c.Request().Context()); err != nil {
			return utils.ErrorResponse(c, err, logger)
		}
		return utils.SuccessResponse(c, nil, "OK", http.StatusOK)
	})

	loc, err := time.LoadLocation(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warn("fuseau horaire inconnu, repli sur UTC",
			zap.String("timezone", cfg.Assistant.Timezone), zap.Error(err))
		loc = time.UTC
	}

	// --- Répositories ---
	analyticsRepo := repositories.NewAnalyticsRepository(dbConn, logger)
	var cacheRepo repositories.CacheRepositoryInterface
	if redisClient != nil {
		cacheRepo = repositories.NewRedisCacheRepository(redisClient)
	}

	// --- Services ---
	assistantService := services.NewAssistantService(analyticsRepo, cacheRepo, logger, loc, cfg.Assistant.CacheTTL)
	reportService := services.NewReportService(analyticsRepo, logger)

	// --- Contrôleurs ---
	assistantCtrl := controllers.NewAssistantController(assistantService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	runAssistantRouter(api, assistantCtrl)
	runReportRouter(api, reportCtrl)

	logger.Info("InitRouter : routes créées")
}
