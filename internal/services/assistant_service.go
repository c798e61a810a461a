package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gmao-system/internal/repositories"
)

type category string

const (
	categoryEquipment   category = "equipment"
	categoryMaintenance category = "maintenance"
	categoryDepartment  category = "department"
	categoryIncident    category = "incident"
)

const (
	recentLimit         uint64 = 5
	topDepartmentsLimit uint64 = 3
)

const (
	// Réponse quand aucune catégorie ne matche.
	fallbackAnswer = "Je n'ai pas compris votre question. Vous pouvez me demander des informations sur les équipements, les maintenances, les départements ou les pannes."
	// Réponse quand une requête analytique échoue : l'erreur part dans les
	// logs, jamais chez l'utilisateur.
	internalErrorAnswer = "Désolé, une erreur s'est produite lors du traitement de votre question. Veuillez réessayer."

	noDepartmentAnswer = "Aucun département trouvé."

	equipmentFallbackAnswer   = "Je peux vous renseigner sur le nombre d'équipements par département, leur état, ceux en maintenance, les plus récents ou ceux en fin de vie."
	maintenanceFallbackAnswer = "Je peux vous renseigner sur les maintenances en cours, préventives, urgentes ou leur coût mensuel."
	departmentFallbackAnswer  = "Je peux vous renseigner sur les départements les plus actifs ou la répartition des équipements."
	incidentFallbackAnswer    = "Je peux vous renseigner sur les pannes récentes, les plus fréquentes ou le taux de résolution."
)

// categoryMatcher regroupe les mots-clés d'une catégorie, ses règles
// ordonnées et sa réponse par défaut quand aucune règle ne matche.
type categoryMatcher struct {
	cat      category
	keywords []string
	rules    []intentRule
	fallback string
}

type AssistantServiceInterface interface {
	Answer(ctx context.Context, question string) string
}

// AssistantService est le moteur de questions analytiques : classification
// par mots-clés, exécution de la première règle qui matche, formatage.
// Sans état entre deux questions ; une instance sert tous les appels.
type AssistantService struct {
	repo     repositories.AnalyticsRepositoryInterface
	cache    repositories.CacheRepositoryInterface
	logger   *zap.Logger
	loc      *time.Location
	cacheTTL time.Duration
	matchers []categoryMatcher
}

// NewAssistantService construit le moteur. cache peut être nil : le cache de
// réponses est une optimisation, pas une dépendance. loc fixe la frontière de
// mois de la règle "coût".
func NewAssistantService(
	repo repositories.AnalyticsRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	loc *time.Location,
	cacheTTL time.Duration,
) *AssistantService {
	if loc == nil {
		loc = time.UTC
	}
	s := &AssistantService{
		repo:     repo,
		cache:    cache,
		logger:   logger,
		loc:      loc,
		cacheTTL: cacheTTL,
	}

	// Ordre hérité de l'assistant historique : une question qui matche
	// plusieurs catégories est résolue par la première testée. Ne pas
	// réordonner sans vérifier les consommateurs.
	s.matchers = []categoryMatcher{
		{
			cat:      categoryEquipment,
			keywords: []string{"équipement", "matériel"},
			rules:    s.equipmentRules(),
			fallback: equipmentFallbackAnswer,
		},
		{
			cat:      categoryMaintenance,
			keywords: []string{"maintenance", "réparation"},
			rules:    s.maintenanceRules(),
			fallback: maintenanceFallbackAnswer,
		},
		{
			cat:      categoryDepartment,
			keywords: []string{"département", "service"},
			rules:    s.departmentRules(),
			fallback: departmentFallbackAnswer,
		},
		{
			cat:      categoryIncident,
			keywords: []string{"incident", "panne"},
			rules:    s.incidentRules(),
			fallback: incidentFallbackAnswer,
		},
	}
	return s
}

// Answer répond à une question libre. Contrat : retourne toujours une chaîne,
// ne propage jamais d'erreur ni de panique à l'appelant.
func (s *AssistantService) Answer(ctx context.Context, question string) (answer string) {
	queryID := uuid.NewString()

	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("panique dans l'assistant",
				zap.String("query_id", queryID),
				zap.String("question", question),
				zap.Any("panic", rec),
			)
			answer = internalErrorAnswer
		}
	}()

	normalized := normalizeQuestion(question)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey(normalized)); err == nil && cached != "" {
			s.logger.Debug("réponse servie depuis le cache", zap.String("query_id", queryID))
			return cached
		}
	}

	result, err := s.dispatch(ctx, normalized)
	if err != nil {
		s.logger.Error("échec de la requête analytique",
			zap.String("query_id", queryID),
			zap.String("question", question),
			zap.Error(err),
		)
		return internalErrorAnswer
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey(normalized), result, s.cacheTTL); err != nil {
			s.logger.Debug("mise en cache impossible", zap.String("query_id", queryID), zap.Error(err))
		}
	}

	s.logger.Info("question traitée", zap.String("query_id", queryID), zap.String("question", question))
	return result
}

// dispatch : classification de catégorie puis première règle qui matche.
// L'absence de catégorie ou de règle n'est pas une erreur.
func (s *AssistantService) dispatch(ctx context.Context, normalized string) (string, error) {
	matcher := s.classify(normalized)
	if matcher == nil {
		return fallbackAnswer, nil
	}
	s.logger.Debug("catégorie détectée", zap.String("category", string(matcher.cat)))

	for _, rule := range matcher.rules {
		if rule.match(normalized) {
			return rule.run(ctx)
		}
	}
	return matcher.fallback, nil
}

func (s *AssistantService) classify(normalized string) *categoryMatcher {
	for i := range s.matchers {
		if containsAny(normalized, s.matchers[i].keywords...) {
			return &s.matchers[i]
		}
	}
	return nil
}

func normalizeQuestion(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}

func cacheKey(normalized string) string {
	return "assistant:" + normalized
}
