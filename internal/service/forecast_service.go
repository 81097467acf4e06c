package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"ayonne-skin/internal/catalog"
	"ayonne-skin/internal/domain"
	"ayonne-skin/internal/repository"
	"ayonne-skin/internal/scoring"
)

// ErrNoAnalyses indica que el cliente todavía no tiene ningún análisis
// completado sobre el cual proyectar.
var ErrNoAnalyses = errors.New("no completed analyses for customer")

// ForecastService recalcula la proyección bajo demanda desde el
// historial. El núcleo es puro y no cachea; la memoización por
// (customer, último análisis) vive acá, del lado del caller, como
// permite el contrato del núcleo.
type ForecastService struct {
	analyses repository.AnalysisRepository
	settings repository.SettingsRepository
	catalog  *catalog.Catalog
	cache    ForecastCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewForecastService(
	analyses repository.AnalysisRepository,
	settings repository.SettingsRepository,
	cat *catalog.Catalog,
	cache ForecastCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ForecastService {
	if cacheTTL <= 0 {
		cacheTTL = 6 * time.Hour
	}
	return &ForecastService{
		analyses: analyses,
		settings: settings,
		catalog:  cat,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// ProjectForCustomer arma la proyección 30/60/90 del cliente. El
// historial es de solo lectura; el resultado nunca se persiste, solo se
// memoiza con TTL y la clave cambia con cada análisis nuevo.
func (s *ForecastService) ProjectForCustomer(ctx context.Context, customerID string) (domain.ForecastProjection, error) {
	history, err := s.analyses.ListByCustomer(ctx, customerID)
	if err != nil {
		return domain.ForecastProjection{}, err
	}
	if len(history) == 0 {
		return domain.ForecastProjection{}, ErrNoAnalyses
	}

	latest := history[len(history)-1]
	cacheKey := customerID + ":" + latest.ID

	if s.cache != nil {
		if data, ok := s.cache.Get(ctx, cacheKey); ok {
			var cached domain.ForecastProjection
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
			s.logger.Warn("forecast cache entry corrupt, recomputing", zap.String("key", cacheKey))
		}
	}

	goal, err := s.settings.GetGoal(ctx, customerID)
	if err != nil {
		s.logger.Warn("load skin goal failed, using default", zap.Error(err), zap.String("customer_id", customerID))
		goal = domain.GoalBalanced
	}

	proj := scoring.Project(scoring.ForecastInput{
		History:    history,
		Conditions: latest.Conditions,
		Goal:       goal,
	}, s.catalog)

	if s.cache != nil {
		if data, err := json.Marshal(proj); err == nil {
			s.cache.Set(ctx, cacheKey, data, s.cacheTTL)
		}
	}
	return proj, nil
}
