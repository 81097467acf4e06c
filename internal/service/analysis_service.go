package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ayonne-skin/internal/catalog"
	"ayonne-skin/internal/domain"
	"ayonne-skin/internal/repository"
	"ayonne-skin/internal/scoring"
	"ayonne-skin/internal/vision"
)

// AnalysisService orquesta un análisis: detección por visión, anotación
// con el catálogo, puntaje y persistencia del registro append-only.
type AnalysisService struct {
	visionClient vision.Client
	analyses     repository.AnalysisRepository
	settings     repository.SettingsRepository
	catalog      *catalog.Catalog
	logger       *zap.Logger
}

func NewAnalysisService(
	visionClient vision.Client,
	analyses repository.AnalysisRepository,
	settings repository.SettingsRepository,
	cat *catalog.Catalog,
	logger *zap.Logger,
) *AnalysisService {
	return &AnalysisService{
		visionClient: visionClient,
		analyses:     analyses,
		settings:     settings,
		catalog:      cat,
		logger:       logger,
	}
}

// AnalyzeImage corre el flujo completo y devuelve el registro creado.
// Fallas del detector se devuelven al caller antes de tocar el núcleo
// de puntaje; el registro solo se crea COMPLETED.
func (s *AnalysisService) AnalyzeImage(ctx context.Context, customerID, imageURL string) (domain.AnalysisRecord, error) {
	det, err := s.visionClient.Detect(ctx, imageURL)
	if err != nil {
		return domain.AnalysisRecord{}, fmt.Errorf("vision detect: %w", err)
	}

	goal := s.activeGoal(ctx, customerID)
	conds, unknown := s.annotateConditions(det.Conditions)
	if len(unknown) > 0 {
		// Señal de calidad de datos para mantenimiento del catálogo,
		// nunca un error de usuario.
		s.logger.Warn("conditions missing from catalog",
			zap.Strings("names", unknown),
			zap.String("catalog_version", s.catalog.Version()),
		)
	}

	res := scoring.Score(conds, goal)
	record := domain.AnalysisRecord{
		ID:           uuid.NewString(),
		CustomerID:   customerID,
		CreatedAt:    time.Now().UTC(),
		SkinType:     parseSkinType(det.SkinType),
		Conditions:   conds,
		QualityScore: roundScore(res.QualityScore),
		SkinAge:      roundScore(res.SkinAge),
		Status:       domain.AnalysisStatusCompleted,
	}

	if err := s.analyses.Create(ctx, record); err != nil {
		return domain.AnalysisRecord{}, fmt.Errorf("persist analysis: %w", err)
	}

	s.logger.Info("analysis completed",
		zap.String("analysis_id", record.ID),
		zap.String("customer_id", customerID),
		zap.Int("quality_score", record.QualityScore),
		zap.Int("conditions", len(record.Conditions)),
	)
	return record, nil
}

// GetAnalysis devuelve el registro más su desglose por categorías, la
// vista que consume la capa de presentación.
func (s *AnalysisService) GetAnalysis(ctx context.Context, id string) (domain.AnalysisRecord, domain.CategoryScores, error) {
	rec, err := s.analyses.GetByID(ctx, id)
	if err != nil {
		return domain.AnalysisRecord{}, nil, err
	}
	return rec, scoring.AggregateCategories(rec.Conditions, s.catalog.CategoryMax()), nil
}

// History devuelve el historial completado ascendente del cliente.
func (s *AnalysisService) History(ctx context.Context, customerID string) ([]domain.AnalysisRecord, error) {
	return s.analyses.ListByCustomer(ctx, customerID)
}

// annotateConditions resuelve cada detección cruda contra el catálogo y
// recorta la confianza a [0,1]. Devuelve además los nombres que el
// catálogo no conoce.
func (s *AnalysisService) annotateConditions(raw []vision.RawCondition) ([]domain.DetectedCondition, []string) {
	conds := make([]domain.DetectedCondition, 0, len(raw))
	var unknown []string

	for _, rc := range raw {
		entry := s.catalog.Lookup(rc.Name)
		if !entry.Known {
			unknown = append(unknown, rc.Name)
		}

		id := rc.ID
		if strings.TrimSpace(id) == "" {
			id = uuid.NewString()
		}
		conds = append(conds, domain.DetectedCondition{
			ID:             id,
			Name:           entry.Name,
			Category:       entry.Category,
			Confidence:     clamp01(rc.Confidence),
			SeverityWeight: entry.BaseWeight,
			Description:    rc.Description,
		})
	}
	return conds, unknown
}

func (s *AnalysisService) activeGoal(ctx context.Context, customerID string) domain.SkinGoal {
	goal, err := s.settings.GetGoal(ctx, customerID)
	if err != nil {
		s.logger.Warn("load skin goal failed, using default", zap.Error(err), zap.String("customer_id", customerID))
		return domain.GoalBalanced
	}
	return goal
}

func parseSkinType(s string) domain.SkinType {
	st := domain.SkinType(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case domain.SkinTypeNormal, domain.SkinTypeOily, domain.SkinTypeDry,
		domain.SkinTypeCombination, domain.SkinTypeSensitive:
		return st
	}
	return ""
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func roundScore(v float64) int {
	return int(math.Round(v))
}
