package domain

import "time"

type AnalysisStatus string

const (
	AnalysisStatusProcessing AnalysisStatus = "PROCESSING"
	AnalysisStatusCompleted  AnalysisStatus = "COMPLETED"
	AnalysisStatusFailed     AnalysisStatus = "FAILED"
)

// AnalysisRecord es el resultado de un análisis de piel. QualityScore y
// SkinAge se calculan una sola vez al crearlo y nunca se mutan después:
// el historial es append-only.
type AnalysisRecord struct {
	ID           string              `json:"id"`
	CustomerID   string              `json:"customer_id,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	SkinType     SkinType            `json:"skin_type,omitempty"`
	Conditions   []DetectedCondition `json:"conditions"`
	QualityScore int                 `json:"quality_score"` // 0-100, mayor es mejor
	SkinAge      int                 `json:"skin_age"`      // 18-90 años percibidos
	Status       AnalysisStatus      `json:"status"`
}
