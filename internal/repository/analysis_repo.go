package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ayonne-skin/internal/domain"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisRepository persiste registros de análisis. El historial es
// append-only: no hay updates ni deletes de registros completados.
type AnalysisRepository interface {
	Create(ctx context.Context, rec domain.AnalysisRecord) error
	GetByID(ctx context.Context, id string) (domain.AnalysisRecord, error)
	// ListByCustomer devuelve el historial completado del cliente en
	// orden ascendente por fecha de creación.
	ListByCustomer(ctx context.Context, customerID string) ([]domain.AnalysisRecord, error)
}

type PgAnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewPgAnalysisRepository(pool *pgxpool.Pool) *PgAnalysisRepository {
	return &PgAnalysisRepository{pool: pool}
}

func (r *PgAnalysisRepository) Create(ctx context.Context, rec domain.AnalysisRecord) error {
	condJSON, err := json.Marshal(rec.Conditions)
	if err != nil {
		return fmt.Errorf("marshal conditions: %w", err)
	}

	const query = `
		INSERT INTO analyses (id, customer_id, created_at, skin_type, conditions, quality_score, skin_age, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.pool.Exec(ctx, query,
		rec.ID,
		rec.CustomerID,
		rec.CreatedAt,
		string(rec.SkinType),
		condJSON,
		rec.QualityScore,
		rec.SkinAge,
		string(rec.Status),
	)
	return err
}

func (r *PgAnalysisRepository) GetByID(ctx context.Context, id string) (domain.AnalysisRecord, error) {
	const query = `
		SELECT id, customer_id, created_at, skin_type, conditions, quality_score, skin_age, status
		FROM analyses
		WHERE id = $1
	`
	rec, err := scanAnalysis(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AnalysisRecord{}, ErrAnalysisNotFound
	}
	return rec, err
}

func (r *PgAnalysisRepository) ListByCustomer(ctx context.Context, customerID string) ([]domain.AnalysisRecord, error) {
	const query = `
		SELECT id, customer_id, created_at, skin_type, conditions, quality_score, skin_age, status
		FROM analyses
		WHERE customer_id = $1 AND status = 'COMPLETED'
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AnalysisRecord
	for rows.Next() {
		rec, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (domain.AnalysisRecord, error) {
	var (
		rec      domain.AnalysisRecord
		skinType string
		status   string
		condJSON []byte
	)
	err := row.Scan(
		&rec.ID,
		&rec.CustomerID,
		&rec.CreatedAt,
		&skinType,
		&condJSON,
		&rec.QualityScore,
		&rec.SkinAge,
		&status,
	)
	if err != nil {
		return domain.AnalysisRecord{}, err
	}
	rec.SkinType = domain.SkinType(skinType)
	rec.Status = domain.AnalysisStatus(status)
	if len(condJSON) > 0 {
		if err := json.Unmarshal(condJSON, &rec.Conditions); err != nil {
			return domain.AnalysisRecord{}, fmt.Errorf("unmarshal conditions: %w", err)
		}
	}
	return rec, nil
}
