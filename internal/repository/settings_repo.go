package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ayonne-skin/internal/domain"
)

// SettingsRepository expone la configuración de cuenta que este backend
// necesita leer: la meta de cuidado activa del cliente.
type SettingsRepository interface {
	GetGoal(ctx context.Context, customerID string) (domain.SkinGoal, error)
	SetGoal(ctx context.Context, customerID string, goal domain.SkinGoal) error
}

type PgSettingsRepository struct {
	pool *pgxpool.Pool
}

func NewPgSettingsRepository(pool *pgxpool.Pool) *PgSettingsRepository {
	return &PgSettingsRepository{pool: pool}
}

// GetGoal devuelve la meta activa; sin fila guardada resuelve a
// BALANCED, nunca a error.
func (r *PgSettingsRepository) GetGoal(ctx context.Context, customerID string) (domain.SkinGoal, error) {
	const query = `
		SELECT skin_goal
		FROM customer_settings
		WHERE customer_id = $1
	`
	var raw string
	err := r.pool.QueryRow(ctx, query, customerID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.GoalBalanced, nil
	}
	if err != nil {
		return domain.GoalBalanced, err
	}

	goal, ok := domain.ParseSkinGoal(raw)
	if !ok {
		// Valor viejo fuera de la enumeración: degradar al default.
		return domain.GoalBalanced, nil
	}
	return goal, nil
}

func (r *PgSettingsRepository) SetGoal(ctx context.Context, customerID string, goal domain.SkinGoal) error {
	const query = `
		INSERT INTO customer_settings (customer_id, skin_goal, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_id) DO UPDATE SET skin_goal = $2, updated_at = $3
	`
	_, err := r.pool.Exec(ctx, query, customerID, string(goal), time.Now().UTC())
	return err
}
