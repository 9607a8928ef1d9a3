package generations

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a generation.
func (r *PGRepo) Create(ctx context.Context, g Generation) error {
	const query = `
INSERT INTO resume_generations (
    id, summary, full_name, generator, content, created_at
) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		g.ID,
		g.Summary,
		g.FullName,
		g.Generator,
		g.Content,
		g.CreatedAt,
	)
	return err
}

// GetByID returns a generation by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Generation, error) {
	const query = `
SELECT id, summary, full_name, generator, content, created_at
FROM resume_generations
WHERE id = $1
LIMIT 1`
	var g Generation
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&g.ID,
		&g.Summary,
		&g.FullName,
		&g.Generator,
		&g.Content,
		&g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Generation{}, ErrNotFound
		}
		return Generation{}, err
	}
	return g, nil
}

// List returns generations ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Generation, error) {
	limit, offset = normalizePage(limit, offset)
	const query = `
SELECT id, summary, full_name, generator, content, created_at
FROM resume_generations
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Generation{}
	for rows.Next() {
		var g Generation
		if err := rows.Scan(
			&g.ID,
			&g.Summary,
			&g.FullName,
			&g.Generator,
			&g.Content,
			&g.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
