package generations

import "context"

const (
	DefaultListLimit = 20
	MaxListLimit     = 50
)

// Repo defines persistence operations for generation history.
type Repo interface {
	Create(ctx context.Context, g Generation) error
	GetByID(ctx context.Context, id string) (Generation, error)
	List(ctx context.Context, limit, offset int) ([]Generation, error)
}

// normalizePage clamps paging arguments to the supported range.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
