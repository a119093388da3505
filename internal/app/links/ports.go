package links

import (
	"context"

	"github.com/Yashshinde43/tinyurl/internal/domain"
)

// Repo is the output port to the persistent store. Uniqueness of codes
// is enforced by the store; Exists is only a pre-check optimization.
type Repo interface {
	List(ctx context.Context, search string) ([]domain.Link, error)
	GetByCode(ctx context.Context, code string) (domain.Link, error)
	Exists(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, code, targetURL string) (domain.Link, error)
	Delete(ctx context.Context, code string) error
	TrackClick(ctx context.Context, code string) error
}
