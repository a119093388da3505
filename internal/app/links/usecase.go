package links

import (
	"context"

	"github.com/Yashshinde43/tinyurl/internal/domain"
)

// UseCase is the input port for the links application.
type UseCase interface {
	List(ctx context.Context, search string) ([]domain.Link, error)
	Get(ctx context.Context, code string) (domain.Link, error)
	Create(ctx context.Context, targetURL, customCode string) (domain.Link, error)
	Delete(ctx context.Context, code string) error
	Resolve(ctx context.Context, code string) (string, error)
}
