package handlers_test

import (
	"context"
	"testing"

	"github.com/Yashshinde43/tinyurl/internal/domain"
)

type stubUseCase struct {
	t testing.TB

	listFunc    func(context.Context, string) ([]domain.Link, error)
	getFunc     func(context.Context, string) (domain.Link, error)
	createFunc  func(context.Context, string, string) (domain.Link, error)
	deleteFunc  func(context.Context, string) error
	resolveFunc func(context.Context, string) (string, error)
}

func (s *stubUseCase) List(ctx context.Context, search string) ([]domain.Link, error) {
	s.t.Helper()
	if s.listFunc == nil {
		s.t.Fatalf("unexpected List call")
	}
	return s.listFunc(ctx, search)
}

func (s *stubUseCase) Get(ctx context.Context, code string) (domain.Link, error) {
	s.t.Helper()
	if s.getFunc == nil {
		s.t.Fatalf("unexpected Get call")
	}
	return s.getFunc(ctx, code)
}

func (s *stubUseCase) Create(ctx context.Context, targetURL, customCode string) (domain.Link, error) {
	s.t.Helper()
	if s.createFunc == nil {
		s.t.Fatalf("unexpected Create call")
	}
	return s.createFunc(ctx, targetURL, customCode)
}

func (s *stubUseCase) Delete(ctx context.Context, code string) error {
	s.t.Helper()
	if s.deleteFunc == nil {
		s.t.Fatalf("unexpected Delete call")
	}
	return s.deleteFunc(ctx, code)
}

func (s *stubUseCase) Resolve(ctx context.Context, code string) (string, error) {
	s.t.Helper()
	if s.resolveFunc == nil {
		s.t.Fatalf("unexpected Resolve call")
	}
	return s.resolveFunc(ctx, code)
}
