package links

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Yashshinde43/tinyurl/internal/domain"
)

const (
	defaultCodeLength     = 6
	defaultCreateAttempts = 10

	createErrWrapFmt = "links create: %w"
)

// ErrAttemptsExhausted means every generated candidate collided with an
// existing code. It is an internal condition, not a caller conflict.
var ErrAttemptsExhausted = errors.New("code generation attempts exhausted")

// Options tune code generation. Zero values fall back to defaults.
type Options struct {
	CodeLength     int
	CreateAttempts int
}

type Service struct {
	repo     Repo
	log      Logger
	codeLen  int
	attempts int
}

func New(repo Repo, log Logger, opts Options) *Service {
	if log == nil {
		log = NopLogger{}
	}

	codeLen := opts.CodeLength
	if codeLen <= 0 {
		codeLen = defaultCodeLength
	}

	attempts := opts.CreateAttempts
	if attempts <= 0 {
		attempts = defaultCreateAttempts
	}

	return &Service{repo: repo, log: log, codeLen: codeLen, attempts: attempts}
}

var _ UseCase = (*Service)(nil)

func (s *Service) List(ctx context.Context, search string) ([]domain.Link, error) {
	items, err := s.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("links list: %w", err)
	}

	return items, nil
}

func (s *Service) Get(ctx context.Context, code string) (domain.Link, error) {
	link, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return domain.Link{}, fmt.Errorf("links get by code: %w", err)
	}

	return link, nil
}

func (s *Service) Create(ctx context.Context, targetURL, customCode string) (domain.Link, error) {
	targetURL = strings.TrimSpace(targetURL)
	customCode = strings.TrimSpace(customCode)

	if err := domain.ValidateTargetURL(targetURL); err != nil {
		return domain.Link{}, err
	}

	if customCode == "" {
		return s.createWithGeneratedCode(ctx, targetURL)
	}

	if err := domain.ValidateCode(customCode); err != nil {
		return domain.Link{}, err
	}

	taken, err := s.repo.Exists(ctx, customCode)
	if err != nil {
		return domain.Link{}, fmt.Errorf(createErrWrapFmt, err)
	}

	if taken {
		return domain.Link{}, domain.ErrCodeConflict
	}

	link, err := s.repo.Create(ctx, customCode, targetURL)
	if err != nil {
		if errors.Is(err, domain.ErrCodeConflict) {
			// Lost the check-then-insert race; the unique index is authoritative.
			return domain.Link{}, domain.ErrCodeConflict
		}

		return domain.Link{}, fmt.Errorf(createErrWrapFmt, err)
	}

	return link, nil
}

func (s *Service) Delete(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return fmt.Errorf("links delete: %w", err)
	}

	return nil
}

// Resolve returns the target URL for a code and tracks the click.
// Tracking is best effort: once the lookup succeeded the redirect must
// complete, so an increment failure is logged and swallowed.
func (s *Service) Resolve(ctx context.Context, code string) (string, error) {
	link, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return "", fmt.Errorf("links resolve: %w", err)
	}

	if err := s.repo.TrackClick(ctx, code); err != nil {
		s.log.Warn("click tracking failed", "code", code, "error", err)
	}

	return link.TargetURL, nil
}

func (s *Service) createWithGeneratedCode(ctx context.Context, targetURL string) (domain.Link, error) {
	for i := 0; i < s.attempts; i++ {
		gen, err := generateCode(s.codeLen)
		if err != nil {
			return domain.Link{}, fmt.Errorf("links generate code: %w", err)
		}

		taken, err := s.repo.Exists(ctx, gen)
		if err != nil {
			return domain.Link{}, fmt.Errorf(createErrWrapFmt, err)
		}

		if taken {
			continue
		}

		link, err := s.repo.Create(ctx, gen, targetURL)
		if errors.Is(err, domain.ErrCodeConflict) {
			continue
		}

		if err != nil {
			return domain.Link{}, fmt.Errorf(createErrWrapFmt, err)
		}

		return link, nil
	}

	return domain.Link{}, fmt.Errorf(createErrWrapFmt, ErrAttemptsExhausted)
}
