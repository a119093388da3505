package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Yashshinde43/tinyurl/internal/app/links"
	"github.com/Yashshinde43/tinyurl/internal/domain"
)

// PostgreSQL SQLSTATE error codes.
// See: https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	sqlStateUniqueViolation = "23505"
)

const errOpFmt = "postgres: %s: %w"

// Order matches scanLink.
var sqlLinksSelectCols = []string{
	sqlColID,
	sqlColCode,
	sqlColTargetURL,
	sqlColTotalClicks,
	sqlColLastClicked,
	sqlColCreatedAt,
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

var _ links.Repo = (*Repo)(nil)

func (r *Repo) List(ctx context.Context, search string) ([]domain.Link, error) {
	const op = "list links"

	builder := sq.Select(sqlLinksSelectCols...).
		From(sqlTableLinks).
		OrderBy(sqlColCreatedAt+" DESC", sqlColID+" DESC").
		PlaceholderFormat(sq.Dollar)

	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{sqlColCode: pattern},
			sq.ILike{sqlColTargetURL: pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: build %s: %w", op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf(errOpFmt, op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	out := make([]domain.Link, 0)
	for rows.Next() {
		item, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf(errOpFmt, op, err)
		}

		out = append(out, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(errOpFmt, op, err)
	}

	return out, nil
}

func (r *Repo) GetByCode(ctx context.Context, code string) (domain.Link, error) {
	link, err := scanLink(r.db.QueryRowContext(ctx, sqlGetLinkByCode, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Link{}, domain.ErrNotFound
		}

		return domain.Link{}, fmt.Errorf(errOpFmt, "get link by code", err)
	}

	return link, nil
}

func (r *Repo) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, sqlLinkExists, code).Scan(&exists); err != nil {
		return false, fmt.Errorf(errOpFmt, "link exists", err)
	}

	return exists, nil
}

func (r *Repo) Create(ctx context.Context, code, targetURL string) (domain.Link, error) {
	link, err := scanLink(r.db.QueryRowContext(ctx, sqlCreateLink, code, targetURL))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Link{}, domain.ErrCodeConflict
		}

		return domain.Link{}, fmt.Errorf(errOpFmt, "create link", err)
	}

	return link, nil
}

func (r *Repo) Delete(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, sqlDeleteLink, code)
	if err != nil {
		return fmt.Errorf(errOpFmt, "delete link", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf(errOpFmt, "delete link", err)
	}

	if n == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *Repo) TrackClick(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx, sqlTrackClick, code)
	if err != nil {
		return fmt.Errorf(errOpFmt, "track click", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf(errOpFmt, "track click", err)
	}

	if n == 0 {
		// Deleted between lookup and increment.
		return domain.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLink(row rowScanner) (domain.Link, error) {
	var (
		item        domain.Link
		lastClicked sql.NullTime
	)

	err := row.Scan(
		&item.ID,
		&item.Code,
		&item.TargetURL,
		&item.TotalClicks,
		&lastClicked,
		&item.CreatedAt,
	)
	if err != nil {
		return domain.Link{}, err
	}

	if lastClicked.Valid {
		t := lastClicked.Time
		item.LastClicked = &t
	}

	return item, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateUniqueViolation
	}

	return false
}
