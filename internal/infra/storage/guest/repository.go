package guest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/hotelpms/reservation-service/internal/domain"
	"github.com/hotelpms/reservation-service/pkg/dbmetrics"
	"github.com/hotelpms/reservation-service/pkg/psqlbuilder"
)

const table = "guests"

var columns = []string{
	"id",
	"name",
	"email",
	"phone",
	"created_at",
	"updated_at",
}

// Repository persists guests.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a guest repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new guest.
func (r *Repository) Create(ctx context.Context, g *domain.Guest) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("name", "email", "phone").
		Values(g.Name, g.Email, g.Phone).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&g.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time

	return g, nil
}

// GetByID fetches a guest by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByEmail fetches a guest by email.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Guest, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email}, "GetByEmail")
}

func (r *Repository) getBy(ctx context.Context, cond squirrel.Eq, op string) (*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(cond).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	g, err := scanGuest(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan guest: %v", ErrScanRow, op, err)
	}

	return g, nil
}

// Search fetches guests whose name contains the query, case-insensitive.
// An empty query lists everyone.
func (r *Repository) Search(ctx context.Context, name string) ([]*domain.Guest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("name ASC, id ASC")

	if name != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"name": "%" + name + "%"})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: Search - scan row: %v", ErrScanRow, err)
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Search - rows error: %v", ErrScanRow, err)
	}

	return guests, nil
}

// Update rewrites a guest's contact details.
func (r *Repository) Update(ctx context.Context, g *domain.Guest) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", g.Name).
		Set("email", g.Email).
		Set("phone", g.Phone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": g.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrGuestNotFound
	}

	return nil
}

// Delete removes a guest.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrGuestNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGuest(row rowScanner) (*domain.Guest, error) {
	var g domain.Guest
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Email,
		&g.Phone,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time
	return &g, nil
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "duplicate key")
}
