package period

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-AssistantBooking/pkg/psqlbuilder"
)

var periodColumns = []string{
	"id",
	"name",
	"date_from",
	"date_to",
	"status",
	"description",
	"created_at",
	"updated_at",
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с периодами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория периодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает период по ID
// Внутри транзакции строка блокируется FOR SHARE, чтобы смена статуса
// не проходила параллельно с обработкой бронирования. В READ ONLY
// транзакции блокировка не берется
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(periodColumns...).
		From("periods").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) && !dbmetrics.IsReadOnly(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR SHARE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	period, err := scanPeriod(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan period: %w", ErrScanRow, err)
	}

	return period, nil
}

// Create создает новый период
func (r *Repository) Create(ctx context.Context, period *domain.Period) (*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("periods").
		Columns("id", "name", "date_from", "date_to", "status", "description").
		Values(period.ID, period.Name, period.From, period.To, period.Status, period.Description).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time

	return period, nil
}

// List возвращает периоды, начиная с самого позднего
func (r *Repository) List(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(periodColumns...).
		From("periods")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.
		OrderBy("date_from DESC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]*domain.Period, 0)
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return periods, nil
}

// UpdateStatus меняет статус периода
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.PeriodStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("periods").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPeriodNotFound
	}

	return nil
}

func scanPeriod(row scanner) (*domain.Period, error) {
	var period domain.Period
	var description sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&period.ID,
		&period.Name,
		&period.From,
		&period.To,
		&period.Status,
		&description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		period.Description = &description.String
	}
	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time

	return &period, nil
}
