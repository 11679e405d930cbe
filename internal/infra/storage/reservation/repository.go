package reservation

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

var reservationColumns = []string{
	"id",
	"kind",
	"resource_id",
	"period_id",
	"resource_date",
	"resource_weekday",
	"resource_time",
	"assistant_id",
	"assistant_type",
	"assistant_name",
	"booked_by",
	"booked_at",
	"updated_by",
	"updated_at",
	"comment",
	"status",
	"status_message",
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с бронированиями ассистентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"kind",
			"resource_id",
			"period_id",
			"resource_date",
			"resource_weekday",
			"resource_time",
			"assistant_id",
			"assistant_type",
			"assistant_name",
			"booked_by",
			"booked_at",
			"comment",
			"status",
			"status_message",
		).
		Values(
			res.ID,
			res.Kind,
			res.ResourceID,
			res.PeriodID,
			res.ResourceDate,
			res.ResourceWeekday,
			res.ResourceTime,
			res.AssistantID,
			res.AssistantType,
			res.AssistantName,
			res.BookedBy,
			res.BookedAt,
			res.Comment,
			res.Status,
			res.StatusMessage,
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate получает бронирование и блокирует строку до конца транзакции
// Вне транзакции ведет себя как GetByID
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Reservation, error) {
	return r.get(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) get(ctx context.Context, id string, forUpdate bool) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return res, nil
}

// Update сохраняет изменяемые поля бронирования: статус, сообщение,
// комментарий и отметку об изменении
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", res.Status).
		Set("status_message", res.StatusMessage).
		Set("comment", res.Comment).
		Set("updated_by", res.UpdatedBy).
		Set("updated_at", res.UpdatedAt).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// List получает бронирования по фильтру
// Сортировка: дата ресурса, время, момент создания
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations")

	if filter.Kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": *filter.Kind})
	}
	if filter.ResourceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"resource_id": *filter.ResourceID})
	}
	if filter.PeriodID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"period_id": *filter.PeriodID})
	}
	if filter.AssistantID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"assistant_id": *filter.AssistantID})
	}
	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"resource_date": *filter.FromDate})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statuses})
	}

	query, args, err := selectBuilder.
		OrderBy("resource_date ASC", "resource_time ASC", "booked_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}

func scanReservation(row scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var updatedBy, comment, statusMessage sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Kind,
		&res.ResourceID,
		&res.PeriodID,
		&res.ResourceDate,
		&res.ResourceWeekday,
		&res.ResourceTime,
		&res.AssistantID,
		&res.AssistantType,
		&res.AssistantName,
		&res.BookedBy,
		&res.BookedAt,
		&updatedBy,
		&updatedAt,
		&comment,
		&res.Status,
		&statusMessage,
	)
	if err != nil {
		return nil, err
	}

	if updatedBy.Valid {
		res.UpdatedBy = &updatedBy.String
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		res.UpdatedAt = &t
	}
	if comment.Valid {
		res.Comment = &comment.String
	}
	if statusMessage.Valid {
		res.StatusMessage = &statusMessage.String
	}

	return &res, nil
}
