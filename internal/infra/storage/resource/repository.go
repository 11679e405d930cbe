package resource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	"github.com/m04kA/SMC-AssistantBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-AssistantBooking/pkg/psqlbuilder"
)

var resourceColumns = []string{
	"id",
	"kind",
	"period_id",
	"resource_date",
	"start_time",
	"end_time",
	"color",
	"description",
	"slot_mode",
	"assistant_slots",
	"assistant_allocations",
	"accepted_reservation_ids",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с ресурсами (таймслоты и активности)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый ресурс вместе с его реестром мест
func (r *Repository) Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("resources").
		Columns(
			"id",
			"kind",
			"period_id",
			"resource_date",
			"start_time",
			"end_time",
			"color",
			"description",
			"slot_mode",
			"assistant_slots",
			"assistant_allocations",
			"accepted_reservation_ids",
		).
		Values(
			res.ID,
			res.Kind,
			res.PeriodID,
			res.Date,
			res.StartTime,
			res.EndTime,
			res.Color,
			res.Description,
			res.SlotMode,
			toInt64Array(res.Ledger.Slots),
			toInt64Array(res.Ledger.Allocations),
			pq.StringArray(res.Ledger.Accepted),
		).
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

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает ресурс по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate получает ресурс по ID и блокирует строку до конца транзакции
// Вне транзакции ведет себя как GetByID
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Resource, error) {
	return r.get(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) get(ctx context.Context, id string, forUpdate bool) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanResource(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan resource: %w", ErrScanRow, err)
	}

	return res, nil
}

// UpdateLedger сохраняет реестр мест ресурса
func (r *Repository) UpdateLedger(ctx context.Context, id string, ledger domain.Ledger) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("resources").
		Set("assistant_slots", toInt64Array(ledger.Slots)).
		Set("assistant_allocations", toInt64Array(ledger.Allocations)).
		Set("accepted_reservation_ids", pq.StringArray(ledger.Accepted)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateLedger - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateLedger - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateLedger - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrResourceNotFound
	}

	return nil
}

// Delete удаляет ресурс, бронирования удаляются каскадно
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrResourceNotFound
	}

	return nil
}

// List возвращает ресурсы по фильтру, упорядоченные по дате и времени начала
// Фильтр по статусу периода выполняется через JOIN с periods
func (r *Repository) List(ctx context.Context, filter domain.ResourceFilter) ([]*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := listQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]*domain.Resource, 0)
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return resources, nil
}

func listQuery(filter domain.ResourceFilter) (string, []interface{}, error) {
	columns := make([]string, len(resourceColumns))
	for i, c := range resourceColumns {
		columns[i] = "r." + c
	}

	selectBuilder := psqlbuilder.Select(columns...).
		From("resources r")

	if filter.PeriodStatus != nil {
		selectBuilder = selectBuilder.
			Join("periods p ON p.id = r.period_id").
			Where(squirrel.Eq{"p.status": *filter.PeriodStatus})
	}
	if filter.Kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.kind": *filter.Kind})
	}
	if filter.PeriodID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.period_id": *filter.PeriodID})
	}
	if filter.FromDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"r.resource_date": *filter.FromDate})
	}

	return selectBuilder.
		OrderBy("r.resource_date ASC", "r.start_time ASC").
		ToSql()
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanResource(row scanner) (*domain.Resource, error) {
	var res domain.Resource
	var color, description sql.NullString
	var slots, allocations pq.Int64Array
	var accepted pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Kind,
		&res.PeriodID,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&color,
		&description,
		&res.SlotMode,
		&slots,
		&allocations,
		&accepted,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if color.Valid {
		res.Color = &color.String
	}
	if description.Valid {
		res.Description = &description.String
	}
	res.Ledger = domain.Ledger{
		Slots:       fromInt64Array(slots),
		Allocations: fromInt64Array(allocations),
		Accepted:    []string(accepted),
	}
	if res.Ledger.Accepted == nil {
		res.Ledger.Accepted = []string{}
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func toInt64Array(values []int) pq.Int64Array {
	out := make(pq.Int64Array, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}
	return out
}

func fromInt64Array(values pq.Int64Array) []int {
	if values == nil {
		return nil
	}
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}
