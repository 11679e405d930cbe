package assistant

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

// Repository репозиторий для работы с ассистентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ассистентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает ассистента по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Assistant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"assistant_type",
		"fullname",
		"disabled",
	).
		From("assistants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var assistant domain.Assistant
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&assistant.ID,
		&assistant.Type,
		&assistant.Fullname,
		&assistant.Disabled,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssistantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan assistant: %w", ErrScanRow, err)
	}

	return &assistant, nil
}

// SetDisabled отключает или включает ассистента
func (r *Repository) SetDisabled(ctx context.Context, id string, disabled bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("assistants").
		Set("disabled", disabled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetDisabled - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SetDisabled", query, args)
}

// Delete удаляет ассистента
// Бронирования остаются в истории: в них денормализованы тип и имя
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("assistants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAssistantNotFound
	}

	return nil
}
