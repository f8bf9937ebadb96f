package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/pkg/dbmetrics"
	"github.com/nekositon/NS-StudioService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с каталогом услуг
// Каталог заполняется миграциями и на рантайме только читается
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все услуги в порядке их отображения на сайте
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectServices().
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan service: %v", ErrScanRow, err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByTitle получает услугу по точному названию
func (r *Repository) GetByTitle(ctx context.Context, title string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectServices().
		Where(squirrel.Eq{"title": title}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTitle - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTitle - scan service: %v", ErrScanRow, err)
	}

	return s, nil
}

func selectServices() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"title",
		"subtitle",
		"description",
		"price",
		"image",
		"created_at",
	).From("services")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	var createdAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Subtitle,
		&s.Description,
		&s.Price,
		&s.Image,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	return &s, nil
}
