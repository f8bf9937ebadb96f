package intake

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nekositon/NS-StudioService/internal/domain"
	"github.com/nekositon/NS-StudioService/pkg/dbmetrics"
	"github.com/nekositon/NS-StudioService/pkg/psqlbuilder"
)

// Repository репозиторий для входящих заявок: сообщения с формы обратной
// связи, запросы на сброс пароля и запросы на доступ администратора
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateContactMessage сохраняет сообщение с формы обратной связи
func (r *Repository) CreateContactMessage(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("contact_messages").
		Columns("name", "email", "phone", "service", "message").
		Values(m.Name, m.Email, m.Phone, m.Service, m.Message).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateContactMessage - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&m.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateContactMessage - execute insert: %v", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time
	return m, nil
}

// CreatePasswordResetRequest сохраняет запрос на сброс пароля
func (r *Repository) CreatePasswordResetRequest(ctx context.Context, req *domain.PasswordResetRequest) (*domain.PasswordResetRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("password_reset_requests").
		Columns("email", "status").
		Values(req.Email, domain.RequestPending).
		Suffix("RETURNING id, requested_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreatePasswordResetRequest - build insert query: %v", ErrBuildQuery, err)
	}

	var requestedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &requestedAt); err != nil {
		return nil, fmt.Errorf("%w: CreatePasswordResetRequest - execute insert: %v", ErrExecQuery, err)
	}

	req.Status = domain.RequestPending
	req.RequestedAt = requestedAt.Time
	return req, nil
}

// CreateAdminAccessRequest сохраняет запрос на предоставление роли администратора
func (r *Repository) CreateAdminAccessRequest(ctx context.Context, req *domain.AdminAccessRequest) (*domain.AdminAccessRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("admin_access_requests").
		Columns("user_id", "email", "status").
		Values(req.UserID, req.Email, domain.RequestPending).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateAdminAccessRequest - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateAdminAccessRequest - execute insert: %v", ErrExecQuery, err)
	}

	req.Status = domain.RequestPending
	req.CreatedAt = createdAt.Time
	return req, nil
}
