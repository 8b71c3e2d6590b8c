package repository

import (
	"context"
	"time"

	"eduman-backend/internal/database/models"
	"eduman-backend/internal/requestctx"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// updateOmit lists what an update must never touch: creation audit fields and associations
var updateOmit = []string{"CreatedAt", "CreatedBy", clause.Associations}

// Repository implements CRUD for one model type.
// Entity-specific repositories embed it and add their own queries.
type Repository[T any] struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a new generic repository
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db, now: time.Now}
}

// conn resolves the connection for ctx, joining an active unit of work
func (r *Repository[T]) conn(ctx context.Context) *gorm.DB {
	return Conn(ctx, r.db)
}

// Create inserts entity, stamping creation audit fields first
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if a, ok := any(entity).(models.Auditable); ok {
		a.StampCreated(requestctx.ActorOrSystem(ctx), r.now())
	}
	return r.conn(ctx).Create(entity).Error
}

// GetByID retrieves an entity by ID; gorm.ErrRecordNotFound when missing
func (r *Repository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	if err := r.conn(ctx).First(&entity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// Exists reports whether a row with id exists
func (r *Repository[T]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// list returns all rows ordered by the given column expression
func (r *Repository[T]) list(ctx context.Context, order string, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	var entities []T
	q := r.conn(ctx).Scopes(scopes...)
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Update saves all fields of entity except the creation audit fields
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	if a, ok := any(entity).(models.Auditable); ok {
		a.StampModified(requestctx.ActorOrSystem(ctx), r.now())
	}
	return r.conn(ctx).Omit(updateOmit...).Save(entity).Error
}

// Delete physically removes the row with id
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.conn(ctx).Delete(new(T), "id = ?", id).Error
}

// Count returns the number of rows
func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.conn(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// whereEq is a scope filtering on column = value
func whereEq(column string, value interface{}) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}
