package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"villa-api-backend/internal/model"
)

// Store groups the repositories backed by one database handle.
type Store interface {
	Villas() Repository[model.Villa]
	VillaNumbers() Repository[model.VillaNumber]
	Ping(ctx context.Context) error
}

// Repository is the data-access contract for one entity kind.
//
// Get reports absence as (nil, nil). Update and Remove return ErrNotFound when
// no stored row has the entity's primary key. Every other failure is a
// *PersistenceError.
type Repository[T any] interface {
	GetAll(ctx context.Context, preds ...Predicate) ([]T, error)
	Get(ctx context.Context, tracked bool, preds ...Predicate) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Remove(ctx context.Context, entity *T) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db           *gorm.DB
	villas       Repository[model.Villa]
	villaNumbers Repository[model.VillaNumber]
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{
		db:           db,
		villas:       NewGormRepository[model.Villa](db, "id"),
		villaNumbers: NewGormRepository[model.VillaNumber](db, "villa_no"),
	}
}

func (s *gormStore) Villas() Repository[model.Villa] { return s.villas }
func (s *gormStore) VillaNumbers() Repository[model.VillaNumber] { return s.villaNumbers }

// Ping checks that the underlying connection pool can reach the database.
func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return persistenceErr("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return persistenceErr("ping", err)
	}
	return nil
}

// gormRepository is a generic Repository over a GORM model type.
type gormRepository[T any] struct {
	db      *gorm.DB
	orderBy string
}

// NewGormRepository creates a repository for T. orderBy names the column that
// gives GetAll a stable order, normally the primary key.
func NewGormRepository[T any](db *gorm.DB, orderBy string) Repository[T] {
	return &gormRepository[T]{db: db, orderBy: orderBy}
}

func (r *gormRepository[T]) GetAll(ctx context.Context, preds ...Predicate) ([]T, error) {
	var out []T
	q := r.db.WithContext(ctx).Scopes(preds...)
	if r.orderBy != "" {
		q = q.Order(r.orderBy)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, persistenceErr("get all", err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (r *gormRepository[T]) Get(ctx context.Context, tracked bool, preds ...Predicate) (*T, error) {
	q := r.db.WithContext(ctx)
	if !tracked {
		// Detached from any statement state carried by the shared handle.
		q = q.Session(&gorm.Session{NewDB: true})
	}

	var out T
	res := q.Scopes(preds...).Limit(1).Find(&out)
	if res.Error != nil {
		return nil, persistenceErr("get", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &out, nil
}

func (r *gormRepository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return persistenceErr("create", err)
	}
	return nil
}

// Update replaces every column of the row identified by entity's primary key,
// except the creation timestamp.
func (r *gormRepository[T]) Update(ctx context.Context, entity *T) error {
	res := r.db.WithContext(ctx).
		Model(entity).
		Select("*").
		Omit(clause.Associations, "created_at").
		Updates(entity)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrMissingWhereClause) {
			return ErrNotFound
		}
		return persistenceErr("update", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository[T]) Remove(ctx context.Context, entity *T) error {
	res := r.db.WithContext(ctx).Delete(entity)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrMissingWhereClause) {
			return ErrNotFound
		}
		return persistenceErr("remove", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func persistenceErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
