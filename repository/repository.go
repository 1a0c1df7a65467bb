// Package repository is the persistence layer: one generic gorm repository per
// entity plus a Store that groups them and runs transactions.
package repository

import (
	"context"
	"errors"

	"github.com/yeremiapane/hotel-brand-api/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Criteria is an equality filter keyed by column name. A nil value matches
// NULL and a slice value matches any element of the slice.
type Criteria map[string]interface{}

// Merge returns a copy of c with every key of other added on top.
func (c Criteria) Merge(other Criteria) Criteria {
	merged := make(Criteria, len(c)+len(other))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// Fields holds a partial update keyed by column name.
type Fields map[string]interface{}

type Repository[T any] struct {
	db       *gorm.DB
	populate []string
}

// New builds a repository. populate names the associations expanded on reads.
func New[T any](db *gorm.DB, populate ...string) *Repository[T] {
	return &Repository[T]{db: db, populate: populate}
}

func (r *Repository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, assoc := range r.populate {
		q = q.Preload(assoc)
	}
	return q
}

func (r *Repository[T]) Find(ctx context.Context, criteria Criteria) ([]T, error) {
	var out []T
	q := r.query(ctx)
	if len(criteria) > 0 {
		q = q.Where(map[string]interface{}(criteria))
	}
	if err := q.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// FindOne returns nil, nil when nothing matches.
func (r *Repository[T]) FindOne(ctx context.Context, criteria Criteria) (*T, error) {
	var out T
	q := r.query(ctx)
	if len(criteria) > 0 {
		q = q.Where(map[string]interface{}(criteria))
	}
	err := q.Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *Repository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return r.FindOne(ctx, Criteria{"id": id})
}

// FindOneAndUpdate applies fields to the first record matching criteria and
// returns the record as stored afterwards, or nil when nothing matched.
func (r *Repository[T]) FindOneAndUpdate(ctx context.Context, criteria Criteria, fields Fields) (*T, error) {
	var updated *T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped := &Repository[T]{db: tx, populate: r.populate}
		current, err := scoped.FindOne(ctx, criteria)
		if err != nil || current == nil {
			return err
		}
		if len(fields) > 0 {
			if err := tx.Model(current).Omit(clause.Associations).Updates(map[string]interface{}(fields)).Error; err != nil {
				return translate(err)
			}
		}
		updated, err = scoped.FindByID(ctx, idOf(current))
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repository[T]) FindByIDAndUpdate(ctx context.Context, id string, fields Fields) (*T, error) {
	return r.FindOneAndUpdate(ctx, Criteria{"id": id}, fields)
}

// FindOneAndDelete removes the first record matching criteria and returns it,
// or nil when nothing matched.
func (r *Repository[T]) FindOneAndDelete(ctx context.Context, criteria Criteria) (*T, error) {
	var deleted *T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped := &Repository[T]{db: tx, populate: r.populate}
		current, err := scoped.FindOne(ctx, criteria)
		if err != nil || current == nil {
			return err
		}
		if err := tx.Delete(current).Error; err != nil {
			return translate(err)
		}
		deleted = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *Repository[T]) FindByIDAndDelete(ctx context.Context, id string) (*T, error) {
	return r.FindOneAndDelete(ctx, Criteria{"id": id})
}

// Create inserts entity without touching any populated association.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error)
}

// Save inserts or fully overwrites entity.
func (r *Repository[T]) Save(ctx context.Context, entity *T) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(entity).Error)
}

func (r *Repository[T]) Count(ctx context.Context, criteria Criteria) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(new(T))
	if len(criteria) > 0 {
		q = q.Where(map[string]interface{}(criteria))
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, translate(err)
	}
	return n, nil
}

type identifiable interface {
	GetID() string
}

func idOf(v interface{}) string {
	if e, ok := v.(identifiable); ok {
		return e.GetID()
	}
	return ""
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return utils.NewConflict("a record with the same unique value already exists")
	default:
		var appErr *utils.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return utils.NewInternal("store operation failed", err)
	}
}
