// Package repository is the entity store: generic gorm-backed repositories
// for users, catalog entries and favorite relations.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// Repository gives single-table access to records of type T. Every call
// runs on a session bound to the caller's context.
type Repository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) Create(ctx context.Context, record *T) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, translate(err)
	}
	return &record, nil
}

// List returns every record in insertion order.
func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	records := []T{}
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindOne returns the first record matching conds (column name -> value).
func (r *Repository[T]) FindOne(ctx context.Context, conds map[string]interface{}) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).Where(conds).Order("id").First(&record).Error; err != nil {
		return nil, translate(err)
	}
	return &record, nil
}

func (r *Repository[T]) FindAll(ctx context.Context, conds map[string]interface{}) ([]T, error) {
	records := []T{}
	if err := r.db.WithContext(ctx).Where(conds).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes the record by primary key.
func (r *Repository[T]) Delete(ctx context.Context, record *T) error {
	res := r.db.WithContext(ctx).Delete(record)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// IsUniqueViolation reports whether err comes from a unique index, both for
// postgres (SQLSTATE 23505) and sqlite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
