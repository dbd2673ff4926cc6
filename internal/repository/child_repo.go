package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/junksamiad/xmas-donation-app/internal/model"
)

// ChildFilter narrows the unassigned-child pool. Nil fields mean no
// constraint on that dimension.
type ChildFilter struct {
	Gender *string
	Age    *int
}

// ChildRepository data access for beneficiary records.
type ChildRepository interface {
	Create(ctx context.Context, child *model.Child) error
	GetByID(ctx context.Context, id string) (*model.Child, error)
	// ListUnassigned returns unassigned children in one priority pool
	// matching the filter.
	ListUnassigned(ctx context.Context, filter ChildFilter, priority bool) ([]model.Child, error)
	// MarkAssigned flips assigned to true only if it is currently false,
	// returning the number of rows changed. Zero rows means the child was
	// already assigned (or does not exist) — the caller's conflict signal.
	MarkAssigned(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountAssigned(ctx context.Context) (int64, error)
	CountUnassigned(ctx context.Context) (int64, error)
	DeleteUnassigned(ctx context.Context) (int64, error)
}

// childRepo GORM implementation of ChildRepository.
type childRepo struct {
	db *gorm.DB
}

// NewChildRepo creates a ChildRepository.
func NewChildRepo(db *gorm.DB) ChildRepository {
	return &childRepo{db: db}
}

func (r *childRepo) Create(ctx context.Context, child *model.Child) error {
	return r.db.WithContext(ctx).Create(child).Error
}

func (r *childRepo) GetByID(ctx context.Context, id string) (*model.Child, error) {
	var child model.Child
	err := r.db.WithContext(ctx).
		Where("child_id = ?", id).
		First(&child).Error
	if err != nil {
		return nil, err
	}
	return &child, nil
}

func (r *childRepo) ListUnassigned(ctx context.Context, filter ChildFilter, priority bool) ([]model.Child, error) {
	q := r.db.WithContext(ctx).
		Where("assigned = ?", false).
		Where("priority = ?", priority)

	if filter.Gender != nil {
		q = q.Where("gender = ?", *filter.Gender)
	}
	if filter.Age != nil {
		q = q.Where("age = ?", *filter.Age)
	}

	var children []model.Child
	err := q.Find(&children).Error
	return children, err
}

func (r *childRepo) MarkAssigned(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Child{}).
		Where("child_id = ? AND assigned = ?", id, false).
		Update("assigned", true)
	return res.RowsAffected, res.Error
}

func (r *childRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Child{}).Count(&count).Error
	return count, err
}

func (r *childRepo) CountAssigned(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Child{}).
		Where("assigned = ?", true).
		Count(&count).Error
	return count, err
}

func (r *childRepo) CountUnassigned(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Child{}).
		Where("assigned = ?", false).
		Count(&count).Error
	return count, err
}

func (r *childRepo) DeleteUnassigned(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("assigned = ?", false).
		Delete(&model.Child{})
	return res.RowsAffected, res.Error
}
