package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/junksamiad/xmas-donation-app/internal/model"
)

// GiftIdeaRepository data access for gift-idea templates.
type GiftIdeaRepository interface {
	Create(ctx context.Context, idea *model.GiftIdea) error
	// FindExact matches (age, gender, category) exactly.
	FindExact(ctx context.Context, age int, gender, category string) (*model.GiftIdea, error)
	// FindUncategorized matches (age, gender) with no category.
	FindUncategorized(ctx context.Context, age int, gender string) (*model.GiftIdea, error)
	ListByAge(ctx context.Context, age int) ([]model.GiftIdea, error)
	ListAll(ctx context.Context) ([]model.GiftIdea, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// giftIdeaRepo GORM implementation of GiftIdeaRepository.
type giftIdeaRepo struct {
	db *gorm.DB
}

// NewGiftIdeaRepo creates a GiftIdeaRepository.
func NewGiftIdeaRepo(db *gorm.DB) GiftIdeaRepository {
	return &giftIdeaRepo{db: db}
}

func (r *giftIdeaRepo) Create(ctx context.Context, idea *model.GiftIdea) error {
	return r.db.WithContext(ctx).Create(idea).Error
}

func (r *giftIdeaRepo) FindExact(ctx context.Context, age int, gender, category string) (*model.GiftIdea, error) {
	var idea model.GiftIdea
	err := r.db.WithContext(ctx).
		Where("age = ? AND gender = ? AND category = ?", age, gender, category).
		First(&idea).Error
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

func (r *giftIdeaRepo) FindUncategorized(ctx context.Context, age int, gender string) (*model.GiftIdea, error) {
	var idea model.GiftIdea
	err := r.db.WithContext(ctx).
		Where("age = ? AND gender = ? AND category IS NULL", age, gender).
		First(&idea).Error
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

func (r *giftIdeaRepo) ListByAge(ctx context.Context, age int) ([]model.GiftIdea, error) {
	var ideas []model.GiftIdea
	err := r.db.WithContext(ctx).
		Where("age = ?", age).
		Order("gender ASC").
		Find(&ideas).Error
	return ideas, err
}

func (r *giftIdeaRepo) ListAll(ctx context.Context) ([]model.GiftIdea, error) {
	var ideas []model.GiftIdea
	err := r.db.WithContext(ctx).
		Order("age ASC, gender ASC").
		Find(&ideas).Error
	return ideas, err
}

func (r *giftIdeaRepo) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.GiftIdea{})
	return res.RowsAffected, res.Error
}
