package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/junksamiad/xmas-donation-app/internal/model"
)

// DonationRepository data access for the donation ledger.
type DonationRepository interface {
	Create(ctx context.Context, donation *model.Donation) error
	GetByID(ctx context.Context, id string) (*model.Donation, error)
	// List pages the ledger newest-first with child/department relations.
	// donationType "" means both types.
	List(ctx context.Context, donationType string, offset, limit int) ([]model.Donation, int64, error)
	// ListAll returns the full ledger with relations, newest-first.
	// The ledger is bounded (hundreds of rows), so aggregations load it whole.
	ListAll(ctx context.Context) ([]model.Donation, error)
	Latest(ctx context.Context) (*model.Donation, error)
	UpdateAmount(ctx context.Context, id string, amount float64) error
	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context, donationType string) (int64, error)
	SumCashAmount(ctx context.Context) (float64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// donationRepo GORM implementation of DonationRepository.
type donationRepo struct {
	db *gorm.DB
}

// NewDonationRepo creates a DonationRepository.
func NewDonationRepo(db *gorm.DB) DonationRepository {
	return &donationRepo{db: db}
}

func (r *donationRepo) Create(ctx context.Context, donation *model.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepo) GetByID(ctx context.Context, id string) (*model.Donation, error) {
	var donation model.Donation
	err := r.db.WithContext(ctx).
		Preload("Child").
		Preload("Department").
		Where("donation_id = ?", id).
		First(&donation).Error
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepo) List(ctx context.Context, donationType string, offset, limit int) ([]model.Donation, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Donation{})
	if donationType != "" {
		q = q.Where("donation_type = ?", donationType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var donations []model.Donation
	err := q.
		Preload("Child").
		Preload("Department").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error
	return donations, total, err
}

func (r *donationRepo) ListAll(ctx context.Context) ([]model.Donation, error) {
	var donations []model.Donation
	err := r.db.WithContext(ctx).
		Preload("Child").
		Preload("Department").
		Order("created_at DESC").
		Find(&donations).Error
	return donations, err
}

func (r *donationRepo) Latest(ctx context.Context) (*model.Donation, error) {
	var donation model.Donation
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		First(&donation).Error
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepo) UpdateAmount(ctx context.Context, id string, amount float64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Where("donation_id = ?", id).
		Update("amount", amount)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *donationRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Donation{}).Count(&count).Error
	return count, err
}

func (r *donationRepo) CountByType(ctx context.Context, donationType string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Where("donation_type = ?", donationType).
		Count(&count).Error
	return count, err
}

func (r *donationRepo) SumCashAmount(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Where("donation_type = ?", model.DonationTypeCash).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *donationRepo) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.Donation{})
	return res.RowsAffected, res.Error
}
