package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/junksamiad/xmas-donation-app/config"
	"github.com/junksamiad/xmas-donation-app/internal/dto"
	"github.com/junksamiad/xmas-donation-app/internal/model"
	"github.com/junksamiad/xmas-donation-app/internal/repository"
)

// ── donation module errors ──

var (
	ErrDonationNotFound     = errors.New("donation not found")
	ErrChildAlreadyAssigned = errors.New("this child has already been assigned a donation")
	ErrCashAmountRequired   = errors.New("cash donations must include an amount")
	ErrGiftAmountNotAllowed = errors.New("gift donations must not include an amount")
	ErrAmountNotPositive    = errors.New("donation amount must be greater than zero")
	ErrAmountBelowMinimum   = errors.New("donation amount is below the minimum")
	ErrNotCashDonation      = errors.New("only cash donations carry an amount")
)

// DonationService donation assignment and ledger business logic.
type DonationService interface {
	// Create records a pledge and marks the child assigned in one
	// transaction. At most one donation can ever exist per child: the
	// child update is a conditional "assigned = false" write, and a
	// zero-rows result aborts the transaction with ErrChildAlreadyAssigned.
	Create(ctx context.Context, req *dto.CreateDonationRequest) (*dto.DonationResponse, error)
	// UpdateAmount corrects the amount of an existing cash donation.
	// Gift donations are rejected; the floor is the configured minimum.
	UpdateAmount(ctx context.Context, donationID string, newAmount float64) (*dto.DonationResponse, error)
	List(ctx context.Context, req *dto.DonationListRequest) ([]dto.DonationRowResponse, int64, error)
	Latest(ctx context.Context) (*dto.LatestDonationResponse, error)
	Totals(ctx context.Context) (*dto.DonationTotalsResponse, error)
}

type donationService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDonationService creates a DonationService.
func NewDonationService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) DonationService {
	return &donationService{cfg: cfg, repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// Create — pledge a donation for a child
// ═══════════════════════════════════════════════════════════
//
// Validation order:
//  1. amount/type coupling (cash needs amount > 0, gift forbids one)
//  2. child exists and is still unassigned
//  3. department exists
//
// Then a single transaction:
//  a. conditionally flip children.assigned where it is still false —
//     zero rows affected means a concurrent donor won the child
//  b. insert the donation with name snapshots taken inside the tx
//
// Both writes commit together or neither does.

func (s *donationService) Create(ctx context.Context, req *dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	switch req.DonationType {
	case model.DonationTypeCash:
		if req.Amount == nil {
			return nil, ErrCashAmountRequired
		}
		if *req.Amount <= 0 {
			return nil, ErrAmountNotPositive
		}
	case model.DonationTypeGift:
		if req.Amount != nil {
			return nil, ErrGiftAmountNotAllowed
		}
	}

	child, err := s.repo.Child.GetByID(ctx, req.ChildID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChildNotFound
		}
		s.logger.Error("failed to get child", zap.String("id", req.ChildID), zap.Error(err))
		return nil, err
	}
	if child.Assigned {
		return nil, ErrChildAlreadyAssigned
	}

	dept, err := s.repo.Department.GetByID(ctx, req.DepartmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("failed to get department", zap.String("id", req.DepartmentID), zap.Error(err))
		return nil, err
	}

	tx, err := s.repo.BeginTx()
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	// conditional update closes the double-assignment race: under any
	// isolation level only one transaction can move assigned false→true
	rows, err := txRepo.Child.MarkAssigned(ctx, req.ChildID)
	if err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("failed to mark child assigned", zap.String("id", req.ChildID), zap.Error(err))
		return nil, err
	}
	if rows == 0 {
		if tx != nil {
			tx.Rollback()
		}
		return nil, ErrChildAlreadyAssigned
	}

	donation := &model.Donation{
		ChildID:        child.ChildID,
		ChildName:      child.Recipient,
		DonorName:      req.DonorName,
		DonorEmail:     req.DonorEmail,
		DepartmentID:   dept.DepartmentID,
		DepartmentName: dept.Name,
		DonationType:   req.DonationType,
		Amount:         req.Amount,
	}

	if err := txRepo.Donation.Create(ctx, donation); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("failed to create donation", zap.Error(err))
		return nil, err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("failed to commit donation transaction", zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("donation created",
		zap.String("donation_id", donation.DonationID),
		zap.String("child_id", donation.ChildID),
		zap.String("department", donation.DepartmentName),
		zap.String("type", donation.DonationType),
	)

	return toDonationResponse(donation), nil
}

// ────────────────────── UpdateAmount ──────────────────────

func (s *donationService) UpdateAmount(ctx context.Context, donationID string, newAmount float64) (*dto.DonationResponse, error) {
	donation, err := s.repo.Donation.GetByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		s.logger.Error("failed to get donation", zap.String("id", donationID), zap.Error(err))
		return nil, err
	}

	if !donation.IsCash() {
		return nil, ErrNotCashDonation
	}
	if newAmount <= 0 {
		return nil, ErrAmountNotPositive
	}
	if newAmount < s.cfg.Donation.MinimumCashAmount {
		return nil, ErrAmountBelowMinimum
	}

	if err := s.repo.Donation.UpdateAmount(ctx, donationID, newAmount); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		s.logger.Error("failed to update donation amount", zap.String("id", donationID), zap.Error(err))
		return nil, err
	}

	donation.Amount = &newAmount
	return toDonationResponse(donation), nil
}

// ────────────────────── List ──────────────────────

func (s *donationService) List(ctx context.Context, req *dto.DonationListRequest) ([]dto.DonationRowResponse, int64, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	donations, total, err := s.repo.Donation.List(ctx, req.Type, (page-1)*pageSize, pageSize)
	if err != nil {
		s.logger.Error("failed to list donations", zap.Error(err))
		return nil, 0, err
	}

	rows := make([]dto.DonationRowResponse, 0, len(donations))
	for i := range donations {
		d := &donations[i]
		row := dto.DonationRowResponse{
			ID:             d.DonationID,
			ChildName:      d.ChildName,
			DonorName:      d.DonorName,
			DonorEmail:     d.DonorEmail,
			DepartmentName: d.DepartmentName,
			DonationType:   d.DonationType,
			Amount:         d.Amount,
			CreatedAt:      d.CreatedAt.Format(time.RFC3339),
		}
		if d.Child != nil {
			row.ChildAge = d.Child.Age
			row.ChildGender = d.Child.Gender
			row.GiftIdeas = d.Child.GiftIdeas
		}
		rows = append(rows, row)
	}

	return rows, total, nil
}

// ────────────────────── Latest ──────────────────────

func (s *donationService) Latest(ctx context.Context) (*dto.LatestDonationResponse, error) {
	donation, err := s.repo.Donation.Latest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // empty ledger: the ticker simply has nothing to show
		}
		s.logger.Error("failed to get latest donation", zap.Error(err))
		return nil, err
	}

	return &dto.LatestDonationResponse{
		DonorName:      donation.DonorName,
		DepartmentName: donation.DepartmentName,
		DonationType:   donation.DonationType,
		Amount:         donation.Amount,
		CreatedAt:      donation.CreatedAt.Format(time.RFC3339),
		MinutesAgo:     int(time.Since(donation.CreatedAt).Minutes()),
	}, nil
}

// ────────────────────── Totals ──────────────────────

func (s *donationService) Totals(ctx context.Context) (*dto.DonationTotalsResponse, error) {
	total, err := s.repo.Donation.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count donations", zap.Error(err))
		return nil, err
	}
	gifts, err := s.repo.Donation.CountByType(ctx, model.DonationTypeGift)
	if err != nil {
		return nil, err
	}
	cash, err := s.repo.Donation.CountByType(ctx, model.DonationTypeCash)
	if err != nil {
		return nil, err
	}
	cashSum, err := s.repo.Donation.SumCashAmount(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DonationTotalsResponse{
		TotalDonations:     total,
		TotalGiftDonations: gifts,
		TotalCashDonations: cash,
		TotalCashAmount:    cashSum,
	}, nil
}

// ── helpers ──

func toDonationResponse(d *model.Donation) *dto.DonationResponse {
	return &dto.DonationResponse{
		ID:             d.DonationID,
		ChildID:        d.ChildID,
		ChildName:      d.ChildName,
		DonorName:      d.DonorName,
		DonorEmail:     d.DonorEmail,
		DepartmentID:   d.DepartmentID,
		DepartmentName: d.DepartmentName,
		DonationType:   d.DonationType,
		Amount:         d.Amount,
		CreatedAt:      d.CreatedAt.Format(time.RFC3339),
	}
}
