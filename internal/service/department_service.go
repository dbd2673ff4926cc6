package service

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/junksamiad/xmas-donation-app/internal/dto"
	"github.com/junksamiad/xmas-donation-app/internal/model"
	"github.com/junksamiad/xmas-donation-app/internal/repository"
)

// ── department module errors ──

var (
	ErrDepartmentNotFound   = errors.New("the selected department could not be found")
	ErrDepartmentNameExists = errors.New("a department with that name already exists")
)

// defaultTopDepartments is the leaderboard size.
const defaultTopDepartments = 3

// DepartmentService department business logic.
type DepartmentService interface {
	// List returns active departments (the public dropdown); inactive
	// ones are included only when requested by the admin view.
	List(ctx context.Context, req *dto.DepartmentListRequest) ([]dto.DepartmentResponse, error)
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	SetActive(ctx context.Context, id string, active bool) error
	// Stats returns per-active-department gift/cash counts and cash sums.
	Stats(ctx context.Context) ([]dto.DepartmentStatsResponse, error)
	// TopByDonationCount ranks departments by combined donation count.
	TopByDonationCount(ctx context.Context, limit int) ([]dto.TopDepartmentResponse, error)
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService creates a DepartmentService.
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *departmentService) List(ctx context.Context, req *dto.DepartmentListRequest) ([]dto.DepartmentResponse, error) {
	var depts []model.Department
	var err error

	if req != nil && req.IncludeInactive {
		depts, err = s.repo.Department.ListAll(ctx)
	} else {
		depts, err = s.repo.Department.ListActive(ctx)
	}
	if err != nil {
		s.logger.Error("failed to list departments", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		result = append(result, dto.DepartmentResponse{
			ID:     depts[i].DepartmentID,
			Name:   depts[i].Name,
			Active: depts[i].Active,
		})
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	existing, err := s.repo.Department.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("failed to check department name", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrDepartmentNameExists
	}

	dept := &model.Department{
		Name:   req.Name,
		Active: true,
	}
	if err := s.repo.Department.Create(ctx, dept); err != nil {
		s.logger.Error("failed to create department", zap.Error(err))
		return nil, err
	}

	return &dto.DepartmentResponse{
		ID:     dept.DepartmentID,
		Name:   dept.Name,
		Active: dept.Active,
	}, nil
}

// ────────────────────── SetActive ──────────────────────

func (s *departmentService) SetActive(ctx context.Context, id string, active bool) error {
	if err := s.repo.Department.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		s.logger.Error("failed to update department", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Stats ──────────────────────

// Stats aggregates the whole ledger in memory; the ledger is bounded to
// a few hundred rows, so there is nothing to gain from incremental SQL.
func (s *departmentService) Stats(ctx context.Context) ([]dto.DepartmentStatsResponse, error) {
	depts, err := s.repo.Department.ListActive(ctx)
	if err != nil {
		s.logger.Error("failed to list departments", zap.Error(err))
		return nil, err
	}

	donations, err := s.repo.Donation.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list donations", zap.Error(err))
		return nil, err
	}

	type tally struct {
		gifts, cash int64
		cashAmount  float64
	}
	tallies := make(map[string]*tally, len(depts))
	for i := range depts {
		tallies[depts[i].DepartmentID] = &tally{}
	}

	for i := range donations {
		d := &donations[i]
		t, ok := tallies[d.DepartmentID]
		if !ok {
			continue // donation references an inactive department
		}
		if d.DonationType == model.DonationTypeCash {
			t.cash++
			if d.Amount != nil {
				t.cashAmount += *d.Amount
			}
		} else {
			t.gifts++
		}
	}

	result := make([]dto.DepartmentStatsResponse, 0, len(depts))
	for i := range depts {
		t := tallies[depts[i].DepartmentID]
		result = append(result, dto.DepartmentStatsResponse{
			ID:              depts[i].DepartmentID,
			Name:            depts[i].Name,
			GiftDonations:   t.gifts,
			CashDonations:   t.cash,
			TotalCashAmount: t.cashAmount,
		})
	}

	return result, nil
}

// ────────────────────── TopByDonationCount ──────────────────────

func (s *departmentService) TopByDonationCount(ctx context.Context, limit int) ([]dto.TopDepartmentResponse, error) {
	if limit <= 0 {
		limit = defaultTopDepartments
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].GiftDonations+stats[i].CashDonations > stats[j].GiftDonations+stats[j].CashDonations
	})

	if len(stats) > limit {
		stats = stats[:limit]
	}

	result := make([]dto.TopDepartmentResponse, 0, len(stats))
	for _, st := range stats {
		result = append(result, dto.TopDepartmentResponse{
			Name:            st.Name,
			TotalDonations:  st.GiftDonations + st.CashDonations,
			TotalCashAmount: st.TotalCashAmount,
		})
	}
	return result, nil
}
