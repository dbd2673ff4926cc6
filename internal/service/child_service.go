package service

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/junksamiad/xmas-donation-app/internal/dto"
	"github.com/junksamiad/xmas-donation-app/internal/model"
	"github.com/junksamiad/xmas-donation-app/internal/repository"
)

// ── child module errors ──

var (
	ErrChildNotFound          = errors.New("the selected child could not be found")
	ErrNoChildAvailable       = errors.New("no children match the criteria")
	ErrSearchCriteriaRequired = errors.New("at least one of gender or age is required")
)

// ChildService child selection business logic.
type ChildService interface {
	// PickRandom selects one eligible unassigned child matching the
	// optional filter, uniformly at random, exhausting the priority pool
	// before the filler pool. Returns ErrNoChildAvailable when both pools
	// are empty — a normal empty-result outcome, not a fault.
	PickRandom(ctx context.Context, req *dto.ChildSearchRequest) (*dto.ChildResponse, error)
	// Search is PickRandom with the additional rule that at least one
	// criterion must be provided.
	Search(ctx context.Context, req *dto.ChildSearchRequest) (*dto.ChildResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ChildResponse, error)
	Progress(ctx context.Context) (*dto.ChildrenProgressResponse, error)
}

type childService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewChildService creates a ChildService.
func NewChildService(repo *repository.Repository, logger *zap.Logger) ChildService {
	return &childService{repo: repo, logger: logger}
}

// ────────────────────── PickRandom ──────────────────────

func (s *childService) PickRandom(ctx context.Context, req *dto.ChildSearchRequest) (*dto.ChildResponse, error) {
	filter := toChildFilter(req)

	// priority children (the curated real records) are offered first
	pool, err := s.repo.Child.ListUnassigned(ctx, filter, true)
	if err != nil {
		s.logger.Error("failed to list priority children", zap.Error(err))
		return nil, err
	}

	if len(pool) == 0 {
		pool, err = s.repo.Child.ListUnassigned(ctx, filter, false)
		if err != nil {
			s.logger.Error("failed to list children", zap.Error(err))
			return nil, err
		}
	}

	if len(pool) == 0 {
		return nil, ErrNoChildAvailable
	}

	child := pool[rand.IntN(len(pool))]
	return toChildResponse(&child), nil
}

// ────────────────────── Search ──────────────────────

func (s *childService) Search(ctx context.Context, req *dto.ChildSearchRequest) (*dto.ChildResponse, error) {
	if req.Gender == "" && req.Age == nil {
		return nil, ErrSearchCriteriaRequired
	}
	return s.PickRandom(ctx, req)
}

// ────────────────────── GetByID ──────────────────────

func (s *childService) GetByID(ctx context.Context, id string) (*dto.ChildResponse, error) {
	child, err := s.repo.Child.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChildNotFound
		}
		s.logger.Error("failed to get child", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toChildResponse(child), nil
}

// ────────────────────── Progress ──────────────────────

func (s *childService) Progress(ctx context.Context) (*dto.ChildrenProgressResponse, error) {
	assigned, err := s.repo.Child.CountAssigned(ctx)
	if err != nil {
		s.logger.Error("failed to count assigned children", zap.Error(err))
		return nil, err
	}
	total, err := s.repo.Child.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count children", zap.Error(err))
		return nil, err
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(assigned) / float64(total) * 100))
	}

	return &dto.ChildrenProgressResponse{
		Assigned:   assigned,
		Total:      total,
		Percentage: percentage,
	}, nil
}

// ── helpers ──

func toChildFilter(req *dto.ChildSearchRequest) repository.ChildFilter {
	var filter repository.ChildFilter
	if req != nil {
		if req.Gender != "" {
			g := req.Gender
			filter.Gender = &g
		}
		filter.Age = req.Age
	}
	return filter
}

func toChildResponse(child *model.Child) *dto.ChildResponse {
	return &dto.ChildResponse{
		ID:        child.ChildID,
		Recipient: child.Recipient,
		Age:       child.Age,
		Gender:    child.Gender,
		GiftIdeas: child.GiftIdeas,
	}
}
