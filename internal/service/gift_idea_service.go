package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/junksamiad/xmas-donation-app/internal/dto"
	"github.com/junksamiad/xmas-donation-app/internal/model"
	"github.com/junksamiad/xmas-donation-app/internal/repository"
)

// GiftIdeaService suggests gifts for a child's age and gender. Lookups
// fall back from the most specific match to a generic one rather than
// returning an error, so the shopping page always renders something.
type GiftIdeaService interface {
	Find(ctx context.Context, req *dto.GiftIdeaQueryRequest) (*dto.GiftIdeaListResponse, error)
}

type giftIdeaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGiftIdeaService creates a GiftIdeaService.
func NewGiftIdeaService(repo *repository.Repository, logger *zap.Logger) GiftIdeaService {
	return &giftIdeaService{repo: repo, logger: logger}
}

// ────────────────────── Find ──────────────────────

// Find resolves gift ideas through a three-step fallback chain:
// exact (age, gender, category) → uncategorized (age, gender) →
// uncategorized (age, "any"). A complete miss returns an empty list.
func (s *giftIdeaService) Find(ctx context.Context, req *dto.GiftIdeaQueryRequest) (*dto.GiftIdeaListResponse, error) {
	if req.Category != "" {
		idea, err := s.repo.GiftIdea.FindExact(ctx, req.Age, req.Gender, req.Category)
		if err == nil {
			return toGiftIdeaResponse(idea), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("failed to look up gift ideas", zap.Error(err))
			return nil, err
		}
	}

	idea, err := s.repo.GiftIdea.FindUncategorized(ctx, req.Age, req.Gender)
	if err == nil {
		return toGiftIdeaResponse(idea), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("failed to look up gift ideas", zap.Error(err))
		return nil, err
	}

	idea, err = s.repo.GiftIdea.FindUncategorized(ctx, req.Age, model.GenderAny)
	if err == nil {
		return toGiftIdeaResponse(idea), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("failed to look up gift ideas", zap.Error(err))
		return nil, err
	}

	return &dto.GiftIdeaListResponse{Ideas: []string{}}, nil
}

// ── helpers ──

func toGiftIdeaResponse(idea *model.GiftIdea) *dto.GiftIdeaListResponse {
	ideas := make([]string, len(idea.Ideas))
	copy(ideas, idea.Ideas)
	return &dto.GiftIdeaListResponse{Ideas: ideas}
}
