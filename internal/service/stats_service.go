package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/junksamiad/xmas-donation-app/internal/dto"
	"github.com/junksamiad/xmas-donation-app/internal/model"
	"github.com/junksamiad/xmas-donation-app/internal/repository"
)

// defaultTopDonors is the top-donors leaderboard size.
const defaultTopDonors = 10

// underperformance thresholds (percentage points).
const (
	genderGapThreshold = 15.0
	ageBucketThreshold = 15.0
)

// StatsService read-side aggregations over the donation ledger.
// Every call recomputes from scratch; the ledger is bounded to a few
// hundred rows, so no caching or incremental computation is needed.
type StatsService interface {
	// GenderSplit counts donations by the recipient child's gender.
	GenderSplit(ctx context.Context) (*dto.GenderSplitResponse, error)
	// AgeGroupSplit counts donations by the child's exact age, ascending.
	AgeGroupSplit(ctx context.Context) ([]dto.AgeGroupResponse, error)
	// TopDonorsByCash ranks donors by total cash amount, dropping donors
	// with no cash donations. donor names match exactly, case-sensitive.
	TopDonorsByCash(ctx context.Context, limit int) ([]dto.TopDonorResponse, error)
	// Underperforming flags a gender more than 15 points behind, or
	// failing that an age range holding under 15% of donations. Returns
	// nil when the spread is balanced.
	Underperforming(ctx context.Context) (*dto.UnderperformingGroupResponse, error)
}

type statsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStatsService creates a StatsService.
func NewStatsService(repo *repository.Repository, logger *zap.Logger) StatsService {
	return &statsService{repo: repo, logger: logger}
}

// ────────────────────── GenderSplit ──────────────────────

func (s *statsService) GenderSplit(ctx context.Context) (*dto.GenderSplitResponse, error) {
	donations, err := s.repo.Donation.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list donations", zap.Error(err))
		return nil, err
	}

	split := &dto.GenderSplitResponse{Total: int64(len(donations))}
	for i := range donations {
		if donations[i].Child == nil {
			continue
		}
		switch donations[i].Child.Gender {
		case model.GenderMale:
			split.Male++
		case model.GenderFemale:
			split.Female++
		}
	}

	return split, nil
}

// ────────────────────── AgeGroupSplit ──────────────────────

func (s *statsService) AgeGroupSplit(ctx context.Context) ([]dto.AgeGroupResponse, error) {
	donations, err := s.repo.Donation.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list donations", zap.Error(err))
		return nil, err
	}

	counts := make(map[int]int64)
	for i := range donations {
		if donations[i].Child == nil {
			continue
		}
		counts[donations[i].Child.Age]++
	}

	total := int64(len(donations))
	result := make([]dto.AgeGroupResponse, 0, len(counts))
	for age, count := range counts {
		pct := 0.0
		if total > 0 {
			pct = roundPct(float64(count) / float64(total) * 100)
		}
		result = append(result, dto.AgeGroupResponse{
			Age:        age,
			Count:      count,
			Percentage: pct,
		})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Age < result[j].Age })

	return result, nil
}

// ────────────────────── TopDonorsByCash ──────────────────────

func (s *statsService) TopDonorsByCash(ctx context.Context, limit int) ([]dto.TopDonorResponse, error) {
	if limit <= 0 {
		limit = defaultTopDonors
	}

	donations, err := s.repo.Donation.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list donations", zap.Error(err))
		return nil, err
	}

	type tally struct {
		cashTotal float64
		donations int64
		cash      int64
	}
	byDonor := make(map[string]*tally)
	for i := range donations {
		d := &donations[i]
		t, ok := byDonor[d.DonorName]
		if !ok {
			t = &tally{}
			byDonor[d.DonorName] = t
		}
		t.donations++
		if d.DonationType == model.DonationTypeCash && d.Amount != nil {
			t.cash++
			t.cashTotal += *d.Amount
		}
	}

	result := make([]dto.TopDonorResponse, 0, len(byDonor))
	for name, t := range byDonor {
		if t.cashTotal <= 0 {
			continue // gift-only donors are excluded from the cash ranking
		}
		result = append(result, dto.TopDonorResponse{
			DonorName:       name,
			TotalCashAmount: t.cashTotal,
			TotalDonations:  t.donations,
			CashDonations:   t.cash,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalCashAmount != result[j].TotalCashAmount {
			return result[i].TotalCashAmount > result[j].TotalCashAmount
		}
		return result[i].DonorName < result[j].DonorName
	})

	if len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

// ═══════════════════════════════════════════════════════════
// Underperforming — which group needs more donations?
// ═══════════════════════════════════════════════════════════
//
// Two-stage heuristic, recomputed statelessly on every call:
//  1. if the male/female donation percentages differ by more than 15
//     points, name the under-represented gender
//  2. otherwise bucket by age range {1–5, 6–10, 11–15, 16+}; if any
//     bucket holds under 15% of donations, name the worst one
//  3. otherwise report nothing

func (s *statsService) Underperforming(ctx context.Context) (*dto.UnderperformingGroupResponse, error) {
	donations, err := s.repo.Donation.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list donations", zap.Error(err))
		return nil, err
	}

	total := len(donations)
	if total == 0 {
		return nil, nil
	}

	var male, female int
	ageBuckets := map[string]int{"1-5": 0, "6-10": 0, "11-15": 0, "16+": 0}
	for i := range donations {
		child := donations[i].Child
		if child == nil {
			continue
		}
		switch child.Gender {
		case model.GenderMale:
			male++
		case model.GenderFemale:
			female++
		}
		switch {
		case child.Age <= 5:
			ageBuckets["1-5"]++
		case child.Age <= 10:
			ageBuckets["6-10"]++
		case child.Age <= 15:
			ageBuckets["11-15"]++
		default:
			ageBuckets["16+"]++
		}
	}

	malePct := float64(male) / float64(total) * 100
	femalePct := float64(female) / float64(total) * 100

	if math.Abs(malePct-femalePct) > genderGapThreshold {
		group, pct := model.GenderFemale, femalePct
		if malePct < femalePct {
			group, pct = model.GenderMale, malePct
		}
		return &dto.UnderperformingGroupResponse{
			Group:      group,
			Percentage: roundPct(pct),
			Message: fmt.Sprintf("%s children have received only %.1f%% of donations — consider choosing a %s child",
				titleGender(group), pct, group),
		}, nil
	}

	worstRange := ""
	worstPct := ageBucketThreshold
	for _, r := range []string{"1-5", "6-10", "11-15", "16+"} {
		pct := float64(ageBuckets[r]) / float64(total) * 100
		if pct < worstPct {
			worstRange = r
			worstPct = pct
		}
	}
	if worstRange != "" {
		return &dto.UnderperformingGroupResponse{
			Group:      "age " + worstRange,
			Percentage: roundPct(worstPct),
			Message: fmt.Sprintf("Children aged %s have received only %.1f%% of donations — consider choosing a child in that age range",
				worstRange, worstPct),
		}, nil
	}

	return nil, nil
}

// ── helpers ──

func roundPct(pct float64) float64 {
	return math.Round(pct*10) / 10
}

func titleGender(gender string) string {
	if gender == model.GenderMale {
		return "Male"
	}
	return "Female"
}
