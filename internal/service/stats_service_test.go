package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/junksamiad/xmas-donation-app/internal/model"
)

func newStatsServiceForTest(donationRepo *mockDonationRepo) StatsService {
	return NewStatsService(newTestRepo(nil, nil, donationRepo, nil, nil), zap.NewNop())
}

func donationFor(id string, age int, gender string, donationType string, amount *float64, donor string) *model.Donation {
	child := testChild("child-"+id, age, gender, true)
	return testDonation(id, child.ChildID, donor, "d1", donationType, amount, child)
}

func TestGenderSplit(t *testing.T) {
	donationRepo := newMockDonationRepo(
		donationFor("dn1", 5, model.GenderMale, model.DonationTypeGift, nil, "A"),
		donationFor("dn2", 8, model.GenderMale, model.DonationTypeGift, nil, "B"),
		donationFor("dn3", 6, model.GenderFemale, model.DonationTypeCash, float64Ptr(10), "C"),
	)
	svc := newStatsServiceForTest(donationRepo)

	got, err := svc.GenderSplit(context.Background())
	if err != nil {
		t.Fatalf("GenderSplit: %v", err)
	}
	if got.Male != 2 || got.Female != 1 || got.Total != 3 {
		t.Fatalf("got %d/%d/%d, want 2/1/3", got.Male, got.Female, got.Total)
	}
}

func TestAgeGroupSplit(t *testing.T) {
	donationRepo := newMockDonationRepo(
		donationFor("dn1", 8, model.GenderMale, model.DonationTypeGift, nil, "A"),
		donationFor("dn2", 5, model.GenderMale, model.DonationTypeGift, nil, "B"),
		donationFor("dn3", 5, model.GenderFemale, model.DonationTypeGift, nil, "C"),
		donationFor("dn4", 12, model.GenderFemale, model.DonationTypeGift, nil, "D"),
	)
	svc := newStatsServiceForTest(donationRepo)

	got, err := svc.AgeGroupSplit(context.Background())
	if err != nil {
		t.Fatalf("AgeGroupSplit: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d groups, want 3", len(got))
	}
	// ascending by age
	if got[0].Age != 5 || got[1].Age != 8 || got[2].Age != 12 {
		t.Fatalf("wrong age order: %+v", got)
	}
	if got[0].Count != 2 || got[0].Percentage != 50.0 {
		t.Fatalf("age 5: got count %d pct %.1f, want 2 / 50.0", got[0].Count, got[0].Percentage)
	}
}

func TestTopDonorsByCash(t *testing.T) {
	donationRepo := newMockDonationRepo(
		donationFor("dn1", 5, model.GenderMale, model.DonationTypeCash, float64Ptr(30), "Asha"),
		donationFor("dn2", 6, model.GenderMale, model.DonationTypeCash, float64Ptr(50), "Ben"),
		donationFor("dn3", 7, model.GenderMale, model.DonationTypeCash, float64Ptr(25), "Asha"),
		donationFor("dn4", 8, model.GenderMale, model.DonationTypeGift, nil, "Asha"),
		donationFor("dn5", 9, model.GenderMale, model.DonationTypeGift, nil, "Carla"),
	)
	svc := newStatsServiceForTest(donationRepo)

	got, err := svc.TopDonorsByCash(context.Background(), 0)
	if err != nil {
		t.Fatalf("TopDonorsByCash: %v", err)
	}
	// Carla has no cash and must not appear
	if len(got) != 2 {
		t.Fatalf("got %d donors, want 2", len(got))
	}
	if got[0].DonorName != "Asha" || got[0].TotalCashAmount != 55 {
		t.Fatalf("top donor: got %s/%.2f, want Asha/55.00", got[0].DonorName, got[0].TotalCashAmount)
	}
	if got[0].TotalDonations != 3 || got[0].CashDonations != 2 {
		t.Fatalf("Asha counts: got %d/%d, want 3/2", got[0].TotalDonations, got[0].CashDonations)
	}
	if got[1].DonorName != "Ben" {
		t.Fatalf("second donor: got %s, want Ben", got[1].DonorName)
	}
}

func TestTopDonorsByCashLimit(t *testing.T) {
	donationRepo := newMockDonationRepo(
		donationFor("dn1", 5, model.GenderMale, model.DonationTypeCash, float64Ptr(30), "A"),
		donationFor("dn2", 6, model.GenderMale, model.DonationTypeCash, float64Ptr(20), "B"),
		donationFor("dn3", 7, model.GenderMale, model.DonationTypeCash, float64Ptr(10), "C"),
	)
	svc := newStatsServiceForTest(donationRepo)

	got, err := svc.TopDonorsByCash(context.Background(), 2)
	if err != nil {
		t.Fatalf("TopDonorsByCash: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d donors, want 2", len(got))
	}
}

func TestUnderperformingGenderGap(t *testing.T) {
	// 3 male vs 1 female is a 50-point gap: the female group is flagged
	donationRepo := newMockDonationRepo(
		donationFor("dn1", 5, model.GenderMale, model.DonationTypeGift, nil, "A"),
		donationFor("dn2", 6, model.GenderMale, model.DonationTypeGift, nil, "B"),
		donationFor("dn3", 7, model.GenderMale, model.DonationTypeGift, nil, "C"),
		donationFor("dn4", 8, model.GenderFemale, model.DonationTypeGift, nil, "D"),
	)
	svc := newStatsServiceForTest(donationRepo)

	got, err := svc.Underperforming(context.Background())
	if err != nil {
		t.Fatalf("Underperforming: %v", err)
	}
	if got == nil {
		t.Fatal("expected a flagged group")
	}
	if got.Group != model.GenderFemale {
		t.Fatalf("got group %q, want female", got.Group)
	}
	if got.Percentage != 25.0 {
		t.Fatalf("got percentage %.1f, want 25.0", got.Percentage)
	}
}

func TestUnderperformingAgeBucket(t *testing.T) {
	// genders balanced, but 16+ holds 1 of 10 donations (10% < 15%)
	donationRepo := newMockDonationRepo()
	ages := []int{3, 4, 7, 8, 12, 13, 14, 15, 11, 16}
	for i, age := range ages {
		gender := model.GenderMale
		if i%2 == 0 {
			gender = model.GenderFemale
		}
		id := string(rune('a' + i))
		_ = donationRepo.Create(context.Background(),
			donationFor("dn-"+id, age, gender, model.DonationTypeGift, nil, "Donor "+id))
	}
	svc := newStatsServiceForTest(donationRepo)

	got, err := svc.Underperforming(context.Background())
	if err != nil {
		t.Fatalf("Underperforming: %v", err)
	}
	if got == nil {
		t.Fatal("expected a flagged group")
	}
	if got.Group != "age 16+" {
		t.Fatalf("got group %q, want age 16+", got.Group)
	}
	if got.Percentage != 10.0 {
		t.Fatalf("got percentage %.1f, want 10.0", got.Percentage)
	}
}

func TestUnderperformingBalanced(t *testing.T) {
	// even gender split and every age range above 15%
	donationRepo := newMockDonationRepo(
		donationFor("dn1", 3, model.GenderMale, model.DonationTypeGift, nil, "A"),
		donationFor("dn2", 8, model.GenderFemale, model.DonationTypeGift, nil, "B"),
		donationFor("dn3", 12, model.GenderMale, model.DonationTypeGift, nil, "C"),
		donationFor("dn4", 16, model.GenderFemale, model.DonationTypeGift, nil, "D"),
	)
	svc := newStatsServiceForTest(donationRepo)

	got, err := svc.Underperforming(context.Background())
	if err != nil {
		t.Fatalf("Underperforming: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil for a balanced spread", got)
	}
}

func TestUnderperformingEmptyLedger(t *testing.T) {
	svc := newStatsServiceForTest(newMockDonationRepo())

	got, err := svc.Underperforming(context.Background())
	if err != nil {
		t.Fatalf("Underperforming: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil for empty ledger", got)
	}
}
