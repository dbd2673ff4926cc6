package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/junksamiad/xmas-donation-app/internal/model"
	"github.com/junksamiad/xmas-donation-app/internal/repository"
)

// errDBFailure simulates an infrastructure fault in any mock with its
// fail flag set.
var errDBFailure = errors.New("simulated database failure")

// ── child mock ──

type mockChildRepo struct {
	children map[string]*model.Child
	fail     bool
	// failMarkAssigned fails only the conditional assignment update, so
	// tests can verify the create transaction aborts cleanly.
	failMarkAssigned bool
}

func newMockChildRepo(children ...*model.Child) *mockChildRepo {
	m := &mockChildRepo{children: make(map[string]*model.Child)}
	for _, c := range children {
		m.children[c.ChildID] = c
	}
	return m
}

func (m *mockChildRepo) Create(ctx context.Context, child *model.Child) error {
	if m.fail {
		return errDBFailure
	}
	if child.ChildID == "" {
		child.ChildID = fmt.Sprintf("child-%d", len(m.children)+1)
	}
	m.children[child.ChildID] = child
	return nil
}

func (m *mockChildRepo) GetByID(ctx context.Context, id string) (*model.Child, error) {
	if m.fail {
		return nil, errDBFailure
	}
	child, ok := m.children[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *child
	return &cp, nil
}

func (m *mockChildRepo) ListUnassigned(ctx context.Context, filter repository.ChildFilter, priority bool) ([]model.Child, error) {
	if m.fail {
		return nil, errDBFailure
	}
	var result []model.Child
	for _, c := range m.children {
		if c.Assigned || c.Priority != priority {
			continue
		}
		if filter.Gender != nil && c.Gender != *filter.Gender {
			continue
		}
		if filter.Age != nil && c.Age != *filter.Age {
			continue
		}
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ChildID < result[j].ChildID })
	return result, nil
}

func (m *mockChildRepo) MarkAssigned(ctx context.Context, id string) (int64, error) {
	if m.fail || m.failMarkAssigned {
		return 0, errDBFailure
	}
	child, ok := m.children[id]
	if !ok || child.Assigned {
		return 0, nil
	}
	child.Assigned = true
	return 1, nil
}

func (m *mockChildRepo) Count(ctx context.Context) (int64, error) {
	if m.fail {
		return 0, errDBFailure
	}
	return int64(len(m.children)), nil
}

func (m *mockChildRepo) CountAssigned(ctx context.Context) (int64, error) {
	if m.fail {
		return 0, errDBFailure
	}
	var n int64
	for _, c := range m.children {
		if c.Assigned {
			n++
		}
	}
	return n, nil
}

func (m *mockChildRepo) CountUnassigned(ctx context.Context) (int64, error) {
	if m.fail {
		return 0, errDBFailure
	}
	total, _ := m.Count(ctx)
	assigned, _ := m.CountAssigned(ctx)
	return total - assigned, nil
}

func (m *mockChildRepo) DeleteUnassigned(ctx context.Context) (int64, error) {
	if m.fail {
		return 0, errDBFailure
	}
	var n int64
	for id, c := range m.children {
		if !c.Assigned {
			delete(m.children, id)
			n++
		}
	}
	return n, nil
}

// ── department mock ──

type mockDepartmentRepo struct {
	departments map[string]*model.Department
	fail        bool
}

func newMockDepartmentRepo(departments ...*model.Department) *mockDepartmentRepo {
	m := &mockDepartmentRepo{departments: make(map[string]*model.Department)}
	for _, d := range departments {
		m.departments[d.DepartmentID] = d
	}
	return m
}

func (m *mockDepartmentRepo) Create(ctx context.Context, dept *model.Department) error {
	if m.fail {
		return errDBFailure
	}
	if dept.DepartmentID == "" {
		dept.DepartmentID = fmt.Sprintf("dept-%d", len(m.departments)+1)
	}
	m.departments[dept.DepartmentID] = dept
	return nil
}

func (m *mockDepartmentRepo) GetByID(ctx context.Context, id string) (*model.Department, error) {
	if m.fail {
		return nil, errDBFailure
	}
	dept, ok := m.departments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *dept
	return &cp, nil
}

func (m *mockDepartmentRepo) GetByName(ctx context.Context, name string) (*model.Department, error) {
	if m.fail {
		return nil, errDBFailure
	}
	for _, d := range m.departments {
		if d.Name == name {
			cp := *d
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) ListActive(ctx context.Context) ([]model.Department, error) {
	if m.fail {
		return nil, errDBFailure
	}
	var result []model.Department
	for _, d := range m.departments {
		if d.Active {
			result = append(result, *d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockDepartmentRepo) ListAll(ctx context.Context) ([]model.Department, error) {
	if m.fail {
		return nil, errDBFailure
	}
	var result []model.Department
	for _, d := range m.departments {
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockDepartmentRepo) SetActive(ctx context.Context, id string, active bool) error {
	if m.fail {
		return errDBFailure
	}
	dept, ok := m.departments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	dept.Active = active
	return nil
}

// ── donation mock ──

type mockDonationRepo struct {
	donations  []*model.Donation
	fail       bool
	failCreate bool
}

func newMockDonationRepo(donations ...*model.Donation) *mockDonationRepo {
	return &mockDonationRepo{donations: donations}
}

func (m *mockDonationRepo) Create(ctx context.Context, donation *model.Donation) error {
	if m.fail || m.failCreate {
		return errDBFailure
	}
	if donation.DonationID == "" {
		donation.DonationID = fmt.Sprintf("donation-%d", len(m.donations)+1)
	}
	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = time.Now()
	}
	for _, d := range m.donations {
		if d.ChildID == donation.ChildID {
			return errors.New("duplicate key value violates unique constraint")
		}
	}
	m.donations = append(m.donations, donation)
	return nil
}

func (m *mockDonationRepo) GetByID(ctx context.Context, id string) (*model.Donation, error) {
	if m.fail {
		return nil, errDBFailure
	}
	for _, d := range m.donations {
		if d.DonationID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDonationRepo) List(ctx context.Context, donationType string, offset, limit int) ([]model.Donation, int64, error) {
	if m.fail {
		return nil, 0, errDBFailure
	}
	all, _ := m.ListAll(ctx)
	if donationType != "" {
		filtered := all[:0]
		for _, d := range all {
			if d.DonationType == donationType {
				filtered = append(filtered, d)
			}
		}
		all = filtered
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (m *mockDonationRepo) ListAll(ctx context.Context) ([]model.Donation, error) {
	if m.fail {
		return nil, errDBFailure
	}
	result := make([]model.Donation, 0, len(m.donations))
	for _, d := range m.donations {
		result = append(result, *d)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockDonationRepo) Latest(ctx context.Context) (*model.Donation, error) {
	if m.fail {
		return nil, errDBFailure
	}
	all, err := m.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &all[0], nil
}

func (m *mockDonationRepo) UpdateAmount(ctx context.Context, id string, amount float64) error {
	if m.fail {
		return errDBFailure
	}
	for _, d := range m.donations {
		if d.DonationID == id {
			a := amount
			d.Amount = &a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockDonationRepo) Count(ctx context.Context) (int64, error) {
	if m.fail {
		return 0, errDBFailure
	}
	return int64(len(m.donations)), nil
}

func (m *mockDonationRepo) CountByType(ctx context.Context, donationType string) (int64, error) {
	if m.fail {
		return 0, errDBFailure
	}
	var n int64
	for _, d := range m.donations {
		if d.DonationType == donationType {
			n++
		}
	}
	return n, nil
}

func (m *mockDonationRepo) SumCashAmount(ctx context.Context) (float64, error) {
	if m.fail {
		return 0, errDBFailure
	}
	var sum float64
	for _, d := range m.donations {
		if d.DonationType == model.DonationTypeCash && d.Amount != nil {
			sum += *d.Amount
		}
	}
	return sum, nil
}

func (m *mockDonationRepo) DeleteAll(ctx context.Context) (int64, error) {
	if m.fail {
		return 0, errDBFailure
	}
	n := int64(len(m.donations))
	m.donations = nil
	return n, nil
}

// ── gift-idea mock ──

type mockGiftIdeaRepo struct {
	ideas []*model.GiftIdea
	fail  bool
}

func newMockGiftIdeaRepo(ideas ...*model.GiftIdea) *mockGiftIdeaRepo {
	return &mockGiftIdeaRepo{ideas: ideas}
}

func (m *mockGiftIdeaRepo) Create(ctx context.Context, idea *model.GiftIdea) error {
	if m.fail {
		return errDBFailure
	}
	m.ideas = append(m.ideas, idea)
	return nil
}

func (m *mockGiftIdeaRepo) FindExact(ctx context.Context, age int, gender, category string) (*model.GiftIdea, error) {
	if m.fail {
		return nil, errDBFailure
	}
	for _, idea := range m.ideas {
		if idea.Age == age && idea.Gender == gender && idea.Category != nil && *idea.Category == category {
			cp := *idea
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGiftIdeaRepo) FindUncategorized(ctx context.Context, age int, gender string) (*model.GiftIdea, error) {
	if m.fail {
		return nil, errDBFailure
	}
	for _, idea := range m.ideas {
		if idea.Age == age && idea.Gender == gender && idea.Category == nil {
			cp := *idea
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGiftIdeaRepo) ListByAge(ctx context.Context, age int) ([]model.GiftIdea, error) {
	if m.fail {
		return nil, errDBFailure
	}
	var result []model.GiftIdea
	for _, idea := range m.ideas {
		if idea.Age == age {
			result = append(result, *idea)
		}
	}
	return result, nil
}

func (m *mockGiftIdeaRepo) ListAll(ctx context.Context) ([]model.GiftIdea, error) {
	if m.fail {
		return nil, errDBFailure
	}
	result := make([]model.GiftIdea, 0, len(m.ideas))
	for _, idea := range m.ideas {
		result = append(result, *idea)
	}
	return result, nil
}

func (m *mockGiftIdeaRepo) DeleteAll(ctx context.Context) (int64, error) {
	if m.fail {
		return 0, errDBFailure
	}
	n := int64(len(m.ideas))
	m.ideas = nil
	return n, nil
}

// ── user mock ──

type mockUserRepo struct {
	users map[string]*model.User
	fail  bool
}

func newMockUserRepo(users ...*model.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		m.users[u.UserID] = u
	}
	return m
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.fail {
		return errDBFailure
	}
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.fail {
		return nil, errDBFailure
	}
	user, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.fail {
		return nil, errDBFailure
	}
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── fixtures ──

// newTestRepo wires the mocks into a repository aggregate with no
// database handle, so BeginTx yields a nil transaction and services run
// their normal code paths.
func newTestRepo(child *mockChildRepo, dept *mockDepartmentRepo, donation *mockDonationRepo, idea *mockGiftIdeaRepo, user *mockUserRepo) *repository.Repository {
	if child == nil {
		child = newMockChildRepo()
	}
	if dept == nil {
		dept = newMockDepartmentRepo()
	}
	if donation == nil {
		donation = newMockDonationRepo()
	}
	if idea == nil {
		idea = newMockGiftIdeaRepo()
	}
	if user == nil {
		user = newMockUserRepo()
	}
	return &repository.Repository{
		Child:      child,
		Department: dept,
		Donation:   donation,
		GiftIdea:   idea,
		User:       user,
	}
}

func testChild(id string, age int, gender string, priority bool) *model.Child {
	return &model.Child{
		ChildID:   id,
		Recipient: "Child " + id,
		Age:       age,
		Gender:    gender,
		GiftIdeas: "lego, books",
		Priority:  priority,
	}
}

func testDepartment(id, name string) *model.Department {
	return &model.Department{DepartmentID: id, Name: name, Active: true}
}

func testDonation(id, childID, donor, deptID, donationType string, amount *float64, child *model.Child) *model.Donation {
	d := &model.Donation{
		DonationID:   id,
		ChildID:      childID,
		ChildName:    "Child " + childID,
		DonorName:    donor,
		DepartmentID: deptID,
		DonationType: donationType,
		Amount:       amount,
		Child:        child,
	}
	if child != nil {
		d.ChildName = child.Recipient
	}
	d.CreatedAt = time.Now()
	return d
}

func float64Ptr(v float64) *float64 { return &v }
