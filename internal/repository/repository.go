package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
type Repository struct {
	Child      ChildRepository
	Department DepartmentRepository
	Donation   DonationRepository
	GiftIdea   GiftIdeaRepository
	User       UserRepository

	db *gorm.DB
}

// NewRepository builds the repository aggregate over one database handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Child:      NewChildRepo(db),
		Department: NewDepartmentRepo(db),
		Donation:   NewDonationRepo(db),
		GiftIdea:   NewGiftIdeaRepo(db),
		User:       NewUserRepo(db),
		db:         db,
	}
}

// BeginTx opens a database transaction. Returns (nil, nil) when the
// aggregate is backed by mocks instead of a database, so services can
// run unchanged in unit tests (callers guard with tx != nil).
func (r *Repository) BeginTx() (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx returns a repository aggregate bound to the given transaction.
// A nil tx returns the receiver unchanged (mock-backed tests).
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{
		Child:      NewChildRepo(tx),
		Department: NewDepartmentRepo(tx),
		Donation:   NewDonationRepo(tx),
		GiftIdea:   NewGiftIdeaRepo(tx),
		User:       NewUserRepo(tx),
		db:         tx,
	}
}
