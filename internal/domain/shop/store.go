package shop

import (
	"time"

	"github.com/pincoin/backend/internal/domain/shared"
)

// Store represents a storefront owning a product catalog
type Store struct {
	shared.BaseAggregateRoot
	Name        string
	Code        string // unique slug
	Theme       string
	Phone       string
	PhoneBank   string
	ChunkSize   int // voucher codes revealed per page on the receipt
	SignupOpen  bool
	UnderAttack bool // throttles ordering during carding attacks
}

// NewStore creates a new store with signup open
func NewStore(name, code string) (*Store, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_STORE_NAME", "Store name cannot be empty")
	}
	if code == "" {
		return nil, shared.NewDomainError("INVALID_STORE_CODE", "Store code cannot be empty")
	}

	return &Store{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Code:              code,
		Theme:             "default",
		ChunkSize:         10,
		SignupOpen:        true,
	}, nil
}

// UpdateContact sets the customer-facing phone numbers
func (s *Store) UpdateContact(phone, phoneBank string) {
	s.Phone = phone
	s.PhoneBank = phoneBank
	s.UpdatedAt = time.Now()
}

// CloseSignup stops accepting new customer registrations
func (s *Store) CloseSignup() {
	s.SignupOpen = false
	s.UpdatedAt = time.Now()
}

// OpenSignup resumes accepting new customer registrations
func (s *Store) OpenSignup() {
	s.SignupOpen = true
	s.UpdatedAt = time.Now()
}

// SetUnderAttack toggles the carding-attack throttle
func (s *Store) SetUnderAttack(underAttack bool) {
	s.UnderAttack = underAttack
	s.UpdatedAt = time.Now()
}
