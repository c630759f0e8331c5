package merchant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lipagate/lipagate/internal/shared/id"
)

var (
	ErrMerchantNotFound = errors.New("merchant not found")
	ErrEmailExists      = errors.New("email already registered")
)

// Merchant is a platform account that sells products, publishes content and
// confirms payments. Customers never get accounts; merchants do.
type Merchant struct {
	id           uint
	sid          string
	email        string
	phone        string
	passwordHash string
	displayName  string
	admin        bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewMerchant creates a merchant account. The password must arrive already
// hashed; hashing policy lives in the application layer.
func NewMerchant(email, phone, passwordHash, displayName string) (*Merchant, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &Merchant{
		sid:          id.MustGenerateWithPrefix(id.PrefixMerchant, id.DefaultLength),
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		displayName:  displayName,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructMerchant rebuilds a merchant from persistence.
func ReconstructMerchant(merchantID uint, sid, email, phone, passwordHash, displayName string, admin bool, createdAt, updatedAt time.Time) (*Merchant, error) {
	if merchantID == 0 {
		return nil, fmt.Errorf("merchant ID cannot be zero")
	}
	return &Merchant{
		id:           merchantID,
		sid:          sid,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		displayName:  displayName,
		admin:        admin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (m *Merchant) ID() uint             { return m.id }
func (m *Merchant) SID() string          { return m.sid }
func (m *Merchant) Email() string        { return m.email }
func (m *Merchant) Phone() string        { return m.phone }
func (m *Merchant) PasswordHash() string { return m.passwordHash }
func (m *Merchant) DisplayName() string  { return m.displayName }
func (m *Merchant) IsAdmin() bool        { return m.admin }
func (m *Merchant) CreatedAt() time.Time { return m.createdAt }
func (m *Merchant) UpdatedAt() time.Time { return m.updatedAt }

// SetID assigns the database identity after insert.
func (m *Merchant) SetID(newID uint) error {
	if m.id != 0 {
		return fmt.Errorf("merchant ID already set")
	}
	if newID == 0 {
		return fmt.Errorf("merchant ID cannot be zero")
	}
	m.id = newID
	return nil
}

// Repository defines persistence operations for merchants.
type Repository interface {
	Create(ctx context.Context, m *Merchant) error
	GetByID(ctx context.Context, id uint) (*Merchant, error)
	GetByEmail(ctx context.Context, email string) (*Merchant, error)
}
