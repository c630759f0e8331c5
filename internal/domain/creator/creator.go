package creator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lipagate/lipagate/internal/shared/id"
)

var (
	ErrCreatorNotFound = errors.New("creator not found")
	ErrUsernameExists  = errors.New("username already taken")
)

// Creator is a merchant's public-facing publishing profile, one-to-one with
// the merchant account. Community access is premium unless the creator
// explicitly opens it up.
type Creator struct {
	id               uint
	sid              string
	merchantID       uint
	username         string
	displayName      string
	bio              string
	communityPremium bool
	createdAt        time.Time
	updatedAt        time.Time
}

// NewCreator creates a profile for a merchant. Community gating defaults on.
func NewCreator(merchantID uint, username, displayName string) (*Creator, error) {
	if merchantID == 0 {
		return nil, fmt.Errorf("merchant ID is required")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	now := time.Now().UTC()
	return &Creator{
		sid:              id.MustGenerateWithPrefix(id.PrefixCreator, id.DefaultLength),
		merchantID:       merchantID,
		username:         username,
		displayName:      displayName,
		communityPremium: true,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructCreator rebuilds a creator from persistence.
func ReconstructCreator(creatorID uint, sid string, merchantID uint, username, displayName, bio string, communityPremium bool, createdAt, updatedAt time.Time) (*Creator, error) {
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID cannot be zero")
	}
	return &Creator{
		id:               creatorID,
		sid:              sid,
		merchantID:       merchantID,
		username:         username,
		displayName:      displayName,
		bio:              bio,
		communityPremium: communityPremium,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (c *Creator) ID() uint               { return c.id }
func (c *Creator) SID() string            { return c.sid }
func (c *Creator) MerchantID() uint       { return c.merchantID }
func (c *Creator) Username() string       { return c.username }
func (c *Creator) DisplayName() string    { return c.displayName }
func (c *Creator) Bio() string            { return c.bio }
func (c *Creator) CommunityPremium() bool { return c.communityPremium }
func (c *Creator) CreatedAt() time.Time   { return c.createdAt }
func (c *Creator) UpdatedAt() time.Time   { return c.updatedAt }

// SetID assigns the database identity after insert.
func (c *Creator) SetID(newID uint) error {
	if c.id != 0 {
		return fmt.Errorf("creator ID already set")
	}
	if newID == 0 {
		return fmt.Errorf("creator ID cannot be zero")
	}
	c.id = newID
	return nil
}

// SetCommunityPremium toggles community gating.
func (c *Creator) SetCommunityPremium(premium bool) {
	c.communityPremium = premium
	c.updatedAt = time.Now().UTC()
}

// UpdateProfile changes the public display fields.
func (c *Creator) UpdateProfile(displayName, bio string) {
	c.displayName = displayName
	c.bio = bio
	c.updatedAt = time.Now().UTC()
}

// Repository defines persistence operations for creators.
type Repository interface {
	Create(ctx context.Context, cr *Creator) error
	Update(ctx context.Context, cr *Creator) error
	GetByID(ctx context.Context, id uint) (*Creator, error)
	GetByUsername(ctx context.Context, username string) (*Creator, error)
	GetByMerchantID(ctx context.Context, merchantID uint) (*Creator, error)
}
