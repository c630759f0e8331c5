package content

import (
	"fmt"
	"time"

	"github.com/lipagate/lipagate/internal/shared/id"

	vo "github.com/lipagate/lipagate/internal/domain/content/valueobjects"
)

// Content is a gated unit (post, file or video) published by a creator.
// productIDs lists the products whose subscriptions unlock it. A premium item
// with no products is legal and simply never unlockable.
type Content struct {
	id            uint
	sid           string
	creatorID     uint
	kind          vo.ContentKind
	title         string
	slug          string
	body          string
	bodyHTML      string
	visibility    vo.Visibility
	status        vo.ContentStatus
	productIDs    []uint
	viewCount     uint64
	downloadCount uint64
	publishedAt   *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewContent creates a draft content item.
func NewContent(creatorID uint, kind vo.ContentKind, title, slug, body string, visibility vo.Visibility) (*Content, error) {
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !vo.ValidKinds[kind] {
		return nil, fmt.Errorf("invalid content kind: %s", kind)
	}
	if !vo.ValidVisibilities[visibility] {
		return nil, fmt.Errorf("invalid visibility: %s", visibility)
	}

	now := time.Now().UTC()
	return &Content{
		sid:        id.MustGenerateWithPrefix(id.PrefixContent, id.DefaultLength),
		creatorID:  creatorID,
		kind:       kind,
		title:      title,
		slug:       slug,
		body:       body,
		visibility: visibility,
		status:     vo.StatusDraft,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID            uint
	SID           string
	CreatorID     uint
	Kind          vo.ContentKind
	Title         string
	Slug          string
	Body          string
	BodyHTML      string
	Visibility    vo.Visibility
	Status        vo.ContentStatus
	ProductIDs    []uint
	ViewCount     uint64
	DownloadCount uint64
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Reconstruct rebuilds a content item from persistence.
func Reconstruct(p ReconstructParams) (*Content, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("content ID cannot be zero")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid content status: %s", p.Status)
	}
	if !vo.ValidVisibilities[p.Visibility] {
		return nil, fmt.Errorf("invalid visibility: %s", p.Visibility)
	}

	return &Content{
		id:            p.ID,
		sid:           p.SID,
		creatorID:     p.CreatorID,
		kind:          p.Kind,
		title:         p.Title,
		slug:          p.Slug,
		body:          p.Body,
		bodyHTML:      p.BodyHTML,
		visibility:    p.Visibility,
		status:        p.Status,
		productIDs:    p.ProductIDs,
		viewCount:     p.ViewCount,
		downloadCount: p.DownloadCount,
		publishedAt:   p.PublishedAt,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}, nil
}

func (c *Content) ID() uint                 { return c.id }
func (c *Content) SID() string              { return c.sid }
func (c *Content) CreatorID() uint          { return c.creatorID }
func (c *Content) Kind() vo.ContentKind     { return c.kind }
func (c *Content) Title() string            { return c.title }
func (c *Content) Slug() string             { return c.slug }
func (c *Content) Body() string             { return c.body }
func (c *Content) BodyHTML() string         { return c.bodyHTML }
func (c *Content) Visibility() vo.Visibility { return c.visibility }
func (c *Content) Status() vo.ContentStatus { return c.status }
func (c *Content) ViewCount() uint64        { return c.viewCount }
func (c *Content) DownloadCount() uint64    { return c.downloadCount }
func (c *Content) PublishedAt() *time.Time  { return c.publishedAt }
func (c *Content) CreatedAt() time.Time     { return c.createdAt }
func (c *Content) UpdatedAt() time.Time     { return c.updatedAt }

// ProductIDs returns a copy of the unlocking product list.
func (c *Content) ProductIDs() []uint {
	out := make([]uint, len(c.productIDs))
	copy(out, c.productIDs)
	return out
}

// SetID assigns the database identity after insert.
func (c *Content) SetID(newID uint) error {
	if c.id != 0 {
		return fmt.Errorf("content ID already set")
	}
	if newID == 0 {
		return fmt.Errorf("content ID cannot be zero")
	}
	c.id = newID
	return nil
}

// IsPublished reports whether viewers may be shown this item at all.
func (c *Content) IsPublished() bool {
	return c.status == vo.StatusPublished
}

// IsPremium reports whether access requires an entitling subscription.
func (c *Content) IsPremium() bool {
	return c.visibility.IsPremium()
}

// Publish makes a draft visible. Archived items must be re-drafted first.
func (c *Content) Publish() error {
	if c.status != vo.StatusDraft {
		return fmt.Errorf("cannot publish %s content", c.status)
	}
	now := time.Now().UTC()
	c.status = vo.StatusPublished
	c.publishedAt = &now
	c.touch()
	return nil
}

// Archive takes a published item out of circulation without deleting it.
func (c *Content) Archive() error {
	if c.status != vo.StatusPublished {
		return fmt.Errorf("cannot archive %s content", c.status)
	}
	c.status = vo.StatusArchived
	c.touch()
	return nil
}

// SetProducts replaces the unlocking product list.
func (c *Content) SetProducts(productIDs []uint) {
	c.productIDs = make([]uint, len(productIDs))
	copy(c.productIDs, productIDs)
	c.touch()
}

// UpdateBody replaces the source body and its rendered form.
func (c *Content) UpdateBody(body, bodyHTML string) {
	c.body = body
	c.bodyHTML = bodyHTML
	c.touch()
}

// RenderBody stores the sanitized HTML rendering of the body.
func (c *Content) RenderBody(bodyHTML string) {
	c.bodyHTML = bodyHTML
	c.touch()
}

// RecordView increments the view counter. Only granted decisions record views.
func (c *Content) RecordView() {
	c.viewCount++
	c.touch()
}

// RecordDownload increments the download counter for file content.
func (c *Content) RecordDownload() {
	c.downloadCount++
	c.touch()
}

func (c *Content) touch() {
	c.updatedAt = time.Now().UTC()
}
