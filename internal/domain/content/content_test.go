package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/lipagate/lipagate/internal/domain/content/valueobjects"
)

func newDraft(t *testing.T, visibility vo.Visibility) *Content {
	t.Helper()
	item, err := NewContent(1, vo.KindPost, "Monthly report", "monthly-report", "# Hello", visibility)
	require.NoError(t, err)
	return item
}

func TestNewContent(t *testing.T) {
	item := newDraft(t, vo.VisibilityPremium)

	assert.NotEmpty(t, item.SID())
	assert.Equal(t, vo.StatusDraft, item.Status())
	assert.Nil(t, item.PublishedAt())
	assert.False(t, item.IsPublished())
	assert.True(t, item.IsPremium())
	assert.Empty(t, item.ProductIDs())
}

func TestNewContent_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		creatorID  uint
		kind       vo.ContentKind
		title      string
		visibility vo.Visibility
	}{
		{"missing creator", 0, vo.KindPost, "t", vo.VisibilityFree},
		{"missing title", 1, vo.KindPost, "", vo.VisibilityFree},
		{"bad kind", 1, vo.ContentKind("gif"), "t", vo.VisibilityFree},
		{"bad visibility", 1, vo.KindPost, "t", vo.Visibility("secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewContent(tt.creatorID, tt.kind, tt.title, "slug", "", tt.visibility)
			assert.Error(t, err)
			assert.Nil(t, item)
		})
	}
}

func TestPublish(t *testing.T) {
	item := newDraft(t, vo.VisibilityPremium)

	require.NoError(t, item.Publish())
	assert.True(t, item.IsPublished())
	require.NotNil(t, item.PublishedAt())
	assert.WithinDuration(t, time.Now().UTC(), *item.PublishedAt(), time.Second)

	// Publishing twice is an error.
	assert.Error(t, item.Publish())
}

func TestArchive(t *testing.T) {
	item := newDraft(t, vo.VisibilityFree)
	require.NoError(t, item.Publish())
	require.NoError(t, item.Archive())
	assert.Equal(t, vo.StatusArchived, item.Status())
	assert.False(t, item.IsPublished())

	// Archived is terminal for publication.
	assert.Error(t, item.Publish())
}

func TestSetProducts_CopiesSlice(t *testing.T) {
	item := newDraft(t, vo.VisibilityPremium)
	ids := []uint{3, 7}
	item.SetProducts(ids)

	ids[0] = 99
	got := item.ProductIDs()
	assert.Equal(t, []uint{3, 7}, got)

	// The getter hands out a copy too.
	got[1] = 42
	assert.Equal(t, []uint{3, 7}, item.ProductIDs())
}

func TestRecordViewAndDownload(t *testing.T) {
	item := newDraft(t, vo.VisibilityFree)
	item.RecordView()
	item.RecordView()
	item.RecordDownload()
	assert.Equal(t, uint64(2), item.ViewCount())
	assert.Equal(t, uint64(1), item.DownloadCount())
}

func TestIsPremium_FreeItem(t *testing.T) {
	item := newDraft(t, vo.VisibilityFree)
	assert.False(t, item.IsPremium())
}
