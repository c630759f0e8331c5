package valueobjects

// Visibility controls whether a content item is gated behind a subscription.
type Visibility string

const (
	VisibilityFree    Visibility = "free"
	VisibilityPremium Visibility = "premium"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) IsPremium() bool { return v == VisibilityPremium }

var ValidVisibilities = map[Visibility]bool{
	VisibilityFree:    true,
	VisibilityPremium: true,
}

// ContentStatus is the publication lifecycle of a content item.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

func (s ContentStatus) String() string { return string(s) }

var ValidStatuses = map[ContentStatus]bool{
	StatusDraft:     true,
	StatusPublished: true,
	StatusArchived:  true,
}

// ContentKind distinguishes the gated unit types.
type ContentKind string

const (
	KindPost  ContentKind = "post"
	KindFile  ContentKind = "file"
	KindVideo ContentKind = "video"
)

func (k ContentKind) String() string { return string(k) }

var ValidKinds = map[ContentKind]bool{
	KindPost:  true,
	KindFile:  true,
	KindVideo: true,
}
