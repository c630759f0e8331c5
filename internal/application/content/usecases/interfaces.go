package usecases

// BodyRenderer turns a markdown body into sanitized HTML safe to serve to
// viewers.
type BodyRenderer interface {
	Render(markdown string) (string, error)
}
