package usecases

import "context"

// ViewerProfileResolver looks up the stored phone number of an authenticated
// viewer. A supplied phone always wins over the stored one; the resolver is
// only consulted when the request carries no phone.
type ViewerProfileResolver interface {
	PhoneByUserID(ctx context.Context, userID uint) (string, error)
}
