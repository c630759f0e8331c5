package notification

import "context"

// Message is a rendered notification ready for one channel.
type Message struct {
	// Recipient is an email address or an E.164 phone number depending on
	// the channel.
	Recipient string
	Subject   string
	HTMLBody  string
	Text      string
}

// Sender delivers one message over one channel. Implementations return an
// error instead of panicking and do not retry; lifecycle sends are best
// effort.
type Sender interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}
