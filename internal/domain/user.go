package domain

// Actor is the authenticated identity performing an operation, resolved by
// the embedding system before any call into this core. The core enforces
// authorization only, never authentication.
type Actor struct {
	ID         int64
	Username   string
	TrustLevel int
	Staff      bool
}

// UserRef is a user record resolved through the external user directory.
type UserRef struct {
	ID       int64
	Username string
}

// TopicRef is topic metadata resolved through the external content resolver.
// The core stores only the id; the rest is display data for callers.
type TopicRef struct {
	ID         int64
	Title      string
	Slug       string
	PostsCount int
	AuthorID   int64
}

// PostRef is post metadata resolved through the external content resolver.
// Number is the 1-based position of the post within its topic.
type PostRef struct {
	ID       int64
	TopicID  int64
	Number   int
	AuthorID int64
	Excerpt  string
}

// CollectedNotification is delivered to a content author when their topic or
// post is added to a collection by someone else.
type CollectedNotification struct {
	AuthorID        int64
	CollectorID     int64
	CollectionTitle string
	TopicID         int64
	PostNumber      int
}
