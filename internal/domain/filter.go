package domain

// Listing limits shared by every list operation.
const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// ClampLimit normalizes a caller-supplied limit into [1, MaxListLimit].
// A non-positive limit is treated as absent and replaced by the default.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// ListQuery contains filtering parameters for collection listings.
type ListQuery struct {
	Filter PlazaFilter
	Search string
	Limit  int
}
