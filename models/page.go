package models

// DefaultPageLimit is the number of rows returned by a listing when the
// client does not pass a limit.
const DefaultPageLimit uint64 = 100

// Page describes skip/limit pagination of a listing.
type Page struct {
	Skip  uint64
	Limit uint64
}

// DefaultPage returns the first page with [DefaultPageLimit] rows.
func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultPageLimit}
}
