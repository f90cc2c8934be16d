package sales

import (
	"slices"
	"strings"
)

// Sort fields recognized by the pipeline. An unrecognized field falls back
// to SortByCustomerName.
const (
	SortByCustomerName = "customerName"
	SortByDate         = "date"
	SortByQuantity     = "quantity"
)

// Sort directions.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// DefaultPageSize matches the dashboard's table page size.
const DefaultPageSize = 10

// QueryState is the complete set of search, filter, sort and pagination
// parameters describing one requested view of the data.
type QueryState struct {
	Search    string
	Filters   FilterState
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// Stats are summary numbers computed over a filtered record set, before
// pagination.
type Stats struct {
	TotalUnits    int     `json:"totalUnits"`
	TotalAmount   float64 `json:"totalAmount"`
	TotalDiscount float64 `json:"totalDiscount"`
}

// Result is one page of records plus the pagination totals and aggregate
// stats for the full filtered set.
type Result struct {
	Transactions []Transaction
	Page         int
	PageSize     int
	TotalCount   int
	TotalPages   int
	Stats        Stats
}

// Run executes the query pipeline over the record collection: search, then
// filter, then a stable sort, then pagination. It is a pure function of its
// inputs; the input slice is never mutated. Stats are computed over the
// post-filter, pre-pagination set. A page beyond the last returns an empty
// page without error.
func Run(records []Transaction, q QueryState) Result {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}

	filtered := make([]Transaction, 0, len(records))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, t := range records {
		if search != "" && !matchesSearch(t, search) {
			continue
		}
		if !q.Filters.Matches(t) {
			continue
		}
		filtered = append(filtered, t)
	}

	slices.SortStableFunc(filtered, comparator(q.SortBy, q.SortOrder))

	total := len(filtered)
	totalPages := (total + q.PageSize - 1) / q.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (q.Page - 1) * q.PageSize
	end := start + q.PageSize
	page := []Transaction{}
	if start < total {
		if end > total {
			end = total
		}
		page = slices.Clone(filtered[start:end])
	}

	return Result{
		Transactions: page,
		Page:         q.Page,
		PageSize:     q.PageSize,
		TotalCount:   total,
		TotalPages:   totalPages,
		Stats:        Aggregate(filtered),
	}
}

// Aggregate sums units, gross amount and discount over a record set.
func Aggregate(records []Transaction) Stats {
	var s Stats
	for _, t := range records {
		s.TotalUnits += t.Quantity
		s.TotalAmount += t.TotalAmount
		s.TotalDiscount += t.DiscountAmount()
	}
	return s
}

// matchesSearch is a case-insensitive substring match against customer name
// or phone number. The search term must already be lowercased.
func matchesSearch(t Transaction, search string) bool {
	return strings.Contains(strings.ToLower(t.CustomerName), search) ||
		strings.Contains(strings.ToLower(t.PhoneNumber), search)
}

// comparator returns the stable-sort comparison for the given field and
// direction.
func comparator(sortBy, sortOrder string) func(a, b Transaction) int {
	var cmp func(a, b Transaction) int
	switch sortBy {
	case SortByDate:
		cmp = func(a, b Transaction) int {
			return a.Date.Compare(b.Date.Time)
		}
	case SortByQuantity:
		cmp = func(a, b Transaction) int {
			return a.Quantity - b.Quantity
		}
	default:
		cmp = func(a, b Transaction) int {
			return strings.Compare(a.CustomerName, b.CustomerName)
		}
	}
	if sortOrder == SortDesc {
		return func(a, b Transaction) int { return -cmp(a, b) }
	}
	return cmp
}
