// Package store holds the in-memory transaction dataset served by the
// dashboard backend, plus the history of CSV imports applied to it.
package store

import (
	"slices"
	"sync"
	"time"

	"salesdashboard/sales"
)

// Upload statuses.
const (
	UploadStatusCompleted = "completed"
	UploadStatusPartial   = "partial"
	UploadStatusFailed    = "failed"
)

// Upload is one entry in the CSV import history.
type Upload struct {
	ID              string    `json:"id"`
	FileName        string    `json:"fileName"`
	FileSize        string    `json:"fileSize"`
	TotalRecords    int       `json:"totalRecords"`
	ImportedRecords int       `json:"importedRecords"`
	FailedRecords   int       `json:"failedRecords"`
	Status          string    `json:"status"`
	ErrorMessage    *string   `json:"errorMessage"`
	UploadedBy      *string   `json:"uploadedBy"`
	UploadedAt      time.Time `json:"uploadedAt"`
}

// Store is a concurrency-safe in-memory collection of transaction records.
type Store struct {
	mu      sync.RWMutex
	records []sales.Transaction
	uploads []Upload
}

// New creates a store seeded with the given records.
func New(records []sales.Transaction) *Store {
	return &Store{records: slices.Clone(records)}
}

// Query runs the full query pipeline over the current dataset.
func (s *Store) Query(q sales.QueryState) sales.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sales.Run(s.records, q)
}

// Stats aggregates over the records matching the filter set, ignoring
// search, sort and pagination.
func (s *Store) Stats(f sales.FilterState) sales.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matching := make([]sales.Transaction, 0, len(s.records))
	for _, t := range s.records {
		if f.Matches(t) {
			matching = append(matching, t)
		}
	}
	return sales.Aggregate(matching)
}

// Count returns the number of records currently held.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// FilterOptions derives the distinct values of each filter dimension from
// the current dataset, sorted, plus the observed age bounds.
func (s *Store) FilterOptions() sales.FilterOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()

	opts := sales.FilterOptions{
		Regions:        distinct(s.records, func(t sales.Transaction) string { return t.CustomerRegion }),
		Genders:        distinct(s.records, func(t sales.Transaction) string { return t.Gender }),
		Categories:     distinct(s.records, func(t sales.Transaction) string { return t.ProductCategory }),
		PaymentMethods: distinct(s.records, func(t sales.Transaction) string { return t.PaymentMethod }),
	}

	tagSet := map[string]struct{}{}
	for _, t := range s.records {
		for _, tag := range t.Tags {
			tagSet[tag] = struct{}{}
		}
	}
	opts.Tags = make([]string, 0, len(tagSet))
	for tag := range tagSet {
		opts.Tags = append(opts.Tags, tag)
	}
	slices.Sort(opts.Tags)

	for i, t := range s.records {
		if i == 0 || t.Age < opts.AgeRange.Min {
			opts.AgeRange.Min = t.Age
		}
		if t.Age > opts.AgeRange.Max {
			opts.AgeRange.Max = t.Age
		}
	}

	return opts
}

// Uploads returns the import history, newest first.
func (s *Store) Uploads() []Upload {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uploads := slices.Clone(s.uploads)
	slices.Reverse(uploads)
	return uploads
}

func distinct(records []sales.Transaction, field func(sales.Transaction) string) []string {
	seen := map[string]struct{}{}
	values := make([]string, 0, 8)
	for _, t := range records {
		v := field(t)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}
