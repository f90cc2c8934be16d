package sales

import (
	"fmt"
	"strconv"
	"strings"
)

// AgeRange is an inclusive age interval.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DateRange is an inclusive calendar-date interval.
type DateRange struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// FilterState is a conjunction of field-level predicates. A record passes
// when it passes every configured dimension. An empty set or a nil range
// means the dimension is unconstrained.
type FilterState struct {
	Regions        []string   `json:"regions,omitempty"`
	Genders        []string   `json:"genders,omitempty"`
	Categories     []string   `json:"categories,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	PaymentMethods []string   `json:"paymentMethods,omitempty"`
	AgeRange       *AgeRange  `json:"ageRange,omitempty"`
	DateRange      *DateRange `json:"dateRange,omitempty"`
}

// IsZero reports whether no dimension is constrained.
func (f FilterState) IsZero() bool {
	return len(f.Regions) == 0 && len(f.Genders) == 0 && len(f.Categories) == 0 &&
		len(f.Tags) == 0 && len(f.PaymentMethods) == 0 && f.AgeRange == nil && f.DateRange == nil
}

// Matches reports whether the record passes every configured filter dimension.
func (f FilterState) Matches(t Transaction) bool {
	if !memberOf(f.Regions, t.CustomerRegion) {
		return false
	}
	if !memberOf(f.Genders, t.Gender) {
		return false
	}
	if !memberOf(f.Categories, t.ProductCategory) {
		return false
	}
	if !memberOf(f.PaymentMethods, t.PaymentMethod) {
		return false
	}
	if len(f.Tags) > 0 && !intersects(f.Tags, t.Tags) {
		return false
	}
	if f.AgeRange != nil && (t.Age < f.AgeRange.Min || t.Age > f.AgeRange.Max) {
		return false
	}
	if f.DateRange != nil {
		if t.Date.Before(f.DateRange.From.Time) || t.Date.After(f.DateRange.To.Time) {
			return false
		}
	}
	return true
}

// memberOf implements the set-valued dimension rule: an empty selection
// passes everything.
func memberOf(selection []string, value string) bool {
	if len(selection) == 0 {
		return true
	}
	for _, s := range selection {
		if s == value {
			return true
		}
	}
	return false
}

// intersects reports whether the two tag sets share at least one label.
func intersects(selection, tags []string) bool {
	for _, s := range selection {
		for _, tag := range tags {
			if s == tag {
				return true
			}
		}
	}
	return false
}

// FilterOptions are the selectable values for every filter dimension, as
// reported by the transaction service's filters endpoint.
type FilterOptions struct {
	Regions        []string `json:"regions"`
	Genders        []string `json:"genders"`
	Categories     []string `json:"categories"`
	PaymentMethods []string `json:"paymentMethods"`
	AgeRange       AgeRange `json:"ageRange"`
	Tags           []string `json:"tags"`
}

// maxBucketAge bounds open-ended age buckets such as "56+".
const maxBucketAge = 100

// ParseAgeBucket converts a discrete age-bucket label ("18-25", "56+") into
// the inclusive interval it denotes. The continuous interval is the
// canonical filter contract; bucket labels are a display format.
func ParseAgeBucket(label string) (AgeRange, error) {
	label = strings.TrimSpace(label)
	if open, ok := strings.CutSuffix(label, "+"); ok {
		min, err := strconv.Atoi(open)
		if err != nil {
			return AgeRange{}, fmt.Errorf("invalid age bucket %q", label)
		}
		return AgeRange{Min: min, Max: maxBucketAge}, nil
	}
	lo, hi, ok := strings.Cut(label, "-")
	if !ok {
		return AgeRange{}, fmt.Errorf("invalid age bucket %q", label)
	}
	min, err := strconv.Atoi(lo)
	if err != nil {
		return AgeRange{}, fmt.Errorf("invalid age bucket %q", label)
	}
	max, err := strconv.Atoi(hi)
	if err != nil {
		return AgeRange{}, fmt.Errorf("invalid age bucket %q", label)
	}
	if min > max {
		return AgeRange{}, fmt.Errorf("invalid age bucket %q: lower bound above upper bound", label)
	}
	return AgeRange{Min: min, Max: max}, nil
}
