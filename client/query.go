package client

import (
	"net/url"
	"strconv"

	"salesdashboard/sales"
)

// encodeQuery translates a query state into the service's query-string
// contract: scalar parameters first, then one repeated parameter per
// selected value for each set dimension. Empty or absent values are
// omitted entirely.
func encodeQuery(q sales.QueryState) url.Values {
	values := url.Values{}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
	}
	if q.SortOrder != "" {
		values.Set("sortOrder", q.SortOrder)
	}

	encodeFilters(values, q.Filters)
	return values
}

// encodeFilters appends the filter dimensions: repeated params for set
// dimensions, ageMin/ageMax for the age interval and dateFrom/dateTo for
// the date interval.
func encodeFilters(values url.Values, f sales.FilterState) {
	for _, r := range f.Regions {
		values.Add("regions", r)
	}
	for _, g := range f.Genders {
		values.Add("genders", g)
	}
	for _, c := range f.Categories {
		values.Add("categories", c)
	}
	for _, t := range f.Tags {
		values.Add("tags", t)
	}
	for _, p := range f.PaymentMethods {
		values.Add("paymentMethods", p)
	}
	if f.AgeRange != nil {
		values.Set("ageMin", strconv.Itoa(f.AgeRange.Min))
		values.Set("ageMax", strconv.Itoa(f.AgeRange.Max))
	}
	if f.DateRange != nil {
		values.Set("dateFrom", f.DateRange.From.String())
		values.Set("dateTo", f.DateRange.To.String())
	}
}
