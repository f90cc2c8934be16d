package main

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"salesdashboard/sales"
)

// Query-string binding and validation for the transaction endpoints.
// Validation failures never reach the store; they surface as 400s with a
// field-level message.

// parseQueryState binds the full query contract: pagination, search, sort
// and every filter dimension.
func parseQueryState(c *gin.Context) (sales.QueryState, error) {
	q := sales.QueryState{
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.DefaultQuery("sortOrder", sales.SortAsc),
		Page:      1,
		PageSize:  sales.DefaultPageSize,
	}

	var err error
	if q.Page, err = parsePositiveInt(c, "page", 1); err != nil {
		return sales.QueryState{}, err
	}
	if q.PageSize, err = parsePositiveInt(c, "pageSize", sales.DefaultPageSize); err != nil {
		return sales.QueryState{}, err
	}
	if q.SortOrder != sales.SortAsc && q.SortOrder != sales.SortDesc {
		return sales.QueryState{}, fmt.Errorf("sortOrder must be %q or %q", sales.SortAsc, sales.SortDesc)
	}

	if q.Filters, err = parseFilterState(c); err != nil {
		return sales.QueryState{}, err
	}
	return q, nil
}

// parseFilterState binds only the filter dimensions, as used by the stats
// endpoint.
func parseFilterState(c *gin.Context) (sales.FilterState, error) {
	f := sales.FilterState{
		Regions:        c.QueryArray("regions"),
		Genders:        c.QueryArray("genders"),
		Categories:     c.QueryArray("categories"),
		Tags:           c.QueryArray("tags"),
		PaymentMethods: c.QueryArray("paymentMethods"),
	}

	ageMin, hasMin := c.GetQuery("ageMin")
	ageMax, hasMax := c.GetQuery("ageMax")
	if hasMin != hasMax {
		return sales.FilterState{}, fmt.Errorf("ageMin and ageMax must be provided together")
	}
	if hasMin {
		min, err := strconv.Atoi(ageMin)
		if err != nil {
			return sales.FilterState{}, fmt.Errorf("ageMin must be an integer")
		}
		max, err := strconv.Atoi(ageMax)
		if err != nil {
			return sales.FilterState{}, fmt.Errorf("ageMax must be an integer")
		}
		if min < 0 || min > max {
			return sales.FilterState{}, fmt.Errorf("invalid age range [%d, %d]", min, max)
		}
		f.AgeRange = &sales.AgeRange{Min: min, Max: max}
	}

	dateFrom, hasFrom := c.GetQuery("dateFrom")
	dateTo, hasTo := c.GetQuery("dateTo")
	if hasFrom != hasTo {
		return sales.FilterState{}, fmt.Errorf("dateFrom and dateTo must be provided together")
	}
	if hasFrom {
		from, err := sales.ParseDate(dateFrom)
		if err != nil {
			return sales.FilterState{}, fmt.Errorf("dateFrom: %w", err)
		}
		to, err := sales.ParseDate(dateTo)
		if err != nil {
			return sales.FilterState{}, fmt.Errorf("dateTo: %w", err)
		}
		if from.After(to.Time) {
			return sales.FilterState{}, fmt.Errorf("dateFrom must not be after dateTo")
		}
		f.DateRange = &sales.DateRange{From: from, To: to}
	}

	return f, nil
}

func parsePositiveInt(c *gin.Context, name string, fallback int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return value, nil
}
