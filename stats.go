package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get aggregate statistics
// @Description Compute total units, gross amount and discount over all transactions matching the filter set. Pagination, search and sort parameters are ignored.
// @Tags transactions
// @Produce json
// @Param regions query []string false "Customer regions" collectionFormat(multi)
// @Param genders query []string false "Genders" collectionFormat(multi)
// @Param categories query []string false "Product categories" collectionFormat(multi)
// @Param tags query []string false "Tags" collectionFormat(multi)
// @Param paymentMethods query []string false "Payment methods" collectionFormat(multi)
// @Param ageMin query int false "Minimum age (inclusive)"
// @Param ageMax query int false "Maximum age (inclusive)"
// @Param dateFrom query string false "Start date YYYY-MM-DD (inclusive)"
// @Param dateTo query string false "End date YYYY-MM-DD (inclusive)"
// @Success 200 {object} sales.Stats "Aggregate statistics"
// @Failure 400 {object} ErrorResponse "Invalid query parameter"
// @Router /api/transactions/stats [get]
func getStats(c *gin.Context) {
	filters, err := parseFilterState(c)
	if err != nil {
		logQueryRejected(c, err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dataStore.Stats(filters))
}
