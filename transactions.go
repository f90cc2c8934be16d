package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Transaction handler functions

// @Summary List transactions
// @Description Retrieve a filtered, sorted, paginated page of transactions. Set-valued filters are passed as repeated parameters.
// @Tags transactions
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Records per page"
// @Param search query string false "Case-insensitive match on customer name or phone number"
// @Param sortBy query string false "customerName, date or quantity"
// @Param sortOrder query string false "asc or desc"
// @Param regions query []string false "Customer regions" collectionFormat(multi)
// @Param genders query []string false "Genders" collectionFormat(multi)
// @Param categories query []string false "Product categories" collectionFormat(multi)
// @Param tags query []string false "Tags" collectionFormat(multi)
// @Param paymentMethods query []string false "Payment methods" collectionFormat(multi)
// @Param ageMin query int false "Minimum age (inclusive)"
// @Param ageMax query int false "Maximum age (inclusive)"
// @Param dateFrom query string false "Start date YYYY-MM-DD (inclusive)"
// @Param dateTo query string false "End date YYYY-MM-DD (inclusive)"
// @Success 200 {object} TransactionsResponse "Page of transactions"
// @Failure 400 {object} ErrorResponse "Invalid query parameter"
// @Router /api/transactions [get]
func listTransactions(c *gin.Context) {
	query, err := parseQueryState(c)
	if err != nil {
		logQueryRejected(c, err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	result := dataStore.Query(query)
	c.JSON(http.StatusOK, newTransactionsResponse(result))
}

// @Summary Get filter options
// @Description Retrieve the selectable values for every filter dimension, derived from the dataset.
// @Tags transactions
// @Produce json
// @Success 200 {object} sales.FilterOptions "Filter options"
// @Router /api/transactions/filters [get]
func getFilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, dataStore.FilterOptions())
}

// logQueryRejected records a rejected query for diagnostics.
func logQueryRejected(c *gin.Context, err error) {
	appLog.Warn("rejected query",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
}
