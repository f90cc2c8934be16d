package mockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdashboard/sales"
)

func TestGenerate(t *testing.T) {
	baseDate := sales.NewDate(2025, time.December, 1)

	t.Run("is deterministic for a given seed and base date", func(t *testing.T) {
		first := Generate(100, 42, baseDate)
		second := Generate(100, 42, baseDate)
		assert.Equal(t, first, second)
	})

	t.Run("different seeds produce different datasets", func(t *testing.T) {
		assert.NotEqual(t, Generate(100, 42, baseDate), Generate(100, 43, baseDate))
	})

	t.Run("produces the requested count", func(t *testing.T) {
		assert.Len(t, Generate(0, 42, baseDate), 0)
		assert.Len(t, Generate(7, 42, baseDate), 7)
		assert.Len(t, Generate(250, 42, baseDate), 250)
	})

	t.Run("every record satisfies the amount invariants", func(t *testing.T) {
		for _, tx := range Generate(250, 42, baseDate) {
			require.NoError(t, tx.Validate(), "record %s", tx.TransactionID)
		}
	})

	t.Run("fields stay within the documented ranges", func(t *testing.T) {
		earliest := sales.DateOf(baseDate.AddDate(0, 0, -historyDays))

		for _, tx := range Generate(250, 42, baseDate) {
			assert.GreaterOrEqual(t, tx.Quantity, 1)
			assert.LessOrEqual(t, tx.Quantity, 5)
			assert.GreaterOrEqual(t, tx.PricePerUnit, 500.0)
			assert.LessOrEqual(t, tx.PricePerUnit, 5499.0)
			assert.GreaterOrEqual(t, tx.Discount, 0.0)
			assert.LessOrEqual(t, tx.Discount, 19.0)
			assert.GreaterOrEqual(t, tx.Age, 18)
			assert.LessOrEqual(t, tx.Age, 67)

			assert.False(t, tx.Date.After(baseDate.Time), "date %s after base date", tx.Date)
			assert.False(t, tx.Date.Before(earliest.Time), "date %s before history window", tx.Date)

			assert.Contains(t, regions, tx.CustomerRegion)
			assert.Contains(t, categories, tx.ProductCategory)
			assert.Contains(t, paymentMethods, tx.PaymentMethod)
			assert.Contains(t, customers, tx.CustomerName)
			assert.Contains(t, employees, tx.EmployeeName)
		}
	})

	t.Run("assigns sequential customer and transaction ids", func(t *testing.T) {
		records := Generate(3, 42, baseDate)

		assert.Equal(t, "1234567", records[0].TransactionID)
		assert.Equal(t, "1234569", records[2].TransactionID)
		assert.Equal(t, "CUST01001", records[0].CustomerID)
		assert.Equal(t, "CUST01003", records[2].CustomerID)
	})
}

func TestDefaultBaseDate(t *testing.T) {
	today := sales.DateOf(time.Now())
	assert.Equal(t, today, DefaultBaseDate())
}
