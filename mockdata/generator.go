// Package mockdata generates a deterministic in-memory sales dataset for
// development and tests. All randomness comes from a caller-supplied seed,
// and dates are anchored on a caller-supplied base date, so a given
// (count, seed, baseDate) triple always produces the same records.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"salesdashboard/sales"
)

var (
	customers = []string{
		"Nisha Yadav",
		"Rahul Singh",
		"Priya Sharma",
		"Vikram Patel",
		"Anjali Gupta",
		"Arjun Kumar",
		"Neha Desai",
		"Rohit Verma",
		"Sneha Iyer",
		"Aditya Chopra",
	}

	regions        = []string{"North", "South", "East", "West", "Central"}
	categories     = []string{"Clothing", "Electronics", "Home", "Sports", "Beauty"}
	paymentMethods = []string{"Credit Card", "Debit Card", "UPI", "Net Banking", "Cash"}
	employees      = []string{"Anil Singh", "Ravi Kumar", "Priya Patel", "Sahil Reddy", "Meera Nair"}
)

// historyDays is how far back from the base date transaction dates spread.
const historyDays = 90

// Generate produces count transaction records from the given seed, with
// transaction dates falling in the 90 days before baseDate. Amounts always
// satisfy the totalAmount/finalAmount invariants.
func Generate(count int, seed int64, baseDate sales.Date) []sales.Transaction {
	rng := rand.New(rand.NewSource(seed))
	records := make([]sales.Transaction, 0, count)

	for i := 0; i < count; i++ {
		daysAgo := rng.Intn(historyDays)
		date := sales.DateOf(baseDate.AddDate(0, 0, -daysAgo))

		quantity := rng.Intn(5) + 1
		pricePerUnit := float64(rng.Intn(5000) + 500)
		discount := float64(rng.Intn(20))
		total, final := sales.ComputeAmounts(quantity, pricePerUnit, discount)

		gender := "Male"
		if rng.Intn(2) == 1 {
			gender = "Female"
		}

		var tags []string
		if rng.Intn(2) == 1 {
			tags = []string{"VIP"}
		}

		records = append(records, sales.Transaction{
			TransactionID:   fmt.Sprintf("%d", 1234567+i),
			Date:            date,
			CustomerID:      fmt.Sprintf("CUST%05d", 1001+i),
			CustomerName:    customers[rng.Intn(len(customers))],
			PhoneNumber:     fmt.Sprintf("+91 %d", rng.Intn(9000000000)+1000000000),
			Gender:          gender,
			Age:             rng.Intn(50) + 18,
			ProductCategory: categories[rng.Intn(len(categories))],
			ProductID:       fmt.Sprintf("PROD%05d", 2016+rng.Intn(1000)),
			Quantity:        quantity,
			PricePerUnit:    pricePerUnit,
			Discount:        discount,
			TotalAmount:     total,
			FinalAmount:     final,
			CustomerRegion:  regions[rng.Intn(len(regions))],
			EmployeeName:    employees[rng.Intn(len(employees))],
			PaymentMethod:   paymentMethods[rng.Intn(len(paymentMethods))],
			Tags:            tags,
		})
	}

	return records
}

// DefaultBaseDate returns today's calendar date in UTC, the anchor used when
// no base date is configured.
func DefaultBaseDate() sales.Date {
	return sales.DateOf(time.Now())
}
