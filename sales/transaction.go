package sales

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// dateLayout is the wire format for calendar dates (ISO 8601, no time component).
const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals to and from
// the "2006-01-02" wire format used by the transaction service.
type Date struct {
	time.Time
}

// NewDate builds a Date at UTC midnight for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO 8601 date string ("2025-12-01").
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

// DateOf truncates a time.Time to its calendar day in UTC.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Transaction is one sales transaction row. Records are immutable once
// produced; the query pipeline never modifies them.
type Transaction struct {
	TransactionID   string   `json:"transactionId"`
	Date            Date     `json:"date"`
	CustomerID      string   `json:"customerId"`
	CustomerName    string   `json:"customerName"`
	PhoneNumber     string   `json:"phoneNumber"`
	Gender          string   `json:"gender"`
	Age             int      `json:"age"`
	ProductCategory string   `json:"productCategory"`
	ProductID       string   `json:"productId"`
	Quantity        int      `json:"quantity"`
	PricePerUnit    float64  `json:"pricePerUnit"`
	Discount        float64  `json:"discount"`
	TotalAmount     float64  `json:"totalAmount"`
	FinalAmount     float64  `json:"finalAmount"`
	CustomerRegion  string   `json:"customerRegion"`
	EmployeeName    string   `json:"employeeName"`
	PaymentMethod   string   `json:"paymentMethod"`
	Tags            []string `json:"tags,omitempty"`
}

// DiscountAmount returns the absolute discount applied to the transaction.
func (t Transaction) DiscountAmount() float64 {
	return t.TotalAmount - t.FinalAmount
}

// ComputeAmounts derives totalAmount and finalAmount from quantity, unit
// price and discount percentage. The discount amount is floored, matching
// finalAmount == totalAmount - floor(totalAmount * discount / 100).
func ComputeAmounts(quantity int, pricePerUnit, discount float64) (total, final float64) {
	total = float64(quantity) * pricePerUnit
	final = total - math.Floor(total*discount/100)
	return total, final
}

// Validate checks the record-level invariants.
func (t Transaction) Validate() error {
	if t.TransactionID == "" {
		return fmt.Errorf("transactionId is required")
	}
	if t.Age < 0 {
		return fmt.Errorf("age must be >= 0, got %d", t.Age)
	}
	if t.Quantity <= 0 {
		return fmt.Errorf("quantity must be > 0, got %d", t.Quantity)
	}
	if t.Discount < 0 || t.Discount > 100 {
		return fmt.Errorf("discount must be between 0 and 100, got %g", t.Discount)
	}
	wantTotal, wantFinal := ComputeAmounts(t.Quantity, t.PricePerUnit, t.Discount)
	if t.TotalAmount != wantTotal {
		return fmt.Errorf("totalAmount %g does not equal quantity * pricePerUnit (%g)", t.TotalAmount, wantTotal)
	}
	if t.FinalAmount != wantFinal {
		return fmt.Errorf("finalAmount %g does not match discounted total (%g)", t.FinalAmount, wantFinal)
	}
	return nil
}
