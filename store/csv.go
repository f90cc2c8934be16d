package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"salesdashboard/sales"
)

// csvColumns is the expected column order for transaction CSV files. A
// header row with these names is tolerated and skipped. The tags column is
// a semicolon-separated list and may be omitted entirely.
var csvColumns = []string{
	"transactionId", "date", "customerId", "customerName", "phoneNumber",
	"gender", "age", "customerRegion", "productCategory", "productId",
	"quantity", "pricePerUnit", "discount", "employeeName", "paymentMethod",
	"tags",
}

// ImportCSV parses a transaction CSV, appends every valid row to the
// dataset and records the import in the upload history. Malformed rows are
// counted as failed without aborting the import. A non-nil error means the
// file itself could not be read; the failed upload is still recorded.
func (s *Store) ImportCSV(fileName string, fileSize int64, r io.Reader) (Upload, error) {
	upload := Upload{
		ID:         uuid.NewString(),
		FileName:   fileName,
		FileSize:   formatFileSize(fileSize),
		UploadedAt: time.Now().UTC(),
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		msg := fmt.Sprintf("error reading CSV file: %v", err)
		upload.Status = UploadStatusFailed
		upload.ErrorMessage = &msg
		s.appendUpload(upload)
		return upload, fmt.Errorf("read csv: %w", err)
	}

	start := 0
	if len(rows) > 0 && strings.EqualFold(rows[0][0], csvColumns[0]) {
		start = 1
	}

	records := make([]sales.Transaction, 0, len(rows))
	for i := start; i < len(rows); i++ {
		upload.TotalRecords++
		record, err := parseCSVRow(rows[i])
		if err != nil {
			upload.FailedRecords++
			continue
		}
		records = append(records, record)
		upload.ImportedRecords++
	}

	switch {
	case upload.TotalRecords > 0 && upload.ImportedRecords == 0:
		upload.Status = UploadStatusFailed
		msg := "no valid records found in file"
		upload.ErrorMessage = &msg
	case upload.FailedRecords > 0:
		upload.Status = UploadStatusPartial
	default:
		upload.Status = UploadStatusCompleted
	}

	s.mu.Lock()
	s.records = append(s.records, records...)
	s.uploads = append(s.uploads, upload)
	s.mu.Unlock()

	return upload, nil
}

func (s *Store) appendUpload(u Upload) {
	s.mu.Lock()
	s.uploads = append(s.uploads, u)
	s.mu.Unlock()
}

// parseCSVRow converts one CSV row into a transaction record. Amounts are
// recomputed from quantity, unit price and discount so imported rows always
// satisfy the amount invariants.
func parseCSVRow(row []string) (sales.Transaction, error) {
	if len(row) < len(csvColumns)-1 {
		return sales.Transaction{}, fmt.Errorf("expected at least %d columns, got %d", len(csvColumns)-1, len(row))
	}

	date, err := sales.ParseDate(strings.TrimSpace(row[1]))
	if err != nil {
		return sales.Transaction{}, err
	}
	age, err := strconv.Atoi(strings.TrimSpace(row[6]))
	if err != nil {
		return sales.Transaction{}, fmt.Errorf("invalid age %q", row[6])
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(row[10]))
	if err != nil {
		return sales.Transaction{}, fmt.Errorf("invalid quantity %q", row[10])
	}
	pricePerUnit, err := strconv.ParseFloat(strings.TrimSpace(row[11]), 64)
	if err != nil {
		return sales.Transaction{}, fmt.Errorf("invalid pricePerUnit %q", row[11])
	}
	discount, err := strconv.ParseFloat(strings.TrimSpace(row[12]), 64)
	if err != nil {
		return sales.Transaction{}, fmt.Errorf("invalid discount %q", row[12])
	}

	var tags []string
	if len(row) > 15 && strings.TrimSpace(row[15]) != "" {
		for _, tag := range strings.Split(row[15], ";") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	total, final := sales.ComputeAmounts(quantity, pricePerUnit, discount)
	record := sales.Transaction{
		TransactionID:   strings.TrimSpace(row[0]),
		Date:            date,
		CustomerID:      strings.TrimSpace(row[2]),
		CustomerName:    strings.TrimSpace(row[3]),
		PhoneNumber:     strings.TrimSpace(row[4]),
		Gender:          strings.TrimSpace(row[5]),
		Age:             age,
		CustomerRegion:  strings.TrimSpace(row[7]),
		ProductCategory: strings.TrimSpace(row[8]),
		ProductID:       strings.TrimSpace(row[9]),
		Quantity:        quantity,
		PricePerUnit:    pricePerUnit,
		Discount:        discount,
		TotalAmount:     total,
		FinalAmount:     final,
		EmployeeName:    strings.TrimSpace(row[13]),
		PaymentMethod:   strings.TrimSpace(row[14]),
		Tags:            tags,
	}

	if err := record.Validate(); err != nil {
		return sales.Transaction{}, err
	}
	return record, nil
}

func formatFileSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
