package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdashboard/sales"
)

const csvHeader = "transactionId,date,customerId,customerName,phoneNumber,gender,age,customerRegion,productCategory,productId,quantity,pricePerUnit,discount,employeeName,paymentMethod,tags"

func TestImportCSV(t *testing.T) {
	t.Run("imports every valid row", func(t *testing.T) {
		s := New(nil)
		content := csvHeader + `
9000001,2025-11-05,CUST90001,Kiran Rao,+91 9000000001,Female,31,North,Electronics,PROD02500,2,1500,10,Anil Singh,UPI,VIP;New
9000002,2025-11-06,CUST90002,Dev Mehta,+91 9000000002,Male,45,South,Clothing,PROD02501,1,800,0,Ravi Kumar,Cash,`

		upload, err := s.ImportCSV("november.csv", int64(len(content)), strings.NewReader(content))
		require.NoError(t, err)

		assert.Equal(t, 2, upload.TotalRecords)
		assert.Equal(t, 2, upload.ImportedRecords)
		assert.Equal(t, 0, upload.FailedRecords)
		assert.Equal(t, UploadStatusCompleted, upload.Status)
		assert.Nil(t, upload.ErrorMessage)
		assert.NotEmpty(t, upload.ID)
		assert.Equal(t, 2, s.Count())

		result := s.Query(sales.QueryState{Search: "Kiran"})
		require.Equal(t, 1, result.TotalCount)
		tx := result.Transactions[0]
		assert.Equal(t, 3000.0, tx.TotalAmount)
		assert.Equal(t, 2700.0, tx.FinalAmount)
		assert.Equal(t, []string{"VIP", "New"}, tx.Tags)
	})

	t.Run("counts malformed rows and reports a partial import", func(t *testing.T) {
		s := New(nil)
		content := csvHeader + `
9000003,2025-11-07,CUST90003,Asha Pillai,+91 9000000003,Female,28,East,Beauty,PROD02502,3,400,5,Priya Patel,Credit Card,
9000004,not-a-date,CUST90004,Broken Row,+91 9000000004,Male,30,West,Home,PROD02503,1,900,0,Sahil Reddy,Cash,
9000005,2025-11-08,CUST90005,Mohan Das,+91 9000000005,Male,fifty,Central,Sports,PROD02504,4,250,0,Meera Nair,Debit Card,`

		upload, err := s.ImportCSV("partial.csv", int64(len(content)), strings.NewReader(content))
		require.NoError(t, err)

		assert.Equal(t, 3, upload.TotalRecords)
		assert.Equal(t, 1, upload.ImportedRecords)
		assert.Equal(t, 2, upload.FailedRecords)
		assert.Equal(t, UploadStatusPartial, upload.Status)
		assert.Equal(t, 1, s.Count())
	})

	t.Run("reports a failed import when no row is valid", func(t *testing.T) {
		s := New(nil)
		content := csvHeader + "\n9000006,nope,CUST90006,Bad Row,+91 9000000006,Male,30,West,Home,PROD02505,1,900,0,Sahil Reddy,Cash,"

		upload, err := s.ImportCSV("allbad.csv", int64(len(content)), strings.NewReader(content))
		require.NoError(t, err)

		assert.Equal(t, UploadStatusFailed, upload.Status)
		require.NotNil(t, upload.ErrorMessage)
		assert.Contains(t, *upload.ErrorMessage, "no valid records")
		assert.Equal(t, 0, s.Count())
	})

	t.Run("tolerates a missing header row", func(t *testing.T) {
		s := New(nil)
		content := "9000007,2025-11-09,CUST90007,Tara Menon,+91 9000000007,Female,26,North,Beauty,PROD02506,1,600,0,Anil Singh,UPI,"

		upload, err := s.ImportCSV("noheader.csv", int64(len(content)), strings.NewReader(content))
		require.NoError(t, err)

		assert.Equal(t, 1, upload.ImportedRecords)
		assert.Equal(t, 1, s.Count())
	})

	t.Run("treats an empty file as a completed import of nothing", func(t *testing.T) {
		s := New(nil)

		upload, err := s.ImportCSV("empty.csv", 0, strings.NewReader(""))
		require.NoError(t, err)

		assert.Equal(t, 0, upload.TotalRecords)
		assert.Equal(t, UploadStatusCompleted, upload.Status)
	})

	t.Run("records an unreadable file as a failed upload", func(t *testing.T) {
		s := New(nil)
		content := csvHeader + "\n9000008,2025-11-10,CUST90008,\"UNCLOSED,+91 9000000008,Male,30,West,Home,PROD02507,1,900,0,Sahil Reddy,Cash,"

		upload, err := s.ImportCSV("broken.csv", int64(len(content)), strings.NewReader(content))
		require.Error(t, err)

		assert.Equal(t, UploadStatusFailed, upload.Status)
		require.NotNil(t, upload.ErrorMessage)

		history := s.Uploads()
		require.Len(t, history, 1)
		assert.Equal(t, "broken.csv", history[0].FileName)
		assert.Equal(t, UploadStatusFailed, history[0].Status)
	})

	t.Run("formats the file size for the history entry", func(t *testing.T) {
		s := New(nil)

		upload, err := s.ImportCSV("tiny.csv", 512, strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, "512 B", upload.FileSize)

		upload, err = s.ImportCSV("mid.csv", 2048, strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, "2.0 KB", upload.FileSize)

		upload, err = s.ImportCSV("big.csv", 3<<20, strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, "3.0 MB", upload.FileSize)
	})
}

func TestUploadsOrdering(t *testing.T) {
	s := New(nil)
	row := "9000009,2025-11-11,CUST90009,Ajay Nair,+91 9000000009,Male,39,South,Sports,PROD02508,2,700,5,Ravi Kumar,Cash,"

	_, err := s.ImportCSV("first.csv", 10, strings.NewReader(row))
	require.NoError(t, err)
	_, err = s.ImportCSV("second.csv", 10, strings.NewReader(row))
	require.NoError(t, err)

	history := s.Uploads()
	require.Len(t, history, 2)
	assert.Equal(t, "second.csv", history[0].FileName)
	assert.Equal(t, "first.csv", history[1].FileName)
}
