package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salesdashboard/store"
)

// @Summary Upload transactions CSV
// @Description Import a CSV file of transactions. Malformed rows are counted as failed without aborting the import.
// @Tags transactions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file to import"
// @Success 200 {object} UploadResponse "Import result"
// @Failure 400 {object} ErrorResponse "Missing, oversized or unreadable file"
// @Router /api/transactions/upload [post]
func uploadTransactions(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "No file uploaded"})
		return
	}
	defer file.Close()

	if maxUploadBytes > 0 && header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "File exceeds the upload size limit"})
		return
	}

	upload, err := dataStore.ImportCSV(header.Filename, header.Size, file)
	if err != nil {
		appLog.Warn("csv import failed",
			zap.String("file", header.Filename),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Error reading CSV file"})
		return
	}

	appLog.Info("csv imported",
		zap.String("file", header.Filename),
		zap.Int("total", upload.TotalRecords),
		zap.Int("imported", upload.ImportedRecords),
		zap.Int("failed", upload.FailedRecords),
	)

	c.JSON(http.StatusOK, UploadResponse{
		Message:      "Upload processed successfully",
		TotalRecords: upload.TotalRecords,
		Imported:     upload.ImportedRecords,
		Errors:       upload.FailedRecords,
		UploadID:     upload.ID,
	})
}

// @Summary List upload history
// @Description Retrieve past CSV imports, newest first.
// @Tags transactions
// @Produce json
// @Success 200 {object} UploadsResponse "Upload history"
// @Router /api/transactions/uploads [get]
func getUploadHistory(c *gin.Context) {
	uploads := dataStore.Uploads()
	if uploads == nil {
		uploads = []store.Upload{}
	}
	c.JSON(http.StatusOK, UploadsResponse{Uploads: uploads})
}
