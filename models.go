package main

import (
	"salesdashboard/sales"
	"salesdashboard/store"
)

// API response shapes for the transaction service endpoints.

// Pagination is the paging envelope on the transactions list response.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// TransactionsResponse is the body of GET /api/transactions.
type TransactionsResponse struct {
	Transactions []sales.Transaction `json:"transactions"`
	Pagination   Pagination          `json:"pagination"`
}

// UploadResponse is the body of POST /api/transactions/upload.
type UploadResponse struct {
	Message      string `json:"message"`
	TotalRecords int    `json:"totalRecords"`
	Imported     int    `json:"imported"`
	Errors       int    `json:"errors"`
	UploadID     string `json:"uploadId"`
}

// UploadsResponse is the body of GET /api/transactions/uploads.
type UploadsResponse struct {
	Uploads []store.Upload `json:"uploads"`
}

// ErrorResponse is the error body on every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

func newTransactionsResponse(result sales.Result) TransactionsResponse {
	return TransactionsResponse{
		Transactions: result.Transactions,
		Pagination: Pagination{
			Page:       result.Page,
			PageSize:   result.PageSize,
			TotalCount: result.TotalCount,
			TotalPages: result.TotalPages,
		},
	}
}
