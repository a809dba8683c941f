package domain

import (
	"time"

	"github.com/google/uuid"
)

// FileLineStatus is the processing status of one file line.
type FileLineStatus string

const (
	FileLineStatusPending FileLineStatus = "P"
	FileLineStatusSuccess FileLineStatus = "S"
	FileLineStatusFailed  FileLineStatus = "F"
	FileLineStatusIgnored FileLineStatus = "I"
)

// FileImportLog is the bookkeeping record for one batch import run.
type FileImportLog struct {
	ImportLogID       uuid.UUID `json:"importLogID"` // Primary Key
	EstateID          uuid.UUID `json:"estateID"`
	ImportLogDateTime time.Time `json:"importLogDateTime"`
}

// FileImportLogFile links an uploaded file into an import log.
type FileImportLogFile struct {
	ImportLogID          uuid.UUID `json:"importLogID"` // Composite key part
	FileID               uuid.UUID `json:"fileID"`      // Composite key part
	EstateID             uuid.UUID `json:"estateID"`
	MerchantID           uuid.UUID `json:"merchantID"`
	UserID               uuid.UUID `json:"userID"`
	FilePath             string    `json:"filePath"`
	FileProfileID        uuid.UUID `json:"fileProfileID"`
	OriginalFileName     string    `json:"originalFileName"`
	FileUploadedDateTime time.Time `json:"fileUploadedDateTime"`
}

// File is a batch import file being processed line by line.
type File struct {
	FileID               uuid.UUID `json:"fileID"` // Primary Key
	ImportLogID          uuid.UUID `json:"importLogID"`
	EstateID             uuid.UUID `json:"estateID"`
	MerchantID           uuid.UUID `json:"merchantID"`
	UserID               uuid.UUID `json:"userID"`
	FileProfileID        uuid.UUID `json:"fileProfileID"`
	FileReceivedDateTime time.Time `json:"fileReceivedDateTime"`
	IsCompleted          bool      `json:"isCompleted"`
}

// FileLine is one line of an import file and its processing outcome.
type FileLine struct {
	FileID        uuid.UUID      `json:"fileID"`     // Composite key part
	LineNumber    int            `json:"lineNumber"` // Composite key part
	FileLineData  string         `json:"fileLineData"`
	Status        FileLineStatus `json:"status"`
	TransactionID uuid.UUID      `json:"transactionID"` // Set when the line produced a transaction
}
