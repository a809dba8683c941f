package events

import (
	"time"

	"github.com/google/uuid"
)

func init() {
	register(func() DomainEvent { return &ImportLogCreated{} })
	register(func() DomainEvent { return &FileAddedToImportLog{} })
	register(func() DomainEvent { return &FileCreated{} })
	register(func() DomainEvent { return &FileLineAdded{} })
	register(func() DomainEvent { return &FileLineProcessingSuccessful{} })
	register(func() DomainEvent { return &FileLineProcessingFailed{} })
	register(func() DomainEvent { return &FileLineProcessingIgnored{} })
	register(func() DomainEvent { return &FileProcessingCompleted{} })
}

// ImportLogCreated opens an import-log for a day's file uploads.
type ImportLogCreated struct {
	ImportLogID       uuid.UUID `json:"fileImportLogId"`
	EstateID          uuid.UUID `json:"estateId"`
	ImportLogDateTime time.Time `json:"importLogDateTime"`
}

func (e *ImportLogCreated) EventType() string { return "ImportLogCreatedEvent" }

// FileAddedToImportLog links an uploaded file into an import log.
type FileAddedToImportLog struct {
	ImportLogID          uuid.UUID `json:"fileImportLogId"`
	FileID               uuid.UUID `json:"fileId"`
	EstateID             uuid.UUID `json:"estateId"`
	MerchantID           uuid.UUID `json:"merchantId"`
	UserID               uuid.UUID `json:"userId"`
	FilePath             string    `json:"filePath"`
	FileProfileID        uuid.UUID `json:"fileProfileId"`
	OriginalFileName     string    `json:"originalFileName"`
	FileUploadedDateTime time.Time `json:"fileUploadedDateTime"`
}

func (e *FileAddedToImportLog) EventType() string { return "FileAddedToImportLogEvent" }

// FileCreated opens a file's processing lifecycle.
type FileCreated struct {
	FileID               uuid.UUID `json:"fileId"`
	ImportLogID          uuid.UUID `json:"fileImportLogId"`
	EstateID             uuid.UUID `json:"estateId"`
	MerchantID           uuid.UUID `json:"merchantId"`
	UserID               uuid.UUID `json:"userId"`
	FileProfileID        uuid.UUID `json:"fileProfileId"`
	FileReceivedDateTime time.Time `json:"fileReceivedDateTime"`
}

func (e *FileCreated) EventType() string { return "FileCreatedEvent" }

// FileLineAdded appends one pending line to a file.
type FileLineAdded struct {
	FileID       uuid.UUID `json:"fileId"`
	EstateID     uuid.UUID `json:"estateId"`
	LineNumber   int       `json:"lineNumber"`
	FileLineData string    `json:"fileLine"`
}

func (e *FileLineAdded) EventType() string { return "FileLineAddedEvent" }

// FileLineProcessingSuccessful marks a line as processed into a transaction.
type FileLineProcessingSuccessful struct {
	FileID        uuid.UUID `json:"fileId"`
	EstateID      uuid.UUID `json:"estateId"`
	LineNumber    int       `json:"lineNumber"`
	TransactionID uuid.UUID `json:"transactionId"`
}

func (e *FileLineProcessingSuccessful) EventType() string {
	return "FileLineProcessingSuccessfulEvent"
}

// FileLineProcessingFailed marks a line as failed.
type FileLineProcessingFailed struct {
	FileID          uuid.UUID `json:"fileId"`
	EstateID        uuid.UUID `json:"estateId"`
	LineNumber      int       `json:"lineNumber"`
	TransactionID   uuid.UUID `json:"transactionId"`
	ResponseCode    string    `json:"responseCode"`
	ResponseMessage string    `json:"responseMessage"`
}

func (e *FileLineProcessingFailed) EventType() string { return "FileLineProcessingFailedEvent" }

// FileLineProcessingIgnored marks a line as skipped.
type FileLineProcessingIgnored struct {
	FileID     uuid.UUID `json:"fileId"`
	EstateID   uuid.UUID `json:"estateId"`
	LineNumber int       `json:"lineNumber"`
}

func (e *FileLineProcessingIgnored) EventType() string { return "FileLineProcessingIgnoredEvent" }

// FileProcessingCompleted marks the whole file as processed.
type FileProcessingCompleted struct {
	FileID                      uuid.UUID `json:"fileId"`
	EstateID                    uuid.UUID `json:"estateId"`
	ProcessingCompletedDateTime time.Time `json:"processingCompletedDateTime"`
}

func (e *FileProcessingCompleted) EventType() string { return "FileProcessingCompletedEvent" }
