package pgsql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
)

type PgxFileRepository struct {
	pool *pgxpool.Pool
}

// NewPgxFileRepository creates a new repository for batch-import rows.
func NewPgxFileRepository(pool *pgxpool.Pool) portsrepo.FileRepository {
	return &PgxFileRepository{pool: pool}
}

func (r *PgxFileRepository) InsertImportLog(ctx context.Context, log domain.FileImportLog) error {
	query := `
		INSERT INTO file_import_log (import_log_id, estate_id, import_log_date_time)
		VALUES ($1, $2, $3);
	`
	_, err := r.pool.Exec(ctx, query,
		log.ImportLogID,
		log.EstateID,
		log.ImportLogDateTime,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxFileRepository) InsertImportLogFile(ctx context.Context, file domain.FileImportLogFile) error {
	query := `
		INSERT INTO file_import_log_file (import_log_id, file_id, estate_id, merchant_id, user_id,
			file_path, file_profile_id, original_file_name, file_uploaded_date_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		file.ImportLogID,
		file.FileID,
		file.EstateID,
		file.MerchantID,
		file.UserID,
		file.FilePath,
		file.FileProfileID,
		file.OriginalFileName,
		file.FileUploadedDateTime,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxFileRepository) InsertFile(ctx context.Context, file domain.File) error {
	query := `
		INSERT INTO file (file_id, import_log_id, estate_id, merchant_id, user_id, file_profile_id, file_received_date_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		file.FileID,
		file.ImportLogID,
		file.EstateID,
		file.MerchantID,
		file.UserID,
		file.FileProfileID,
		file.FileReceivedDateTime,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxFileRepository) InsertFileLine(ctx context.Context, line domain.FileLine) error {
	query := `
		INSERT INTO file_line (file_id, line_number, file_line_data, status)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.pool.Exec(ctx, query,
		line.FileID,
		line.LineNumber,
		line.FileLineData,
		string(domain.FileLineStatusPending),
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxFileRepository) UpdateFileLineStatus(ctx context.Context, fileID uuid.UUID, lineNumber int, status domain.FileLineStatus, transactionID uuid.UUID) error {
	query := `
		UPDATE file_line SET status = $3, transaction_id = $4
		WHERE file_id = $1 AND line_number = $2;
	`
	var txnID *uuid.UUID
	if transactionID != uuid.Nil {
		txnID = &transactionID
	}
	tag, err := r.pool.Exec(ctx, query, fileID, lineNumber, string(status), txnID)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("file %s line %d", fileID, lineNumber))
}

func (r *PgxFileRepository) MarkFileCompleted(ctx context.Context, fileID uuid.UUID) error {
	query := `
		UPDATE file SET is_completed = TRUE
		WHERE file_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, fileID)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("file %s", fileID))
}
