package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
)

type PgxMerchantRepository struct {
	pool *pgxpool.Pool
}

// NewPgxMerchantRepository creates a new repository for merchant rows and
// their detail projections.
func NewPgxMerchantRepository(pool *pgxpool.Pool) portsrepo.MerchantRepository {
	return &PgxMerchantRepository{pool: pool}
}

func (r *PgxMerchantRepository) InsertMerchant(ctx context.Context, merchant domain.Merchant) error {
	query := `
		INSERT INTO merchant (estate_id, merchant_id, name, reference, settlement_schedule, last_statement_generated, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		merchant.EstateID,
		merchant.MerchantID,
		merchant.Name,
		merchant.Reference,
		int(merchant.SettlementSchedule),
		merchant.LastStatementGenerated,
		merchant.CreatedAt,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxMerchantRepository) GetMerchant(ctx context.Context, estateID, merchantID uuid.UUID) (*domain.Merchant, error) {
	query := `
		SELECT estate_id, merchant_id, name, reference, settlement_schedule, last_statement_generated, created_at
		FROM merchant
		WHERE estate_id = $1 AND merchant_id = $2;
	`
	var merchant domain.Merchant
	err := r.pool.QueryRow(ctx, query, estateID, merchantID).Scan(
		&merchant.EstateID,
		&merchant.MerchantID,
		&merchant.Name,
		&merchant.Reference,
		&merchant.SettlementSchedule,
		&merchant.LastStatementGenerated,
		&merchant.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateErr(err)
	}
	return &merchant, nil
}

func (r *PgxMerchantRepository) UpdateMerchantReference(ctx context.Context, estateID, merchantID uuid.UUID, reference string) error {
	query := `
		UPDATE merchant SET reference = $3
		WHERE estate_id = $1 AND merchant_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query, estateID, merchantID, reference)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("merchant %s", merchantID))
}

func (r *PgxMerchantRepository) UpdateSettlementSchedule(ctx context.Context, estateID, merchantID uuid.UUID, schedule domain.SettlementSchedule) error {
	query := `
		UPDATE merchant SET settlement_schedule = $3
		WHERE estate_id = $1 AND merchant_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query, estateID, merchantID, int(schedule))
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("merchant %s", merchantID))
}

func (r *PgxMerchantRepository) UpdateLastStatementGenerated(ctx context.Context, estateID, merchantID uuid.UUID, generated time.Time) error {
	query := `
		UPDATE merchant SET last_statement_generated = $3
		WHERE estate_id = $1 AND merchant_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query, estateID, merchantID, generated)
	if err != nil {
		return translateErr(err)
	}
	return requireRowAffected(tag, fmt.Sprintf("merchant %s", merchantID))
}

func (r *PgxMerchantRepository) InsertMerchantAddress(ctx context.Context, address domain.MerchantAddress) error {
	query := `
		INSERT INTO merchant_address (merchant_id, address_id, estate_id, address_line1, address_line2, town, region, postal_code, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		address.MerchantID,
		address.AddressID,
		address.EstateID,
		address.AddressLine1,
		address.AddressLine2,
		address.Town,
		address.Region,
		address.PostalCode,
		address.Country,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxMerchantRepository) InsertMerchantContact(ctx context.Context, contact domain.MerchantContact) error {
	query := `
		INSERT INTO merchant_contact (merchant_id, contact_id, estate_id, name, email_address, phone_number)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		contact.MerchantID,
		contact.ContactID,
		contact.EstateID,
		contact.Name,
		contact.EmailAddress,
		contact.PhoneNumber,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxMerchantRepository) InsertMerchantDevice(ctx context.Context, device domain.MerchantDevice) error {
	query := `
		INSERT INTO merchant_device (merchant_id, device_id, estate_id, device_identifier)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.pool.Exec(ctx, query,
		device.MerchantID,
		device.DeviceID,
		device.EstateID,
		device.DeviceIdentifier,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxMerchantRepository) InsertMerchantOperator(ctx context.Context, operator domain.MerchantOperator) error {
	query := `
		INSERT INTO merchant_operator (merchant_id, operator_id, estate_id, name, merchant_number, terminal_number)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		operator.MerchantID,
		operator.OperatorID,
		operator.EstateID,
		operator.Name,
		operator.MerchantNumber,
		operator.TerminalNumber,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxMerchantRepository) InsertMerchantSecurityUser(ctx context.Context, user domain.MerchantSecurityUser) error {
	query := `
		INSERT INTO merchant_security_user (security_user_id, merchant_id, estate_id, email_address)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.pool.Exec(ctx, query,
		user.SecurityUserID,
		user.MerchantID,
		user.EstateID,
		user.EmailAddress,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *PgxMerchantRepository) InsertBalanceHistory(ctx context.Context, entry domain.MerchantBalanceHistory) error {
	query := `
		INSERT INTO merchant_balance_history (event_id, estate_id, merchant_id, transaction_id, available_balance, balance, change_amount, reference, entry_date_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		entry.EventID,
		entry.EstateID,
		entry.MerchantID,
		entry.TransactionID,
		entry.AvailableBalance,
		entry.Balance,
		entry.ChangeAmount,
		entry.Reference,
		entry.EntryDateTime,
	)
	if err != nil {
		return translateErr(err)
	}
	return nil
}
