// Package identifiers derives deterministic identifiers for events that
// arrive without a natural unique key. The canonical serialization below is a
// pinned contract: changing field order or formatting changes every derived
// identifier, so the test vectors in this package must never be regenerated
// to make a change pass.
package identifiers

import (
	"crypto/md5"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Field is one named scalar in the canonical field set. Callers fix the
// order; DeriveID never reorders.
type Field struct {
	Name  string
	Value string
}

// timestampLayout fixes sub-second precision so re-derivation is bit-stable
// regardless of the source timestamp's resolution.
const timestampLayout = "2006-01-02 15:04:05.000"

// dateLayout is used for date-only fields such as settlement dates.
const dateLayout = "2006-01-02"

// DeriveID hashes the canonical form of the field set with MD5 and
// reinterprets the 128-bit digest as a UUID. Identity derivation only, not a
// security use.
func DeriveID(fields []Field) uuid.UUID {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(f.Name)
		b.WriteByte(':')
		b.WriteString(f.Value)
	}
	digest := md5.Sum([]byte(b.String()))
	id, _ := uuid.FromBytes(digest[:])
	return id
}

// DecimalField formats a decimal without exponent notation or trailing-zero
// instability.
func DecimalField(name string, value decimal.Decimal) Field {
	return Field{Name: name, Value: value.String()}
}

// TimestampField formats a timestamp in UTC at fixed millisecond precision.
func TimestampField(name string, value time.Time) Field {
	return Field{Name: name, Value: value.UTC().Format(timestampLayout)}
}

// DateField formats a date-only value in UTC.
func DateField(name string, value time.Time) Field {
	return Field{Name: name, Value: value.UTC().Format(dateLayout)}
}

// UUIDField formats a UUID in its canonical lowercase form.
func UUIDField(name string, value uuid.UUID) Field {
	return Field{Name: name, Value: value.String()}
}

// DeriveFeeEventID derives the identifier for a fee-added event from the fee
// content. Field order is alphabetical by name and is part of the contract.
func DeriveFeeEventID(estateID, merchantID, transactionID, feeID uuid.UUID, calculatedValue, feeValue decimal.Decimal, feeCalculationType int, feeCalculatedDateTime time.Time) uuid.UUID {
	return DeriveID([]Field{
		DecimalField("calculatedValue", calculatedValue),
		UUIDField("estateId", estateID),
		TimestampField("feeCalculatedDateTime", feeCalculatedDateTime),
		{Name: "feeCalculationType", Value: strconv.Itoa(feeCalculationType)},
		UUIDField("feeId", feeID),
		DecimalField("feeValue", feeValue),
		UUIDField("merchantId", merchantID),
		UUIDField("transactionId", transactionID),
	})
}

// DeriveSettlementID derives the settlement identifier for one estate day,
// making repeated settlement-created events for the same date idempotent.
func DeriveSettlementID(estateID uuid.UUID, settlementDate time.Time) uuid.UUID {
	return DeriveID([]Field{
		UUIDField("estateId", estateID),
		DateField("settlementDate", settlementDate),
	})
}
