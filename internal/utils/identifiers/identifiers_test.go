package identifiers_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/txnsuite/estate-reporting/internal/utils/identifiers"
)

var (
	testEstateID      = uuid.MustParse("1d6bdafe-c251-4c88-acc9-6a01ff5e54a8")
	testMerchantID    = uuid.MustParse("a9d1cc5c-fcb5-4568-94ce-ce10c4115f4c")
	testTransactionID = uuid.MustParse("e2b0b6f8-07d6-4bb2-9e16-4a83cdb2e76c")
	testFeeID         = uuid.MustParse("1e2cd941-7d06-4d2a-9b79-76d9ed509cbb")
)

// Pinned vectors: these values are the derivation contract. If one of these
// assertions fails, previously derived identifiers in live stores no longer
// match and redelivered events will duplicate rows.
func TestDeriveSettlementID_PinnedVector(t *testing.T) {
	date := time.Date(2021, 10, 6, 0, 0, 0, 0, time.UTC)

	id := identifiers.DeriveSettlementID(testEstateID, date)

	assert.Equal(t, "9a0bf56f-c065-5279-4ec9-9552b8a7e2dd", id.String())
}

func TestDeriveFeeEventID_PinnedVector(t *testing.T) {
	calculated := decimal.RequireFromString("2.95")
	feeValue := decimal.RequireFromString("0.0025")
	calculatedAt := time.Date(2021, 10, 6, 8, 45, 30, 0, time.UTC)

	id := identifiers.DeriveFeeEventID(testEstateID, testMerchantID, testTransactionID, testFeeID, calculated, feeValue, 0, calculatedAt)

	assert.Equal(t, "395faebc-4483-708d-1a8e-82e603272b81", id.String())
}

func TestDeriveSettlementID_StableAcrossCalls(t *testing.T) {
	date := time.Date(2021, 10, 6, 0, 0, 0, 0, time.UTC)

	first := identifiers.DeriveSettlementID(testEstateID, date)
	second := identifiers.DeriveSettlementID(testEstateID, date)

	assert.Equal(t, first, second)
}

func TestDeriveSettlementID_DistinctAcrossInputs(t *testing.T) {
	date := time.Date(2021, 10, 6, 0, 0, 0, 0, time.UTC)
	nextDay := time.Date(2021, 10, 7, 0, 0, 0, 0, time.UTC)

	base := identifiers.DeriveSettlementID(testEstateID, date)

	assert.Equal(t, "ae591304-4211-267c-b888-2508a5901734", identifiers.DeriveSettlementID(testEstateID, nextDay).String())
	assert.NotEqual(t, base, identifiers.DeriveSettlementID(testEstateID, nextDay))
	assert.NotEqual(t, base, identifiers.DeriveSettlementID(uuid.New(), date))
}

func TestDeriveSettlementID_TimeOfDayIgnored(t *testing.T) {
	midnight := time.Date(2021, 10, 6, 0, 0, 0, 0, time.UTC)
	evening := time.Date(2021, 10, 6, 19, 30, 0, 0, time.UTC)

	assert.Equal(t, identifiers.DeriveSettlementID(testEstateID, midnight), identifiers.DeriveSettlementID(testEstateID, evening))
}

func TestDeriveFeeEventID_SensitiveToEveryField(t *testing.T) {
	calculated := decimal.RequireFromString("2.95")
	feeValue := decimal.RequireFromString("0.0025")
	calculatedAt := time.Date(2021, 10, 6, 8, 45, 30, 0, time.UTC)

	base := identifiers.DeriveFeeEventID(testEstateID, testMerchantID, testTransactionID, testFeeID, calculated, feeValue, 0, calculatedAt)

	variants := map[string]uuid.UUID{
		"estate":          identifiers.DeriveFeeEventID(uuid.New(), testMerchantID, testTransactionID, testFeeID, calculated, feeValue, 0, calculatedAt),
		"merchant":        identifiers.DeriveFeeEventID(testEstateID, uuid.New(), testTransactionID, testFeeID, calculated, feeValue, 0, calculatedAt),
		"transaction":     identifiers.DeriveFeeEventID(testEstateID, testMerchantID, uuid.New(), testFeeID, calculated, feeValue, 0, calculatedAt),
		"fee":             identifiers.DeriveFeeEventID(testEstateID, testMerchantID, testTransactionID, uuid.New(), calculated, feeValue, 0, calculatedAt),
		"calculatedValue": identifiers.DeriveFeeEventID(testEstateID, testMerchantID, testTransactionID, testFeeID, decimal.RequireFromString("2.96"), feeValue, 0, calculatedAt),
		"feeValue":        identifiers.DeriveFeeEventID(testEstateID, testMerchantID, testTransactionID, testFeeID, calculated, decimal.RequireFromString("0.0026"), 0, calculatedAt),
		"calculationType": identifiers.DeriveFeeEventID(testEstateID, testMerchantID, testTransactionID, testFeeID, calculated, feeValue, 1, calculatedAt),
		"calculatedAt":    identifiers.DeriveFeeEventID(testEstateID, testMerchantID, testTransactionID, testFeeID, calculated, feeValue, 0, calculatedAt.Add(time.Second)),
	}

	seen := map[uuid.UUID]string{base: "base"}
	for name, id := range variants {
		require.NotEqual(t, base, id, "changing %s must change the derived id", name)
		prev, dup := seen[id]
		require.False(t, dup, "variants %s and %s collided", name, prev)
		seen[id] = name
	}
}

func TestDeriveFeeEventID_DecimalFormattingIsStable(t *testing.T) {
	calculatedAt := time.Date(2021, 10, 6, 8, 45, 30, 0, time.UTC)

	// The same numeric value built through different constructors must not
	// shift the derived id.
	fromString := identifiers.DeriveFeeEventID(testEstateID, testMerchantID, testTransactionID, testFeeID, decimal.RequireFromString("2.95"), decimal.RequireFromString("0.0025"), 0, calculatedAt)
	fromParts := identifiers.DeriveFeeEventID(testEstateID, testMerchantID, testTransactionID, testFeeID, decimal.New(295, -2), decimal.New(25, -4), 0, calculatedAt)

	assert.Equal(t, fromString, fromParts)
}

func TestDeriveID_FieldOrderMatters(t *testing.T) {
	forward := identifiers.DeriveID([]identifiers.Field{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}})
	reversed := identifiers.DeriveID([]identifiers.Field{{Name: "b", Value: "2"}, {Name: "a", Value: "1"}})

	assert.NotEqual(t, forward, reversed)
}
