package pgsql

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
)

func TestRankingClauses_NotSetDefaultsToIdentifier(t *testing.T) {
	clause := rankingClauses(portsrepo.RankingOptions{}, "bucket_merchant")

	assert.Equal(t, "ORDER BY bucket_merchant ASC", clause)
}

func TestRankingClauses_PartialSortFallsBackToIdentifier(t *testing.T) {
	// A field without a direction, or a direction without a field, is not a
	// complete sort choice and must not silently default the missing half.
	fieldOnly := rankingClauses(portsrepo.RankingOptions{
		SortField: domain.SortFieldCount,
	}, "bucket_operator")
	assert.Equal(t, "ORDER BY bucket_operator ASC", fieldOnly)

	directionOnly := rankingClauses(portsrepo.RankingOptions{
		SortDirection: domain.SortDirectionDescending,
	}, "bucket_operator")
	assert.Equal(t, "ORDER BY bucket_operator ASC", directionOnly)
}

func TestRankingClauses_SortWithTieBreakAndLimit(t *testing.T) {
	clause := rankingClauses(portsrepo.RankingOptions{
		SortField:     domain.SortFieldCount,
		SortDirection: domain.SortDirectionDescending,
		RecordCount:   3,
	}, "bucket_merchant")

	assert.Equal(t, "ORDER BY bucket_count DESC, bucket_merchant ASC LIMIT 3", clause)
}

func TestRankingClauses_AscendingByValue(t *testing.T) {
	clause := rankingClauses(portsrepo.RankingOptions{
		SortField:     domain.SortFieldValue,
		SortDirection: domain.SortDirectionAscending,
	}, "bucket_operator")

	assert.Equal(t, "ORDER BY bucket_value ASC, bucket_operator ASC", clause)
}

func TestRankingClauses_NonPositiveRecordCountMeansNoLimit(t *testing.T) {
	for _, recordCount := range []int{0, -1} {
		clause := rankingClauses(portsrepo.RankingOptions{
			SortField:     domain.SortFieldValue,
			SortDirection: domain.SortDirectionDescending,
			RecordCount:   recordCount,
		}, "bucket_merchant")

		assert.NotContains(t, clause, "LIMIT", "recordCount %d", recordCount)
	}
}

func TestSaleFilter_RestrictsToAuthorisedCompletedSales(t *testing.T) {
	// Transaction aggregates count only authorised, completed Sale rows.
	// The exact predicate is pinned here; settlement queries do not use it.
	assert.Equal(t, `t.is_authorised AND t.is_completed AND t.transaction_type = 'Sale'`, saleFilter)
}

func TestMerchantFilter_NilUUIDMatchesEveryMerchant(t *testing.T) {
	assert.True(t, strings.Contains(merchantFilter, "'00000000-0000-0000-0000-000000000000'::uuid"))
	assert.True(t, strings.Contains(merchantFilter, "OR t.merchant_id = $2"))
}

func TestDayAfter_MakesInclusiveEndExclusive(t *testing.T) {
	end := time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC), dayAfter(end))

	// Month-end rollover across a year boundary.
	assert.Equal(t,
		time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		dayAfter(time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)))
}
