package domain

import (
	"github.com/shopspring/decimal"
)

// SortField selects the aggregate a ranked report is ordered by.
type SortField int

const (
	SortFieldNotSet SortField = iota
	SortFieldCount
	SortFieldValue
)

// SortDirection selects the ranked report ordering direction.
type SortDirection int

const (
	SortDirectionNotSet SortDirection = iota
	SortDirectionAscending
	SortDirectionDescending
)

// DateBucket is one calendar-day aggregate in a report.
type DateBucket struct {
	Date         string          `json:"date"` // yyyy-MM-dd
	Count        int             `json:"count"`
	Value        decimal.Decimal `json:"value"`
	CurrencyCode string          `json:"currencyCode"`
}

// WeekBucket is one ISO week aggregate in a report.
type WeekBucket struct {
	WeekNumber   int             `json:"weekNumber"`
	Year         int             `json:"year"`
	Count        int             `json:"count"`
	Value        decimal.Decimal `json:"value"`
	CurrencyCode string          `json:"currencyCode"`
}

// MonthBucket is one calendar-month aggregate in a report.
type MonthBucket struct {
	MonthNumber  int             `json:"monthNumber"`
	Year         int             `json:"year"`
	Count        int             `json:"count"`
	Value        decimal.Decimal `json:"value"`
	CurrencyCode string          `json:"currencyCode"`
}

// MerchantBucket is one merchant's aggregate in a ranked report.
type MerchantBucket struct {
	MerchantID   string          `json:"merchantID"`
	MerchantName string          `json:"merchantName"`
	Count        int             `json:"count"`
	Value        decimal.Decimal `json:"value"`
	CurrencyCode string          `json:"currencyCode"`
}

// OperatorBucket is one operator's aggregate in a ranked report.
type OperatorBucket struct {
	OperatorIdentifier string          `json:"operatorIdentifier"`
	Count              int             `json:"count"`
	Value              decimal.Decimal `json:"value"`
	CurrencyCode       string          `json:"currencyCode"`
}
