// Package dto holds the request and response shapes of the HTTP API.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/txnsuite/estate-reporting/internal/core/domain"
)

// DateBucketResponse is one calendar-day row of a report response.
type DateBucketResponse struct {
	Date         string          `json:"date"`
	Count        int             `json:"count"`
	Value        decimal.Decimal `json:"value"`
	CurrencyCode string          `json:"currencyCode"`
}

// WeekBucketResponse is one ISO-week row of a report response.
type WeekBucketResponse struct {
	WeekNumber   int             `json:"weekNumber"`
	Year         int             `json:"year"`
	Count        int             `json:"count"`
	Value        decimal.Decimal `json:"value"`
	CurrencyCode string          `json:"currencyCode"`
}

// MonthBucketResponse is one calendar-month row of a report response.
type MonthBucketResponse struct {
	MonthNumber  int             `json:"monthNumber"`
	Year         int             `json:"year"`
	Count        int             `json:"count"`
	Value        decimal.Decimal `json:"value"`
	CurrencyCode string          `json:"currencyCode"`
}

// MerchantBucketResponse is one merchant row of a ranked report response.
type MerchantBucketResponse struct {
	MerchantID   string          `json:"merchantId"`
	MerchantName string          `json:"merchantName"`
	Count        int             `json:"count"`
	Value        decimal.Decimal `json:"value"`
	CurrencyCode string          `json:"currencyCode"`
}

// OperatorBucketResponse is one operator row of a ranked report response.
type OperatorBucketResponse struct {
	OperatorIdentifier string          `json:"operatorIdentifier"`
	Count              int             `json:"count"`
	Value              decimal.Decimal `json:"value"`
	CurrencyCode       string          `json:"currencyCode"`
}

func ToDateBucketsResponse(buckets []domain.DateBucket) []DateBucketResponse {
	out := make([]DateBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, DateBucketResponse{
			Date:         b.Date,
			Count:        b.Count,
			Value:        b.Value,
			CurrencyCode: b.CurrencyCode,
		})
	}
	return out
}

func ToWeekBucketsResponse(buckets []domain.WeekBucket) []WeekBucketResponse {
	out := make([]WeekBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, WeekBucketResponse{
			WeekNumber:   b.WeekNumber,
			Year:         b.Year,
			Count:        b.Count,
			Value:        b.Value,
			CurrencyCode: b.CurrencyCode,
		})
	}
	return out
}

func ToMonthBucketsResponse(buckets []domain.MonthBucket) []MonthBucketResponse {
	out := make([]MonthBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, MonthBucketResponse{
			MonthNumber:  b.MonthNumber,
			Year:         b.Year,
			Count:        b.Count,
			Value:        b.Value,
			CurrencyCode: b.CurrencyCode,
		})
	}
	return out
}

func ToMerchantBucketsResponse(buckets []domain.MerchantBucket) []MerchantBucketResponse {
	out := make([]MerchantBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, MerchantBucketResponse{
			MerchantID:   b.MerchantID,
			MerchantName: b.MerchantName,
			Count:        b.Count,
			Value:        b.Value,
			CurrencyCode: b.CurrencyCode,
		})
	}
	return out
}

func ToOperatorBucketsResponse(buckets []domain.OperatorBucket) []OperatorBucketResponse {
	out := make([]OperatorBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, OperatorBucketResponse{
			OperatorIdentifier: b.OperatorIdentifier,
			Count:              b.Count,
			Value:              b.Value,
			CurrencyCode:       b.CurrencyCode,
		})
	}
	return out
}
