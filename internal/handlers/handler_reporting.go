package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/txnsuite/estate-reporting/internal/apperrors"
	"github.com/txnsuite/estate-reporting/internal/core/domain"
	portsrepo "github.com/txnsuite/estate-reporting/internal/core/ports/repositories"
	portssvc "github.com/txnsuite/estate-reporting/internal/core/ports/services"
	"github.com/txnsuite/estate-reporting/internal/dto"
	"github.com/txnsuite/estate-reporting/internal/middleware"
)

// reportingHandler handles the aggregation report endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// RegisterReportingRoutes registers the report endpoints on an estate-scoped group.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	transactions := rg.Group("/reporting/transactions")
	{
		transactions.GET("/bydate", h.getTransactionsByDate)
		transactions.GET("/byweek", h.getTransactionsByWeek)
		transactions.GET("/bymonth", h.getTransactionsByMonth)
		transactions.GET("/bymerchant", h.getTransactionsByMerchant)
		transactions.GET("/byoperator", h.getTransactionsByOperator)
	}

	settlements := rg.Group("/reporting/settlements")
	{
		settlements.GET("/bydate", h.getSettlementByDate)
		settlements.GET("/byweek", h.getSettlementByWeek)
		settlements.GET("/bymonth", h.getSettlementByMonth)
		settlements.GET("/bymerchant", h.getSettlementByMerchant)
		settlements.GET("/byoperator", h.getSettlementByOperator)
	}
}

// reportParams is the parsed common parameter set of every report endpoint.
type reportParams struct {
	estateID   uuid.UUID
	merchantID uuid.UUID // uuid.Nil when the merchant_id query param is absent
	startDate  string
	endDate    string
}

// parseReportParams pulls the shared path and query parameters. It writes the
// 400 response itself and reports ok=false when parsing fails; date values
// are passed through as strings for the service to validate.
func parseReportParams(c *gin.Context) (reportParams, bool) {
	var params reportParams

	estateID, err := uuid.Parse(c.Param("estate_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid estate id"})
		return params, false
	}
	params.estateID = estateID

	if merchantStr := c.Query("merchant_id"); merchantStr != "" {
		merchantID, err := uuid.Parse(merchantStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid merchant id"})
			return params, false
		}
		params.merchantID = merchantID
	}

	params.startDate = c.Query("start_date")
	params.endDate = c.Query("end_date")
	if params.startDate == "" || params.endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date are required"})
		return params, false
	}
	return params, true
}

// rankingOptionsFromQuery parses the sort and truncation parameters of the
// ranked endpoints. Absent or unrecognised values stay NotSet, which the
// engine resolves to its documented default ordering.
func rankingOptionsFromQuery(c *gin.Context) portsrepo.RankingOptions {
	var opts portsrepo.RankingOptions

	switch strings.ToLower(c.Query("sort_field")) {
	case "count":
		opts.SortField = domain.SortFieldCount
	case "value":
		opts.SortField = domain.SortFieldValue
	}

	switch strings.ToLower(c.Query("sort_direction")) {
	case "asc", "ascending":
		opts.SortDirection = domain.SortDirectionAscending
	case "desc", "descending":
		opts.SortDirection = domain.SortDirectionDescending
	}

	if countStr := c.Query("record_count"); countStr != "" {
		if count, err := strconv.Atoi(countStr); err == nil {
			opts.RecordCount = count
		}
	}
	return opts
}

func respondReportError(c *gin.Context, logger *slog.Logger, err error) {
	if errors.Is(err, apperrors.ErrInvalidDateFormat) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use yyyyMMdd"})
		return
	}
	logger.Error("Failed to generate report", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
}

func (h *reportingHandler) getTransactionsByDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := parseReportParams(c)
	if !ok {
		return
	}

	var (
		buckets []domain.DateBucket
		err     error
	)
	if params.merchantID == uuid.Nil {
		buckets, err = h.reportingService.GetTransactionsForEstateByDate(c.Request.Context(), params.estateID, params.startDate, params.endDate)
	} else {
		buckets, err = h.reportingService.GetTransactionsForMerchantByDate(c.Request.Context(), params.estateID, params.merchantID, params.startDate, params.endDate)
	}
	if err != nil {
		respondReportError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDateBucketsResponse(buckets))
}

func (h *reportingHandler) getTransactionsByWeek(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := parseReportParams(c)
	if !ok {
		return
	}

	var (
		buckets []domain.WeekBucket
		err     error
	)
	if params.merchantID == uuid.Nil {
		buckets, err = h.reportingService.GetTransactionsForEstateByWeek(c.Request.Context(), params.estateID, params.startDate, params.endDate)
	} else {
		buckets, err = h.reportingService.GetTransactionsForMerchantByWeek(c.Request.Context(), params.estateID, params.merchantID, params.startDate, params.endDate)
	}
	if err != nil {
		respondReportError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWeekBucketsResponse(buckets))
}

func (h *reportingHandler) getTransactionsByMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := parseReportParams(c)
	if !ok {
		return
	}

	var (
		buckets []domain.MonthBucket
		err     error
	)
	if params.merchantID == uuid.Nil {
		buckets, err = h.reportingService.GetTransactionsForEstateByMonth(c.Request.Context(), params.estateID, params.startDate, params.endDate)
	} else {
		buckets, err = h.reportingService.GetTransactionsForMerchantByMonth(c.Request.Context(), params.estateID, params.merchantID, params.startDate, params.endDate)
	}
	if err != nil {
		respondReportError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthBucketsResponse(buckets))
}

func (h *reportingHandler) getTransactionsByMerchant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := parseReportParams(c)
	if !ok {
		return
	}

	buckets, err := h.reportingService.GetTransactionsForEstateByMerchant(c.Request.Context(), params.estateID, params.startDate, params.endDate, rankingOptionsFromQuery(c))
	if err != nil {
		respondReportError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMerchantBucketsResponse(buckets))
}

func (h *reportingHandler) getTransactionsByOperator(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := parseReportParams(c)
	if !ok {
		return
	}

	buckets, err := h.reportingService.GetTransactionsForEstateByOperator(c.Request.Context(), params.estateID, params.startDate, params.endDate, rankingOptionsFromQuery(c))
	if err != nil {
		respondReportError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOperatorBucketsResponse(buckets))
}

func (h *reportingHandler) getSettlementByDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := parseReportParams(c)
	if !ok {
		return
	}

	var (
		buckets []domain.DateBucket
		err     error
	)
	if params.merchantID == uuid.Nil {
		buckets, err = h.reportingService.GetSettlementForEstateByDate(c.Request.Context(), params.estateID, params.startDate, params.endDate)
	} else {
		buckets, err = h.reportingService.GetSettlementForMerchantByDate(c.Request.Context(), params.estateID, params.merchantID, params.startDate, params.endDate)
	}
	if err != nil {
		respondReportError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDateBucketsResponse(buckets))
}

func (h *reportingHandler) getSettlementByWeek(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := parseReportParams(c)
	if !ok {
		return
	}

	var (
		buckets []domain.WeekBucket
		err     error
	)
	if params.merchantID == uuid.Nil {
		buckets, err = h.reportingService.GetSettlementForEstateByWeek(c.Request.Context(), params.estateID, params.startDate, params.endDate)
	} else {
		buckets, err = h.reportingService.GetSettlementForMerchantByWeek(c.Request.Context(), params.estateID, params.merchantID, params.startDate, params.endDate)
	}
	if err != nil {
		respondReportError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWeekBucketsResponse(buckets))
}

func (h *reportingHandler) getSettlementByMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := parseReportParams(c)
	if !ok {
		return
	}

	var (
		buckets []domain.MonthBucket
		err     error
	)
	if params.merchantID == uuid.Nil {
		buckets, err = h.reportingService.GetSettlementForEstateByMonth(c.Request.Context(), params.estateID, params.startDate, params.endDate)
	} else {
		buckets, err = h.reportingService.GetSettlementForMerchantByMonth(c.Request.Context(), params.estateID, params.merchantID, params.startDate, params.endDate)
	}
	if err != nil {
		respondReportError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthBucketsResponse(buckets))
}

func (h *reportingHandler) getSettlementByMerchant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := parseReportParams(c)
	if !ok {
		return
	}

	buckets, err := h.reportingService.GetSettlementForEstateByMerchant(c.Request.Context(), params.estateID, params.startDate, params.endDate, rankingOptionsFromQuery(c))
	if err != nil {
		respondReportError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMerchantBucketsResponse(buckets))
}

func (h *reportingHandler) getSettlementByOperator(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	params, ok := parseReportParams(c)
	if !ok {
		return
	}

	buckets, err := h.reportingService.GetSettlementForEstateByOperator(c.Request.Context(), params.estateID, params.startDate, params.endDate, rankingOptionsFromQuery(c))
	if err != nil {
		respondReportError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOperatorBucketsResponse(buckets))
}
