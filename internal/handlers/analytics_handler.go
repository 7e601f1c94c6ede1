package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"moneymanager/internal/analytics"
	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/models"
	"moneymanager/internal/services"
)

// AnalyticsHandler serves the per-category breakdown and the analysis view.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// SummaryResponse is a breakdown of one period.
type SummaryResponse struct {
	Type        models.TransactionType `json:"type"`
	Period      analytics.Period       `json:"period"`
	Slices      []analytics.ChartSlice `json:"slices"`
	TotalAmount float64                `json:"total_amount"`
}

// SetTypeRequest selects income or expense in the analysis view.
type SetTypeRequest struct {
	Type models.TransactionType `json:"type" binding:"required,transaction_type"`
}

// SetPeriodRequest selects the current period of a granularity.
type SetPeriodRequest struct {
	Granularity string `json:"granularity" binding:"required,granularity"`
}

// SetRangeRequest selects a custom range of days.
type SetRangeRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// NavigateRequest moves the selected period.
type NavigateRequest struct {
	Direction int `json:"direction" binding:"required,oneof=-1 1"`
}

// parsePeriod reads granularity, start and end query parameters. Without an
// explicit range the current period of the granularity is used.
func (h *AnalyticsHandler) parsePeriod(c *gin.Context) (analytics.Period, error) {
	granularity := analytics.GranularityMonth
	if v := c.Query("granularity"); v != "" {
		g, err := analytics.ParseGranularity(v)
		if err != nil {
			return analytics.Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error())
		}
		granularity = g
	}

	startStr, endStr := c.Query("start"), c.Query("end")
	if startStr == "" && endStr == "" {
		if granularity == analytics.GranularityCustom {
			return analytics.Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "start and end are required for CUSTOM")
		}
		return h.analyticsService.CurrentPeriod(granularity), nil
	}

	period, err := h.parseRange(startStr, endStr)
	if err != nil {
		return analytics.Period{}, err
	}
	period.Granularity = granularity
	return period, nil
}

func (h *AnalyticsHandler) parseRange(startStr, endStr string) (analytics.Period, error) {
	loc := h.analyticsService.Location()
	start, err := parseFlexibleTime(startStr, loc)
	if err != nil {
		return analytics.Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error())
	}
	end, err := parseFlexibleTime(endStr, loc)
	if err != nil {
		return analytics.Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error())
	}
	period, err := analytics.NewCustomPeriod(start.In(loc), end.In(loc))
	if err != nil {
		return analytics.Period{}, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error())
	}
	return period, nil
}

// GetSummary handles an ad-hoc breakdown query
// @Summary     Per-category breakdown
// @Description Sum transactions of one type per category over a period
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       type        query string false "income or expense (default expense)"
// @Param       granularity query string false "DAY, WEEK, MONTH, YEAR or CUSTOM (default MONTH)"
// @Param       start       query string false "First day (YYYY-MM-DD)"
// @Param       end         query string false "Last day, inclusive (YYYY-MM-DD)"
// @Success     200 {object} SummaryResponse "Breakdown"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	txType := models.TransactionTypeExpense
	if v := c.Query("type"); v != "" {
		txType = models.TransactionType(v)
	}

	period, err := h.parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.analyticsService.Summary(txType, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Type:        txType,
		Period:      period,
		Slices:      summary.Slices,
		TotalAmount: summary.TotalAmount,
	})
}

// GetCurrentPeriod handles the current period query
// @Summary     Current period
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       granularity query string false "DAY, WEEK, MONTH or YEAR (default MONTH)"
// @Success     200 {object} analytics.Period "Period"
// @Failure     400 {object} ErrorResponse "Invalid granularity"
// @Router      /analytics/periods/current [get]
func (h *AnalyticsHandler) GetCurrentPeriod(c *gin.Context) {
	granularity := analytics.GranularityMonth
	if v := c.Query("granularity"); v != "" {
		g, err := analytics.ParseGranularity(v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error()))
			return
		}
		granularity = g
	}

	c.JSON(http.StatusOK, gin.H{"period": h.analyticsService.CurrentPeriod(granularity)})
}

// NavigatePeriod handles a stateless navigation query
// @Summary     Previous or next period
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Param       granularity query string true "DAY, WEEK, MONTH, YEAR or CUSTOM"
// @Param       start       query string true "First day (YYYY-MM-DD)"
// @Param       end         query string true "Last day (YYYY-MM-DD)"
// @Param       direction   query int    true "-1 or 1"
// @Success     200 {object} analytics.Period "Period"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /analytics/periods/navigate [get]
func (h *AnalyticsHandler) NavigatePeriod(c *gin.Context) {
	if c.Query("start") == "" || c.Query("end") == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidPeriod, "start and end are required"))
		return
	}
	period, err := h.parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	direction, err := strconv.Atoi(c.Query("direction"))
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidDirection)
		return
	}

	next, err := period.Navigate(direction)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidDirection)
		return
	}

	c.JSON(http.StatusOK, gin.H{"period": next})
}

// GetView returns the analysis view
// @Summary     Analysis view
// @Tags        analytics
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.AnalysisView "View"
// @Router      /analytics/view [get]
func (h *AnalyticsHandler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"view": h.analyticsService.View()})
}

// SetType switches the analysis view between income and expense
// @Summary     Select transaction type
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetTypeRequest true "Type"
// @Success     200 {object} services.AnalysisView "View"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /analytics/view/type [put]
func (h *AnalyticsHandler) SetType(c *gin.Context) {
	var req SetTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	view, err := h.analyticsService.SetTransactionType(req.Type)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"view": view})
}

// SetPeriod moves the analysis view to the current period of a granularity
// @Summary     Select granularity
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetPeriodRequest true "Granularity"
// @Success     200 {object} services.AnalysisView "View"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /analytics/view/period [put]
func (h *AnalyticsHandler) SetPeriod(c *gin.Context) {
	var req SetPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	granularity, err := analytics.ParseGranularity(req.Granularity)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidPeriod, err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"view": h.analyticsService.SetPeriod(granularity)})
}

// SetRange selects a custom range in the analysis view
// @Summary     Select custom range
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetRangeRequest true "Range"
// @Success     200 {object} services.AnalysisView "View"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /analytics/view/range [put]
func (h *AnalyticsHandler) SetRange(c *gin.Context) {
	var req SetRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	period, err := h.parseRange(req.Start, req.End)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view, err := h.analyticsService.SetCustomRange(period.Start, period.End)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"view": view})
}

// Navigate moves the analysis view one period back or forward
// @Summary     Navigate period
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body NavigateRequest true "Direction"
// @Success     200 {object} services.AnalysisView "View"
// @Failure     400 {object} ErrorResponse "Invalid direction"
// @Router      /analytics/view/navigate [post]
func (h *AnalyticsHandler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidDirection, err.Error()))
		return
	}

	view, err := h.analyticsService.NavigatePeriod(req.Direction)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"view": view})
}

// StreamView pushes every analysis view update as a server-sent event
// @Summary     Stream analysis view
// @Tags        analytics
// @Produce     text/event-stream
// @Security    BearerAuth
// @Success     200 {object} services.AnalysisView "Stream of views"
// @Router      /analytics/view/stream [get]
func (h *AnalyticsHandler) StreamView(c *gin.Context) {
	views := h.analyticsService.Subscribe(c.Request.Context())

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		view, ok := <-views
		if !ok {
			return false
		}
		c.SSEvent("view", view)
		return true
	})
}
