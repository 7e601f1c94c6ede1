package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneymanager/internal/errors"
	"moneymanager/internal/models"
	"moneymanager/internal/pagination"
	"moneymanager/internal/services"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	transactionService services.TransactionServicer
	location           *time.Location
}

// NewTransactionHandler creates a new TransactionHandler. Plain dates in
// requests are read in loc.
func NewTransactionHandler(transactionService services.TransactionServicer, loc *time.Location) *TransactionHandler {
	if loc == nil {
		loc = time.Local
	}
	return &TransactionHandler{transactionService: transactionService, location: loc}
}

// TransactionRequest represents the request payload for adding or updating a
// transaction. Date accepts RFC3339 or YYYY-MM-DD and defaults to now.
type TransactionRequest struct {
	Amount      float64                `json:"amount"`
	Description string                 `json:"description" binding:"max=500"`
	Date        string                 `json:"date"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	CategoryID  int64                  `json:"category_id" binding:"required,min=1"`
}

// SaveTransactionRequest represents the request payload for saving a
// transaction. An id of zero inserts a new transaction.
type SaveTransactionRequest struct {
	ID int64 `json:"id" binding:"omitempty,min=0"`
	TransactionRequest
}

func (h *TransactionHandler) toModel(req TransactionRequest) (models.Transaction, error) {
	tx := models.Transaction{
		Amount:      req.Amount,
		Description: req.Description,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
	}
	if req.Date != "" {
		date, err := parseFlexibleTime(req.Date, h.location)
		if err != nil {
			return tx, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		tx.Date = date
	}
	return tx, nil
}

// SaveTransaction handles inserting or replacing a transaction
// @Summary     Save a transaction
// @Description Insert a transaction (id 0) or replace an existing one
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SaveTransactionRequest true "Transaction details"
// @Success     201 {object} models.TransactionDetail "Transaction created"
// @Success     200 {object} models.TransactionDetail "Transaction replaced"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) SaveTransaction(c *gin.Context) {
	var req SaveTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.toModel(req.TransactionRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}
	tx.ID = req.ID

	detail, err := h.transactionService.SaveTransaction(tx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status := http.StatusOK
	if req.ID == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"transaction": detail})
}

// GetTransactions handles listing transactions
// @Summary     List transactions
// @Description List transactions newest first with optional filters
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       from        query string false "Earliest date (RFC3339 or YYYY-MM-DD)"
// @Param       to          query string false "Latest date, inclusive (RFC3339 or YYYY-MM-DD)"
// @Param       type        query string false "Filter by transaction type (income, expense)"
// @Param       category_id query int    false "Filter by category"
// @Param       page        query int    false "Page number"
// @Param       page_size   query int    false "Page size"
// @Success     200 {object} pagination.PageResponse[models.TransactionDetail] "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	filter, err := h.parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.transactionService.GetTransactions(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *TransactionHandler) parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if v := c.Query("from"); v != "" {
		t, err := parseFlexibleTime(v, h.location)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from: "+err.Error())
		}
		filter.FromDate = &t
	}

	if v := c.Query("to"); v != "" {
		t, err := parseFlexibleTime(v, h.location)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to: "+err.Error())
		}
		if len(v) == len("2006-01-02") {
			// A plain date covers the whole day.
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filter.ToDate = &t
	}

	if v := c.Query("type"); v != "" {
		txType := models.TransactionType(v)
		if !txType.Valid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense")
		}
		filter.Type = &txType
	}

	if v := c.Query("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid category_id")
		}
		filter.CategoryID = &id
	}

	return filter, nil
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} models.TransactionDetail "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.transactionService.GetTransactionByID(transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": detail})
}

// UpdateTransaction handles replacing a transaction
// @Summary     Update a transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                true "Transaction ID"
// @Param       request body TransactionRequest true "Transaction details"
// @Success     200 {object} models.TransactionDetail "Transaction updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction or category not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.toModel(req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	tx.ID = transactionID

	detail, err := h.transactionService.UpdateTransaction(tx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": detail})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete a transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// BalanceResponse holds the overall balance.
type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// GetBalance handles the balance query
// @Summary     Get balance
// @Description Total income minus total expenses over all transactions
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} BalanceResponse "Balance"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balance [get]
func (h *TransactionHandler) GetBalance(c *gin.Context) {
	balance, err := h.transactionService.GetBalance()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}
