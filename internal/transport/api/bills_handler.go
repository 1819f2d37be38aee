package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/repository/repoargs"
	"github.com/fsdevblog/finflow/internal/service"
)

type BillsHandler struct {
	billSvs BillServicer
}

func NewBillsHandler(billSvs BillServicer) *BillsHandler {
	return &BillsHandler{
		billSvs: billSvs,
	}
}

type BillResponse struct {
	ID            int64   `json:"id"`
	ProviderName  string  `json:"providerName"`
	BillType      string  `json:"billType"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"dueDate"`
	Status        string  `json:"status"`
	TransactionID *int64  `json:"transactionId,omitempty"`
}

func newBillResponse(bill *domain.Bill) BillResponse {
	return BillResponse{
		ID:            bill.ID,
		ProviderName:  bill.ProviderName,
		BillType:      bill.BillType,
		Amount:        bill.Amount.InexactFloat64(),
		DueDate:       bill.DueDate.Format(time.RFC3339),
		Status:        string(bill.Status),
		TransactionID: bill.TransactionID,
	}
}

type CreateBillParams struct {
	ProviderName string          `binding:"required,min=2,max=100" json:"providerName"`
	BillType     string          `binding:"required,min=2,max=50"  json:"billType"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `binding:"required"               json:"dueDate"`
}

// Create POST RouteGroup + BillsRoute.
func (h *BillsHandler) Create(c *gin.Context) {
	var params CreateBillParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bill, err := h.billSvs.Create(ctx, service.CreateBillArgs{
		UserID:       getUserIDFromContext(c),
		ProviderName: params.ProviderName,
		BillType:     params.BillType,
		Amount:       params.Amount,
		DueDate:      params.DueDate,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newBillResponse(bill))
}

// Index GET RouteGroup + BillsRoute.
func (h *BillsHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bills, err := h.billSvs.GetByUserID(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]BillResponse, len(bills))
	for i := range bills {
		response[i] = newBillResponse(&bills[i])
	}
	c.JSON(http.StatusOK, response)
}

type PayBillParams struct {
	PaymentMethod string `binding:"required" json:"paymentMethod"`
	AccountID     int64  `json:"accountId"`
	Notes         string `binding:"max=500"  json:"notes"`
}

type PayBillResponse struct {
	Bill            BillResponse `json:"bill"`
	ReferenceNumber string       `json:"referenceNumber"`
	PaymentMethod   string       `json:"paymentMethod"`
	BalanceAfter    float64      `json:"balanceAfter"`
	AccountBankName string       `json:"accountBankName,omitempty"`
}

// Pay POST RouteGroup + BillPayRoute. Оплата ожидающего счета.
func (h *BillsHandler) Pay(c *gin.Context) {
	billID, ok := getIDParam(c, "id")
	if !ok {
		return
	}
	var params PayBillParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.billSvs.PayBill(ctx, service.PayBillArgs{
		BillID:        billID,
		UserID:        getUserIDFromContext(c),
		PaymentMethod: domain.TransferSourceType(params.PaymentMethod),
		AccountID:     params.AccountID,
		Notes:         params.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PayBillResponse{
		Bill:            newBillResponse(result.Bill),
		ReferenceNumber: result.Transaction.ReferenceNumber,
		PaymentMethod:   string(result.PaymentMethod),
		BalanceAfter:    result.BalanceAfter.InexactFloat64(),
		AccountBankName: result.AccountBankName,
	})
}

type UpdateBillParams struct {
	ProviderName *string          `json:"providerName"`
	Amount       *decimal.Decimal `json:"amount"`
	DueDate      *time.Time       `json:"dueDate"`
}

// Update PATCH RouteGroup + BillRoute. Только неоплаченные счета.
func (h *BillsHandler) Update(c *gin.Context) {
	billID, ok := getIDParam(c, "id")
	if !ok {
		return
	}
	var params UpdateBillParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	bill, err := h.billSvs.Update(ctx, billID, getUserIDFromContext(c), repoargs.UpdateBill{
		ProviderName: params.ProviderName,
		Amount:       params.Amount,
		DueDate:      params.DueDate,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBillResponse(bill))
}

// Delete DELETE RouteGroup + BillRoute. Оплаченные счета не удаляются.
func (h *BillsHandler) Delete(c *gin.Context) {
	billID, ok := getIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.billSvs.Delete(ctx, billID, getUserIDFromContext(c)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
