package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/service"
)

type AccountsHandler struct {
	accountSvs AccountServicer
}

func NewAccountsHandler(accountSvs AccountServicer) *AccountsHandler {
	return &AccountsHandler{
		accountSvs: accountSvs,
	}
}

type AccountResponse struct {
	ID            int64   `json:"id"`
	BankName      string  `json:"bankName"`
	AccountNumber string  `json:"accountNumber"`
	Balance       float64 `json:"balance"`
	IsPrimary     bool    `json:"isPrimary"`
	CreatedAt     string  `json:"createdAt"`
}

func newAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            account.ID,
		BankName:      account.BankName,
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance.InexactFloat64(),
		IsPrimary:     account.IsPrimary,
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
	}
}

type CreateAccountParams struct {
	BankName       string          `binding:"required,min=2,max=100" json:"bankName"`
	AccountNumber  string          `binding:"required,min=6,max=34"  json:"accountNumber"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// Create POST RouteGroup + AccountsRoute. Привязка банковского счета.
func (h *AccountsHandler) Create(c *gin.Context) {
	var params CreateAccountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.accountSvs.Create(ctx, service.CreateAccountArgs{
		UserID:         getUserIDFromContext(c),
		BankName:       params.BankName,
		AccountNumber:  params.AccountNumber,
		InitialBalance: params.InitialBalance,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newAccountResponse(account))
}

// Index GET RouteGroup + AccountsRoute.
func (h *AccountsHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	accounts, err := h.accountSvs.GetByUserID(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]AccountResponse, len(accounts))
	for i := range accounts {
		response[i] = newAccountResponse(&accounts[i])
	}
	c.JSON(http.StatusOK, response)
}

type AccountAmountParams struct {
	Amount decimal.Decimal `json:"amount"`
}

// Deposit POST RouteGroup + AccountDepositRoute.
func (h *AccountsHandler) Deposit(c *gin.Context) {
	accountID, ok := getIDParam(c, "id")
	if !ok {
		return
	}
	var params AccountAmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.accountSvs.Deposit(ctx, getUserIDFromContext(c), accountID, params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountResponse(account))
}

// Withdraw POST RouteGroup + AccountWithdrawRoute.
func (h *AccountsHandler) Withdraw(c *gin.Context) {
	accountID, ok := getIDParam(c, "id")
	if !ok {
		return
	}
	var params AccountAmountParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	account, err := h.accountSvs.Withdraw(ctx, getUserIDFromContext(c), accountID, params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAccountResponse(account))
}

// Delete DELETE RouteGroup + AccountRoute. Только счет с нулевым балансом.
func (h *AccountsHandler) Delete(c *gin.Context) {
	accountID, ok := getIDParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.accountSvs.Delete(ctx, accountID, getUserIDFromContext(c)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
