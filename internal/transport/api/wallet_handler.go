package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/finflow/internal/repository/repoargs"
)

type WalletHandler struct {
	walletSvs WalletServicer
}

func NewWalletHandler(walletSvs WalletServicer) *WalletHandler {
	return &WalletHandler{
		walletSvs: walletSvs,
	}
}

type BalancesResponse struct {
	WalletBalance  float64 `json:"walletBalance"`
	AccountBalance float64 `json:"accountBalance"`
}

func newBalancesResponse(balances *repoargs.UserBalances) BalancesResponse {
	return BalancesResponse{
		WalletBalance:  balances.WalletBalance.InexactFloat64(),
		AccountBalance: balances.AccountBalance.InexactFloat64(),
	}
}

// Balance GET RouteGroup + WalletBalanceRoute.
func (h *WalletHandler) Balance(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balances, err := h.walletSvs.GetBalances(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBalancesResponse(balances))
}

type FundWalletParams struct {
	Amount    decimal.Decimal `json:"amount"`
	AccountID int64           `json:"accountId"`
}

// Fund POST RouteGroup + WalletFundRoute. Пополнение кошелька.
func (h *WalletHandler) Fund(c *gin.Context) {
	var params FundWalletParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balances, err := h.walletSvs.FundWallet(ctx, getUserIDFromContext(c), params.Amount, params.AccountID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBalancesResponse(balances))
}

type WalletMoveParams struct {
	Amount    decimal.Decimal `json:"amount"`
	AccountID int64           `binding:"required" json:"accountId"`
}

// ToAccount POST RouteGroup + WalletToAccountRoute. Из кошелька на счет.
func (h *WalletHandler) ToAccount(c *gin.Context) {
	var params WalletMoveParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balances, err := h.walletSvs.MoveWalletToAccount(ctx, getUserIDFromContext(c), params.AccountID, params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBalancesResponse(balances))
}

// FromAccount POST RouteGroup + WalletFromAccountRoute. Со счета в кошелек.
func (h *WalletHandler) FromAccount(c *gin.Context) {
	var params WalletMoveParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balances, err := h.walletSvs.MoveAccountToWallet(ctx, getUserIDFromContext(c), params.AccountID, params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBalancesResponse(balances))
}
