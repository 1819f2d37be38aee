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

type TransferHandler struct {
	transferSvs TransferServicer
}

func NewTransferHandler(transferSvs TransferServicer) *TransferHandler {
	return &TransferHandler{
		transferSvs: transferSvs,
	}
}

type TransferParams struct {
	ToUserID       int64           `json:"toUserId"`
	Amount         decimal.Decimal `json:"amount"`
	Source         string          `binding:"required" json:"source"`
	Note           string          `binding:"max=500"  json:"note"`
	IsSelfTransfer bool            `json:"isSelfTransfer"`
	FromAccountID  int64           `json:"fromAccountId"`
	ToAccountID    int64           `json:"toAccountId"`
}

type TransferPartyResponse struct {
	UserID         int64   `json:"userId"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	WalletBalance  float64 `json:"walletBalance"`
	AccountBalance float64 `json:"accountBalance"`
}

type TransferResponse struct {
	Reference            string                `json:"referenceNumber"`
	TransferID           int64                 `json:"transferId"`
	Amount               float64               `json:"amount"`
	Source               string                `json:"source"`
	Note                 string                `json:"note,omitempty"`
	DestinationType      string                `json:"destinationType"`
	DestinationAccountID *int64                `json:"destinationAccountId,omitempty"`
	DestinationBankName  string                `json:"destinationBankName,omitempty"`
	TransferDate         string                `json:"transferDate"`
	Sender               TransferPartyResponse `json:"sender"`
	Recipient            TransferPartyResponse `json:"recipient"`
}

func newTransferPartyResponse(p service.TransferParty) TransferPartyResponse {
	return TransferPartyResponse{
		UserID:         p.UserID,
		Name:           p.Name,
		Email:          p.Email,
		WalletBalance:  p.WalletBalance.InexactFloat64(),
		AccountBalance: p.AccountBalance.InexactFloat64(),
	}
}

// Create POST RouteGroup + TransfersRoute. Выполняет перевод между
// пользователями либо между счетами одного пользователя.
func (h *TransferHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params TransferParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	toUserID := params.ToUserID
	if params.IsSelfTransfer {
		toUserID = currentUserID
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := h.transferSvs.ExecuteTransfer(ctx, service.ExecuteTransferArgs{
		FromUserID:     currentUserID,
		ToUserID:       toUserID,
		Amount:         params.Amount,
		Source:         domain.TransferSourceType(params.Source),
		Note:           params.Note,
		IsSelfTransfer: params.IsSelfTransfer,
		FromAccountID:  params.FromAccountID,
		ToAccountID:    params.ToAccountID,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransferResponse{
		Reference:            result.Reference,
		TransferID:           result.TransferID,
		Amount:               result.Amount.InexactFloat64(),
		Source:               string(result.Source),
		Note:                 result.Note,
		DestinationType:      string(result.DestinationType),
		DestinationAccountID: result.DestinationAccountID,
		DestinationBankName:  result.DestinationBankName,
		TransferDate:         result.TransferDate.Format(time.RFC3339),
		Sender:               newTransferPartyResponse(result.Sender),
		Recipient:            newTransferPartyResponse(result.Recipient),
	})
}

type TransferHistoryItem struct {
	ID         int64   `json:"id"`
	FromUserID int64   `json:"fromUserId"`
	ToUserID   int64   `json:"toUserId"`
	Amount     float64 `json:"amount"`
	Note       string  `json:"note,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// Index GET RouteGroup + TransfersRoute. Переводы текущего пользователя,
// отправленные и полученные.
func (h *TransferHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	limit, offset := getPagination(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transfers, err := h.transferSvs.GetHistory(ctx, currentUserID, limit, offset)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]TransferHistoryItem, len(transfers))
	for i, transfer := range transfers {
		response[i] = TransferHistoryItem{
			ID:         transfer.ID,
			FromUserID: transfer.FromUserID,
			ToUserID:   transfer.ToUserID,
			Amount:     transfer.Amount.InexactFloat64(),
			Note:       transfer.Note,
			CreatedAt:  transfer.CreatedAt.Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, response)
}

type RecipientResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// FindRecipient GET RouteGroup + RecipientRoute. Поиск получателя по
// username либо email перед переводом.
func (h *TransferHandler) FindRecipient(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	identifier := c.Query("identifier")

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.transferSvs.FindRecipient(ctx, identifier, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecipientResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.DisplayName(),
		Email:    user.Email,
	})
}
