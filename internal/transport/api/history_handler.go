package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/finflow/internal/domain"
)

type HistoryHandler struct {
	historySvs HistoryServicer
}

func NewHistoryHandler(historySvs HistoryServicer) *HistoryHandler {
	return &HistoryHandler{
		historySvs: historySvs,
	}
}

type EntityRefResponse struct {
	Type string `json:"type"`
	ID   *int64 `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type AuditRecordResponse struct {
	ID              int64             `json:"id"`
	Type            string            `json:"type"`
	Amount          float64           `json:"amount"`
	Source          EntityRefResponse `json:"source"`
	Destination     EntityRefResponse `json:"destination"`
	Description     string            `json:"description"`
	Category        string            `json:"category"`
	ReferenceNumber string            `json:"referenceNumber"`
	BillID          *int64            `json:"billId,omitempty"`
	TransferID      *int64            `json:"transferId,omitempty"`
	BalanceBefore   *float64          `json:"balanceBefore,omitempty"`
	BalanceAfter    *float64          `json:"balanceAfter,omitempty"`
	Status          string            `json:"status"`
	CreatedAt       string            `json:"createdAt"`
}

func newAuditRecordResponse(record *domain.AuditRecord) AuditRecordResponse {
	resp := AuditRecordResponse{
		ID:              record.ID,
		Type:            string(record.Type),
		Amount:          record.Amount.InexactFloat64(),
		Source:          EntityRefResponse{Type: string(record.Source.Type), ID: record.Source.ID, Name: record.Source.Name},
		Destination: EntityRefResponse{
			Type: string(record.Destination.Type),
			ID:   record.Destination.ID,
			Name: record.Destination.Name,
		},
		Description:     record.Description,
		Category:        record.Category,
		ReferenceNumber: record.ReferenceNumber,
		BillID:          record.BillID,
		TransferID:      record.TransferID,
		Status:          record.Status,
		CreatedAt:       record.CreatedAt.Format(time.RFC3339),
	}
	if record.BalanceBefore != nil {
		before := record.BalanceBefore.InexactFloat64()
		resp.BalanceBefore = &before
	}
	if record.BalanceAfter != nil {
		after := record.BalanceAfter.InexactFloat64()
		resp.BalanceAfter = &after
	}
	return resp
}

// Index GET RouteGroup + HistoryRoute. Аудиторская история движения средств,
// новые записи первыми.
func (h *HistoryHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	limit, offset := getPagination(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	records, err := h.historySvs.GetByUserID(ctx, currentUserID, limit, offset)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]AuditRecordResponse, len(records))
	for i := range records {
		response[i] = newAuditRecordResponse(&records[i])
	}
	c.JSON(http.StatusOK, response)
}

type LedgerItemResponse struct {
	ID              int64   `json:"id"`
	Type            string  `json:"type"`
	Amount          float64 `json:"amount"`
	PaymentMethod   string  `json:"paymentMethod"`
	Status          string  `json:"status"`
	Description     string  `json:"description"`
	ReferenceNumber string  `json:"referenceNumber"`
	FromAccount     string  `json:"fromAccount,omitempty"`
	ToAccount       string  `json:"toAccount,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// Ledger GET RouteGroup + TransactionsRoute. Строки легаси-леджера.
func (h *HistoryHandler) Ledger(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	limit, offset := getPagination(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.historySvs.GetLedger(ctx, currentUserID, limit, offset)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]LedgerItemResponse, len(transactions))
	for i, transaction := range transactions {
		response[i] = LedgerItemResponse{
			ID:              transaction.ID,
			Type:            transaction.Type,
			Amount:          transaction.Amount.InexactFloat64(),
			PaymentMethod:   transaction.PaymentMethod,
			Status:          transaction.Status,
			Description:     transaction.Description,
			ReferenceNumber: transaction.ReferenceNumber,
			FromAccount:     transaction.FromAccount,
			ToAccount:       transaction.ToAccount,
			CreatedAt:       transaction.CreatedAt.Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, response)
}
