package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/finflow/internal/domain"
	"github.com/fsdevblog/finflow/internal/service"
	"github.com/fsdevblog/finflow/internal/service/tokens"
	"github.com/fsdevblog/finflow/internal/transport/api/mocks"
	"github.com/fsdevblog/finflow/internal/transport/api/testutils"
)

type TransferHandlerTestSuite struct {
	suite.Suite
	mockTransferService *mocks.MockTransferServicer
	router              *gin.Engine
	authHeader          string
}

func TestTransferHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransferHandlerTestSuite))
}

func (s *TransferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())
	s.mockTransferService = mocks.NewMockTransferServicer(mockCtrl)
	s.router = New(RouterArgs{
		TransferService: s.mockTransferService,
		JWTSecretKey:    []byte(testJWTSecret),
	})

	// все запросы идут от пользователя с id 1
	token, tokenErr := tokens.GenerateUserJWT(1, time.Minute, []byte(testJWTSecret))
	s.Require().NoError(tokenErr)
	s.authHeader = "Bearer " + token
}

func (s *TransferHandlerTestSuite) TestCreate() {
	transferDate := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	s.mockTransferService.EXPECT().
		ExecuteTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.ExecuteTransferArgs) (*service.TransferResult, error) {
			s.Equal(int64(1), args.FromUserID)
			s.Equal(int64(2), args.ToUserID)
			s.Equal(domain.TransferSourceWallet, args.Source)
			s.True(decimal.NewFromInt(100).Equal(args.Amount))
			s.Equal("lunch", args.Note)
			s.False(args.IsSelfTransfer)

			return &service.TransferResult{
				Reference:       "TRF0123456789AB",
				TransferID:      7,
				Amount:          args.Amount,
				Source:          args.Source,
				Note:            args.Note,
				DestinationType: domain.TransferSourceWallet,
				TransferDate:    transferDate,
				Sender: service.TransferParty{
					UserID: 1, Name: "Alice A", Email: "alice@example.com",
					WalletBalance: decimal.NewFromInt(900),
				},
				Recipient: service.TransferParty{
					UserID: 2, Name: "bob", Email: "bob@example.com",
					WalletBalance: decimal.NewFromInt(110),
				},
			}, nil
		})

	body := `{"toUserId":2,"amount":100,"source":"wallet","note":"lunch"}`
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + TransfersRoute,
		Body:   bytes.NewBufferString(body),
	},
		testutils.WithHeader("Content-Type", "application/json"),
		testutils.WithHeader("Authorization", s.authHeader),
	)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusCreated, resp.StatusCode)

	var payload TransferResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
	s.Equal("TRF0123456789AB", payload.Reference)
	s.Equal(int64(7), payload.TransferID)
	s.Equal("wallet", payload.DestinationType)
	s.Equal("2026-03-14T10:30:00Z", payload.TransferDate)
	s.Equal("Alice A", payload.Sender.Name)
	s.InDelta(900, payload.Sender.WalletBalance, 0.001)
}

func (s *TransferHandlerTestSuite) TestCreateSelfTransferIgnoresToUserID() {
	s.mockTransferService.EXPECT().
		ExecuteTransfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.ExecuteTransferArgs) (*service.TransferResult, error) {
			// получатель переписывается текущим пользователем
			s.Equal(int64(1), args.FromUserID)
			s.Equal(int64(1), args.ToUserID)
			s.True(args.IsSelfTransfer)
			s.Equal(int64(10), args.FromAccountID)
			s.Equal(int64(11), args.ToAccountID)

			accountID := int64(11)
			return &service.TransferResult{
				Reference:            "TRF0123456789AB",
				TransferID:           9,
				Amount:               args.Amount,
				Source:               args.Source,
				DestinationType:      domain.TransferSourceAccount,
				DestinationAccountID: &accountID,
				DestinationBankName:  "ICICI",
				TransferDate:         time.Now(),
				Sender:               service.TransferParty{UserID: 1},
				Recipient:            service.TransferParty{UserID: 1},
			}, nil
		})

	body := `{"toUserId":999,"amount":100,"source":"account","isSelfTransfer":true,"fromAccountId":10,"toAccountId":11}`
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + TransfersRoute,
		Body:   bytes.NewBufferString(body),
	},
		testutils.WithHeader("Content-Type", "application/json"),
		testutils.WithHeader("Authorization", s.authHeader),
	)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusCreated, resp.StatusCode)

	var payload TransferResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
	s.Require().NotNil(payload.DestinationAccountID)
	s.Equal(int64(11), *payload.DestinationAccountID)
	s.Equal("ICICI", payload.DestinationBankName)
}

func (s *TransferHandlerTestSuite) TestCreateInsufficientFunds() {
	s.mockTransferService.EXPECT().ExecuteTransfer(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewInsufficientFundsError(domain.TransferSourceWallet, decimal.NewFromInt(50)))

	body := `{"toUserId":2,"amount":100,"source":"wallet"}`
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + TransfersRoute,
		Body:   bytes.NewBufferString(body),
	},
		testutils.WithHeader("Content-Type", "application/json"),
		testutils.WithHeader("Authorization", s.authHeader),
	)
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusBadRequest, resp.StatusCode)

	var payload map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
	s.Equal("insufficient wallet balance, available: 50.00", payload["error"])
}

func (s *TransferHandlerTestSuite) TestCreateUnauthorized() {
	body := `{"toUserId":2,"amount":100,"source":"wallet"}`
	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + TransfersRoute,
		Body:   bytes.NewBufferString(body),
	}, testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *TransferHandlerTestSuite) TestIndex() {
	s.mockTransferService.EXPECT().
		GetHistory(gomock.Any(), int64(1), uint(50), uint(0)).
		Return([]domain.Transfer{
			{ID: 7, FromUserID: 1, ToUserID: 2, Amount: decimal.NewFromInt(100), Note: "lunch", CreatedAt: time.Now()},
			{ID: 6, FromUserID: 3, ToUserID: 1, Amount: decimal.NewFromInt(40), CreatedAt: time.Now()},
		}, nil)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + TransfersRoute,
	}, testutils.WithHeader("Authorization", s.authHeader))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)

	var payload []TransferHistoryItem
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
	s.Require().Len(payload, 2)
	s.Equal(int64(7), payload[0].ID)
	s.Equal("lunch", payload[0].Note)
}

func (s *TransferHandlerTestSuite) TestFindRecipient() {
	s.mockTransferService.EXPECT().
		FindRecipient(gomock.Any(), "bob", int64(1)).
		Return(&domain.User{ID: 2, Username: "bob", Email: "bob@example.com"}, nil)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + RecipientRoute + "?identifier=bob",
	}, testutils.WithHeader("Authorization", s.authHeader))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusOK, resp.StatusCode)

	var payload RecipientResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
	s.Equal(int64(2), payload.ID)
	s.Equal("bob", payload.Name)
}

func (s *TransferHandlerTestSuite) TestFindRecipientNotFound() {
	s.mockTransferService.EXPECT().
		FindRecipient(gomock.Any(), "ghost", int64(1)).
		Return(nil, domain.ErrRecordNotFound)

	resp, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + RecipientRoute + "?identifier=ghost",
	}, testutils.WithHeader("Authorization", s.authHeader))
	s.Require().NoError(err)
	defer resp.Body.Close() //nolint:errcheck

	s.Equal(http.StatusNotFound, resp.StatusCode)
}
