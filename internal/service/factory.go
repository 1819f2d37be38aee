package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/finflow/pkg/uow"
)

type AppServices struct {
	UserService     *UserService
	TransferService *TransferService
	WalletService   *WalletService
	AccountService  *AccountService
	BillService     *BillService
	TxLogService    *TxLogService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, log *logrus.Logger) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	txLogService, txLogServiceErr := NewTxLogService(unitOfWork, log)
	if txLogServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", txLogServiceErr.Error())
	}

	transferService, transferServiceErr := NewTransferService(unitOfWork, txLogService, log)
	if transferServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", transferServiceErr.Error())
	}

	walletService, walletServiceErr := NewWalletService(unitOfWork, txLogService, log)
	if walletServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", walletServiceErr.Error())
	}

	accountService, accountServiceErr := NewAccountService(unitOfWork, txLogService, log)
	if accountServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", accountServiceErr.Error())
	}

	billService, billServiceErr := NewBillService(unitOfWork, txLogService, log)
	if billServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", billServiceErr.Error())
	}

	return &AppServices{
		UserService:     userService,
		TransferService: transferService,
		WalletService:   walletService,
		AccountService:  accountService,
		BillService:     billService,
		TxLogService:    txLogService,
	}, nil
}
