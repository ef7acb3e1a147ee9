package wallet

import (
	"errors"
	"net/http"

	"github.com/palapa-fun/rooms-backend/internal/pkg/ledger"
	"github.com/palapa-fun/rooms-backend/internal/pkg/model"
	"github.com/palapa-fun/rooms-backend/internal/pkg/reject"
	"gorm.io/gorm"
)

type walletService struct {
	db *gorm.DB
}

var errInvalidAmount = errors.New("deposit amount must be greater than zero")

type WalletResponse struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

func (ws *walletService) deposit(userEmail string, amount uint64) (*WalletResponse, *reject.ProblemWithTrace) {
	var wallet *WalletResponse
	err := ws.db.Transaction(func(tx *gorm.DB) error {
		if amount == 0 {
			return errInvalidAmount
		}

		address, err := accountAddress(tx, userEmail)
		if err != nil {
			return err
		}

		if err := ledger.Deposit(tx, address, amount, model.TransferDeposit, nil); err != nil {
			return err
		}

		balance, err := ledger.Balance(tx, address)
		if err != nil {
			return err
		}
		wallet = &WalletResponse{Address: address, Balance: balance}
		return nil
	})

	if err != nil {
		return nil, problemFor(err)
	}
	return wallet, nil
}

func (ws *walletService) balance(userEmail string) (*WalletResponse, *reject.ProblemWithTrace) {
	var wallet WalletResponse
	result := ws.db.Raw(`
		SELECT la.address, la.balance
		  FROM palapa_user u
	INNER JOIN ledger_account la ON u.ledger_account_address = la.address
	     WHERE u.email = ?
	`, userEmail).First(&wallet)

	if result.Error != nil {
		return nil, problemFor(result.Error)
	}
	return &wallet, nil
}

func (ws *walletService) transfers(userEmail string) ([]model.LedgerTransfer, *reject.ProblemWithTrace) {
	var entries []model.LedgerTransfer
	result := ws.db.Raw(`
		SELECT lt.*
		  FROM ledger_transfer lt
	     WHERE lt.from_address = (SELECT ledger_account_address FROM palapa_user WHERE email = ?)
	        OR lt.to_address   = (SELECT ledger_account_address FROM palapa_user WHERE email = ?)
	  ORDER BY lt.created_at DESC
	     LIMIT 50
	`, userEmail, userEmail).Scan(&entries)

	if result.Error != nil {
		return nil, problemFor(result.Error)
	}
	return entries, nil
}

func accountAddress(tx *gorm.DB, userEmail string) (string, error) {
	var address string
	f := tx.Raw("SELECT u.ledger_account_address FROM palapa_user u WHERE email = ?", userEmail).First(&address)
	if f.Error != nil {
		return "", f.Error
	}
	return address, nil
}

func problemFor(err error) *reject.ProblemWithTrace {
	switch {
	case errors.Is(err, errInvalidAmount):
		return &reject.ProblemWithTrace{
			Problem: reject.NewProblem().
				WithTitle("Invalid deposit amount").
				WithStatus(http.StatusBadRequest).
				WithCode("error.wallet.invalid-amount").
				Build(),
			Cause: err,
		}
	case errors.Is(err, ledger.ErrBalanceOverflow):
		return &reject.ProblemWithTrace{
			Problem: reject.NewProblem().
				WithTitle("Balance overflow").
				WithStatus(http.StatusConflict).
				WithCode("error.ledger.overflow").
				Build(),
			Cause: err,
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &reject.ProblemWithTrace{Problem: reject.NotFoundProblem(), Cause: err}
	default:
		return &reject.ProblemWithTrace{Problem: reject.UnexpectedProblem(err), Cause: err}
	}
}
