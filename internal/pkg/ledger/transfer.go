package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/palapa-fun/rooms-backend/internal/pkg/model"
	"gorm.io/gorm"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBalanceOverflow   = errors.New("balance overflow")
	ErrAccountExists     = errors.New("account already exists")
	ErrAccountNotFound   = errors.New("account not found")
	ErrCustodyDebit      = errors.New("custody account requires authority to debit")
)

// CreateAccount allocates an empty ledger account. All functions here
// expect to run inside an open gorm transaction; row locks taken on
// accounts are held until that transaction commits or rolls back.
func CreateAccount(tx *gorm.DB, address string, custody bool) error {
	var existing int64
	result := tx.Raw("SELECT COUNT(*) FROM ledger_account WHERE address = ?", address).Scan(&existing)
	if result.Error != nil {
		return result.Error
	}
	if existing > 0 {
		return ErrAccountExists
	}

	account := model.LedgerAccount{Address: address, Balance: 0, Custody: custody}
	return tx.Table(model.LedgerAccount{}.TableName()).Create(&account).Error
}

// Balance reads an account balance under a row lock.
func Balance(tx *gorm.DB, address string) (uint64, error) {
	account, err := lockAccount(tx, address)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// Deposit credits an account with funds arriving from outside the ledger.
func Deposit(tx *gorm.DB, to string, amount uint64, kind model.TransferKind, roomAddress *string) error {
	if err := credit(tx, to, amount); err != nil {
		return err
	}
	return journal(tx, nil, to, amount, kind, roomAddress)
}

// Transfer moves funds between two accounts on behalf of the owner of
// the source account. Custody accounts cannot be debited this way.
func Transfer(tx *gorm.DB, from string, to string, amount uint64, kind model.TransferKind, roomAddress *string) error {
	source, err := lockAccount(tx, from)
	if err != nil {
		return err
	}
	if source.Custody {
		return ErrCustodyDebit
	}
	return move(tx, source, to, amount, kind, roomAddress)
}

// AuthorizedTransfer moves funds out of a custody account. The source is
// taken from the authority, so callers can only drain the custody account
// they hold a derivation proof for.
func AuthorizedTransfer(tx *gorm.DB, authority Authority, to string, amount uint64, kind model.TransferKind, roomAddress *string) error {
	source, err := lockAccount(tx, authority.Address())
	if err != nil {
		return err
	}
	return move(tx, source, to, amount, kind, roomAddress)
}

func move(tx *gorm.DB, source *model.LedgerAccount, to string, amount uint64, kind model.TransferKind, roomAddress *string) error {
	if source.Balance < amount {
		return ErrInsufficientFunds
	}

	result := tx.Exec("UPDATE ledger_account SET balance = balance - ? WHERE address = ?", amount, source.Address)
	if result.Error != nil {
		return result.Error
	}
	if err := credit(tx, to, amount); err != nil {
		return err
	}
	return journal(tx, &source.Address, to, amount, kind, roomAddress)
}

func credit(tx *gorm.DB, to string, amount uint64) error {
	account, err := lockAccount(tx, to)
	if err != nil {
		return err
	}
	if account.Balance+amount < account.Balance {
		return ErrBalanceOverflow
	}

	result := tx.Exec("UPDATE ledger_account SET balance = balance + ? WHERE address = ?", amount, to)
	return result.Error
}

func lockAccount(tx *gorm.DB, address string) (*model.LedgerAccount, error) {
	var account model.LedgerAccount
	result := tx.Raw("SELECT * FROM ledger_account WHERE address = ? FOR UPDATE", address).First(&account)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, result.Error
	}
	return &account, nil
}

func journal(tx *gorm.DB, from *string, to string, amount uint64, kind model.TransferKind, roomAddress *string) error {
	entry := model.LedgerTransfer{
		Id:          uuid.New().String(),
		FromAddress: from,
		ToAddress:   to,
		Amount:      amount,
		Kind:        kind,
		RoomAddress: roomAddress,
		CreatedAt:   time.Now().UTC().Unix(),
	}
	return tx.Table(model.LedgerTransfer{}.TableName()).Create(&entry).Error
}
