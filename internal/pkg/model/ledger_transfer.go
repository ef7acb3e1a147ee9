package model

type TransferKind string

const (
	TransferDeposit      TransferKind = "DEPOSIT"
	TransferBaselineFund TransferKind = "BASELINE_FUND"
	TransferEntryFee     TransferKind = "ENTRY_FEE"
	TransferCreatorFee   TransferKind = "CREATOR_FEE"
	TransferServiceFee   TransferKind = "SERVICE_FEE"
	TransferWinnerPayout TransferKind = "WINNER_PAYOUT"
	TransferRefund       TransferKind = "REFUND"
)

// LedgerTransfer is one journal row. FromAddress is nil for deposits,
// which mint funds into the ledger from the outside world.
type LedgerTransfer struct {
	Id          string       `gorm:"primaryKey" json:"id"`
	FromAddress *string      `json:"fromAddress,omitempty"`
	ToAddress   string       `json:"toAddress"`
	Amount      uint64       `json:"amount"`
	Kind        TransferKind `json:"kind"`
	RoomAddress *string      `json:"roomAddress,omitempty"`
	CreatedAt   int64        `json:"createdAt"`
}

func (LedgerTransfer) TableName() string {
	return "ledger_transfer"
}
