package model

// LedgerAccount holds a balance in minor currency units. Custody accounts
// belong to a room and can only be debited through a custody authority.
type LedgerAccount struct {
	Address string `gorm:"primaryKey" json:"address"`
	Balance uint64 `json:"balance"`
	Custody bool   `json:"custody"`
}

func (LedgerAccount) TableName() string {
	return "ledger_account"
}
