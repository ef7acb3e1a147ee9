package model

type User struct {
	Id                   uint64 `gorm:"primaryKey" json:"id"`
	Email                string `json:"email"`
	Username             string `json:"username"`
	LedgerAccountAddress string `json:"ledgerAccountAddress"`
	GoogleIdentityId     string `json:"-"`
}

func (User) TableName() string {
	return "palapa_user"
}
