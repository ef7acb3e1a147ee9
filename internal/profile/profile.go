package profile

type Profile struct {
	Id                   uint64 `json:"id"`
	Email                string `json:"email"`
	Username             string `json:"username"`
	LedgerAccountAddress string `json:"ledgerAccountAddress"`
	Balance              uint64 `json:"balance"`
}
