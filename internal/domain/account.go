package domain

import "time"

// AccountType classifies a ledger account.
type AccountType string

const (
	AccountTypeUserCash         AccountType = "USER_CASH"
	AccountTypeUserSecurities   AccountType = "USER_SECURITIES"
	AccountTypeSystemFee        AccountType = "SYSTEM_FEE"
	AccountTypeSystemPnl        AccountType = "SYSTEM_PNL"
	AccountTypeExchangeClearing AccountType = "EXCHANGE_CLEARING"
)

// IsSystem reports whether the account belongs to the platform rather than a user.
func (t AccountType) IsSystem() bool {
	switch t {
	case AccountTypeSystemFee, AccountTypeSystemPnl, AccountTypeExchangeClearing:
		return true
	}
	return false
}

// Account identifies a ledger account. Accounts are created by the account
// management system and are read-only to this core.
type Account struct {
	ID            string
	UserID        string
	AccountNumber string
	Currency      string
	Type          AccountType
	CreatedAt     time.Time
}
