package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountingStatus estado contable del asiento.
type AccountingStatus string

const (
	AccountingDraft      AccountingStatus = "draft"
	AccountingPosted     AccountingStatus = "posted"
	AccountingReconciled AccountingStatus = "reconciled"
)

func (s AccountingStatus) Valid() bool {
	switch s {
	case AccountingDraft, AccountingPosted, AccountingReconciled:
		return true
	}
	return false
}

// AccountingEntry asiento contable simple (una cuenta, débito o crédito).
type AccountingEntry struct {
	ID          string           `json:"id" yaml:"id"`
	EntryNumber string           `json:"entryNumber" yaml:"entryNumber"`
	Date        time.Time        `json:"date" yaml:"date"`
	Account     string           `json:"account" yaml:"account"`
	Description string           `json:"description" yaml:"description"`
	Category    string           `json:"category" yaml:"category"`
	Debit       decimal.Decimal  `json:"debit" yaml:"debit"`
	Credit      decimal.Decimal  `json:"credit" yaml:"credit"`
	Reference   string           `json:"reference" yaml:"reference"`
	Status      AccountingStatus `json:"status" yaml:"status"`
}

func (a AccountingEntry) GetID() string { return a.ID }

func (a AccountingEntry) WithID(id string) AccountingEntry {
	a.ID = id
	return a
}

func (AccountingEntry) Kind() Kind { return KindAccountingEntry }

func (a AccountingEntry) SearchTerms() []string {
	return []string{a.EntryNumber, a.Account, a.Description, a.Reference}
}

func (a AccountingEntry) Facet() string { return a.Category }

// Balance débito menos crédito.
func (a AccountingEntry) Balance() decimal.Decimal { return a.Debit.Sub(a.Credit) }
