package model

import "github.com/shopspring/decimal"

// Account is one customer's funds plus an optional card credential.
// CardNumber and PINVerifier are either both empty or both set.
type Account struct {
	ID          string
	OwnerName   string
	Balance     decimal.Decimal
	CardNumber  string
	PINVerifier string
}

func (a Account) HasCard() bool {
	return a.CardNumber != ""
}

// AccountSummary is the read-only projection shown to the operator.
type AccountSummary struct {
	ID         string
	OwnerName  string
	Balance    decimal.Decimal
	HasCard    bool
	MaskedCard string
}

// Summary projects the account without exposing the verifier.
func (a Account) Summary() AccountSummary {
	s := AccountSummary{
		ID:        a.ID,
		OwnerName: a.OwnerName,
		Balance:   a.Balance,
		HasCard:   a.HasCard(),
	}
	if s.HasCard {
		s.MaskedCard = MaskCard(a.CardNumber)
	}
	return s
}

// MaskCard hides all but the last four digits of a card number.
func MaskCard(card string) string {
	if len(card) <= 4 {
		return card
	}
	masked := make([]byte, 0, len(card))
	for i := 0; i < len(card)-4; i++ {
		masked = append(masked, '*')
	}
	return string(masked) + card[len(card)-4:]
}
