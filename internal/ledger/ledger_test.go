package ledger

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/hance08/teller/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seeded(t *testing.T, accounts ...model.Account) *Ledger {
	t.Helper()
	l := New()
	for _, a := range accounts {
		require.NoError(t, l.Insert(a))
	}
	return l
}

func TestAllocateID(t *testing.T) {
	testCases := []struct {
		name     string
		existing []string
		want     string
	}{
		{name: "Empty ledger", want: "ACC1"},
		{name: "Sequential", existing: []string{"ACC1", "ACC2"}, want: "ACC3"},
		{name: "Gap", existing: []string{"ACC1", "ACC7"}, want: "ACC8"},
		{name: "Foreign ids ignored", existing: []string{"X99", "ACCabc", "ACC2"}, want: "ACC3"},
		{name: "Leading zeros", existing: []string{"ACC009"}, want: "ACC10"},
		{name: "Signed suffix ignored", existing: []string{"ACC-5", "ACC+7", "ACC1"}, want: "ACC2"},
		{name: "Past int64", existing: []string{"ACC9223372036854775807"}, want: "ACC9223372036854775808"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := New()
			for _, id := range tc.existing {
				require.NoError(t, l.Insert(model.Account{ID: id, OwnerName: "x"}))
			}
			require.Equal(t, tc.want, l.AllocateID())
		})
	}
}

func TestAllocateIDNeverReuses(t *testing.T) {
	l := New()
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		id := l.AllocateID()
		_, exists := l.FindByID(id)
		require.False(t, exists)
		require.False(t, seen[id])
		seen[id] = true
		require.NoError(t, l.Insert(model.Account{ID: id, OwnerName: "owner"}))
	}
	require.Equal(t, 50, l.Len())
}

func TestAllocateIDAfterHugeID(t *testing.T) {
	l := seeded(t, model.Account{ID: "ACC9223372036854775807", OwnerName: "x"})

	for i := 0; i < 3; i++ {
		id := l.AllocateID()
		_, exists := l.FindByID(id)
		require.False(t, exists, id)
		require.NoError(t, l.Insert(model.Account{ID: id, OwnerName: "owner"}))
	}
	require.Equal(t, 4, l.Len())

	_, ok := l.FindByID("ACC9223372036854775810")
	require.True(t, ok)
}

func TestInsert(t *testing.T) {
	l := seeded(t, model.Account{ID: "ACC1", OwnerName: "A", CardNumber: "1111222233334444", PINVerifier: "v"})

	testCases := []struct {
		name    string
		account model.Account
		wantErr error
	}{
		{name: "Duplicate id", account: model.Account{ID: "ACC1"}, wantErr: ErrDuplicateID},
		{name: "Empty id", account: model.Account{}, wantErr: ErrInvalidAccountID},
		{name: "Card without verifier", account: model.Account{ID: "ACC2", CardNumber: "5555666677778888"}, wantErr: ErrCredentialMismatch},
		{name: "Verifier without card", account: model.Account{ID: "ACC2", PINVerifier: "v"}, wantErr: ErrCredentialMismatch},
		{name: "Card already bound", account: model.Account{ID: "ACC2", CardNumber: "1111222233334444", PINVerifier: "v"}, wantErr: ErrCardAlreadyBound},
		{name: "Negative balance", account: model.Account{ID: "ACC2", Balance: dec("-1")}, wantErr: ErrInvalidAmount},
		{name: "OK", account: model.Account{ID: "ACC2", OwnerName: "B", Balance: dec("10.50")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := l.Insert(tc.account)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			got, ok := l.FindByID(tc.account.ID)
			require.True(t, ok)
			require.Equal(t, tc.account, got)
		})
	}
}

func TestFind(t *testing.T) {
	l := seeded(t,
		model.Account{ID: "ACC1", OwnerName: "A"},
		model.Account{ID: "ACC2", OwnerName: "B", CardNumber: "1111222233334444", PINVerifier: "v"},
	)

	_, ok := l.FindByID("ACC9")
	require.False(t, ok)

	_, ok = l.FindByCard("")
	require.False(t, ok)

	_, ok = l.FindByCard("9999999999999999")
	require.False(t, ok)

	a, ok := l.FindByCard("1111222233334444")
	require.True(t, ok)
	require.Equal(t, "ACC2", a.ID)

	// returned values are copies
	a.OwnerName = "changed"
	again, _ := l.FindByID("ACC2")
	require.Equal(t, "B", again.OwnerName)
}

func TestBindCredential(t *testing.T) {
	const card = "1111222233334444"

	l := seeded(t,
		model.Account{ID: "ACC1", OwnerName: "A"},
		model.Account{ID: "ACC2", OwnerName: "B"},
	)

	require.ErrorIs(t, l.BindCredential("ACC9", card, "v"), ErrAccountNotFound)
	require.ErrorIs(t, l.BindCredential("ACC1", card, ""), ErrCredentialMismatch)

	require.NoError(t, l.BindCredential("ACC1", card, "v1"))
	a, _ := l.FindByID("ACC1")
	require.Equal(t, card, a.CardNumber)
	require.Equal(t, "v1", a.PINVerifier)

	err := l.BindCredential("ACC2", card, "v2")
	require.ErrorIs(t, err, ErrCardAlreadyBound)
	require.Equal(t, KindConflict, KindOf(err))

	b, _ := l.FindByID("ACC2")
	require.False(t, b.HasCard())
	require.Empty(t, b.PINVerifier)
	a, _ = l.FindByID("ACC1")
	require.Equal(t, "v1", a.PINVerifier)

	require.ErrorIs(t, l.BindCredential("ACC1", "5555666677778888", "v3"), ErrCredentialAlreadySet)
	require.ErrorIs(t, l.BindCredential("ACC1", card, "v3"), ErrCredentialAlreadySet)

	_, ok := l.FindByCard("5555666677778888")
	require.False(t, ok)
}

func TestAdjustBalance(t *testing.T) {
	l := seeded(t, model.Account{ID: "ACC1", OwnerName: "A", Balance: dec("100.00")})

	_, err := l.AdjustBalance("ACC9", dec("1"))
	require.ErrorIs(t, err, ErrAccountNotFound)

	got, err := l.AdjustBalance("ACC1", dec("-150"))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.True(t, dec("100").Equal(got))

	got, err = l.AdjustBalance("ACC1", dec("-100"))
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestDepositWithdraw(t *testing.T) {
	l := seeded(t, model.Account{ID: "ACC1", OwnerName: "A", Balance: dec("100.00")})

	for _, amount := range []string{"0", "-5"} {
		_, err := l.Deposit("ACC1", dec(amount))
		require.ErrorIs(t, err, ErrInvalidAmount)
		_, err = l.Withdraw("ACC1", dec(amount))
		require.ErrorIs(t, err, ErrInvalidAmount)
	}

	_, err := l.Withdraw("ACC1", dec("150.00"))
	require.ErrorIs(t, err, ErrInsufficientFunds)

	got, err := l.Withdraw("ACC1", dec("50.00"))
	require.NoError(t, err)
	require.True(t, dec("50").Equal(got))

	got, err = l.Deposit("ACC1", dec("0.25"))
	require.NoError(t, err)
	require.True(t, dec("50.25").Equal(got))
}

func TestBalanceNeverNegative(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	l := seeded(t, model.Account{ID: "ACC1", OwnerName: "A", Balance: dec("20")})

	expected := dec("20")
	for i := 0; i < 500; i++ {
		amount := decimal.New(r.Int63n(5000), -2)
		if r.Intn(2) == 0 {
			_, err := l.Deposit("ACC1", amount)
			if amount.IsZero() {
				require.ErrorIs(t, err, ErrInvalidAmount)
				continue
			}
			require.NoError(t, err)
			expected = expected.Add(amount)
			continue
		}

		_, err := l.Withdraw("ACC1", amount)
		switch {
		case amount.IsZero():
			require.ErrorIs(t, err, ErrInvalidAmount)
		case amount.GreaterThan(expected):
			require.ErrorIs(t, err, ErrInsufficientFunds)
		default:
			require.NoError(t, err)
			expected = expected.Sub(amount)
		}

		a, _ := l.FindByID("ACC1")
		require.False(t, a.Balance.IsNegative())
	}

	a, _ := l.FindByID("ACC1")
	require.True(t, expected.Equal(a.Balance), fmt.Sprintf("want %s got %s", expected, a.Balance))
}

func TestClone(t *testing.T) {
	l := seeded(t,
		model.Account{ID: "ACC1", OwnerName: "A", Balance: dec("10")},
		model.Account{ID: "ACC2", OwnerName: "B"},
	)

	c := l.Clone()
	_, err := c.Deposit("ACC1", dec("5"))
	require.NoError(t, err)
	require.NoError(t, c.BindCredential("ACC2", "1111222233334444", "v"))

	a, _ := l.FindByID("ACC1")
	require.True(t, dec("10").Equal(a.Balance))
	_, ok := l.FindByCard("1111222233334444")
	require.False(t, ok)

	ca, _ := c.FindByCard("1111222233334444")
	require.Equal(t, "ACC2", ca.ID)
	require.Equal(t, []string{"ACC1", "ACC2"}, ids(c.Accounts()))
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("save: %w", ErrSaveFailed)
	require.Equal(t, KindPersistence, KindOf(wrapped))
	require.Equal(t, "SaveFailed", CodeOf(wrapped))
	require.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	require.Equal(t, "", CodeOf(nil))
	require.Equal(t, "not found", KindNotFound.String())
}

func ids(accounts []model.Account) []string {
	out := make([]string, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.ID)
	}
	return out
}
