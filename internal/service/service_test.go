package service

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/credential"
	"github.com/hance08/teller/internal/ledger"
	"github.com/hance08/teller/internal/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testSecret = "s3cret"

var errDiskFull = errors.New("disk full")

// memRepo is an in-memory Repository whose saves can be made to fail.
type memRepo struct {
	saved   *ledger.Ledger
	saves   int
	failing bool
	loadErr error
}

func (r *memRepo) Load() (*ledger.Ledger, error) {
	if r.loadErr != nil {
		return ledger.New(), r.loadErr
	}
	if r.saved == nil {
		return ledger.New(), nil
	}
	return r.saved.Clone(), nil
}

func (r *memRepo) Save(l *ledger.Ledger) error {
	if r.failing {
		return errDiskFull
	}
	r.saves++
	r.saved = l.Clone()
	return nil
}

func (r *memRepo) Path() string { return "memory" }
func (r *memRepo) Close() error { return nil }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(t *testing.T, repo store.Repository) *Service {
	t.Helper()
	cfg := config.NewDefault()
	cfg.Operator.Secret = testSecret
	svc := NewService(repo, cfg, zerolog.Nop())
	require.NoError(t, svc.Load())
	return svc
}

func TestScenario(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo)

	require.NoError(t, svc.StaffLogin(testSecret))
	id, err := svc.CreateAccount("Alice", dec("100.00"))
	require.NoError(t, err)
	require.Equal(t, "ACC1", id)
	require.NoError(t, svc.RegisterCard(id, "1111222233334444", "1234"))
	require.NoError(t, svc.Back())
	require.Equal(t, StateUnauthenticated, svc.State())

	acc, err := svc.CustomerLogin("1111222233334444", "1234")
	require.NoError(t, err)
	require.Equal(t, "Alice", acc.OwnerName)
	require.Equal(t, StateCustomer, svc.State())

	_, err = svc.Withdraw(dec("150.00"))
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	balance, err := svc.CheckBalance()
	require.NoError(t, err)
	require.True(t, dec("100").Equal(balance))

	balance, err = svc.Withdraw(dec("50.00"))
	require.NoError(t, err)
	require.True(t, dec("50").Equal(balance))

	_, err = svc.Deposit(dec("-5"))
	require.ErrorIs(t, err, ledger.ErrInvalidAmount)
	require.Equal(t, ledger.KindValidation, ledger.KindOf(err))

	require.NoError(t, svc.Logout())

	persisted, ok := repo.saved.FindByID("ACC1")
	require.True(t, ok)
	require.True(t, dec("50").Equal(persisted.Balance))
}

func TestRegisterCardAlreadyBound(t *testing.T) {
	svc := newTestService(t, &memRepo{})
	require.NoError(t, svc.StaffLogin(testSecret))

	first, err := svc.CreateAccount("Alice", decimal.Zero)
	require.NoError(t, err)
	second, err := svc.CreateAccount("Bob", decimal.Zero)
	require.NoError(t, err)
	require.Equal(t, "ACC2", second)

	require.NoError(t, svc.RegisterCard(first, "1111222233334444", "1234"))
	err = svc.RegisterCard(second, "1111222233334444", "9999")
	require.ErrorIs(t, err, ledger.ErrCardAlreadyBound)

	accounts, err := svc.ListAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	require.True(t, accounts[0].HasCard)
	require.Equal(t, "************4444", accounts[0].MaskedCard)
	require.False(t, accounts[1].HasCard)

	require.ErrorIs(t, svc.RegisterCard(first, "5555666677778888", "1234"), ledger.ErrCredentialAlreadySet)
	require.NoError(t, svc.Back())

	_, err = svc.CustomerLogin("1111222233334444", "1234")
	require.NoError(t, err)
}

func TestRegisterCardValidation(t *testing.T) {
	svc := newTestService(t, &memRepo{})
	require.NoError(t, svc.StaffLogin(testSecret))
	id, err := svc.CreateAccount("Alice", decimal.Zero)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		id      string
		card    string
		pin     string
		wantErr error
	}{
		{name: "Unknown account", id: "ACC9", card: "bad", pin: "bad", wantErr: ledger.ErrAccountNotFound},
		{name: "Short card", id: id, card: "123", pin: "1234", wantErr: ledger.ErrInvalidCardFormat},
		{name: "Letters in card", id: id, card: "111122223333444x", pin: "1234", wantErr: ledger.ErrInvalidCardFormat},
		{name: "Long PIN", id: id, card: "1111222233334444", pin: "12345", wantErr: ledger.ErrInvalidPinFormat},
		{name: "Letters in PIN", id: id, card: "1111222233334444", pin: "12a4", wantErr: ledger.ErrInvalidPinFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, svc.RegisterCard(tc.id, tc.card, tc.pin), tc.wantErr)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(t, &memRepo{})
	require.NoError(t, svc.StaffLogin(testSecret))
	id, err := svc.CreateAccount("Alice", decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, svc.RegisterCard(id, "1111222233334444", "4321"))
	require.NoError(t, svc.Back())

	_, err = svc.CustomerLogin("9999888877776666", "4321")
	require.ErrorIs(t, err, ledger.ErrCardNotFound)
	require.Equal(t, ledger.KindNotFound, ledger.KindOf(err))

	for _, pin := range []string{"0000", "1234", "4320", "9999"} {
		_, err = svc.CustomerLogin("1111222233334444", pin)
		require.ErrorIs(t, err, ledger.ErrIncorrectPin)
		require.Equal(t, StateUnauthenticated, svc.State())
	}

	acc, err := svc.CustomerLogin("1111222233334444", "4321")
	require.NoError(t, err)
	require.Equal(t, id, acc.ID)
	require.True(t, credential.Verify("4321", acc.PINVerifier))
}

func TestStaffLogin(t *testing.T) {
	svc := newTestService(t, &memRepo{})

	err := svc.StaffLogin("wrong")
	require.ErrorIs(t, err, ledger.ErrWrongOperatorSecret)
	require.Equal(t, ledger.KindAuthentication, ledger.KindOf(err))
	require.Equal(t, StateUnauthenticated, svc.State())

	require.NoError(t, svc.StaffLogin(testSecret))
	require.Equal(t, StateOperator, svc.State())

	// no nested sessions
	require.ErrorIs(t, svc.StaffLogin(testSecret), ledger.ErrSessionRequired)
	_, err = svc.CustomerLogin("1111222233334444", "1234")
	require.ErrorIs(t, err, ledger.ErrSessionRequired)
}

func TestStaffLoginDisabled(t *testing.T) {
	svc := NewService(&memRepo{}, config.NewDefault(), zerolog.Nop())
	require.NoError(t, svc.Load())

	require.ErrorIs(t, svc.StaffLogin(""), ledger.ErrOperatorDisabled)
}

func TestWrongStateOperations(t *testing.T) {
	svc := newTestService(t, &memRepo{})

	_, err := svc.CreateAccount("Alice", decimal.Zero)
	require.ErrorIs(t, err, ledger.ErrSessionRequired)
	require.ErrorIs(t, svc.RegisterCard("ACC1", "1111222233334444", "1234"), ledger.ErrSessionRequired)
	_, err = svc.ListAccounts()
	require.ErrorIs(t, err, ledger.ErrSessionRequired)
	require.ErrorIs(t, svc.Back(), ledger.ErrSessionRequired)

	_, err = svc.CheckBalance()
	require.ErrorIs(t, err, ledger.ErrSessionRequired)
	_, err = svc.Deposit(dec("1"))
	require.ErrorIs(t, err, ledger.ErrSessionRequired)
	_, err = svc.Withdraw(dec("1"))
	require.ErrorIs(t, err, ledger.ErrSessionRequired)
	require.ErrorIs(t, svc.Logout(), ledger.ErrSessionRequired)

	require.NoError(t, svc.StaffLogin(testSecret))
	_, err = svc.Deposit(dec("1"))
	require.ErrorIs(t, err, ledger.ErrSessionRequired)
}

func TestCreateAccountValidation(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo)
	require.NoError(t, svc.StaffLogin(testSecret))

	_, err := svc.CreateAccount("Alice", dec("-0.01"))
	require.ErrorIs(t, err, ledger.ErrInvalidAmount)
	require.Equal(t, 0, svc.AccountCount())
	require.Equal(t, 0, repo.saves)

	long := strings.Repeat("a", 300)
	for _, owner := range []string{"", "  Alice  ", long} {
		_, err := svc.CreateAccount(owner, decimal.Zero)
		require.NoError(t, err, owner)
	}

	accounts, err := svc.ListAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	require.Equal(t, "ACC1", accounts[0].ID)
	require.Equal(t, "", accounts[0].OwnerName)
	require.Equal(t, "  Alice  ", accounts[1].OwnerName)
	require.Equal(t, long, accounts[2].OwnerName)
}

func TestSaveFailureKeepsMemory(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo)

	require.NoError(t, svc.StaffLogin(testSecret))
	id, err := svc.CreateAccount("Alice", dec("10"))
	require.NoError(t, err)
	require.NoError(t, svc.RegisterCard(id, "1111222233334444", "1234"))

	repo.failing = true

	_, err = svc.CreateAccount("Bob", decimal.Zero)
	require.ErrorIs(t, err, ledger.ErrSaveFailed)
	require.ErrorIs(t, err, errDiskFull)
	require.Equal(t, ledger.KindPersistence, ledger.KindOf(err))
	require.Equal(t, 1, svc.AccountCount())

	err = svc.Back()
	require.ErrorIs(t, err, ledger.ErrSaveFailed)
	require.Equal(t, StateUnauthenticated, svc.State())

	_, err = svc.CustomerLogin("1111222233334444", "1234")
	require.NoError(t, err)

	_, err = svc.Deposit(dec("5"))
	require.ErrorIs(t, err, ledger.ErrSaveFailed)
	balance, err := svc.CheckBalance()
	require.NoError(t, err)
	require.True(t, dec("10").Equal(balance))

	repo.failing = false
	balance, err = svc.Deposit(dec("5"))
	require.NoError(t, err)
	require.True(t, dec("15").Equal(balance))
}

func TestLoadDegradesToEmptyLedger(t *testing.T) {
	repo := &memRepo{loadErr: ledger.ErrStoreCorrupt}
	svc := NewService(repo, config.NewDefault(), zerolog.Nop())

	err := svc.Load()
	require.ErrorIs(t, err, ledger.ErrStoreCorrupt)
	require.Equal(t, 0, svc.AccountCount())
}

func TestExitPersists(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(t, repo)

	require.NoError(t, svc.StaffLogin(testSecret))
	_, err := svc.CreateAccount("Alice", decimal.Zero)
	require.NoError(t, err)

	saves := repo.saves
	require.NoError(t, svc.Exit())
	require.Equal(t, saves+1, repo.saves)
	require.Equal(t, StateUnauthenticated, svc.State())
}

func TestReloadFromJSONStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_data.json")
	repo, err := store.NewJSONStore(path, zerolog.Nop())
	require.NoError(t, err)

	svc := newTestService(t, repo)
	require.NoError(t, svc.StaffLogin(testSecret))
	id, err := svc.CreateAccount("Alice", dec("100.00"))
	require.NoError(t, err)
	require.NoError(t, svc.RegisterCard(id, "1111222233334444", "1234"))
	require.NoError(t, svc.Exit())

	reopened, err := store.NewJSONStore(path, zerolog.Nop())
	require.NoError(t, err)
	again := newTestService(t, reopened)

	acc, err := again.CustomerLogin("1111222233334444", "1234")
	require.NoError(t, err)
	require.Equal(t, id, acc.ID)
	require.True(t, dec("100").Equal(acc.Balance))

	require.NoError(t, again.Logout())
	require.NoError(t, again.StaffLogin(testSecret))
	next, err := again.CreateAccount("Bob", decimal.Zero)
	require.NoError(t, err)
	require.Equal(t, "ACC2", next)
}
