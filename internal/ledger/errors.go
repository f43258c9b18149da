package ledger

import "errors"

// Kind groups ledger errors by how a caller should react to them.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindAuthentication
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error is a classified ledger error. Values are compared by identity,
// so the exported sentinels work with errors.Is.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

var (
	ErrInvalidAmount     = newError(KindValidation, "InvalidAmount", "amount must be greater than zero")
	ErrInvalidCardFormat = newError(KindValidation, "InvalidCardFormat", "card number must be exactly 16 digits")
	ErrInvalidPinFormat  = newError(KindValidation, "InvalidPinFormat", "PIN must be exactly 4 digits")
	ErrInsufficientFunds = newError(KindValidation, "InsufficientFunds", "insufficient funds")
	ErrInvalidAccountID  = newError(KindValidation, "InvalidAccountId", "account id can't be empty")

	ErrAccountNotFound = newError(KindNotFound, "AccountNotFound", "account not found")
	ErrCardNotFound    = newError(KindNotFound, "CardNotFound", "card not found")

	ErrDuplicateID          = newError(KindConflict, "DuplicateId", "account id already exists")
	ErrCardAlreadyBound     = newError(KindConflict, "CardAlreadyBound", "card already registered")
	ErrCredentialAlreadySet = newError(KindConflict, "CredentialAlreadySet", "account already has a card")
	ErrCredentialMismatch   = newError(KindConflict, "CredentialMismatch", "card number and PIN verifier must be set together")

	ErrWrongOperatorSecret = newError(KindAuthentication, "WrongOperatorSecret", "wrong staff password")
	ErrOperatorDisabled    = newError(KindAuthentication, "OperatorDisabled", "staff login is disabled: no operator secret configured")
	ErrIncorrectPin        = newError(KindAuthentication, "IncorrectPin", "incorrect PIN")
	ErrSessionRequired     = newError(KindAuthentication, "SessionRequired", "operation not allowed in the current session")

	ErrStoreCorrupt     = newError(KindPersistence, "StoreCorrupt", "store is malformed")
	ErrStoreUnavailable = newError(KindPersistence, "StoreUnavailable", "store is unavailable")
	ErrSaveFailed       = newError(KindPersistence, "SaveFailed", "failed to save ledger")
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
