package constants

const (
	AccountIDPrefix = "ACC"
	CardNumberLen   = 16
	PINLen          = 4
)

const (
	DefaultJSONFile   = "bank_data.json"
	DefaultSQLiteFile = "teller.db"
	DriverJSON        = "json"
	DriverSQLite      = "sqlite"
)

// AmountPlaces is the number of fractional digits kept for balances.
const AmountPlaces = 2
