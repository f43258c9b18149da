package constants

// Menu entries
const (
	MenuStaffLogin    = "Staff login"
	MenuCustomerLogin = "Customer login (card + PIN)"
	MenuExit          = "Exit"

	MenuCreateAccount = "Create new account (no card)"
	MenuRegisterCard  = "Register card + PIN"
	MenuListAccounts  = "List accounts"
	MenuBack          = "Back"

	MenuCheckBalance = "Check balance"
	MenuDeposit      = "Deposit"
	MenuWithdraw     = "Withdraw"
	MenuLogout       = "Logout"
)
