package stocksim

import "errors"

var (
	// ErrInvalidAmount is returned when a cash amount is not acceptable for the operation.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidShares is returned when a share count is not strictly positive or the stock is missing.
	ErrInvalidShares = errors.New("invalid number of shares")
	// ErrUserExists is returned by Signup when the username is already registered.
	ErrUserExists = errors.New("username already exists")
	// ErrInvalidUsername is returned by Signup when the username cannot be stored.
	ErrInvalidUsername = errors.New("invalid username")
	// ErrInvalidPassword is returned by Signup for an empty password.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrAuthFailed is returned by Login for an unknown username or a wrong password.
	ErrAuthFailed = errors.New("invalid username or password")
	// ErrNotPersisted is returned by Signup when the account was registered for
	// the running process but the credential store could not be saved.
	ErrNotPersisted = errors.New("account not saved")
)
