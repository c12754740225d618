package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrUnauthorized will throw if an ownership, approval or admin check fails
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidListingConfig will throw if a listing price or time window is malformed
	ErrInvalidListingConfig = errors.New("invalid listing config")
	// ErrInsufficientFunds will throw if the attached funds do not exactly equal the listing price
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrPaymentTokenNotAllowed will throw if the payment token contract is not allow-listed
	ErrPaymentTokenNotAllowed = errors.New("payment token not allowed")

	// listing state errors
	ErrTokenIdRequired              = errors.New("token id is required")
	ErrListingNotStarted            = errors.New("listing not started")
	ErrListingEnded                 = errors.New("listing ended")
	ErrSelfPurchase                 = errors.New("owner cannot buy")
	ErrNeverExpiredApprovalRequired = errors.New("require never expired approval")

	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidAddress      = errors.New("Invalid address")
)
