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

	// ErrInvalidAmount is returned for non-positive bid amounts, before storage is contacted
	ErrInvalidAmount = errors.New("Bid amount must be greater than 0")
	// ErrInvalidAuctionId is returned when an auction id does not parse as a uuid
	ErrInvalidAuctionId = errors.New("Invalid Auction ID")
	// ErrInvalidEndDate is returned when an auction end date is not in the future
	ErrInvalidEndDate = errors.New("End date cannot be in the past")
	// ErrBidNotAdmissible is returned when the conditional update matched no
	// record. It covers auction-missing, auction-ended, below-floor and
	// not-above-winner alike; telling them apart would take a second read
	// that races with concurrent submissions.
	ErrBidNotAdmissible = errors.New("Bid is Invalid")
	// ErrStorageUnavailable wraps storage transport failures surfaced to callers
	ErrStorageUnavailable = errors.New("Storage unavailable")
)
