package bid

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidBidType        = errors.New("invalid bid type")
	ErrInvalidAmount         = errors.New("bid amount must be positive")
	ErrInvalidStatus         = errors.New("invalid bid status")

	ErrBidNotFound = errors.New("bid not found")

	ErrNotBidOwner     = errors.New("only the bid initiator may perform this action")
	ErrNotOfferedTo    = errors.New("only the offered-to party may change bid status")
	ErrNotLoadBidOwner = errors.New("only the load post owner may view its bids")
	ErrOwnEntityBid    = errors.New("cannot bid on own posting")
	ErrWrongSideBidder = errors.New("initiator does not own the offered entity")

	// ErrBidAlreadyClosed терминальный статус финален, повторный
	// переход невозможен.
	ErrBidAlreadyClosed   = errors.New("bid is already in a terminal status")
	ErrBidAlreadyAccepted = errors.New("bid is already accepted")
	ErrAcceptedBidDelete  = errors.New("accepted bid cannot be deleted")
)
