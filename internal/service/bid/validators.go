package bid

import (
	"strings"

	"bharatloads/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidBidType(bidType entities.BidType) bool {
	switch bidType {
	case entities.BidTypeLoadBid, entities.BidTypeTruckRequest:
		return true
	default:
		return false
	}
}

func isValidTargetStatus(status entities.BidStatus) bool {
	switch status {
	case entities.BidAccepted, entities.BidRejected:
		return true
	default:
		return false
	}
}

func isValidAmount(amount entities.OfferedAmount) bool {
	return amount.Total > 0
}
