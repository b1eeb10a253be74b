package bid

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"bharatloads/internal/entities"
)

type Bid struct {
	repository Repository
	loads      LoadStore
	trucks     TruckStore
	rewards    RewardLedger
	chats      ChatBootstrap
	outbox     Outbox
	txManager  TxManager
}

func New(
	repository Repository,
	loads LoadStore,
	trucks TruckStore,
	rewards RewardLedger,
	chats ChatBootstrap,
	outbox Outbox,
	txManager TxManager,
) *Bid {
	return &Bid{
		repository: repository,
		loads:      loads,
		trucks:     trucks,
		rewards:    rewards,
		chats:      chats,
		outbox:     outbox,
		txManager:  txManager,
	}
}

func (s *Bid) CreateBid(ctx context.Context, in entities.BidCreate) (*entities.Bid, error) {
	if !isValidID(in.BidderID) || !isValidID(in.LoadID) || !isValidID(in.TruckID) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidBidType(in.BidType) {
		return nil, ErrInvalidBidType
	}
	if !isValidAmount(in.BiddedAmount) {
		return nil, ErrInvalidAmount
	}

	var created *entities.Bid
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		load, err := s.loads.GetByID(ctx, in.LoadID)
		if err != nil {
			return fmt.Errorf("resolve load: %w", err)
		}
		truck, err := s.trucks.GetByID(ctx, in.TruckID)
		if err != nil {
			return fmt.Errorf("resolve truck: %w", err)
		}

		// offeredTo владелец той сущности, которой инициатор НЕ владеет.
		var offeredTo string
		switch in.BidType {
		case entities.BidTypeLoadBid:
			if truck.OwnerID != in.BidderID {
				return ErrWrongSideBidder
			}
			if load.TransporterID == in.BidderID {
				return ErrOwnEntityBid
			}
			offeredTo = load.TransporterID
		case entities.BidTypeTruckRequest:
			if load.TransporterID != in.BidderID {
				return ErrWrongSideBidder
			}
			if truck.OwnerID == in.BidderID {
				return ErrOwnEntityBid
			}
			offeredTo = truck.OwnerID
		}

		newBid := entities.Bid{
			ID:           uuid.NewString(),
			BidType:      in.BidType,
			LoadID:       load.ID,
			TruckID:      truck.ID,
			BidBy:        in.BidderID,
			OfferedTo:    offeredTo,
			BiddedAmount: in.BiddedAmount,

			MaterialType:      load.MaterialType,
			Weight:            load.Weight,
			Source:            load.Source,
			Destination:       load.Destination,
			LoadOfferedAmount: load.OfferedAmount,

			Status: entities.BidPending,
		}

		created, err = s.repository.Create(ctx, newBid)
		if err != nil {
			return fmt.Errorf("create bid: %w", err)
		}

		if in.BidType == entities.BidTypeLoadBid {
			if err := s.trucks.IncrementTotalBids(ctx, truck.ID); err != nil {
				return fmt.Errorf("increment truck bid count: %w", err)
			}
		}

		if err := s.outbox.Append(ctx, newBidEvent(entities.EventBidPlaced, created, offeredTo)); err != nil {
			return fmt.Errorf("append bid placed event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// AcceptBid терминальный переход с каскадом побочных эффектов.
// Гонку за ресурс решает условная запись PENDING -> ACCEPTED: каскад
// выполняет только тот вызов, чья запись прошла.
func (s *Bid) AcceptBid(ctx context.Context, bidID, acceptingUserID string) (*entities.Bid, error) {
	if !isValidID(bidID) || !isValidID(acceptingUserID) {
		return nil, ErrMissingRequiredFields
	}

	var accepted *entities.Bid
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		b, err := s.repository.GetByID(ctx, bidID)
		if err != nil {
			return fmt.Errorf("get bid: %w", err)
		}
		if b.OfferedTo != acceptingUserID {
			return ErrNotOfferedTo
		}
		if b.Status == entities.BidAccepted {
			return ErrBidAlreadyAccepted
		}
		if b.Status.Terminal() {
			return ErrBidAlreadyClosed
		}

		won, err := s.repository.AcceptPending(ctx, b.ID)
		if err != nil {
			return fmt.Errorf("accept bid: %w", err)
		}
		if !won {
			// Кто-то успел закрыть ставку между чтением и записью.
			return ErrBidAlreadyAccepted
		}
		b.Status = entities.BidAccepted

		// Акцепт закрепляет ресурс инициатора: LOAD_BID занимает
		// грузовик, TRUCK_REQUEST занимает груз. Остальные PENDING
		// ставки на этот ресурс отклоняются каскадом.
		switch b.BidType {
		case entities.BidTypeLoadBid:
			if err := s.trucks.SetCurrentBid(ctx, b.TruckID, b.ID); err != nil {
				return fmt.Errorf("set truck current bid: %w", err)
			}
			if _, err := s.repository.RejectCompetingByTruck(ctx, b.TruckID, b.ID); err != nil {
				return fmt.Errorf("reject competing truck bids: %w", err)
			}
		case entities.BidTypeTruckRequest:
			if err := s.loads.SetCurrentBid(ctx, b.LoadID, b.ID); err != nil {
				return fmt.Errorf("set load current bid: %w", err)
			}
			if _, err := s.repository.RejectCompetingByLoad(ctx, b.LoadID, b.ID); err != nil {
				return fmt.Errorf("reject competing load bids: %w", err)
			}
		}

		if err := s.rewards.Credit(ctx, b.BidBy, entities.BidRewardCoins, entities.CoinTxBidAccepted, b.ID); err != nil {
			return fmt.Errorf("credit reward: %w", err)
		}

		if err := s.chats.PostBidAccepted(ctx, b); err != nil {
			return fmt.Errorf("bootstrap chat: %w", err)
		}

		if err := s.outbox.Append(ctx, newBidEvent(entities.EventBidAccepted, b, b.BidBy)); err != nil {
			return fmt.Errorf("append bid accepted event: %w", err)
		}

		accepted = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accepted, nil
}

func (s *Bid) UpdateBidStatus(ctx context.Context, bidID, callerID string, status entities.BidStatus, reason, note *string) (*entities.Bid, error) {
	if !isValidTargetStatus(status) {
		return nil, ErrInvalidStatus
	}
	if status == entities.BidAccepted {
		return s.AcceptBid(ctx, bidID, callerID)
	}
	return s.rejectBid(ctx, bidID, callerID, reason, note)
}

// rejectBid терминальный переход без каскада: конкурирующие ставки
// не трогаем, штрафуем только инициатора отклонённой.
func (s *Bid) rejectBid(ctx context.Context, bidID, callerID string, reason, note *string) (*entities.Bid, error) {
	if !isValidID(bidID) || !isValidID(callerID) {
		return nil, ErrMissingRequiredFields
	}

	var rejected *entities.Bid
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		b, err := s.repository.GetByID(ctx, bidID)
		if err != nil {
			return fmt.Errorf("get bid: %w", err)
		}
		if b.OfferedTo != callerID {
			return ErrNotOfferedTo
		}
		if b.Status.Terminal() {
			return ErrBidAlreadyClosed
		}

		done, err := s.repository.RejectPending(ctx, b.ID, reason, note)
		if err != nil {
			return fmt.Errorf("reject bid: %w", err)
		}
		if !done {
			return ErrBidAlreadyClosed
		}
		b.Status = entities.BidRejected
		b.RejectionReason = reason
		b.RejectionNote = note

		if err := s.rewards.Debit(ctx, b.BidBy, entities.BidRewardCoins, entities.CoinTxBidRejected, b.ID); err != nil {
			return fmt.Errorf("debit reward: %w", err)
		}

		if err := s.outbox.Append(ctx, newBidEvent(entities.EventBidRejected, b, b.BidBy)); err != nil {
			return fmt.Errorf("append bid rejected event: %w", err)
		}

		rejected = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}

// UpdateBid правка условий инициатором; решенную ставку править нельзя.
func (s *Bid) UpdateBid(ctx context.Context, bidID, requesterID string, amount entities.OfferedAmount) (*entities.Bid, error) {
	if bidID == "" {
		return nil, ErrMissingRequiredFields
	}
	if amount.Total <= 0 {
		return nil, ErrInvalidAmount
	}

	var updated *entities.Bid
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		b, err := s.repository.GetByID(ctx, bidID)
		if err != nil {
			return fmt.Errorf("get bid: %w", err)
		}
		if b.BidBy != requesterID {
			return ErrNotBidOwner
		}
		if b.Status.Terminal() {
			return ErrBidAlreadyClosed
		}

		updated, err = s.repository.UpdatePending(ctx, entities.BidModify{
			ID:           pointer.To(bidID),
			BiddedAmount: &amount,
		})
		if err != nil {
			// ставка успела закрыться между чтением и записью
			if errors.Is(err, ErrBidNotFound) {
				return ErrBidAlreadyClosed
			}
			return fmt.Errorf("update bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Bid) DeleteBid(ctx context.Context, bidID, requesterID string) error {
	b, err := s.repository.GetByID(ctx, bidID)
	if err != nil {
		return fmt.Errorf("get bid: %w", err)
	}
	if b.BidBy != requesterID {
		return ErrNotBidOwner
	}
	if b.Status == entities.BidAccepted {
		return ErrAcceptedBidDelete
	}

	if err := s.repository.Delete(ctx, bidID); err != nil {
		return fmt.Errorf("delete bid: %w", err)
	}
	return nil
}

func (s *Bid) GetBid(ctx context.Context, bidID, requesterID string) (*entities.Bid, error) {
	b, err := s.repository.GetByID(ctx, bidID)
	if err != nil {
		return nil, fmt.Errorf("get bid: %w", err)
	}
	if b.BidBy != requesterID && b.OfferedTo != requesterID {
		return nil, ErrNotBidOwner
	}
	return b, nil
}

func (s *Bid) ListUserBids(ctx context.Context, userID string) ([]entities.Bid, error) {
	bids, err := s.repository.ListByBidder(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bids: %w", err)
	}
	return bids, nil
}

func (s *Bid) ListLoadBids(ctx context.Context, loadID, requesterID string) ([]entities.Bid, error) {
	load, err := s.loads.GetByID(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("resolve load: %w", err)
	}
	if load.TransporterID != requesterID {
		return nil, ErrNotLoadBidOwner
	}

	bids, err := s.repository.ListByLoad(ctx, loadID)
	if err != nil {
		return nil, fmt.Errorf("list load bids: %w", err)
	}
	return bids, nil
}

// ListIncomingOffers входящие PENDING ставки, адресованные пользователю.
func (s *Bid) ListIncomingOffers(ctx context.Context, userID string) ([]entities.Bid, error) {
	bids, err := s.repository.ListIncoming(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list incoming offers: %w", err)
	}
	return bids, nil
}

func (s *Bid) SearchBids(ctx context.Context, filter entities.BidFilter) ([]entities.Bid, error) {
	if !isValidID(filter.BidderID) {
		return nil, ErrMissingRequiredFields
	}
	bids, err := s.repository.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search bids: %w", err)
	}
	return bids, nil
}

func (s *Bid) BidStatistics(ctx context.Context, userID string) ([]entities.BidStat, error) {
	stats, err := s.repository.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("bid statistics: %w", err)
	}
	return stats, nil
}

func newBidEvent(eventType entities.BidEventType, b *entities.Bid, recipientID string) entities.BidEvent {
	payload := entities.BidEventPayload{
		BidType:      b.BidType.String(),
		MaterialType: b.MaterialType.String(),
		Weight:       b.Weight,
		Amount:       b.BiddedAmount.Total,
		Source:       b.Source.PlaceName,
		Destination:  b.Destination.PlaceName,
	}
	if eventType == entities.EventBidRejected && b.RejectionReason != nil {
		payload.Reason = *b.RejectionReason
	}

	return entities.BidEvent{
		EventType:   eventType,
		BidID:       b.ID,
		RecipientID: recipientID,
		Payload:     payload,
	}
}
