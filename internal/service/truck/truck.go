package truck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"bharatloads/internal/entities"
	"bharatloads/pkg/logger"
)

// postingTTL срок жизни объявления грузовика после публикации.
const postingTTL = 12 * time.Hour

type Truck struct {
	repository Repository
	bids       BidPruner
	geo        GeoIndex // nil когда Redis не сконфигурирован
	txManager  TxManager
	log        logger.Logger
}

func New(repository Repository, bids BidPruner, geo GeoIndex, txManager TxManager, log logger.Logger) *Truck {
	return &Truck{
		repository: repository,
		bids:       bids,
		geo:        geo,
		txManager:  txManager,
		log:        log,
	}
}

func (s *Truck) CreateTruck(ctx context.Context, in entities.Truck) (*entities.Truck, error) {
	if !isValidID(in.OwnerID) || strings.TrimSpace(in.TruckNumber) == "" {
		return nil, ErrMissingRequiredFields
	}
	if in.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if !isValidVehicleType(in.TruckType) {
		return nil, ErrInvalidVehicleType
	}
	if !isValidBodyType(in.TruckBodyType) {
		return nil, ErrInvalidBodyType
	}
	if !isValidPoint(in.Location) {
		return nil, ErrInvalidCoordinates
	}

	now := time.Now().UTC()

	in.ID = uuid.NewString()
	in.TruckNumber = strings.ToUpper(strings.TrimSpace(in.TruckNumber))
	in.RCStatus = entities.RCPending
	in.IsRCVerified = false
	in.TotalBids = 0
	in.CurrentBidID = nil
	in.ExpiresAt = now.Add(postingTTL)

	created, err := s.repository.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create truck: %w", err)
	}

	s.syncIndex(ctx, created)
	return created, nil
}

func (s *Truck) GetTruck(ctx context.Context, id string) (*entities.Truck, error) {
	if !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}
	return s.repository.GetByID(ctx, id)
}

func (s *Truck) ListUserTrucks(ctx context.Context, ownerID string) ([]entities.Truck, error) {
	if !isValidID(ownerID) {
		return nil, ErrMissingRequiredFields
	}
	return s.repository.ListByOwner(ctx, ownerID)
}

func (s *Truck) UpdateTruck(ctx context.Context, actorID string, modify entities.TruckModify) (*entities.Truck, error) {
	if !isValidID(actorID) || modify.ID == nil || !isValidID(*modify.ID) {
		return nil, ErrMissingRequiredFields
	}
	if modify.Capacity != nil && *modify.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if modify.TruckType != nil && !isValidVehicleType(*modify.TruckType) {
		return nil, ErrInvalidVehicleType
	}
	if modify.TruckBodyType != nil && !isValidBodyType(*modify.TruckBodyType) {
		return nil, ErrInvalidBodyType
	}
	if modify.Location != nil && !isValidPoint(*modify.Location) {
		return nil, ErrInvalidCoordinates
	}
	if modify.TruckNumber != nil {
		trimmed := strings.ToUpper(strings.TrimSpace(*modify.TruckNumber))
		if trimmed == "" {
			return nil, ErrMissingRequiredFields
		}
		modify.TruckNumber = &trimmed
	}

	// смена владельца через Update запрещена
	modify.OwnerID = nil

	var updated *entities.Truck
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.mustOwn(ctx, *modify.ID, actorID); err != nil {
			return err
		}

		var err error
		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update truck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.syncIndex(ctx, updated)
	return updated, nil
}

func (s *Truck) DeleteTruck(ctx context.Context, actorID, id string) error {
	if !isValidID(actorID) || !isValidID(id) {
		return ErrMissingRequiredFields
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.mustOwn(ctx, id, actorID); err != nil {
			return err
		}
		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete truck: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.removeFromIndex(ctx, id)
	return nil
}

// VerifyRC выставляет итог проверки регистрационного свидетельства.
func (s *Truck) VerifyRC(ctx context.Context, id string, status entities.RCVerificationStatus) (*entities.Truck, error) {
	if !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidRCStatus(status) {
		return nil, ErrInvalidRCStatus
	}

	var verified *entities.Truck
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.SetRCStatus(ctx, id, status, status == entities.RCApproved); err != nil {
			return fmt.Errorf("set rc status: %w", err)
		}

		var err error
		verified, err = s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("resolve truck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return verified, nil
}

// RepostTruck возвращает истёкшее объявление в выдачу: чистит
// непринятые ставки, сбрасывает счётчик ставок и таймер публикации.
func (s *Truck) RepostTruck(ctx context.Context, actorID, id string) (*entities.Truck, error) {
	if !isValidID(actorID) || !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}

	var reposted *entities.Truck
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.mustOwn(ctx, id, actorID); err != nil {
			return err
		}

		if _, err := s.bids.DeleteNonAcceptedByTruck(ctx, id); err != nil {
			return fmt.Errorf("prune truck bids: %w", err)
		}
		if err := s.repository.ResetTotalBids(ctx, id); err != nil {
			return fmt.Errorf("reset bid count: %w", err)
		}
		if err := s.repository.Repost(ctx, id, time.Now().UTC().Add(postingTTL)); err != nil {
			return fmt.Errorf("repost truck: %w", err)
		}

		var err error
		reposted, err = s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("resolve truck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.syncIndex(ctx, reposted)
	return reposted, nil
}

// PauseTruck мгновенно убирает грузовик из активной выдачи и поиска.
func (s *Truck) PauseTruck(ctx context.Context, actorID, id string) (*entities.Truck, error) {
	if !isValidID(actorID) || !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}

	var paused *entities.Truck
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.mustOwn(ctx, id, actorID); err != nil {
			return err
		}
		if err := s.repository.Repost(ctx, id, time.Now().UTC()); err != nil {
			return fmt.Errorf("pause truck: %w", err)
		}

		var err error
		paused, err = s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("resolve truck: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.removeFromIndex(ctx, id)
	return paused, nil
}

// RateTruck добавляет оценку грузовику; собственные машины оценивать
// нельзя.
func (s *Truck) RateTruck(ctx context.Context, in entities.TruckRating) (*entities.TruckRating, error) {
	if !isValidID(in.TruckID) || !isValidID(in.RatedBy) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidRating(in.Rating) {
		return nil, ErrInvalidRating
	}

	var rated *entities.TruckRating
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		truck, err := s.repository.GetByID(ctx, in.TruckID)
		if err != nil {
			return fmt.Errorf("resolve truck: %w", err)
		}
		if truck.OwnerID == in.RatedBy {
			return ErrOwnTruckRating
		}

		in.ID = uuid.NewString()
		rated, err = s.repository.AddRating(ctx, in)
		if err != nil {
			return fmt.Errorf("add rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rated, nil
}

func (s *Truck) TruckRatings(ctx context.Context, truckID string) ([]entities.TruckRating, error) {
	if !isValidID(truckID) {
		return nil, ErrMissingRequiredFields
	}
	return s.repository.ListRatings(ctx, truckID)
}

func (s *Truck) syncIndex(ctx context.Context, truck *entities.Truck) {
	if s.geo == nil {
		return
	}
	if err := s.geo.UpsertTruck(ctx, truck); err != nil {
		s.log.Warn("geo index upsert failed",
			logger.NewField("truck_id", truck.ID),
			logger.NewField("error", err.Error()),
		)
	}
}

func (s *Truck) removeFromIndex(ctx context.Context, id string) {
	if s.geo == nil {
		return
	}
	if err := s.geo.RemoveTruck(ctx, id); err != nil {
		s.log.Warn("geo index remove failed",
			logger.NewField("truck_id", id),
			logger.NewField("error", err.Error()),
		)
	}
}

func (s *Truck) mustOwn(ctx context.Context, id, actorID string) error {
	truck, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("resolve truck: %w", err)
	}
	if truck.OwnerID != actorID {
		return ErrNotTruckOwner
	}
	return nil
}
