package load

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"bharatloads/internal/entities"
	"bharatloads/pkg/logger"
)

// postingTTL срок жизни объявления о грузе после публикации.
const postingTTL = 12 * time.Hour

type Load struct {
	repository Repository
	bids       BidPruner
	geo        GeoIndex // nil когда Redis не сконфигурирован
	txManager  TxManager
	log        logger.Logger
}

func New(repository Repository, bids BidPruner, geo GeoIndex, txManager TxManager, log logger.Logger) *Load {
	return &Load{
		repository: repository,
		bids:       bids,
		geo:        geo,
		txManager:  txManager,
		log:        log,
	}
}

func (s *Load) CreateLoad(ctx context.Context, in entities.Load) (*entities.Load, error) {
	if !isValidID(in.TransporterID) || in.Weight <= 0 {
		return nil, ErrMissingRequiredFields
	}
	if !isValidMaterial(in.MaterialType) {
		return nil, ErrInvalidMaterialType
	}
	if !isValidVehicleType(in.VehicleType) {
		return nil, ErrInvalidVehicleType
	}
	if !isValidBodyType(in.VehicleBodyType) {
		return nil, ErrInvalidBodyType
	}
	if in.OfferedAmount.Total <= 0 {
		return nil, ErrInvalidAmount
	}
	if !isValidPoint(in.Source) || !isValidPoint(in.Destination) {
		return nil, ErrInvalidCoordinates
	}
	if !isValidUrgency(in.WhenNeeded) {
		return nil, ErrInvalidUrgency
	}

	now := time.Now().UTC()

	switch in.WhenNeeded {
	case entities.UrgencyScheduled:
		if in.ScheduledAt == nil || !in.ScheduledAt.After(now) {
			return nil, ErrScheduleInPast
		}
		// отложенный груз остаётся невидимым до расчётного часа,
		// активацию делает периодическая выборка ActivateScheduled
		in.IsActive = false
		in.ExpiresAt = in.ScheduledAt.Add(postingTTL)
	case entities.UrgencyImmediate:
		in.ScheduledAt = nil
		in.IsActive = true
		in.ExpiresAt = now.Add(postingTTL)
	}

	in.ID = uuid.NewString()
	in.CurrentBidID = nil

	created, err := s.repository.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create load: %w", err)
	}

	s.syncIndex(ctx, created)
	return created, nil
}

func (s *Load) GetLoad(ctx context.Context, id string) (*entities.Load, error) {
	if !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}
	return s.repository.GetByID(ctx, id)
}

func (s *Load) ListUserLoads(ctx context.Context, transporterID string) ([]entities.Load, error) {
	if !isValidID(transporterID) {
		return nil, ErrMissingRequiredFields
	}
	return s.repository.ListByTransporter(ctx, transporterID)
}

func (s *Load) ActiveLoads(ctx context.Context) ([]entities.Load, error) {
	return s.repository.ListActive(ctx, time.Now().UTC())
}

func (s *Load) UpdateLoad(ctx context.Context, actorID string, modify entities.LoadModify) (*entities.Load, error) {
	if !isValidID(actorID) || modify.ID == nil || !isValidID(*modify.ID) {
		return nil, ErrMissingRequiredFields
	}
	if modify.MaterialType != nil && !isValidMaterial(*modify.MaterialType) {
		return nil, ErrInvalidMaterialType
	}
	if modify.VehicleType != nil && !isValidVehicleType(*modify.VehicleType) {
		return nil, ErrInvalidVehicleType
	}
	if modify.VehicleBodyType != nil && !isValidBodyType(*modify.VehicleBodyType) {
		return nil, ErrInvalidBodyType
	}
	if modify.OfferedAmount != nil && modify.OfferedAmount.Total <= 0 {
		return nil, ErrInvalidAmount
	}
	if modify.Source != nil && !isValidPoint(*modify.Source) {
		return nil, ErrInvalidCoordinates
	}
	if modify.Destination != nil && !isValidPoint(*modify.Destination) {
		return nil, ErrInvalidCoordinates
	}

	// смена владельца через Update запрещена
	modify.TransporterID = nil

	var updated *entities.Load
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.mustOwn(ctx, *modify.ID, actorID); err != nil {
			return err
		}

		var err error
		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update load: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.syncIndex(ctx, updated)
	return updated, nil
}

func (s *Load) DeleteLoad(ctx context.Context, actorID, id string) error {
	if !isValidID(actorID) || !isValidID(id) {
		return ErrMissingRequiredFields
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.mustOwn(ctx, id, actorID); err != nil {
			return err
		}
		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete load: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.removeFromIndex(ctx, id)
	return nil
}

// RepostLoad возвращает истёкшее объявление в выдачу: чистит
// непринятые ставки и обнуляет таймер публикации.
func (s *Load) RepostLoad(ctx context.Context, actorID, id string) (*entities.Load, error) {
	if !isValidID(actorID) || !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}

	var reposted *entities.Load
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.mustOwn(ctx, id, actorID); err != nil {
			return err
		}

		if _, err := s.bids.DeleteNonAcceptedByLoad(ctx, id); err != nil {
			return fmt.Errorf("prune load bids: %w", err)
		}

		now := time.Now().UTC()
		modify := entities.LoadModify{
			ID:        pointer.To(id),
			IsActive:  pointer.To(true),
			ExpiresAt: pointer.To(now.Add(postingTTL)),
		}

		var err error
		reposted, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("repost load: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.syncIndex(ctx, reposted)
	return reposted, nil
}

// PauseLoad мгновенно убирает груз из активной выдачи и поиска.
func (s *Load) PauseLoad(ctx context.Context, actorID, id string) (*entities.Load, error) {
	if !isValidID(actorID) || !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}

	var paused *entities.Load
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.mustOwn(ctx, id, actorID); err != nil {
			return err
		}

		modify := entities.LoadModify{
			ID:        pointer.To(id),
			ExpiresAt: pointer.To(time.Now().UTC()),
		}

		var err error
		paused, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("pause load: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.removeFromIndex(ctx, id)
	return paused, nil
}

// ActivateScheduled включает отложенные грузы, чей scheduled_at уже
// наступил; вызывается фоновой задачей.
func (s *Load) ActivateScheduled(ctx context.Context) (int64, error) {
	return s.repository.ActivateScheduled(ctx, time.Now().UTC())
}

func (s *Load) syncIndex(ctx context.Context, load *entities.Load) {
	if s.geo == nil {
		return
	}
	if err := s.geo.UpsertLoad(ctx, load); err != nil {
		s.log.Warn("geo index upsert failed",
			logger.NewField("load_id", load.ID),
			logger.NewField("error", err.Error()),
		)
	}
}

func (s *Load) removeFromIndex(ctx context.Context, id string) {
	if s.geo == nil {
		return
	}
	if err := s.geo.RemoveLoad(ctx, id); err != nil {
		s.log.Warn("geo index remove failed",
			logger.NewField("load_id", id),
			logger.NewField("error", err.Error()),
		)
	}
}

func (s *Load) mustOwn(ctx context.Context, id, actorID string) error {
	load, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("resolve load: %w", err)
	}
	if load.TransporterID != actorID {
		return ErrNotLoadOwner
	}
	return nil
}
