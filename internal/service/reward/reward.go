package reward

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"bharatloads/internal/entities"
)

// Reward журнал BlCoins: баланс меняется одним инкрементом, каждая
// корректировка оставляет строку в журнале. Вызывается из транзакции
// акцепта или отклонения ставки.
type Reward struct {
	repository Repository
}

func New(repository Repository) *Reward {
	return &Reward{repository: repository}
}

func (s *Reward) Credit(ctx context.Context, userID string, amount int64, reason entities.CoinTxReason, bidID string) error {
	return s.adjust(ctx, userID, amount, reason, bidID)
}

func (s *Reward) Debit(ctx context.Context, userID string, amount int64, reason entities.CoinTxReason, bidID string) error {
	return s.adjust(ctx, userID, -amount, reason, bidID)
}

func (s *Reward) Transactions(ctx context.Context, userID string) ([]entities.CoinTransaction, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingRequiredFields
	}
	return s.repository.ListTransactions(ctx, userID)
}

func (s *Reward) adjust(ctx context.Context, userID string, delta int64, reason entities.CoinTxReason, bidID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(bidID) == "" {
		return ErrMissingRequiredFields
	}
	if delta == 0 {
		return ErrInvalidAmount
	}

	if err := s.repository.AdjustBalance(ctx, userID, delta); err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}
	if err := s.repository.AddTransaction(ctx, entities.CoinTransaction{
		ID:     uuid.NewString(),
		UserID: userID,
		Amount: delta,
		Reason: reason,
		BidID:  bidID,
	}); err != nil {
		return fmt.Errorf("journal transaction: %w", err)
	}
	return nil
}
