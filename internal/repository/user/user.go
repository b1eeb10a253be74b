package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bharatloads/internal/entities"
	"bharatloads/internal/service/reward"
)

const userColumns = `id, name, phone, user_type, bl_coins, device_token, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&userModel.ID,
		&userModel.Name,
		&userModel.Phone,
		&userModel.UserType,
		&userModel.BlCoins,
		&userModel.DeviceToken,
		&userModel.CreatedAt,
		&userModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, reward.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	return ToDomain(&userModel), nil
}

// AdjustBalance атомарный инкремент баланса; delta может быть
// отрицательной.
func (r *Repository) AdjustBalance(ctx context.Context, userID string, delta int64) error {
	query := `
		UPDATE users
		SET bl_coins = bl_coins + $2,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, userID, delta)
	if err != nil {
		return fmt.Errorf("unexpected user repository adjust balance error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return reward.ErrUserNotFound
	}

	return nil
}

func (r *Repository) AddTransaction(ctx context.Context, tx entities.CoinTransaction) error {
	query := `
		INSERT INTO coin_transactions (id, user_id, amount, reason, bid_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		tx.ID,
		tx.UserID,
		tx.Amount,
		tx.Reason.String(),
		tx.BidID,
	)
	if err != nil {
		return fmt.Errorf("unexpected user repository add transaction error: %w", err)
	}

	return nil
}

func (r *Repository) ListTransactions(ctx context.Context, userID string) ([]entities.CoinTransaction, error) {
	query := `
		SELECT id, user_id, amount, reason, bid_id, created_at
		FROM coin_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list transactions error: %w", err)
	}
	defer rows.Close()

	var transactions []entities.CoinTransaction
	for rows.Next() {
		var txModel CoinTransactionDB
		err := rows.Scan(
			&txModel.ID,
			&txModel.UserID,
			&txModel.Amount,
			&txModel.Reason,
			&txModel.BidID,
			&txModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository transaction scan error: %w", err)
		}
		transactions = append(transactions, ToTransactionDomain(&txModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository transaction rows error: %w", err)
	}

	return transactions, nil
}
