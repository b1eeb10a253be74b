//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reward_test
package reward

import (
	"context"

	"bharatloads/internal/entities"
)

type Repository interface {
	// AdjustBalance атомарный инкремент bl_coins одной записью;
	// delta может быть отрицательной.
	AdjustBalance(ctx context.Context, userID string, delta int64) error
	AddTransaction(ctx context.Context, tx entities.CoinTransaction) error
	ListTransactions(ctx context.Context, userID string) ([]entities.CoinTransaction, error)
}
