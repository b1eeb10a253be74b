package user

import "bharatloads/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:          u.ID,
		Name:        u.Name,
		Phone:       u.Phone,
		UserType:    entities.UserType(u.UserType),
		BlCoins:     u.BlCoins,
		DeviceToken: u.DeviceToken,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func ToTransactionDomain(t *CoinTransactionDB) entities.CoinTransaction {
	return entities.CoinTransaction{
		ID:        t.ID,
		UserID:    t.UserID,
		Amount:    t.Amount,
		Reason:    entities.CoinTxReason(t.Reason),
		BidID:     t.BidID,
		CreatedAt: t.CreatedAt,
	}
}
