package bid

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"bharatloads/internal/entities"
	"bharatloads/internal/repository"
	"bharatloads/internal/service/bid"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const bidColumns = `id, bid_type, load_id, truck_id, bid_by, offered_to,
		offered_total, advance_percentage, diesel_liters,
		status, rejection_reason, rejection_note,
		material_type, weight,
		source_name, source_lat, source_lon,
		dest_name, dest_lat, dest_lon,
		load_offered_total, load_advance_percentage, load_diesel_liters,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, bidEntity entities.Bid) (*entities.Bid, error) {
	bidModel := FromDomain(&bidEntity)

	query := `
		INSERT INTO bids (id, bid_type, load_id, truck_id, bid_by, offered_to,
			offered_total, advance_percentage, diesel_liters, status,
			material_type, weight,
			source_name, source_lat, source_lon,
			dest_name, dest_lat, dest_lon,
			load_offered_total, load_advance_percentage, load_diesel_liters)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING ` + bidColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		bidModel.ID,
		bidModel.BidType,
		bidModel.LoadID,
		bidModel.TruckID,
		bidModel.BidBy,
		bidModel.OfferedTo,
		bidModel.OfferedTotal,
		bidModel.AdvancePercentage,
		bidModel.DieselLiters,
		bidModel.Status,
		bidModel.MaterialType,
		bidModel.Weight,
		bidModel.SourceName,
		bidModel.SourceLat,
		bidModel.SourceLon,
		bidModel.DestName,
		bidModel.DestLat,
		bidModel.DestLon,
		bidModel.LoadOfferedTotal,
		bidModel.LoadAdvancePercentage,
		bidModel.LoadDieselLiters,
	)

	created, err := scanBid(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, bid.ErrBidAlreadyAccepted
		}
		return nil, fmt.Errorf("unexpected bid repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE id = $1`

	bidModel, err := scanBid(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bid.ErrBidNotFound
		}
		return nil, fmt.Errorf("unexpected bid repository get error: %w", err)
	}

	return ToDomain(bidModel), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bids WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected bid repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return bid.ErrBidNotFound
	}

	return nil
}

func (r *Repository) UpdatePending(ctx context.Context, modify entities.BidModify) (*entities.Bid, error) {
	builder := qb.
		Update("bids")

	if modify.BiddedAmount != nil {
		builder = builder.
			Set("offered_total", modify.BiddedAmount.Total).
			Set("advance_percentage", modify.BiddedAmount.AdvancePercentage).
			Set("diesel_liters", modify.BiddedAmount.DieselLiters)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": modify.ID, "status": entities.BidPending.String()}).
		Suffix("RETURNING " + bidColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected bid repository update error: %w", err)
	}

	bidModel, err := scanBid(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bid.ErrBidNotFound
		}
		return nil, fmt.Errorf("unexpected bid repository update error: %w", err)
	}

	return ToDomain(bidModel), nil
}

// AcceptPending переход PENDING -> ACCEPTED одной условной записью:
// победитель гонки определяется числом затронутых строк.
func (r *Repository) AcceptPending(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE bids
		SET status = 'ACCEPTED',
			updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected bid repository accept error: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *Repository) RejectPending(ctx context.Context, id string, reason, note *string) (bool, error) {
	query := `
		UPDATE bids
		SET status = 'REJECTED',
			rejection_reason = $2,
			rejection_note = $3,
			updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`

	result, err := r.querier.Exec(ctx, query, id, reason, note)
	if err != nil {
		return false, fmt.Errorf("unexpected bid repository reject error: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *Repository) RejectCompetingByTruck(ctx context.Context, truckID, exceptBidID string) (int64, error) {
	return r.rejectCompeting(ctx, "truck_id", truckID, exceptBidID)
}

func (r *Repository) RejectCompetingByLoad(ctx context.Context, loadID, exceptBidID string) (int64, error) {
	return r.rejectCompeting(ctx, "load_id", loadID, exceptBidID)
}

func (r *Repository) rejectCompeting(ctx context.Context, column, refID, exceptBidID string) (int64, error) {
	query := fmt.Sprintf(`
		UPDATE bids
		SET status = 'REJECTED',
			rejection_reason = 'RESOURCE_COMMITTED',
			updated_at = NOW()
		WHERE %s = $1 AND id != $2 AND status = 'PENDING'
	`, column)

	result, err := r.querier.Exec(ctx, query, refID, exceptBidID)
	if err != nil {
		return 0, fmt.Errorf("unexpected bid repository cascade reject error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) DeleteNonAcceptedByLoad(ctx context.Context, loadID string) (int64, error) {
	return r.deleteNonAccepted(ctx, "load_id", loadID)
}

func (r *Repository) DeleteNonAcceptedByTruck(ctx context.Context, truckID string) (int64, error) {
	return r.deleteNonAccepted(ctx, "truck_id", truckID)
}

func (r *Repository) deleteNonAccepted(ctx context.Context, column, refID string) (int64, error) {
	query := fmt.Sprintf(`
		DELETE FROM bids WHERE %s = $1 AND status != 'ACCEPTED'
	`, column)

	result, err := r.querier.Exec(ctx, query, refID)
	if err != nil {
		return 0, fmt.Errorf("unexpected bid repository prune error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) ListByBidder(ctx context.Context, bidderID string) ([]entities.Bid, error) {
	query := `SELECT ` + bidColumns + `
		FROM bids
		WHERE bid_by = $1
		ORDER BY created_at DESC`

	return r.queryBids(ctx, query, bidderID)
}

func (r *Repository) ListByLoad(ctx context.Context, loadID string) ([]entities.Bid, error) {
	query := `SELECT ` + bidColumns + `
		FROM bids
		WHERE load_id = $1
		ORDER BY created_at DESC`

	return r.queryBids(ctx, query, loadID)
}

func (r *Repository) ListIncoming(ctx context.Context, offeredTo string) ([]entities.Bid, error) {
	query := `SELECT ` + bidColumns + `
		FROM bids
		WHERE offered_to = $1 AND status = 'PENDING'
		ORDER BY created_at DESC`

	return r.queryBids(ctx, query, offeredTo)
}

func (r *Repository) Search(ctx context.Context, filter entities.BidFilter) ([]entities.Bid, error) {
	builder := qb.
		Select(bidColumns).
		From("bids").
		Where(sq.Eq{"bid_by": filter.BidderID})

	// опциональные фильтры
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.BidType != nil {
		builder = builder.Where(sq.Eq{"bid_type": filter.BidType.String()})
	}
	if filter.MinAmount != nil {
		builder = builder.Where(sq.GtOrEq{"offered_total": *filter.MinAmount})
	}
	if filter.MaxAmount != nil {
		builder = builder.Where(sq.LtOrEq{"offered_total": *filter.MaxAmount})
	}
	if filter.MaterialType != nil {
		builder = builder.Where(sq.Eq{"material_type": filter.MaterialType.String()})
	}
	if filter.Source != nil {
		builder = builder.Where(sq.ILike{"source_name": "%" + *filter.Source + "%"})
	}
	if filter.Destination != nil {
		builder = builder.Where(sq.ILike{"dest_name": "%" + *filter.Destination + "%"})
	}

	builder = builder.OrderBy("created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected bid repository search error: %w", err)
	}

	return r.queryBids(ctx, query, args...)
}

func (r *Repository) Stats(ctx context.Context, bidderID string) ([]entities.BidStat, error) {
	query := `
		SELECT status, bid_type,
			COUNT(*),
			COALESCE(SUM(offered_total), 0),
			COALESCE(ROUND(AVG(offered_total)::numeric, 2), 0)
		FROM bids
		WHERE bid_by = $1
		GROUP BY status, bid_type
		ORDER BY COUNT(*) DESC
	`

	rows, err := r.querier.Query(ctx, query, bidderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected bid repository stats error: %w", err)
	}
	defer rows.Close()

	var stats []entities.BidStat
	for rows.Next() {
		var statModel BidStatDB
		err := rows.Scan(
			&statModel.Status,
			&statModel.BidType,
			&statModel.TotalBids,
			&statModel.TotalAmount,
			&statModel.AverageAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected bid repository stats scan error: %w", err)
		}
		stats = append(stats, ToStatDomain(&statModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected bid repository stats rows error: %w", err)
	}

	return stats, nil
}

func (r *Repository) queryBids(ctx context.Context, query string, args ...interface{}) ([]entities.Bid, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected bid repository list error: %w", err)
	}
	defer rows.Close()

	var bids []entities.Bid
	for rows.Next() {
		bidModel, err := scanBid(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected bid repository scan error: %w", err)
		}
		bids = append(bids, *ToDomain(bidModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected bid repository rows error: %w", err)
	}

	return bids, nil
}

func scanBid(row pgx.Row) (*BidDB, error) {
	var bidModel BidDB
	err := row.Scan(
		&bidModel.ID,
		&bidModel.BidType,
		&bidModel.LoadID,
		&bidModel.TruckID,
		&bidModel.BidBy,
		&bidModel.OfferedTo,
		&bidModel.OfferedTotal,
		&bidModel.AdvancePercentage,
		&bidModel.DieselLiters,
		&bidModel.Status,
		&bidModel.RejectionReason,
		&bidModel.RejectionNote,
		&bidModel.MaterialType,
		&bidModel.Weight,
		&bidModel.SourceName,
		&bidModel.SourceLat,
		&bidModel.SourceLon,
		&bidModel.DestName,
		&bidModel.DestLat,
		&bidModel.DestLon,
		&bidModel.LoadOfferedTotal,
		&bidModel.LoadAdvancePercentage,
		&bidModel.LoadDieselLiters,
		&bidModel.CreatedAt,
		&bidModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bidModel, nil
}
