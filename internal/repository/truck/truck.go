package truck

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"bharatloads/internal/entities"
	"bharatloads/internal/repository"
	"bharatloads/internal/service/truck"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const truckColumns = `id, owner_id, truck_permit, truck_number,
		place_name, lat, lon,
		capacity, vehicle_body_type, truck_type, truck_body_type, tyres,
		rc_image, rc_status, is_rc_verified,
		total_bids, current_bid_id, expires_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, truckEntity entities.Truck) (*entities.Truck, error) {
	truckModel := FromDomain(&truckEntity)

	query := `
		INSERT INTO trucks (id, owner_id, truck_permit, truck_number,
			place_name, lat, lon,
			capacity, vehicle_body_type, truck_type, truck_body_type, tyres,
			rc_image, rc_status, is_rc_verified, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + truckColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		truckModel.ID,
		truckModel.OwnerID,
		truckModel.TruckPermit,
		truckModel.TruckNumber,
		truckModel.PlaceName,
		truckModel.Lat,
		truckModel.Lon,
		truckModel.Capacity,
		truckModel.VehicleBodyType,
		truckModel.TruckType,
		truckModel.TruckBodyType,
		truckModel.Tyres,
		truckModel.RCImage,
		truckModel.RCStatus,
		truckModel.IsRCVerified,
		truckModel.ExpiresAt,
	)

	created, err := scanTruck(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, truck.ErrDuplicateTruckNumber
		}
		return nil, fmt.Errorf("unexpected truck repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE id = $1`

	truckModel, err := scanTruck(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, truck.ErrTruckNotFound
		}
		return nil, fmt.Errorf("unexpected truck repository get error: %w", err)
	}

	return ToDomain(truckModel), nil
}

func (r *Repository) Update(ctx context.Context, modify entities.TruckModify) (*entities.Truck, error) {
	builder := qb.
		Update("trucks")

	// опциональные поля
	if modify.TruckPermit != nil {
		builder = builder.Set("truck_permit", *modify.TruckPermit)
	}
	if modify.TruckNumber != nil {
		builder = builder.Set("truck_number", *modify.TruckNumber)
	}
	if modify.Location != nil {
		builder = builder.
			Set("place_name", modify.Location.PlaceName).
			Set("lat", modify.Location.Latitude).
			Set("lon", modify.Location.Longitude)
	}
	if modify.Capacity != nil {
		builder = builder.Set("capacity", *modify.Capacity)
	}
	if modify.VehicleBodyType != nil {
		builder = builder.Set("vehicle_body_type", modify.VehicleBodyType.String())
	}
	if modify.TruckType != nil {
		builder = builder.Set("truck_type", modify.TruckType.String())
	}
	if modify.TruckBodyType != nil {
		builder = builder.Set("truck_body_type", modify.TruckBodyType.String())
	}
	if modify.Tyres != nil {
		builder = builder.Set("tyres", *modify.Tyres)
	}
	if modify.RCImage != nil {
		// новое свидетельство проходит проверку заново
		builder = builder.
			Set("rc_image", *modify.RCImage).
			Set("rc_status", entities.RCPending.String()).
			Set("is_rc_verified", false)
	}
	if modify.ExpiresAt != nil {
		builder = builder.Set("expires_at", *modify.ExpiresAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": modify.ID}).
		Suffix("RETURNING " + truckColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository update error: %w", err)
	}

	truckModel, err := scanTruck(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, truck.ErrTruckNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, truck.ErrDuplicateTruckNumber
		}
		return nil, fmt.Errorf("unexpected truck repository update error: %w", err)
	}

	return ToDomain(truckModel), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM trucks WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected truck repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return truck.ErrTruckNotFound
	}

	return nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Truck, error) {
	query := `SELECT ` + truckColumns + `
		FROM trucks
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	return r.queryTrucks(ctx, query, ownerID)
}

func (r *Repository) SetCurrentBid(ctx context.Context, truckID, bidID string) error {
	query := `
		UPDATE trucks
		SET current_bid_id = $2,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, truckID, bidID)
	if err != nil {
		return fmt.Errorf("unexpected truck repository set current bid error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return truck.ErrTruckNotFound
	}

	return nil
}

func (r *Repository) IncrementTotalBids(ctx context.Context, truckID string) error {
	query := `
		UPDATE trucks
		SET total_bids = total_bids + 1,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, truckID)
	if err != nil {
		return fmt.Errorf("unexpected truck repository increment bids error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return truck.ErrTruckNotFound
	}

	return nil
}

func (r *Repository) ResetTotalBids(ctx context.Context, id string) error {
	query := `
		UPDATE trucks
		SET total_bids = 0,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected truck repository reset bids error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return truck.ErrTruckNotFound
	}

	return nil
}

func (r *Repository) Repost(ctx context.Context, id string, expiresAt time.Time) error {
	query := `
		UPDATE trucks
		SET expires_at = $2,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, expiresAt)
	if err != nil {
		return fmt.Errorf("unexpected truck repository repost error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return truck.ErrTruckNotFound
	}

	return nil
}

func (r *Repository) SetRCStatus(ctx context.Context, id string, status entities.RCVerificationStatus, verified bool) error {
	query := `
		UPDATE trucks
		SET rc_status = $2,
			is_rc_verified = $3,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, status.String(), verified)
	if err != nil {
		return fmt.Errorf("unexpected truck repository set rc status error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return truck.ErrTruckNotFound
	}

	return nil
}

func (r *Repository) AddRating(ctx context.Context, rating entities.TruckRating) (*entities.TruckRating, error) {
	query := `
		INSERT INTO truck_ratings (id, truck_id, rating, comment, rated_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, truck_id, rating, comment, rated_by
	`

	var ratingModel TruckRatingDB
	err := r.querier.QueryRow(
		ctx,
		query,
		rating.ID,
		rating.TruckID,
		rating.Rating,
		rating.Comment,
		rating.RatedBy,
	).Scan(
		&ratingModel.ID,
		&ratingModel.TruckID,
		&ratingModel.Rating,
		&ratingModel.Comment,
		&ratingModel.RatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository add rating error: %w", err)
	}

	return ToRatingDomain(&ratingModel), nil
}

func (r *Repository) ListRatings(ctx context.Context, truckID string) ([]entities.TruckRating, error) {
	query := `
		SELECT id, truck_id, rating, comment, rated_by
		FROM truck_ratings
		WHERE truck_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, truckID)
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository list ratings error: %w", err)
	}
	defer rows.Close()

	var ratings []entities.TruckRating
	for rows.Next() {
		var ratingModel TruckRatingDB
		err := rows.Scan(
			&ratingModel.ID,
			&ratingModel.TruckID,
			&ratingModel.Rating,
			&ratingModel.Comment,
			&ratingModel.RatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected truck repository rating scan error: %w", err)
		}
		ratings = append(ratings, *ToRatingDomain(&ratingModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected truck repository rating rows error: %w", err)
	}

	return ratings, nil
}

// WithinRadius активные грузовики внутри радиуса по сферическому
// предикату; candidateIDs не nil сужает выборку до кандидатов
// гео-индекса.
func (r *Repository) WithinRadius(
	ctx context.Context,
	center entities.GeoCenter,
	filter entities.TruckSearchFilter,
	candidateIDs []string,
) ([]entities.Truck, error) {
	builder := qb.
		Select(truckColumns).
		From("trucks").
		Where("expires_at > NOW()").
		Where(sq.Expr(`6371 * acos(LEAST(1.0,
			cos(radians(?)) * cos(radians(lat)) * cos(radians(lon) - radians(?)) +
			sin(radians(?)) * sin(radians(lat)))) <= ?`,
			center.Latitude, center.Longitude, center.Latitude, center.RadiusKm))

	if filter.TruckType != nil {
		builder = builder.Where(sq.Eq{"truck_type": filter.TruckType.String()})
	}
	if filter.TruckBodyType != nil {
		builder = builder.Where(sq.Eq{"truck_body_type": filter.TruckBodyType.String()})
	}
	if filter.VehicleBodyType != nil {
		builder = builder.Where(sq.Eq{"vehicle_body_type": filter.VehicleBodyType.String()})
	}
	if candidateIDs != nil {
		builder = builder.Where(sq.Eq{"id": candidateIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository within radius error: %w", err)
	}

	return r.queryTrucks(ctx, query, args...)
}

func (r *Repository) queryTrucks(ctx context.Context, query string, args ...interface{}) ([]entities.Truck, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected truck repository list error: %w", err)
	}
	defer rows.Close()

	var trucks []entities.Truck
	for rows.Next() {
		truckModel, err := scanTruck(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected truck repository scan error: %w", err)
		}
		trucks = append(trucks, *ToDomain(truckModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected truck repository rows error: %w", err)
	}

	return trucks, nil
}

func scanTruck(row pgx.Row) (*TruckDB, error) {
	var truckModel TruckDB
	err := row.Scan(
		&truckModel.ID,
		&truckModel.OwnerID,
		&truckModel.TruckPermit,
		&truckModel.TruckNumber,
		&truckModel.PlaceName,
		&truckModel.Lat,
		&truckModel.Lon,
		&truckModel.Capacity,
		&truckModel.VehicleBodyType,
		&truckModel.TruckType,
		&truckModel.TruckBodyType,
		&truckModel.Tyres,
		&truckModel.RCImage,
		&truckModel.RCStatus,
		&truckModel.IsRCVerified,
		&truckModel.TotalBids,
		&truckModel.CurrentBidID,
		&truckModel.ExpiresAt,
		&truckModel.CreatedAt,
		&truckModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &truckModel, nil
}
