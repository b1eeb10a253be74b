package load

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"bharatloads/internal/entities"
	"bharatloads/internal/service/load"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const loadColumns = `id, transporter_id, material_type, weight,
		source_name, source_lat, source_lon,
		dest_name, dest_lat, dest_lon,
		vehicle_body_type, vehicle_type, num_wheels,
		offered_total, advance_percentage, diesel_liters,
		when_needed, scheduled_at, is_active, current_bid_id,
		expires_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, loadEntity entities.Load) (*entities.Load, error) {
	loadModel := FromDomain(&loadEntity)

	query := `
		INSERT INTO loads (id, transporter_id, material_type, weight,
			source_name, source_lat, source_lon,
			dest_name, dest_lat, dest_lon,
			vehicle_body_type, vehicle_type, num_wheels,
			offered_total, advance_percentage, diesel_liters,
			when_needed, scheduled_at, is_active, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING ` + loadColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		loadModel.ID,
		loadModel.TransporterID,
		loadModel.MaterialType,
		loadModel.Weight,
		loadModel.SourceName,
		loadModel.SourceLat,
		loadModel.SourceLon,
		loadModel.DestName,
		loadModel.DestLat,
		loadModel.DestLon,
		loadModel.VehicleBodyType,
		loadModel.VehicleType,
		loadModel.NumWheels,
		loadModel.OfferedTotal,
		loadModel.AdvancePercentage,
		loadModel.DieselLiters,
		loadModel.WhenNeeded,
		loadModel.ScheduledAt,
		loadModel.IsActive,
		loadModel.ExpiresAt,
	)

	created, err := scanLoad(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Load, error) {
	query := `SELECT ` + loadColumns + ` FROM loads WHERE id = $1`

	loadModel, err := scanLoad(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, load.ErrLoadNotFound
		}
		return nil, fmt.Errorf("unexpected load repository get error: %w", err)
	}

	return ToDomain(loadModel), nil
}

func (r *Repository) Update(ctx context.Context, modify entities.LoadModify) (*entities.Load, error) {
	builder := qb.
		Update("loads")

	// опциональные поля
	if modify.MaterialType != nil {
		builder = builder.Set("material_type", modify.MaterialType.String())
	}
	if modify.Weight != nil {
		builder = builder.Set("weight", *modify.Weight)
	}
	if modify.Source != nil {
		builder = builder.
			Set("source_name", modify.Source.PlaceName).
			Set("source_lat", modify.Source.Latitude).
			Set("source_lon", modify.Source.Longitude)
	}
	if modify.Destination != nil {
		builder = builder.
			Set("dest_name", modify.Destination.PlaceName).
			Set("dest_lat", modify.Destination.Latitude).
			Set("dest_lon", modify.Destination.Longitude)
	}
	if modify.VehicleBodyType != nil {
		builder = builder.Set("vehicle_body_type", modify.VehicleBodyType.String())
	}
	if modify.VehicleType != nil {
		builder = builder.Set("vehicle_type", modify.VehicleType.String())
	}
	if modify.NumberOfWheels != nil {
		builder = builder.Set("num_wheels", *modify.NumberOfWheels)
	}
	if modify.OfferedAmount != nil {
		builder = builder.
			Set("offered_total", modify.OfferedAmount.Total).
			Set("advance_percentage", modify.OfferedAmount.AdvancePercentage).
			Set("diesel_liters", modify.OfferedAmount.DieselLiters)
	}
	if modify.WhenNeeded != nil {
		builder = builder.Set("when_needed", modify.WhenNeeded.String())
	}
	if modify.ScheduledAt != nil {
		builder = builder.Set("scheduled_at", *modify.ScheduledAt)
	}
	if modify.IsActive != nil {
		builder = builder.Set("is_active", *modify.IsActive)
	}
	if modify.ExpiresAt != nil {
		builder = builder.Set("expires_at", *modify.ExpiresAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": modify.ID}).
		Suffix("RETURNING " + loadColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository update error: %w", err)
	}

	loadModel, err := scanLoad(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, load.ErrLoadNotFound
		}
		return nil, fmt.Errorf("unexpected load repository update error: %w", err)
	}

	return ToDomain(loadModel), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM loads WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected load repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return load.ErrLoadNotFound
	}

	return nil
}

func (r *Repository) SetCurrentBid(ctx context.Context, loadID, bidID string) error {
	query := `
		UPDATE loads
		SET current_bid_id = $2,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, loadID, bidID)
	if err != nil {
		return fmt.Errorf("unexpected load repository set current bid error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return load.ErrLoadNotFound
	}

	return nil
}

func (r *Repository) ListByTransporter(ctx context.Context, transporterID string) ([]entities.Load, error) {
	query := `SELECT ` + loadColumns + `
		FROM loads
		WHERE transporter_id = $1
		ORDER BY created_at DESC`

	return r.queryLoads(ctx, query, transporterID)
}

func (r *Repository) ListActive(ctx context.Context, now time.Time) ([]entities.Load, error) {
	query := `SELECT ` + loadColumns + `
		FROM loads
		WHERE is_active AND expires_at > $1
		ORDER BY created_at DESC`

	return r.queryLoads(ctx, query, now)
}

// ActivateScheduled включает отложенные грузы, у которых наступил
// scheduled_at; вызывается периодической фоновой задачей.
func (r *Repository) ActivateScheduled(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE loads
		SET is_active = TRUE,
			updated_at = NOW()
		WHERE when_needed = 'SCHEDULED'
			AND NOT is_active
			AND scheduled_at <= $1
			AND expires_at > $1
	`

	result, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected load repository activate scheduled error: %w", err)
	}

	return result.RowsAffected(), nil
}

// WithinRadius активные грузы внутри радиуса по сферическому предикату
// на стороне side; candidateIDs не nil сужает выборку до кандидатов
// гео-индекса.
func (r *Repository) WithinRadius(
	ctx context.Context,
	side entities.MatchSide,
	center entities.GeoCenter,
	filter entities.LoadSearchFilter,
	candidateIDs []string,
) ([]entities.Load, error) {
	latColumn, lonColumn := "source_lat", "source_lon"
	if side == entities.MatchDestination {
		latColumn, lonColumn = "dest_lat", "dest_lon"
	}

	distance := fmt.Sprintf(
		`6371 * acos(LEAST(1.0,
			cos(radians(?)) * cos(radians(%s)) * cos(radians(%s) - radians(?)) +
			sin(radians(?)) * sin(radians(%s))))`,
		latColumn, lonColumn, latColumn,
	)

	builder := qb.
		Select(loadColumns).
		From("loads").
		Where("is_active").
		Where("expires_at > NOW()").
		Where("(when_needed = 'IMMEDIATE' OR scheduled_at <= NOW())").
		Where(sq.Expr(distance+" <= ?",
			center.Latitude, center.Longitude, center.Latitude, center.RadiusKm))

	if filter.MaterialType != nil {
		builder = builder.Where(sq.Eq{"material_type": filter.MaterialType.String()})
	}
	if filter.VehicleType != nil {
		builder = builder.Where(sq.Eq{"vehicle_type": filter.VehicleType.String()})
	}
	if filter.VehicleBodyType != nil {
		builder = builder.Where(sq.Eq{"vehicle_body_type": filter.VehicleBodyType.String()})
	}
	if candidateIDs != nil {
		builder = builder.Where(sq.Eq{"id": candidateIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository within radius error: %w", err)
	}

	return r.queryLoads(ctx, query, args...)
}

func (r *Repository) queryLoads(ctx context.Context, query string, args ...interface{}) ([]entities.Load, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected load repository list error: %w", err)
	}
	defer rows.Close()

	var loads []entities.Load
	for rows.Next() {
		loadModel, err := scanLoad(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected load repository scan error: %w", err)
		}
		loads = append(loads, *ToDomain(loadModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected load repository rows error: %w", err)
	}

	return loads, nil
}

func scanLoad(row pgx.Row) (*LoadDB, error) {
	var loadModel LoadDB
	err := row.Scan(
		&loadModel.ID,
		&loadModel.TransporterID,
		&loadModel.MaterialType,
		&loadModel.Weight,
		&loadModel.SourceName,
		&loadModel.SourceLat,
		&loadModel.SourceLon,
		&loadModel.DestName,
		&loadModel.DestLat,
		&loadModel.DestLon,
		&loadModel.VehicleBodyType,
		&loadModel.VehicleType,
		&loadModel.NumWheels,
		&loadModel.OfferedTotal,
		&loadModel.AdvancePercentage,
		&loadModel.DieselLiters,
		&loadModel.WhenNeeded,
		&loadModel.ScheduledAt,
		&loadModel.IsActive,
		&loadModel.CurrentBidID,
		&loadModel.ExpiresAt,
		&loadModel.CreatedAt,
		&loadModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &loadModel, nil
}
