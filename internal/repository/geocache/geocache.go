package geocache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"bharatloads/internal/entities"
)

const (
	trucksKey          = "geo:trucks"
	loadSourceKey      = "geo:loads:source"
	loadDestinationKey = "geo:loads:dest"
)

// Index кандидатный гео-индекс поверх Redis GEO. Наполняется на
// upsert объявлений, выборка сужает SQL предикат; источник истины
// всегда Postgres.
type Index struct {
	client *redis.Client
}

func New(client *redis.Client) *Index {
	return &Index{client: client}
}

func (i *Index) UpsertTruck(ctx context.Context, truck *entities.Truck) error {
	_, err := i.client.GeoAdd(ctx, trucksKey, &redis.GeoLocation{
		Name:      truck.ID,
		Latitude:  truck.Location.Latitude,
		Longitude: truck.Location.Longitude,
	}).Result()
	if err != nil {
		return fmt.Errorf("geo index upsert truck: %w", err)
	}
	return nil
}

func (i *Index) UpsertLoad(ctx context.Context, load *entities.Load) error {
	_, err := i.client.GeoAdd(ctx, loadSourceKey, &redis.GeoLocation{
		Name:      load.ID,
		Latitude:  load.Source.Latitude,
		Longitude: load.Source.Longitude,
	}).Result()
	if err != nil {
		return fmt.Errorf("geo index upsert load source: %w", err)
	}

	_, err = i.client.GeoAdd(ctx, loadDestinationKey, &redis.GeoLocation{
		Name:      load.ID,
		Latitude:  load.Destination.Latitude,
		Longitude: load.Destination.Longitude,
	}).Result()
	if err != nil {
		return fmt.Errorf("geo index upsert load destination: %w", err)
	}
	return nil
}

func (i *Index) RemoveTruck(ctx context.Context, truckID string) error {
	if err := i.client.ZRem(ctx, trucksKey, truckID).Err(); err != nil {
		return fmt.Errorf("geo index remove truck: %w", err)
	}
	return nil
}

func (i *Index) RemoveLoad(ctx context.Context, loadID string) error {
	if err := i.client.ZRem(ctx, loadSourceKey, loadID).Err(); err != nil {
		return fmt.Errorf("geo index remove load source: %w", err)
	}
	if err := i.client.ZRem(ctx, loadDestinationKey, loadID).Err(); err != nil {
		return fmt.Errorf("geo index remove load destination: %w", err)
	}
	return nil
}

func (i *Index) TruckCandidates(ctx context.Context, center entities.GeoCenter) ([]string, error) {
	return i.search(ctx, trucksKey, center)
}

func (i *Index) LoadCandidates(ctx context.Context, side entities.MatchSide, center entities.GeoCenter) ([]string, error) {
	key := loadSourceKey
	if side == entities.MatchDestination {
		key = loadDestinationKey
	}
	return i.search(ctx, key, center)
}

func (i *Index) search(ctx context.Context, key string, center entities.GeoCenter) ([]string, error) {
	members, err := i.client.GeoSearch(ctx, key, &redis.GeoSearchQuery{
		Latitude:   center.Latitude,
		Longitude:  center.Longitude,
		Radius:     center.RadiusKm,
		RadiusUnit: "km",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("geo index search: %w", err)
	}
	return members, nil
}
