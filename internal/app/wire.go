//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	eventsGateway "bharatloads/internal/gateway/events"
	pushGateway "bharatloads/internal/gateway/push"
	bideventhandler "bharatloads/internal/handlers/kafka-consumer/bid_event"
	"bharatloads/internal/handlers/rest/bid_delete"
	"bharatloads/internal/handlers/rest/bid_get"
	"bharatloads/internal/handlers/rest/bid_post"
	"bharatloads/internal/handlers/rest/bid_put"
	"bharatloads/internal/handlers/rest/bid_stats_get"
	"bharatloads/internal/handlers/rest/bid_status_put"
	"bharatloads/internal/handlers/rest/bids_get"
	"bharatloads/internal/handlers/rest/bids_search_get"
	"bharatloads/internal/handlers/rest/chat_message_post"
	"bharatloads/internal/handlers/rest/chat_messages_get"
	"bharatloads/internal/handlers/rest/chats_get"
	"bharatloads/internal/handlers/rest/coin_transactions_get"
	"bharatloads/internal/handlers/rest/load_bids_get"
	"bharatloads/internal/handlers/rest/load_delete"
	"bharatloads/internal/handlers/rest/load_get"
	"bharatloads/internal/handlers/rest/load_pause_post"
	"bharatloads/internal/handlers/rest/load_post"
	"bharatloads/internal/handlers/rest/load_put"
	"bharatloads/internal/handlers/rest/load_repost_post"
	"bharatloads/internal/handlers/rest/loads_active_get"
	"bharatloads/internal/handlers/rest/loads_get"
	"bharatloads/internal/handlers/rest/loads_nearby_get"
	"bharatloads/internal/handlers/rest/offers_get"
	"bharatloads/internal/handlers/rest/truck_delete"
	"bharatloads/internal/handlers/rest/truck_get"
	"bharatloads/internal/handlers/rest/truck_pause_post"
	"bharatloads/internal/handlers/rest/truck_post"
	"bharatloads/internal/handlers/rest/truck_put"
	"bharatloads/internal/handlers/rest/truck_rate_post"
	"bharatloads/internal/handlers/rest/truck_ratings_get"
	"bharatloads/internal/handlers/rest/truck_repost_post"
	"bharatloads/internal/handlers/rest/truck_verify_put"
	"bharatloads/internal/handlers/rest/trucks_get"
	"bharatloads/internal/handlers/rest/trucks_nearby_get"
	"bharatloads/internal/handlers/tasks/load_activation"
	"bharatloads/internal/handlers/tasks/outbox_relay"
	"bharatloads/internal/pkg/config"

	bidRepo "bharatloads/internal/repository/bid"
	chatRepo "bharatloads/internal/repository/chat"
	"bharatloads/internal/repository/geocache"
	loadRepo "bharatloads/internal/repository/load"
	outboxRepo "bharatloads/internal/repository/outbox"
	truckRepo "bharatloads/internal/repository/truck"
	userRepo "bharatloads/internal/repository/user"
	bidService "bharatloads/internal/service/bid"
	chatService "bharatloads/internal/service/chat"
	geosearchService "bharatloads/internal/service/geosearch"
	loadService "bharatloads/internal/service/load"
	rewardService "bharatloads/internal/service/reward"
	truckService "bharatloads/internal/service/truck"

	"bharatloads/pkg/background"
	"bharatloads/pkg/logger"
	"bharatloads/pkg/querier"
	"bharatloads/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	LoadActivationInterval time.Duration
	OutboxRelayInterval    time.Duration
)

type Application struct {
	ServiceBid        ServiceBid
	ServiceLoad       ServiceLoad
	ServiceTruck      ServiceTruck
	ServiceGeoSearch  ServiceGeoSearch
	ServiceChat       ServiceChat
	ServiceReward     ServiceReward
	BackgroundWorkers *background.Worker
}

type ServiceBid interface {
	bid_post.Service
	bid_get.Service
	bid_put.Service
	bids_get.Service
	bid_delete.Service
	bid_status_put.Service
	load_bids_get.Service
	bids_search_get.Service
	bid_stats_get.Service
	offers_get.Service
}

type ServiceLoad interface {
	load_post.Service
	load_get.Service
	loads_get.Service
	load_put.Service
	load_delete.Service
	loads_active_get.Service
	load_repost_post.Service
	load_pause_post.Service
}

type ServiceTruck interface {
	truck_post.Service
	truck_get.Service
	trucks_get.Service
	truck_put.Service
	truck_delete.Service
	truck_verify_put.Service
	truck_repost_post.Service
	truck_pause_post.Service
	truck_rate_post.Service
	truck_ratings_get.Service
}

type ServiceGeoSearch interface {
	loads_nearby_get.Service
	trucks_nearby_get.Service
}

type ServiceChat interface {
	chats_get.Service
	chat_messages_get.Service
	chat_message_post.Service
}

type ServiceReward interface {
	coin_transactions_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service).
// geoIndex равен nil при выключенном Redis: сервисы тогда работают
// только через SQL-предикаты.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	geoIndex *geocache.Index,
	sender eventsGateway.Sender,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideLoadActivationInterval,
		provideOutboxRelayInterval,

		provideBidRepository,
		provideLoadRepository,
		provideTruckRepository,
		provideChatRepository,
		provideUserRepository,
		provideOutboxRepository,

		provideServiceBid,
		provideServiceLoad,
		provideServiceTruck,
		provideServiceGeoSearch,
		provideServiceChat,
		provideServiceReward,

		provideEventsPublisher,
		provideLoadActivationTask,
		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceBid), new(*bidService.Bid)),
		wire.Bind(new(ServiceLoad), new(*loadService.Load)),
		wire.Bind(new(ServiceTruck), new(*truckService.Truck)),
		wire.Bind(new(ServiceGeoSearch), new(*geosearchService.GeoSearch)),
		wire.Bind(new(ServiceChat), new(*chatService.Chat)),
		wire.Bind(new(ServiceReward), new(*rewardService.Reward)),

		wire.Bind(new(load_activation.Service), new(*loadService.Load)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	BidEventHandlerUsers  bideventhandler.UserStore
	BidEventHandlerPusher bideventhandler.PushGateway
}

// InitializeKafkaWorkerApp для пуш-воркера (cmd/worker-bid-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideUserRepository,
		providePushGateway,

		wire.Bind(new(bideventhandler.UserStore), new(*userRepo.Repository)),
		wire.Bind(new(bideventhandler.PushGateway), new(*pushGateway.Gateway)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideBidRepository(querier *querier.Querier) *bidRepo.Repository {
	return bidRepo.New(querier)
}

func provideLoadRepository(querier *querier.Querier) *loadRepo.Repository {
	return loadRepo.New(querier)
}

func provideTruckRepository(querier *querier.Querier) *truckRepo.Repository {
	return truckRepo.New(querier)
}

func provideChatRepository(querier *querier.Querier) *chatRepo.Repository {
	return chatRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideServiceReward(repository *userRepo.Repository) *rewardService.Reward {
	return rewardService.New(repository)
}

func provideServiceChat(repository *chatRepo.Repository, txManager *tx.Manager) *chatService.Chat {
	return chatService.New(repository, txManager)
}

func provideServiceLoad(
	log logger.Logger,
	repository *loadRepo.Repository,
	bids *bidRepo.Repository,
	geoIndex *geocache.Index,
	txManager *tx.Manager,
) *loadService.Load {
	var geo loadService.GeoIndex
	if geoIndex != nil {
		geo = geoIndex
	}
	return loadService.New(repository, bids, geo, txManager, log)
}

func provideServiceTruck(
	log logger.Logger,
	repository *truckRepo.Repository,
	bids *bidRepo.Repository,
	geoIndex *geocache.Index,
	txManager *tx.Manager,
) *truckService.Truck {
	var geo truckService.GeoIndex
	if geoIndex != nil {
		geo = geoIndex
	}
	return truckService.New(repository, bids, geo, txManager, log)
}

func provideServiceGeoSearch(
	log logger.Logger,
	trucks *truckRepo.Repository,
	loads *loadRepo.Repository,
	geoIndex *geocache.Index,
) *geosearchService.GeoSearch {
	var index geosearchService.CandidateIndex
	if geoIndex != nil {
		index = geoIndex
	}
	return geosearchService.New(trucks, loads, index, log)
}

func provideServiceBid(
	repository *bidRepo.Repository,
	loads *loadRepo.Repository,
	trucks *truckRepo.Repository,
	rewards *rewardService.Reward,
	chats *chatService.Chat,
	outbox *outboxRepo.Repository,
	txManager *tx.Manager,
) *bidService.Bid {
	return bidService.New(repository, loads, trucks, rewards, chats, outbox, txManager)
}

func provideLoadActivationInterval(cfg *config.Config) LoadActivationInterval {
	return LoadActivationInterval(cfg.Tasks.LoadActivationInterval)
}

func provideOutboxRelayInterval(cfg *config.Config) OutboxRelayInterval {
	return OutboxRelayInterval(cfg.Tasks.OutboxRelayInterval)
}

func provideEventsPublisher(sender eventsGateway.Sender, cfg *config.Config) *eventsGateway.Publisher {
	return eventsGateway.NewPublisher(sender, cfg.Kafka.Topic)
}

func provideLoadActivationTask(
	log logger.Logger,
	loadService load_activation.Service,
	interval LoadActivationInterval,
) *load_activation.LoadActivation {
	return load_activation.NewLoadActivation(log, loadService, time.Duration(interval))
}

func provideOutboxRelayTask(
	log logger.Logger,
	outbox *outboxRepo.Repository,
	publisher *eventsGateway.Publisher,
	txManager *tx.Manager,
	interval OutboxRelayInterval,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, outbox, publisher, txManager, time.Duration(interval))
}

func provideTaskList(
	loadActivationTask *load_activation.LoadActivation,
	outboxRelayTask *outbox_relay.OutboxRelay,
) []background.Task {
	return []background.Task{
		loadActivationTask,
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func providePushGateway(cfg *config.Config) *pushGateway.Gateway {
	return pushGateway.New(&http.Client{Timeout: 10 * time.Second}, cfg.Push.ProviderURL)
}
