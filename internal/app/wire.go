//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	jobs_get "service/internal/handlers/rest/jobs_get"
	mover_get "service/internal/handlers/rest/mover_get"
	mover_post "service/internal/handlers/rest/mover_post"
	mover_put "service/internal/handlers/rest/mover_put"
	movers_get "service/internal/handlers/rest/movers_get"
	route_plan_post "service/internal/handlers/rest/route_plan_post"
	"service/internal/handlers/tasks/job_cleanup"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/job_duration"
	"service/internal/pkg/factory/job_handle"

	jobRepo "service/internal/repository/job"
	moverRepo "service/internal/repository/mover"
	jobService "service/internal/service/job"
	jobEventService "service/internal/service/jobevent"
	moverService "service/internal/service/mover"
	plannerService "service/internal/service/planner"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
)

type Application struct {
	ServiceMover      ServiceMover
	ServiceJob        ServiceJob
	ServicePlanner    ServicePlanner
	BackgroundWorkers *background.Worker
}

type ServiceMover interface {
	mover_get.Service
	mover_post.Service
	mover_put.Service
	movers_get.Service
}

type ServiceJob interface {
	jobs_get.Service
}

type ServicePlanner interface {
	route_plan_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,

		provideMoverRepository,
		provideJobRepository,

		provideServiceMover,
		provideServiceJob,
		provideServicePlanner,
		job_duration.New,
		provideClock,

		provideJobCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceMover), new(*moverService.Mover)),
		wire.Bind(new(ServiceJob), new(*jobService.Service)),
		wire.Bind(new(ServicePlanner), new(*plannerService.Planner)),

		wire.Bind(new(moverService.Repository), new(*moverRepo.Repository)),
		wire.Bind(new(jobService.Repository), new(*jobRepo.Repository)),
		wire.Bind(new(plannerService.MoverService), new(*moverService.Mover)),
		wire.Bind(new(plannerService.JobCatalog), new(*jobService.Service)),
		wire.Bind(new(plannerService.JobTimeFactory), new(*job_duration.JobTimeFactory)),
		wire.Bind(new(plannerService.Clock), new(plannerService.SystemClock)),

		wire.Bind(new(moverService.TxManager), new(*tx.Manager)),

		wire.Bind(new(job_cleanup.Service), new(*jobService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	JobEventService *jobEventService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-job-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideJobRepository,
		provideServiceJob,

		provideStatusHandlerFabric,
		provideJobEventService,

		wire.Bind(new(jobService.Repository), new(*jobRepo.Repository)),
		wire.Bind(new(jobEventService.CatalogService), new(*jobService.Service)),
		wire.Bind(new(jobEventService.HandlerFactory), new(*job_handle.StatusHandlerFactory)),

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

func provideMoverRepository(querier *querier.Querier) *moverRepo.Repository {
	return moverRepo.New(querier)
}

func provideJobRepository(querier *querier.Querier) *jobRepo.Repository {
	return jobRepo.New(querier)
}

func provideServiceMover(
	repository moverService.Repository,
	txManager moverService.TxManager,
) *moverService.Mover {
	return moverService.New(repository, txManager)
}

func provideServiceJob(repository jobService.Repository) *jobService.Service {
	return jobService.New(repository)
}

func provideServicePlanner(
	movers plannerService.MoverService,
	jobCatalog plannerService.JobCatalog,
	timeFactory plannerService.JobTimeFactory,
	clock plannerService.Clock,
) *plannerService.Planner {
	return plannerService.New(movers, jobCatalog, timeFactory, clock)
}

func provideClock() plannerService.SystemClock {
	return plannerService.SystemClock{}
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.JobsExpireInterval)
}

// provideJobEventService создает сервис обработки событий Kafka
func provideJobEventService(handlerFactory jobEventService.HandlerFactory) *jobEventService.Service {
	return jobEventService.New(handlerFactory)
}

func provideStatusHandlerFabric(catalogService jobEventService.CatalogService) *job_handle.StatusHandlerFactory {
	return job_handle.NewStatusHandlerFactory(catalogService)
}

func provideJobCleanupTask(
	log logger.Logger,
	jobCatalog job_cleanup.Service,
	interval CleanupInterval,
) *job_cleanup.JobCleanup {
	return job_cleanup.NewJobCleanup(log, jobCatalog, time.Duration(interval))
}

func provideTaskList(
	jobCleanupTask *job_cleanup.JobCleanup,
) []background.Task {
	return []background.Task{
		jobCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
