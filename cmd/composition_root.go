package cmd

import (
	"log/slog"
	"time"

	"loadboard/internal/adapters/in/http"
	"loadboard/internal/adapters/out/kafka"
	"loadboard/internal/adapters/out/mapbox"
	"loadboard/internal/adapters/out/postgres"
	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/services"
	"loadboard/internal/core/ports"
	"loadboard/internal/jobs"
	"loadboard/internal/pkg/token"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use-case handlers. Handlers are cheap
// value types, so each Create method builds a fresh one.
type CompositionRoot struct {
	gormDB            *gorm.DB
	uowFactory        postgres.GormUnitOfWorkFactory
	signer            *token.Signer
	eventPublisher    ports.EventPublisher
	snapshotPublisher ports.SnapshotPublisher
	planner           ports.RoutePlanner
	matcher           services.DriverMatcher
	logger            *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	ttl, err := time.ParseDuration(config.JWTTTL)
	if err != nil {
		ttl = 0 // NewSigner falls back to its default
	}
	signer, err := token.NewSigner(config.JWTSecret, config.JWTIssuer, ttl)
	if err != nil {
		return CompositionRoot{}, err
	}

	var eventPublisher ports.EventPublisher = kafka.NopPublisher{}
	var snapshotPublisher ports.SnapshotPublisher = kafka.NopPublisher{}
	if config.KafkaHost != "" {
		publisher := kafka.NewPublisher(config.KafkaHost, config.KafkaEventsTopic, logger)
		eventPublisher = publisher
		snapshotPublisher = publisher
	}

	var mapboxOpts []mapbox.Option
	if config.MapboxBaseURL != "" {
		mapboxOpts = append(mapboxOpts, mapbox.WithBaseURL(config.MapboxBaseURL))
	}

	return CompositionRoot{
		gormDB:            gormDB,
		uowFactory:        *postgres.NewGormUnitOfWorkFactory(gormDB),
		signer:            signer,
		eventPublisher:    eventPublisher,
		snapshotPublisher: snapshotPublisher,
		planner:           mapbox.NewClient(config.MapboxToken, logger, mapboxOpts...),
		matcher:           services.NewRandomMatcher(),
		logger:            logger,
	}, nil
}

// Signer exposes the token signer for the HTTP auth middleware.
func (c *CompositionRoot) Signer() *token.Signer {
	return c.signer
}

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignUpCommandHandler(f)
}

func (c *CompositionRoot) CreatePostLoadCommandHandler() commands.PostLoadCommandHandler {
	return commands.NewPostLoadCommandHandler(c.loadUoWFactory(), c.eventPublisher, c.logger)
}

func (c *CompositionRoot) CreateAcceptLoadCommandHandler() commands.AcceptLoadCommandHandler {
	return commands.NewAcceptLoadCommandHandler(c.loadUoWFactory(), c.eventPublisher, c.logger)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.eventPublisher, c.logger)
}

func (c *CompositionRoot) CreateStartTripCommandHandler() commands.StartTripCommandHandler {
	return commands.NewStartTripCommandHandler(c.loadUoWFactory(), c.eventPublisher, c.logger)
}

func (c *CompositionRoot) CreateCompleteLoadCommandHandler() commands.CompleteLoadCommandHandler {
	return commands.NewCompleteLoadCommandHandler(c.loadUoWFactory(), c.eventPublisher, c.logger)
}

func (c *CompositionRoot) CreateDeleteLoadCommandHandler() commands.DeleteLoadCommandHandler {
	return commands.NewDeleteLoadCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateSignInQueryHandler() queries.SignInQueryHandler {
	return queries.NewSignInQueryHandler(c.gormDB, c.signer)
}

func (c *CompositionRoot) CreateGetOpenLoadsQueryHandler() queries.GetOpenLoadsQueryHandler {
	return queries.NewGetOpenLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadsByShipperQueryHandler() queries.GetLoadsByShipperQueryHandler {
	return queries.NewGetLoadsByShipperQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadsByDriverQueryHandler() queries.GetLoadsByDriverQueryHandler {
	return queries.NewGetLoadsByDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMatchingDriversQueryHandler() queries.GetMatchingDriversQueryHandler {
	return queries.NewGetMatchingDriversQueryHandler(c.gormDB, c.matcher)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB, c.planner, c.logger)
}

func (c *CompositionRoot) CreateGetMarketplaceStatsQueryHandler() queries.GetMarketplaceStatsQueryHandler {
	return queries.NewGetMarketplaceStatsQueryHandler(c.gormDB)
}

// CreateServer assembles the HTTP server over all command and query handlers.
func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(
		c.CreateSignUpCommandHandler(),
		c.CreatePostLoadCommandHandler(),
		c.CreateAcceptLoadCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateStartTripCommandHandler(),
		c.CreateCompleteLoadCommandHandler(),
		c.CreateDeleteLoadCommandHandler(),
		c.CreateSignInQueryHandler(),
		c.CreateGetOpenLoadsQueryHandler(),
		c.CreateGetLoadsByShipperQueryHandler(),
		c.CreateGetLoadsByDriverQueryHandler(),
		c.CreateGetMatchingDriversQueryHandler(),
		c.CreateGetRouteQueryHandler(),
		c.CreateGetMarketplaceStatsQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetMarketplaceStatsQueryHandler(), c.snapshotPublisher, c.logger)
}

func (c *CompositionRoot) loadUoWFactory() commands.LoadUoWFactory {
	return FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
