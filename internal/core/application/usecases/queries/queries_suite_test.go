package queries_test

import (
	"context"
	"time"

	"loadboard/internal/adapters/out/postgres/loadrepo"
	"loadboard/internal/adapters/out/postgres/profilerepo"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/domain/model/profile"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// postgresQuerySuite is the shared fixture for the read-side handler suites:
// one postgres container per suite, truncated tables per test, and seed
// helpers going through the write-side repositories.
type postgresQuerySuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (s *postgresQuerySuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(&loadrepo.LoadDTO{}, &profilerepo.ProfileDTO{})
	s.Require().NoError(err)
}

func (s *postgresQuerySuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *postgresQuerySuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE loads, profiles CASCADE").Error
	s.Require().NoError(err)
}

// nopTracker satisfies the repositories' aggregate tracking without a unit of
// work; query tests seed rows directly.
type nopTracker struct{}

func (nopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (s *postgresQuerySuite) saveLoad(l *load.Load) {
	repo := loadrepo.NewGormLoadRepository(s.db, nopTracker{})
	err := repo.Add(context.Background(), l)
	s.Require().NoError(err)
}

func (s *postgresQuerySuite) saveProfile(p *profile.Profile) {
	repo := profilerepo.NewGormProfileRepository(s.db, nopTracker{})
	err := repo.Add(context.Background(), p)
	s.Require().NoError(err)
}

// newOpenLoad builds a valid open load with the given route and price.
func (s *postgresQuerySuite) newOpenLoad(shipperID kernel.UUID, pickupCity, dropCity string, price int64) *load.Load {
	cargo, err := load.NewCargo(5, nil, "Tata 407", price, "")
	s.Require().NoError(err)
	schedule, err := load.NewSchedule(time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), "09:00")
	s.Require().NoError(err)
	pickup, err := kernel.NewLocation(pickupCity, nil)
	s.Require().NoError(err)
	drop, err := kernel.NewLocation(dropCity, nil)
	s.Require().NoError(err)

	l, err := load.NewLoad(kernel.NewUUID(), shipperID, pickup, drop, cargo, schedule, "+91 98200 11111")
	s.Require().NoError(err)
	return l
}

// newLoadInStatus builds a load already progressed to the given status with
// the given driver committed.
func (s *postgresQuerySuite) newLoadInStatus(
	shipperID, driverID kernel.UUID, pickupCity, dropCity string, status load.Status,
) *load.Load {
	l := s.newOpenLoad(shipperID, pickupCity, dropCity, 20000)

	s.Require().NoError(l.Assign(driverID))
	if status == load.InProgress || status == load.Completed {
		s.Require().NoError(l.Start(driverID))
	}
	if status == load.Completed {
		s.Require().NoError(l.Complete(driverID))
	}
	s.Require().Equal(status, l.Status())

	return l
}

func (s *postgresQuerySuite) newProfile(name, email string, role profile.Role) *profile.Profile {
	p, err := profile.NewProfile(kernel.NewUUID(), name, "+91 98200 22222", email, "password123", role)
	s.Require().NoError(err)
	return p
}
