package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/domain/model/profile"
	"loadboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadRepository) UpdateWhereStatus(
	ctx context.Context, l *load.Load, expected ...load.Status,
) (bool, error) {
	args := m.Called(ctx, l, expected)
	return args.Bool(0), args.Error(1)
}

func (m *MockLoadRepository) DeleteOpenLoad(ctx context.Context, id, shipperID kernel.UUID) (bool, error) {
	args := m.Called(ctx, id, shipperID)
	return args.Bool(0), args.Error(1)
}

type MockProfileRepository struct{ mock.Mock }

func (m *MockProfileRepository) Add(ctx context.Context, p *profile.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileRepository) Get(ctx context.Context, id kernel.UUID) (*profile.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*profile.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetAllDrivers(ctx context.Context) ([]*profile.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*profile.Profile), args.Error(1)
}

type MockLoadUoW struct{ mock.Mock }

func (m *MockLoadUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

type MockLoadUoWFactory struct{ mock.Mock }

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

type MockProfileUoW struct{ mock.Mock }

func (m *MockProfileUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockProfileUoW) ProfileRepository() ports.ProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfileRepository)
}

type MockProfileUoWFactory struct{ mock.Mock }

func (m *MockProfileUoWFactory) Create() commands.ProfileUoW {
	args := m.Called()
	return args.Get(0).(commands.ProfileUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

func (m *MockUoW) ProfileRepository() ports.ProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ProfileRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishLoadStatusChanged(ctx context.Context, event ports.LoadStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newOpenLoad builds a valid open load for handler tests.
func newOpenLoad(shipperID kernel.UUID) *load.Load {
	cargo, _ := load.NewCargo(3, nil, "Tata 407", 20000, "")
	schedule, _ := load.NewSchedule(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), "10:00")
	pickup, _ := kernel.NewLocation("Mumbai", nil)
	drop, _ := kernel.NewLocation("Pune", nil)
	l, _ := load.NewLoad(kernel.NewUUID(), shipperID, pickup, drop, cargo, schedule, "")
	return l
}

// newAssignedLoad builds a load already assigned to the given driver.
func newAssignedLoad(shipperID, driverID kernel.UUID) *load.Load {
	l := newOpenLoad(shipperID)
	restored, _ := load.RestoreLoad(
		l.ID(), l.ShipperID(), &driverID,
		l.Pickup(), l.Drop(), l.Cargo(), l.Schedule(), l.ContactPhone(),
		load.Assigned, l.CreatedAt(), l.UpdatedAt(),
	)
	return restored
}

// newDriverProfile builds a profile holding the driver role.
func newDriverProfile(id kernel.UUID) *profile.Profile {
	p, _ := profile.NewProfile(id, "Driver", "", "driver@example.com", "password123", profile.RoleDriver)
	return p
}
