package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/carrier"
	"tms/internal/core/domain/model/history"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/core/domain/model/order"
	"tms/internal/core/domain/model/stop"
	"tms/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockLoadRepository) Update(ctx context.Context, l *load.Load) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockLoadRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, tenantID, id)
	if l, ok := args.Get(0).(*load.Load); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockLoadRepository) GetByOrder(ctx context.Context, tenantID, orderID kernel.UUID) ([]*load.Load, error) {
	args := m.Called(ctx, tenantID, orderID)
	if loads, ok := args.Get(0).([]*load.Load); ok {
		return loads, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockLoadRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

type MockCheckCallRepository struct{ mock.Mock }

func (m *MockCheckCallRepository) Add(ctx context.Context, c *load.CheckCall) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCheckCallRepository) GetByLoad(ctx context.Context, tenantID, loadID kernel.UUID) ([]*load.CheckCall, error) {
	args := m.Called(ctx, tenantID, loadID)
	if calls, ok := args.Get(0).([]*load.CheckCall); ok {
		return calls, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStopRepository struct{ mock.Mock }

func (m *MockStopRepository) Add(ctx context.Context, s *stop.Stop) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockStopRepository) Update(ctx context.Context, s *stop.Stop) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockStopRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*stop.Stop, error) {
	args := m.Called(ctx, tenantID, id)
	if s, ok := args.Get(0).(*stop.Stop); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockStopRepository) GetByOrder(ctx context.Context, tenantID, orderID kernel.UUID) ([]*stop.Stop, error) {
	args := m.Called(ctx, tenantID, orderID)
	if stops, ok := args.Get(0).([]*stop.Stop); ok {
		return stops, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockStopRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

type MockCarrierRepository struct{ mock.Mock }

func (m *MockCarrierRepository) Add(ctx context.Context, c *carrier.Carrier) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCarrierRepository) Update(ctx context.Context, c *carrier.Carrier) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCarrierRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*carrier.Carrier, error) {
	args := m.Called(ctx, tenantID, id)
	if c, ok := args.Get(0).(*carrier.Carrier); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Add(ctx context.Context, r *history.Record) error {
	return m.Called(ctx, r).Error(0)
}

type MockSequenceRepository struct{ mock.Mock }

func (m *MockSequenceRepository) Next(ctx context.Context, tenantID kernel.UUID, prefix, period string) (int64, error) {
	args := m.Called(ctx, tenantID, prefix, period)
	return args.Get(0).(int64), args.Error(1)
}

// RecordingPublisher captures published events for assertions.
type RecordingPublisher struct {
	published []events.DomainEvent
}

func (p *RecordingPublisher) Publish(_ context.Context, evts ...events.DomainEvent) {
	p.published = append(p.published, evts...)
}

func (p *RecordingPublisher) Names() []string {
	names := make([]string, 0, len(p.published))
	for _, e := range p.published {
		names = append(names, e.Name())
	}
	return names
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockOrderUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockOrderUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) StopRepository() ports.StopRepository {
	return m.Called().Get(0).(ports.StopRepository)
}
func (m *MockOrderUoW) LoadRepository() ports.LoadRepository {
	return m.Called().Get(0).(ports.LoadRepository)
}
func (m *MockOrderUoW) HistoryRepository() ports.HistoryRepository {
	return m.Called().Get(0).(ports.HistoryRepository)
}
func (m *MockOrderUoW) SequenceRepository() ports.SequenceRepository {
	return m.Called().Get(0).(ports.SequenceRepository)
}

type MockLoadUoW struct{ mock.Mock }

func (m *MockLoadUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockLoadUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockLoadUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockLoadUoW) LoadRepository() ports.LoadRepository {
	return m.Called().Get(0).(ports.LoadRepository)
}
func (m *MockLoadUoW) CheckCallRepository() ports.CheckCallRepository {
	return m.Called().Get(0).(ports.CheckCallRepository)
}
func (m *MockLoadUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockLoadUoW) CarrierRepository() ports.CarrierRepository {
	return m.Called().Get(0).(ports.CarrierRepository)
}
func (m *MockLoadUoW) HistoryRepository() ports.HistoryRepository {
	return m.Called().Get(0).(ports.HistoryRepository)
}
func (m *MockLoadUoW) SequenceRepository() ports.SequenceRepository {
	return m.Called().Get(0).(ports.SequenceRepository)
}

type MockStopUoW struct{ mock.Mock }

func (m *MockStopUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockStopUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockStopUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockStopUoW) StopRepository() ports.StopRepository {
	return m.Called().Get(0).(ports.StopRepository)
}
func (m *MockStopUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockStopUoW) HistoryRepository() ports.HistoryRepository {
	return m.Called().Get(0).(ports.HistoryRepository)
}

type fakeOrderUoWFactory struct{ uow commands.OrderUoW }

func (f fakeOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

type fakeLoadUoWFactory struct{ uow commands.LoadUoW }

func (f fakeLoadUoWFactory) Create() commands.LoadUoW { return f.uow }

type fakeStopUoWFactory struct{ uow commands.StopUoW }

func (f fakeStopUoWFactory) Create() commands.StopUoW { return f.uow }
