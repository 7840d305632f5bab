package cmd

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	httpin "tms/internal/adapters/in/http"
	"tms/internal/adapters/out/kafka"
	"tms/internal/adapters/out/postgres"
	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/application/usecases/queries"
	"tms/internal/core/ports"
	"tms/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewPublisher(strings.Split(config.KafkaHost, ","), config.KafkaEventsTopic, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) loadUoWFactory() commands.LoadUoWFactory {
	return FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stopUoWFactory() commands.StopUoWFactory {
	return FuncStopUoWFactory(func() commands.StopUoW {
		return c.uowFactory.Create()
	})
}

// CreateHTTPHandlers wires every command and query handler the REST API needs.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:        commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher),
		UpdateOrder:        commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.publisher),
		CancelOrder:        commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher),
		DeleteOrder:        commands.NewDeleteOrderCommandHandler(c.orderUoWFactory()),
		DispatchOrder:      commands.NewDispatchOrderCommandHandler(c.orderUoWFactory(), c.publisher),
		CreateLoad:         commands.NewCreateLoadCommandHandler(c.loadUoWFactory(), c.publisher),
		UpdateLoad:         commands.NewUpdateLoadCommandHandler(c.loadUoWFactory(), c.publisher),
		AssignCarrier:      commands.NewAssignCarrierCommandHandler(c.loadUoWFactory(), c.publisher),
		DispatchLoad:       commands.NewDispatchLoadCommandHandler(c.loadUoWFactory(), c.publisher),
		UpdateLoadLocation: commands.NewUpdateLoadLocationCommandHandler(c.loadUoWFactory()),
		AddCheckCall:       commands.NewAddCheckCallCommandHandler(c.loadUoWFactory(), c.publisher),
		DeleteLoad:         commands.NewDeleteLoadCommandHandler(c.loadUoWFactory()),
		CreateStop:         commands.NewCreateStopCommandHandler(c.stopUoWFactory()),
		MarkStopArrived:    commands.NewMarkStopArrivedCommandHandler(c.stopUoWFactory(), c.publisher),
		MarkStopDeparted:   commands.NewMarkStopDepartedCommandHandler(c.stopUoWFactory(), c.publisher),
		ReorderStops:       commands.NewReorderStopsCommandHandler(c.stopUoWFactory()),
		DeleteStop:         commands.NewDeleteStopCommandHandler(c.stopUoWFactory()),

		GetOrderHistory:       queries.NewGetOrderHistoryQueryHandler(c.gormDB),
		GetLoadCheckCalls:     queries.NewGetLoadCheckCallsQueryHandler(c.gormDB),
		GetStaleTrackingLoads: queries.NewGetStaleTrackingLoadsQueryHandler(c.gormDB),
	}
}

// CreateJobManager wires the tracking watchdog with its schedule and window.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	schedule := c.config.StaleTrackingSchedule
	if schedule == "" {
		schedule = "0 */15 * * * *"
	}

	hours := 4
	if c.config.StaleTrackingHours != "" {
		if parsed, err := strconv.Atoi(c.config.StaleTrackingHours); err == nil && parsed > 0 {
			hours = parsed
		}
	}

	return jobs.NewJobManager(
		queries.NewGetStaleTrackingLoadsQueryHandler(c.gormDB),
		c.publisher,
		schedule,
		time.Duration(hours)*time.Hour,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncStopUoWFactory func() commands.StopUoW

func (f FuncStopUoWFactory) Create() commands.StopUoW {
	return f()
}
