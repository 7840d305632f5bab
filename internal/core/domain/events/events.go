// Package events defines the typed domain events emitted by the lifecycle
// core on every accepted state change. Events are published fire-and-forget
// after the owning transaction commits; consumers (audit, billing, alerting)
// live outside this module.
package events

import "time"

// DomainEvent is implemented by every event payload in this package.
// Name returns the routing name used as the message type on the wire.
type DomainEvent interface {
	Name() string
}

// Location is the position fragment carried by check call events.
type Location struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	City  string  `json:"city,omitempty"`
	State string  `json:"state,omitempty"`
}

// OrderCreated fires when an order and its initial stops have been persisted.
type OrderCreated struct {
	OrderID  string `json:"orderId"`
	TenantID string `json:"tenantId"`
}

func (OrderCreated) Name() string { return "order.created" }

// OrderUpdated fires on a plain field update that did not change status.
type OrderUpdated struct {
	OrderID  string `json:"orderId"`
	TenantID string `json:"tenantId"`
}

func (OrderUpdated) Name() string { return "order.updated" }

// OrderStatusChanged fires on every accepted order status transition,
// including transitions cascaded from stop arrivals and departures.
type OrderStatusChanged struct {
	OrderID   string `json:"orderId"`
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
	TenantID  string `json:"tenantId"`
}

func (OrderStatusChanged) Name() string { return "order.status.changed" }

// OrderCancelled fires when an order is cancelled.
type OrderCancelled struct {
	OrderID  string `json:"orderId"`
	TenantID string `json:"tenantId"`
	Reason   string `json:"reason,omitempty"`
}

func (OrderCancelled) Name() string { return "order.cancelled" }

// LoadCreated fires when a load is created against an order.
type LoadCreated struct {
	LoadID   string `json:"loadId"`
	OrderID  string `json:"orderId"`
	TenantID string `json:"tenantId"`
}

func (LoadCreated) Name() string { return "load.created" }

// LoadAssigned fires when a carrier is assigned to a load.
type LoadAssigned struct {
	LoadID    string `json:"loadId"`
	CarrierID string `json:"carrierId"`
	TenantID  string `json:"tenantId"`
}

func (LoadAssigned) Name() string { return "load.assigned" }

// LoadDispatched fires when a load is dispatched to its carrier.
type LoadDispatched struct {
	LoadID    string `json:"loadId"`
	CarrierID string `json:"carrierId,omitempty"`
	TenantID  string `json:"tenantId"`
}

func (LoadDispatched) Name() string { return "load.dispatched" }

// LoadStatusChanged fires on every accepted load status transition.
type LoadStatusChanged struct {
	LoadID    string `json:"loadId"`
	OldStatus string `json:"oldStatus"`
	NewStatus string `json:"newStatus"`
	TenantID  string `json:"tenantId"`
}

func (LoadStatusChanged) Name() string { return "load.status.changed" }

// LoadDelivered fires when a load transitions into DELIVERED.
type LoadDelivered struct {
	LoadID   string `json:"loadId"`
	OrderID  string `json:"orderId"`
	TenantID string `json:"tenantId"`
}

func (LoadDelivered) Name() string { return "load.delivered" }

// CheckCallReceived fires when a check call is recorded against a load.
type CheckCallReceived struct {
	LoadID   string     `json:"loadId"`
	Location Location   `json:"location"`
	ETA      *time.Time `json:"eta,omitempty"`
	TenantID string     `json:"tenantId"`
}

func (CheckCallReceived) Name() string { return "check-call.received" }

// StopArrived fires when a stop is marked arrived.
type StopArrived struct {
	StopID   string `json:"stopId"`
	OrderID  string `json:"orderId"`
	TenantID string `json:"tenantId"`
}

func (StopArrived) Name() string { return "stop.arrived" }

// StopDeparted fires when a stop is marked departed.
type StopDeparted struct {
	StopID   string `json:"stopId"`
	OrderID  string `json:"orderId"`
	TenantID string `json:"tenantId"`
}

func (StopDeparted) Name() string { return "stop.departed" }

// StopCompleted fires once per order, when the last remaining stop departs
// and the order is derived to be fully delivered.
type StopCompleted struct {
	OrderID  string `json:"orderId"`
	TenantID string `json:"tenantId"`
}

func (StopCompleted) Name() string { return "stop.completed" }

// LoadTrackingStale is an alert event emitted by the tracking watchdog job
// for active loads whose last tracking update is older than the configured
// threshold.
type LoadTrackingStale struct {
	LoadID             string    `json:"loadId"`
	TenantID           string    `json:"tenantId"`
	LastTrackingUpdate time.Time `json:"lastTrackingUpdate"`
}

func (LoadTrackingStale) Name() string { return "load.tracking.stale" }
