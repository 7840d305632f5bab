package http

import (
	"strconv"
	"time"

	"tms/internal/pkg/errs"
)

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	CustomerID    string         `json:"customerId"`
	Rate          float64        `json:"rate"`
	FuelSurcharge float64        `json:"fuelSurcharge"`
	Accessorials  float64        `json:"accessorials"`
	CustomFields  map[string]any `json:"customFields,omitempty"`
	Stops         []StopRequest  `json:"stops"`
}

// StopRequest describes one stop of a new order's route.
type StopRequest struct {
	Type    string `json:"type"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// UpdateOrderRequest is the body of PATCH /orders/:orderID.
// Nil fields are left untouched.
type UpdateOrderRequest struct {
	Status        *string        `json:"status,omitempty"`
	Rate          *float64       `json:"rate,omitempty"`
	FuelSurcharge *float64       `json:"fuelSurcharge,omitempty"`
	Accessorials  *float64       `json:"accessorials,omitempty"`
	CustomFields  map[string]any `json:"customFields,omitempty"`
}

// CancelOrderRequest is the body of POST /orders/:orderID/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CreateStopRequest is the body of POST /orders/:orderID/stops.
// A nil sequence appends the stop to the end of the route.
type CreateStopRequest struct {
	Type     string `json:"type"`
	Sequence *int   `json:"sequence,omitempty"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// ReorderStopsRequest is the body of PUT /orders/:orderID/stops/sequence.
// The list must contain every stop of the order exactly once.
type ReorderStopsRequest struct {
	StopIDs []string `json:"stopIds"`
}

// MarkStopDepartedRequest is the body of POST /stops/:stopID/depart.
type MarkStopDepartedRequest struct {
	SignedBy string `json:"signedBy,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// UpdateLoadRequest is the body of PATCH /loads/:loadID.
// Nil fields are left untouched.
type UpdateLoadRequest struct {
	Status        *string `json:"status,omitempty"`
	DriverName    *string `json:"driverName,omitempty"`
	DriverPhone   *string `json:"driverPhone,omitempty"`
	EquipmentType *string `json:"equipmentType,omitempty"`
}

// AssignCarrierRequest is the body of POST /loads/:loadID/assign.
type AssignCarrierRequest struct {
	CarrierID     string `json:"carrierId"`
	DriverName    string `json:"driverName"`
	DriverPhone   string `json:"driverPhone,omitempty"`
	EquipmentType string `json:"equipmentType,omitempty"`
}

// UpdateLoadLocationRequest is the body of POST /loads/:loadID/location.
type UpdateLoadLocationRequest struct {
	Lat   float64    `json:"lat"`
	Lng   float64    `json:"lng"`
	City  string     `json:"city,omitempty"`
	State string     `json:"state,omitempty"`
	ETA   *time.Time `json:"eta,omitempty"`
}

// AddCheckCallRequest is the body of POST /loads/:loadID/check-calls.
// A nil calledAt defaults to the time the call is recorded.
type AddCheckCallRequest struct {
	Lat        float64    `json:"lat"`
	Lng        float64    `json:"lng"`
	City       string     `json:"city,omitempty"`
	State      string     `json:"state,omitempty"`
	StatusNote string     `json:"statusNote,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	ETA        *time.Time `json:"eta,omitempty"`
	CalledAt   *time.Time `json:"calledAt,omitempty"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// HistoryEntry is one row of an order's merged status ledger.
type HistoryEntry struct {
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	OldStatus  string    `json:"oldStatus,omitempty"`
	NewStatus  string    `json:"newStatus"`
	Notes      string    `json:"notes,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// CheckCallEntry is one row of a load's tracking trail.
type CheckCallEntry struct {
	ID         string     `json:"id"`
	Lat        float64    `json:"lat"`
	Lng        float64    `json:"lng"`
	City       string     `json:"city,omitempty"`
	State      string     `json:"state,omitempty"`
	StatusNote string     `json:"statusNote,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	ETA        *time.Time `json:"eta,omitempty"`
	CalledAt   time.Time  `json:"calledAt"`
	RecordedAt time.Time  `json:"recordedAt"`
}

// StaleTrackingEntry is one in-flight load whose tracking has gone quiet.
type StaleTrackingEntry struct {
	LoadID             string    `json:"loadId"`
	TenantID           string    `json:"tenantId"`
	LoadNumber         string    `json:"loadNumber"`
	Status             string    `json:"status"`
	LastTrackingUpdate time.Time `json:"lastTrackingUpdate"`
}

// ErrorResponse is the uniform error body of every route.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// parsePositiveInt parses a query parameter that must be a positive integer.
func parsePositiveInt(raw string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < 1 {
		return 0, errs.NewValueIsOutOfRangeError("hours", value, 1, 8760)
	}

	return value, nil
}
