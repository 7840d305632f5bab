// Package order contains the Order aggregate: the customer-facing shipment
// request. The order status machine is declared as an explicit transition
// table validated at package init; cancellation and the stop-driven cascade
// are modeled as their own paths because they do not ride the table.
package order
