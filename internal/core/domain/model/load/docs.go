// Package load contains the Load aggregate (carrier-facing execution unit)
// and its immutable CheckCall records. The load status machine is declared as
// an explicit transition table validated at package init. All position
// mutations go through a single ApplyPositionUpdate path so that direct
// location updates and check calls cannot drift apart.
package load
