package kernel

import (
	"errors"
	"fmt"

	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

const (
	// GeoPointMinLat is the minimum valid latitude in decimal degrees.
	GeoPointMinLat = -90.0
	// GeoPointMaxLat is the maximum valid latitude in decimal degrees.
	GeoPointMaxLat = 90.0
	// GeoPointMinLng is the minimum valid longitude in decimal degrees.
	GeoPointMinLng = -180.0
	// GeoPointMaxLng is the maximum valid longitude in decimal degrees.
	GeoPointMaxLng = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic position with validated WGS84 coordinates.
// It is an immutable value object used for load tracking positions and check
// call locations. The zero value is invalid and fails Validate - use the
// constructor to create instances.
//
// Example:
//
//	pos, err := kernel.NewGeoPoint(41.8781, -87.6298)
//	if err != nil {
//	    // out-of-range coordinates
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the specified latitude and longitude.
// Latitude must be within [-90, 90] and longitude within [-180, 180];
// returns an out-of-range error otherwise.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	p := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setLat(lat), p.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual compares two geographic points by coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// String returns a human-readable "GeoPoint(lat,lng)" representation.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lat, p.lng)
}

// Validate ensures the point was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < GeoPointMinLat || lat > GeoPointMaxLat {
		return errs.NewValueIsOutOfRangeError("latitude", lat, GeoPointMinLat, GeoPointMaxLat)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < GeoPointMinLng || lng > GeoPointMaxLng {
		return errs.NewValueIsOutOfRangeError("longitude", lng, GeoPointMinLng, GeoPointMaxLng)
	}
	p.lng = lng
	return nil
}
