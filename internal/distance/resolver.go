package distance

import (
	"context"
	"log"
	"math"
	"time"

	"mecanique_mobile/internal/domain/entities"
)

const (
	// earthRadiusKm is the IUGG mean Earth radius.
	earthRadiusKm = 6371.0088
	// DefaultRoadFactor approximates road distance over the great-circle
	// figure. A coarse, uniform tunable; nothing validates it against real
	// routes.
	DefaultRoadFactor = 1.2

	defaultTierTimeout = 10 * time.Second
)

// Geocoder resolves a free-text address to a coordinate. The boolean is
// false on a clean miss (address unknown to the provider).
type Geocoder interface {
	Geocode(ctx context.Context, address string) (entities.Coordinate, bool, error)
}

// RoutingClient returns a driving distance between the origin and a
// destination address, in kilometers.
type RoutingClient interface {
	DrivingDistanceKm(ctx context.Context, origin entities.Coordinate, destination string) (float64, error)
}

// Resolver turns an address into a single road-distance estimate by walking
// three decreasing-precision tiers: routing API, geocode + great-circle
// estimate, static locality table. Every tier failure is absorbed and
// logged; ResolveKm always returns a number so quoting never blocks on a
// third party.
type Resolver struct {
	routing     RoutingClient // nil when no credential is configured
	geocoder    Geocoder
	fallback    *StaticTable
	origin      entities.Coordinate
	roadFactor  float64
	tierTimeout time.Duration
}

func NewResolver(routing RoutingClient, geocoder Geocoder, fallback *StaticTable, origin entities.Coordinate, roadFactor float64) *Resolver {
	if fallback == nil {
		fallback = NewStaticTable()
	}
	if roadFactor <= 0 {
		roadFactor = DefaultRoadFactor
	}
	return &Resolver{
		routing:     routing,
		geocoder:    geocoder,
		fallback:    fallback,
		origin:      origin,
		roadFactor:  roadFactor,
		tierTimeout: defaultTierTimeout,
	}
}

// ResolveKm resolves an address to kilometers, rounded to two decimals.
// It never returns an error: on total failure the static table's default
// estimate comes back.
func (r *Resolver) ResolveKm(ctx context.Context, address string) float64 {
	if km, ok := r.resolveRouting(ctx, address); ok {
		return round2(km)
	}
	if km, ok := r.resolveGreatCircle(ctx, address); ok {
		return round2(km)
	}
	if km, ok := r.fallback.Lookup(address); ok {
		log.Printf("[distance][resolver] static table hit address=%q km=%.2f", address, km)
		return round2(km)
	}
	log.Printf("[distance][resolver] all tiers exhausted, using default address=%q km=%.2f", address, r.fallback.DefaultKm())
	return round2(r.fallback.DefaultKm())
}

func (r *Resolver) resolveRouting(ctx context.Context, address string) (float64, bool) {
	if r.routing == nil {
		// Missing credential is an expected condition, not an error.
		return 0, false
	}
	ctx, cancel := context.WithTimeout(ctx, r.tierTimeout)
	defer cancel()

	km, err := r.routing.DrivingDistanceKm(ctx, r.origin, address)
	if err != nil {
		log.Printf("[distance][resolver] routing tier skipped address=%q err=%v", address, err)
		return 0, false
	}
	if km < 0 || math.IsNaN(km) {
		log.Printf("[distance][resolver] routing tier returned malformed distance address=%q km=%v", address, km)
		return 0, false
	}
	return km, true
}

func (r *Resolver) resolveGreatCircle(ctx context.Context, address string) (float64, bool) {
	if r.geocoder == nil {
		return 0, false
	}
	ctx, cancel := context.WithTimeout(ctx, r.tierTimeout)
	defer cancel()

	coord, found, err := r.geocoder.Geocode(ctx, address)
	if err != nil {
		log.Printf("[distance][resolver] geocode tier skipped address=%q err=%v", address, err)
		return 0, false
	}
	if !found {
		log.Printf("[distance][resolver] geocode miss address=%q", address)
		return 0, false
	}
	return HaversineKm(r.origin, coord) * r.roadFactor, true
}

// HaversineKm is the great-circle distance between two WGS-84 coordinates.
func HaversineKm(a, b entities.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
