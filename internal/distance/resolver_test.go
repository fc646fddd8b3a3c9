package distance

import (
	"context"
	"errors"
	"math"
	"testing"

	"mecanique_mobile/internal/domain/entities"
)

var workshopOrigin = entities.Coordinate{Latitude: 45.6426, Longitude: -73.6274}

type stubRouting struct {
	km  float64
	err error
}

func (s stubRouting) DrivingDistanceKm(_ context.Context, _ entities.Coordinate, _ string) (float64, error) {
	return s.km, s.err
}

type stubGeocoder struct {
	coord entities.Coordinate
	found bool
	err   error
}

func (s stubGeocoder) Geocode(_ context.Context, _ string) (entities.Coordinate, bool, error) {
	return s.coord, s.found, s.err
}

func TestResolveKm_RoutingTierWins(t *testing.T) {
	r := NewResolver(stubRouting{km: 23.456}, stubGeocoder{found: true}, NewStaticTable(), workshopOrigin, DefaultRoadFactor)
	if got := r.ResolveKm(context.Background(), "123 Rue Principale, Laval"); got != 23.46 {
		t.Fatalf("expected routing distance 23.46, got %v", got)
	}
}

func TestResolveKm_NoCredentialFallsThroughToGreatCircle(t *testing.T) {
	// Laval city hall, roughly 13 km great-circle from the workshop.
	coord := entities.Coordinate{Latitude: 45.5617, Longitude: -73.7126}
	r := NewResolver(nil, stubGeocoder{coord: coord, found: true}, NewStaticTable(), workshopOrigin, DefaultRoadFactor)

	want := math.Round(HaversineKm(workshopOrigin, coord)*DefaultRoadFactor*100) / 100
	if got := r.ResolveKm(context.Background(), "1 Place du Souvenir, Laval"); got != want {
		t.Fatalf("expected haversine estimate %v, got %v", want, got)
	}
}

func TestResolveKm_RoutingErrorIsAbsorbed(t *testing.T) {
	coord := entities.Coordinate{Latitude: 45.5617, Longitude: -73.7126}
	r := NewResolver(stubRouting{err: errors.New("upstream 500")}, stubGeocoder{coord: coord, found: true}, NewStaticTable(), workshopOrigin, DefaultRoadFactor)

	want := math.Round(HaversineKm(workshopOrigin, coord)*DefaultRoadFactor*100) / 100
	if got := r.ResolveKm(context.Background(), "somewhere"); got != want {
		t.Fatalf("expected fall-through to tier 2 (%v), got %v", want, got)
	}
}

func TestResolveKm_GeocodeMissUsesStaticTable(t *testing.T) {
	r := NewResolver(nil, stubGeocoder{found: false}, NewStaticTable(), workshopOrigin, DefaultRoadFactor)
	if got := r.ResolveKm(context.Background(), "456 Chemin X, Terrebonne QC"); got != 23.8 {
		t.Fatalf("expected static table hit 23.8, got %v", got)
	}
}

func TestResolveKm_TotalFailureReturnsDefault(t *testing.T) {
	r := NewResolver(nil, stubGeocoder{err: errors.New("network down")}, NewStaticTable(), workshopOrigin, DefaultRoadFactor)
	if got := r.ResolveKm(context.Background(), "nowhere recognizable"); got != DefaultFallbackKm {
		t.Fatalf("expected default %v, got %v", DefaultFallbackKm, got)
	}
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// Montréal to Québec City, roughly 233 km great-circle.
	mtl := entities.Coordinate{Latitude: 45.5019, Longitude: -73.5674}
	qc := entities.Coordinate{Latitude: 46.8131, Longitude: -71.2075}
	got := HaversineKm(mtl, qc)
	if got < 225 || got > 240 {
		t.Fatalf("expected ~233 km, got %v", got)
	}
	if HaversineKm(mtl, mtl) != 0 {
		t.Fatalf("identical coordinates must be 0 km apart")
	}
}

func TestStaticTable_DeterministicFirstMatch(t *testing.T) {
	tbl := NewStaticTable()

	// Declaration order puts the more specific borough before the city.
	if km, ok := tbl.Lookup("10424 Av. de Bruxelles, Montréal-Nord"); !ok || km != 0.5 {
		t.Fatalf("expected montréal-nord 0.5, got %v ok=%v", km, ok)
	}
	if km, ok := tbl.Lookup("Some address in MONTRÉAL"); !ok || km != 18.5 {
		t.Fatalf("expected montréal 18.5, got %v ok=%v", km, ok)
	}
	if _, ok := tbl.Lookup("Vancouver BC"); ok {
		t.Fatalf("expected miss for out-of-region address")
	}
}
