package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/internal/usecase/interfaces"
)

var ErrCatalogUnavailable = errors.New("service catalog unavailable")

// ICatalogUseCase hands out immutable catalog snapshots.
//
// The catalog is read-only shared state: every pricing call works against
// the snapshot current at that moment, and the snapshot is only replaced
// wholesale by an explicit Reload. There is no implicit mutation.

type ICatalogUseCase interface {
	Snapshot() *entities.Catalog
	Reload(ctx context.Context) (*entities.Catalog, error)
}

type CatalogUseCase struct {
	repo interfaces.IServiceCatalogRepository

	mu       sync.RWMutex
	snapshot *entities.Catalog
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IServiceCatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{
		repo:     repo,
		snapshot: entities.NewCatalog(nil),
	}
}

// Snapshot returns the current catalog snapshot. Never nil; before the
// first successful Reload it is simply empty, and pricing against an empty
// snapshot yields zero contributions rather than errors.
func (u *CatalogUseCase) Snapshot() *entities.Catalog {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.snapshot
}

// Reload fetches the active offerings and swaps the snapshot. On failure
// the previous snapshot stays in place.
func (u *CatalogUseCase) Reload(ctx context.Context) (*entities.Catalog, error) {
	entries, err := u.repo.ListActive(ctx)
	if err != nil {
		log.Printf("[catalog][usecase] reload failed err=%v", err)
		return nil, ErrCatalogUnavailable
	}

	next := entities.NewCatalog(entries)
	u.mu.Lock()
	u.snapshot = next
	u.mu.Unlock()
	log.Printf("[catalog][usecase] reload success services=%d", next.Len())
	return next, nil
}
