package interfaces

import (
	"context"

	"mecanique_mobile/internal/domain/entities"
)

// IServiceCatalogRepository reads the service catalog collaborator's state.
// The engine never writes the catalog; it snapshots it at startup and on
// explicit reloads.

type IServiceCatalogRepository interface {
	ListActive(ctx context.Context) ([]entities.ServiceCatalogEntry, error)
}
