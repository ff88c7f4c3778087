package ports

import "go.trai.ch/taskid/internal/core/domain"

// CatalogLoader defines the interface for loading task descriptors.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog_loader.go -destination=mocks/mock_catalog_loader.go -package=mocks
type CatalogLoader interface {
	// Load reads the catalog file at path and returns the declared task descriptors.
	Load(path string) (*domain.Catalog, error)
}
