package storage

import "laptop-dashboard/models"

// DatasetSource is the interface any dataset backend must satisfy. Sources are
// read-only: the pipeline never writes back to storage.
type DatasetSource interface {
	Fetch() ([]*models.RawListing, error)
	Close() error
}
