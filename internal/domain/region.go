package domain

// RegionID identifies an administrative region inside the service. Counties
// use their numeric code ("11".."29"); the capital district uses "BP".
// Wire-format codes are produced only by package wire.
type RegionID string

// Region is immutable reference data from the catalog.
type Region struct {
	ID          RegionID
	DisplayName string
}
