package domain

// LocalizedName holds a name in the primary (Hungarian) and secondary
// (English) languages.
type LocalizedName struct {
	Primary   string
	Secondary string
}

// VehicleCategory describes one vehicle category offered by the catalog.
type VehicleCategory struct {
	Code            string
	DisplayCategory string
	Name            LocalizedName
}

// Vehicle is the user's vehicle. It is fetched once per session and never
// modified afterwards.
type Vehicle struct {
	Category          string
	Plate             string
	OwnerName         string
	Country           LocalizedName
	InternationalCode string
	VignetteType      string
}
