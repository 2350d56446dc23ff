package wire

// The upstream omits or nulls fields freely. Plain value fields decode a
// missing or null value to its zero value: empty list, 0, "".

// APIResponse is the envelope around the highway info payload.
type APIResponse[T any] struct {
	RequestID  string `json:"requestId"`
	StatusCode string `json:"statusCode"`
	Payload    *T     `json:"payload"`
	Message    string `json:"message"`
	DataType   string `json:"dataType"`
}

type HighwayInfoPayload struct {
	HighwayVignettes  []HighwayVignette `json:"highwayVignettes"`
	VehicleCategories []VehicleCategory `json:"vehicleCategories"`
	Counties          []County          `json:"counties"`
}

type HighwayVignette struct {
	VignetteType    []string `json:"vignetteType"`
	VehicleCategory string   `json:"vehicleCategory"`
	Cost            float64  `json:"cost"`
	TrxFee          float64  `json:"trxFee"`
	Sum             float64  `json:"sum"`
}

type VehicleCategory struct {
	Category         string        `json:"category"`
	VignetteCategory string        `json:"vignetteCategory"`
	Name             LocalizedText `json:"name"`
}

type County struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LocalizedText struct {
	HU string `json:"hu"`
	EN string `json:"en"`
}

type VehicleInfo struct {
	RequestID                     string        `json:"requestId"`
	StatusCode                    string        `json:"statusCode"`
	InternationalRegistrationCode string        `json:"internationalRegistrationCode"`
	Type                          string        `json:"type"`
	Name                          string        `json:"name"`
	Plate                         string        `json:"plate"`
	Country                       LocalizedText `json:"country"`
	VignetteType                  string        `json:"vignetteType"`
}

type HighwayOrder struct {
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
}

type HighwayOrderRequest struct {
	HighwayOrders []HighwayOrder `json:"highwayOrders"`
}

type HighwayOrderResponse struct {
	RequestID      string         `json:"requestId"`
	StatusCode     string         `json:"statusCode"`
	ReceivedOrders []HighwayOrder `json:"receivedOrders"`
	// Message stays nil when absent so "no message" and "" are distinguishable.
	Message *string `json:"message"`
}
