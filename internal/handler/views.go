package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/android-4dsoft/yettel/internal/domain"
)

// JSON shapes of the API. Money is a decimal string so no precision is lost
// in the client.

type localizedName struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type tierCode struct {
	Kind     string          `json:"kind"`
	RegionID domain.RegionID `json:"regionId,omitempty"`
}

type tierResponse struct {
	Types           []tierCode      `json:"types"`
	VehicleCategory string          `json:"vehicleCategory"`
	Cost            decimal.Decimal `json:"cost"`
	TransactionFee  decimal.Decimal `json:"transactionFee"`
	Total           decimal.Decimal `json:"total"`
}

type categoryResponse struct {
	Code            string        `json:"code"`
	DisplayCategory string        `json:"displayCategory"`
	Name            localizedName `json:"name"`
}

type regionResponse struct {
	ID   domain.RegionID `json:"id"`
	Name string          `json:"name"`
}

type catalogResponse struct {
	Tiers      []tierResponse     `json:"tiers"`
	Categories []categoryResponse `json:"categories"`
	Regions    []regionResponse   `json:"regions"`
}

type vehicleResponse struct {
	Category          string        `json:"category"`
	Plate             string        `json:"plate"`
	OwnerName         string        `json:"ownerName"`
	Country           localizedName `json:"country"`
	InternationalCode string        `json:"internationalCode"`
	VignetteType      string        `json:"vignetteType"`
}

type passOptionResponse struct {
	Kind           string          `json:"kind"`
	Category       string          `json:"category"`
	Cost           decimal.Decimal `json:"cost"`
	TransactionFee decimal.Decimal `json:"transactionFee"`
	Total          decimal.Decimal `json:"total"`
}

type passesResponse struct {
	Options     []passOptionResponse `json:"options"`
	HasRegional bool                 `json:"hasRegional"`
	HasYearly   bool                 `json:"hasYearly"`
}

type regionOptionResponse struct {
	ID         domain.RegionID `json:"id"`
	Name       string          `json:"name"`
	Cost       decimal.Decimal `json:"cost"`
	Selected   bool            `json:"selected"`
	Selectable bool            `json:"selectable"`
}

type regionsResponse struct {
	Data []regionOptionResponse `json:"data"`
}

type passSelection struct {
	Kind     string          `json:"kind"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

// selectionResponse flattens the selection sum type: Mode is "empty",
// "regions" or "single_pass" and only the matching field is set.
type selectionResponse struct {
	Mode      string            `json:"mode"`
	RegionIDs []domain.RegionID `json:"regionIds,omitempty"`
	Pass      *passSelection    `json:"pass,omitempty"`
}

type pricedLineResponse struct {
	Code  tierCode        `json:"code"`
	Label string          `json:"label"`
	Cost  decimal.Decimal `json:"cost"`
}

type quoteResponse struct {
	Vehicle        vehicleResponse      `json:"vehicle"`
	Category       string               `json:"category"`
	Lines          []pricedLineResponse `json:"lines"`
	TransactionFee decimal.Decimal      `json:"transactionFee"`
	Total          decimal.Decimal      `json:"total"`
}

type orderLineResponse struct {
	Code     string          `json:"code"`
	Category string          `json:"category"`
	Cost     decimal.Decimal `json:"cost"`
}

type orderResponse struct {
	ID             uuid.UUID           `json:"id"`
	SessionID      uuid.UUID           `json:"sessionId"`
	VehiclePlate   string              `json:"vehiclePlate"`
	Category       string              `json:"category"`
	StatusCode     string              `json:"statusCode"`
	Message        string              `json:"message,omitempty"`
	Lines          []orderLineResponse `json:"lines"`
	TransactionFee decimal.Decimal     `json:"transactionFee"`
	Total          decimal.Decimal     `json:"total"`
	CreatedAt      time.Time           `json:"createdAt"`
}

type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type ordersResponse struct {
	Data       []orderResponse `json:"data"`
	Pagination pagination      `json:"pagination"`
}

type sessionResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type selectPassRequest struct {
	Tier string `json:"tier"`
}

// --- mapping helpers --------------------------------------------------------

func toTierCode(c domain.TierCode) tierCode {
	tc := tierCode{Kind: c.Kind().String()}
	if id, ok := c.Region(); ok {
		tc.RegionID = id
	}
	return tc
}

func toLocalized(n domain.LocalizedName) localizedName {
	return localizedName{Primary: n.Primary, Secondary: n.Secondary}
}

func toCatalogResponse(c domain.Catalog) catalogResponse {
	out := catalogResponse{
		Tiers:      make([]tierResponse, len(c.Tiers)),
		Categories: make([]categoryResponse, len(c.Categories)),
		Regions:    make([]regionResponse, len(c.Regions)),
	}
	for i, t := range c.Tiers {
		codes := make([]tierCode, len(t.Types))
		for j, code := range t.Types {
			codes[j] = toTierCode(code)
		}
		out.Tiers[i] = tierResponse{
			Types:           codes,
			VehicleCategory: t.VehicleCategory,
			Cost:            t.UnitCost,
			TransactionFee:  t.TransactionFee,
			Total:           t.UnitCost.Add(t.TransactionFee),
		}
	}
	for i, vc := range c.Categories {
		out.Categories[i] = categoryResponse{Code: vc.Code, DisplayCategory: vc.DisplayCategory, Name: toLocalized(vc.Name)}
	}
	for i, r := range c.Regions {
		out.Regions[i] = regionResponse{ID: r.ID, Name: r.DisplayName}
	}
	return out
}

func toVehicleResponse(v domain.Vehicle) vehicleResponse {
	return vehicleResponse{
		Category:          v.Category,
		Plate:             v.Plate,
		OwnerName:         v.OwnerName,
		Country:           toLocalized(v.Country),
		InternationalCode: v.InternationalCode,
		VignetteType:      v.VignetteType,
	}
}

func toPassesResponse(o domain.PassOffer) passesResponse {
	out := passesResponse{Options: make([]passOptionResponse, len(o.Options)), HasRegional: o.HasRegional, HasYearly: o.HasYearly}
	for i, p := range o.Options {
		out.Options[i] = passOptionResponse{
			Kind:           p.Kind.String(),
			Category:       p.Category,
			Cost:           p.Cost,
			TransactionFee: p.TransactionFee,
			Total:          p.Total,
		}
	}
	return out
}

func toRegionsResponse(regions []domain.RegionOption) regionsResponse {
	out := regionsResponse{Data: make([]regionOptionResponse, len(regions))}
	for i, r := range regions {
		out.Data[i] = regionOptionResponse{
			ID:         r.Region.ID,
			Name:       r.Region.DisplayName,
			Cost:       r.Cost,
			Selected:   r.Selected,
			Selectable: r.Selectable,
		}
	}
	return out
}

func toSelectionResponse(sel domain.Selection) selectionResponse {
	switch s := sel.(type) {
	case domain.RegionSelection:
		if len(s.RegionIDs) > 0 {
			return selectionResponse{Mode: "regions", RegionIDs: s.RegionIDs}
		}
	case domain.SinglePassSelection:
		return selectionResponse{Mode: "single_pass", Pass: &passSelection{
			Kind:     s.Tier.Kind().String(),
			Category: s.Category,
			Price:    s.Price,
		}}
	}
	return selectionResponse{Mode: "empty"}
}

func toQuoteResponse(q domain.Quote) quoteResponse {
	out := quoteResponse{
		Vehicle:        toVehicleResponse(q.Vehicle),
		Category:       q.Priced.Category,
		Lines:          make([]pricedLineResponse, len(q.Priced.Lines)),
		TransactionFee: q.Priced.TransactionFee,
		Total:          q.Priced.Total,
	}
	for i, l := range q.Priced.Lines {
		out.Lines[i] = pricedLineResponse{Code: toTierCode(l.Code), Label: l.Label, Cost: l.Cost}
	}
	return out
}

func toOrderResponse(o domain.OrderReceipt) orderResponse {
	out := orderResponse{
		ID:             o.ID,
		SessionID:      o.SessionID,
		VehiclePlate:   o.VehiclePlate,
		Category:       o.Category,
		StatusCode:     o.StatusCode,
		Message:        o.Message,
		Lines:          make([]orderLineResponse, len(o.Lines)),
		TransactionFee: o.TransactionFee,
		Total:          o.Total,
		CreatedAt:      o.CreatedAt,
	}
	for i, l := range o.Lines {
		out.Lines[i] = orderLineResponse{Code: l.Code, Category: l.Category, Cost: l.Cost}
	}
	return out
}
