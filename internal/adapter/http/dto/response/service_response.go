package response

import (
	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/internal/domain/pricing"
)

type ServiceOptionResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ServiceResponse struct {
	ServiceID   string                  `json:"service_id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	BasePrice   float64                 `json:"base_price"`
	Options     []ServiceOptionResponse `json:"options"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

func FromCatalog(cat *entities.Catalog) ServiceListResponse {
	entries := cat.Entries()
	out := make([]ServiceResponse, 0, len(entries))
	for _, e := range entries {
		opts := make([]ServiceOptionResponse, 0, len(e.Options))
		for _, o := range e.Options {
			opts = append(opts, ServiceOptionResponse{Name: o.Name, Price: pricing.RoundMoney(o.Price)})
		}
		out = append(out, ServiceResponse{
			ServiceID:   e.ServiceID,
			Name:        e.Name,
			Description: e.Description,
			BasePrice:   pricing.RoundMoney(e.BasePrice),
			Options:     opts,
		})
	}
	return ServiceListResponse{Services: out}
}
