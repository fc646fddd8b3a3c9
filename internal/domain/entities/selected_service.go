package entities

// SelectedOption references a catalog option by position, with the quantity
// the customer picked (always >= 1 once selected).
type SelectedOption struct {
	OptionIndex int `json:"option_index"`
	Quantity    int `json:"quantity"`
}

// SelectedService is the customer's selection against one catalog service.
//
// BaseSelected alone decides whether the base price is charged: a selection
// with options but BaseSelected=false still contributes its option costs and
// nothing else.
type SelectedService struct {
	ServiceID    string           `json:"service_id"`
	BaseSelected bool             `json:"base_selected"`
	Options      []SelectedOption `json:"options"`
}
