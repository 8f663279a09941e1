package models

// Money is a simple amount+currency pair used for deductibles and vehicle cost.
type Money struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
}

// PriceComponent is a single price fragment (e.g. "+ 9.45 /day", "60.85 in total").
type PriceComponent struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
	Prefix   string  `json:"prefix,omitempty"`
	Suffix   string  `json:"suffix,omitempty"`
}

// GenericPrice is the pricing block shared by vehicles, protection packages and addons.
type GenericPrice struct {
	DiscountPercentage float64         `json:"discountPercentage"`
	DisplayPrice       PriceComponent  `json:"displayPrice"`
	ListPrice          *PriceComponent `json:"listPrice,omitempty"`
	TotalPrice         *PriceComponent `json:"totalPrice,omitempty"`
}
