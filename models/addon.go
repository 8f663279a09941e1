package models

// AddonsResponse wraps the addon catalog for a booking.
type AddonsResponse struct {
	Addons []AddonCategory `json:"addons,omitempty"`
}

// AddonCategory groups purchasable extras (child seats, GPS, ...).
type AddonCategory struct {
	ID      int           `json:"id"`
	Name    string        `json:"name,omitempty"`
	Options []AddonOption `json:"options,omitempty"`
}

type AddonOption struct {
	ChargeDetail   *AddonChargeDetail   `json:"chargeDetail,omitempty"`
	AdditionalInfo *AddonAdditionalInfo `json:"additionalInfo,omitempty"`
}

type AddonChargeDetail struct {
	ID          string   `json:"id"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	IconURL     string   `json:"iconUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type AddonAdditionalInfo struct {
	Price                *GenericPrice           `json:"price,omitempty"`
	IsPreviouslySelected bool                    `json:"isPreviouslySelected,omitempty"`
	IsSelected           bool                    `json:"isSelected,omitempty"`
	IsEnabled            bool                    `json:"isEnabled,omitempty"`
	SelectionStrategy    *AddonSelectionStrategy `json:"selectionStrategy,omitempty"`
	IsNudge              bool                    `json:"isNudge,omitempty"`
}

type AddonSelectionStrategy struct {
	IsMultiSelectionAllowed bool `json:"isMultiSelectionAllowed,omitempty"`
	MaxSelectionLimit       int  `json:"maxSelectionLimit,omitempty"`
	CurrentSelection        int  `json:"currentSelection,omitempty"`
}

// BookingAddon is the client-local record of a selected addon. The id matches an
// AddonOption's charge-detail id; at most one entry exists per id and repeated
// selections accumulate into Amount.
type BookingAddon struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Amount int    `json:"amount"`
}
