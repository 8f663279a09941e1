package models

// Vehicle carries the catalog attributes of a rentable car.
type Vehicle struct {
	ID                 string             `json:"id"`
	Brand              string             `json:"brand,omitempty"`
	Model              string             `json:"model,omitempty"`
	AcrissCode         string             `json:"acrissCode,omitempty"`
	Images             []string           `json:"images,omitempty"`
	BagsCount          int                `json:"bagsCount,omitempty"`
	PassengersCount    int                `json:"passengersCount,omitempty"`
	GroupType          string             `json:"groupType,omitempty"`
	TyreType           string             `json:"tyreType,omitempty"`
	TransmissionType   string             `json:"transmissionType,omitempty"`
	FuelType           string             `json:"fuelType,omitempty"`
	IsNewCar           bool               `json:"isNewCar,omitempty"`
	IsRecommended      bool               `json:"isRecommended,omitempty"`
	IsMoreLuxury       bool               `json:"isMoreLuxury,omitempty"`
	IsExcitingDiscount bool               `json:"isExcitingDiscount,omitempty"`
	Attributes         []VehicleAttribute `json:"attributes,omitempty"`
	VehicleStatus      string             `json:"vehicleStatus,omitempty"`
	VehicleCost        *Money             `json:"vehicleCost,omitempty"`
	UpsellReasons      []string           `json:"upsellReasons,omitempty"`
}

// VehicleAttribute is a keyed display attribute; some upsell attributes have no icon.
type VehicleAttribute struct {
	Key           string `json:"key"`
	Title         string `json:"title,omitempty"`
	Value         string `json:"value,omitempty"`
	AttributeType string `json:"attributeType,omitempty"`
	IconURL       string `json:"iconUrl,omitempty"`
}

// SelectedVehicle is a vehicle plus its pricing snapshot. The same shape is used
// for the booking's chosen vehicle and for entries in the available-vehicles list.
type SelectedVehicle struct {
	Vehicle  Vehicle       `json:"vehicle"`
	Pricing  *GenericPrice `json:"pricing,omitempty"`
	DealInfo string        `json:"dealInfo,omitempty"`
	Tags     []string      `json:"tags,omitempty"`
	PriceTag string        `json:"priceTag,omitempty"`
}
