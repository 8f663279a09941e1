package models

// ProtectionPackagesResponse wraps the protections catalog for a booking.
type ProtectionPackagesResponse struct {
	ProtectionPackages []ProtectionPackage `json:"protectionPackages,omitempty"`
}

type ProtectionPackage struct {
	ID                    string              `json:"id"`
	Name                  string              `json:"name,omitempty"`
	Description           string              `json:"description,omitempty"` // only present on the "no protection" entry
	DeductibleAmount      *Money              `json:"deductibleAmount,omitempty"`
	RatingStars           int                 `json:"ratingStars,omitempty"`
	IsPreviouslySelected  bool                `json:"isPreviouslySelected,omitempty"`
	IsSelected            bool                `json:"isSelected,omitempty"`
	IsDeductibleAvailable bool                `json:"isDeductibleAvailable,omitempty"`
	Includes              []ProtectionFeature `json:"includes,omitempty"`
	Excludes              []ProtectionFeature `json:"excludes,omitempty"`
	Price                 *GenericPrice       `json:"price,omitempty"`
	IsNudge               bool                `json:"isNudge,omitempty"`
}

type ProtectionFeature struct {
	ID          string   `json:"id"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
