package domain

import "time"

type PricingPolicy string

const (
	PricingSameAsParent PricingPolicy = "same_as_parent"
	PricingAdjustment   PricingPolicy = "adjustment"
	PricingOverride     PricingPolicy = "override"
)

type VariationStatus string

const (
	VariationStatusActive   VariationStatus = "active"
	VariationStatusInactive VariationStatus = "inactive"
)

// AttributeValue is one concrete attribute of a variation, e.g. Size=Large.
type AttributeValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PriceOverride holds per-field rate overrides. A zero field means "not
// overridden"; resolution falls back to the parent rate for that field.
type PriceOverride struct {
	HourlyCents  int32 `json:"hourly_cents,omitempty"`
	DailyCents   int32 `json:"daily_cents,omitempty"`
	WeekendCents int32 `json:"weekend_cents,omitempty"`
	WeeklyCents  int32 `json:"weekly_cents,omitempty"`
}

// Rate returns the override for the given field; zero means unset.
func (o PriceOverride) Rate(field RateField) int32 {
	switch field {
	case RateHourly:
		return o.HourlyCents
	case RateDaily:
		return o.DailyCents
	case RateWeekend:
		return o.WeekendCents
	case RateWeekly:
		return o.WeeklyCents
	}
	return 0
}

// Variation is a concrete purchasable configuration of a rental item, e.g.
// "Large / Blue". Its effective price is always derived from the parent
// item's rate card plus the variation's pricing policy, never stored.
type Variation struct {
	ID              string           `json:"id"`
	TenantID        string           `json:"tenant_id"`
	RentalItem      Ref[RentalItem]  `json:"rental_item"`
	Name            string           `json:"name"`
	SKU             string           `json:"sku"`
	Attributes      []AttributeValue `json:"attributes"`
	PricingPolicy   PricingPolicy    `json:"pricing_policy"`
	AdjustmentCents int32            `json:"adjustment_cents,omitempty"`
	OverridePrice   *PriceOverride   `json:"override_price,omitempty"`
	Quantity        int32            `json:"quantity"`
	TrackInventory  bool             `json:"track_inventory"`
	Status          VariationStatus  `json:"status"`
	Images          []Image          `json:"images,omitempty"`
	CreatedOn       time.Time        `json:"created_on"`
	UpdatedOn       time.Time        `json:"updated_on"`
}

// EffectiveQuantity is the number of interchangeable physical units,
// defaulting to 1 when unset.
func (v *Variation) EffectiveQuantity() int32 {
	if v.Quantity < 1 {
		return 1
	}
	return v.Quantity
}
