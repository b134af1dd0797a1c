package domain

import "time"

// RateField names one of the four billing rates a rentable unit can carry.
type RateField string

const (
	RateHourly  RateField = "hourly"
	RateDaily   RateField = "daily"
	RateWeekend RateField = "weekend"
	RateWeekly  RateField = "weekly"
)

// Pricing is the rate card for a rentable unit. The daily rate is mandatory;
// the remaining rates are optional and stay nil when the item doesn't offer
// that billing period. All amounts are integer cents.
type Pricing struct {
	HourlyCents  *int32 `json:"hourly_cents,omitempty"`
	DailyCents   int32  `json:"daily_cents"`
	WeekendCents *int32 `json:"weekend_cents,omitempty"`
	WeeklyCents  *int32 `json:"weekly_cents,omitempty"`
}

// Rate returns the rate for the given field and whether it is defined.
func (p Pricing) Rate(field RateField) (int32, bool) {
	switch field {
	case RateHourly:
		if p.HourlyCents == nil {
			return 0, false
		}
		return *p.HourlyCents, true
	case RateDaily:
		return p.DailyCents, true
	case RateWeekend:
		if p.WeekendCents == nil {
			return 0, false
		}
		return *p.WeekendCents, true
	case RateWeekly:
		if p.WeeklyCents == nil {
			return 0, false
		}
		return *p.WeeklyCents, true
	}
	return 0, false
}

// VariationAttribute declares one axis of a variation matrix on a rental
// item, e.g. Size: [Small, Medium, Large]. Value order is significant and
// preserved in validation messages.
type VariationAttribute struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type RentalItem struct {
	ID              string               `json:"id"`
	TenantID        string               `json:"tenant_id"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	Pricing         *Pricing             `json:"pricing,omitempty"`
	HasVariations   bool                 `json:"has_variations"`
	AttributeSchema []VariationAttribute `json:"attribute_schema,omitempty"`
	Images          []Image              `json:"images,omitempty"`
	CreatedOn       time.Time            `json:"created_on"`
	UpdatedOn       time.Time            `json:"updated_on"`
}

// AttributeByName looks up a declared attribute axis by name.
func (i *RentalItem) AttributeByName(name string) (*VariationAttribute, bool) {
	for idx := range i.AttributeSchema {
		if i.AttributeSchema[idx].Name == name {
			return &i.AttributeSchema[idx], true
		}
	}
	return nil, false
}
