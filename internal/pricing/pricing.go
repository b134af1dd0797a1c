// Package pricing holds the pure decision logic for variation pricing and
// booking cost estimation. Nothing here performs I/O; all inputs are passed
// in by the caller.
package pricing

import (
	"fmt"

	"partyrent-backend/internal/domain"
)

// ResolveRate derives the rate charged for a single billing field from the
// parent's base rate and the variation's pricing policy.
//
// Per-policy rules:
//   - same_as_parent: the base rate, unchanged.
//   - adjustment: base + signed adjustment. Results are not clamped; a
//     negative result is passed through for the caller to judge.
//   - override: the override field when set and non-zero, else the base rate.
//     Fallback is per field, not per variation.
//   - anything else: the base rate (defensive default, never an error).
func ResolveRate(baseCents int32, v *domain.Variation, field domain.RateField) int32 {
	switch v.PricingPolicy {
	case domain.PricingSameAsParent:
		return baseCents
	case domain.PricingAdjustment:
		return baseCents + v.AdjustmentCents
	case domain.PricingOverride:
		if v.OverridePrice != nil {
			if override := v.OverridePrice.Rate(field); override != 0 {
				return override
			}
		}
		return baseCents
	}
	return baseCents
}

// ResolvePricing derives the full effective rate card for a variation from
// the parent item's pricing. The parent's daily rate is mandatory; optional
// rates the parent lacks are never invented.
func ResolvePricing(parent *domain.Pricing, v *domain.Variation) (domain.Pricing, error) {
	if parent == nil {
		return domain.Pricing{}, fmt.Errorf("%w: parent item pricing is required", domain.ErrInvalidInput)
	}

	switch v.PricingPolicy {
	case domain.PricingAdjustment:
		return domain.Pricing{
			HourlyCents:  shift(parent.HourlyCents, v.AdjustmentCents),
			DailyCents:   parent.DailyCents + v.AdjustmentCents,
			WeekendCents: shift(parent.WeekendCents, v.AdjustmentCents),
			WeeklyCents:  shift(parent.WeeklyCents, v.AdjustmentCents),
		}, nil

	case domain.PricingOverride:
		if v.OverridePrice == nil {
			return *parent, nil
		}
		return domain.Pricing{
			HourlyCents:  overrideOptional(v.OverridePrice.HourlyCents),
			DailyCents:   overrideDaily(v.OverridePrice.DailyCents, parent.DailyCents),
			WeekendCents: overrideOptional(v.OverridePrice.WeekendCents),
			WeeklyCents:  overrideOptional(v.OverridePrice.WeeklyCents),
		}, nil
	}

	// same_as_parent and unknown policies return the parent rate card
	// verbatim, preserving its optional-field shape.
	return *parent, nil
}

// shift applies a signed adjustment to an optional rate, leaving undefined
// rates undefined.
func shift(rate *int32, adjustment int32) *int32 {
	if rate == nil {
		return nil
	}
	shifted := *rate + adjustment
	return &shifted
}

// overrideOptional keeps a set override; omitted optional fields stay
// undefined rather than inheriting the parent value.
func overrideOptional(override int32) *int32 {
	if override == 0 {
		return nil
	}
	return &override
}

// overrideDaily falls back to the parent's mandatory daily rate when the
// override omits it.
func overrideDaily(override, parentDaily int32) int32 {
	if override == 0 {
		return parentDaily
	}
	return override
}
