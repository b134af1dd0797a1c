package pricing

import (
	"fmt"
	"strings"

	"partyrent-backend/internal/domain"
)

// ValidateVariationAttributes checks submitted attribute pairs against the
// parent item's declared attribute schema. All submitted attributes are
// checked and every problem is collected; the result is never fail-fast.
//
// Fails closed: a parent without variations (or without a schema) yields a
// single error regardless of what was submitted.
func ValidateVariationAttributes(parent *domain.RentalItem, attrs []domain.AttributeValue) domain.ValidationResult {
	var errs []string

	if parent == nil || !parent.HasVariations || len(parent.AttributeSchema) == 0 {
		errs = append(errs, "Parent item does not support variations")
		return domain.ValidationResult{Valid: false, Errors: errs}
	}

	for _, attr := range attrs {
		declared, ok := parent.AttributeByName(attr.Name)
		if !ok {
			errs = append(errs, fmt.Sprintf("Attribute %q is not defined in parent item", attr.Name))
			continue
		}

		if !contains(declared.Values, attr.Value) {
			errs = append(errs, fmt.Sprintf("Value %q is not valid for attribute %q. Valid values: %s",
				attr.Value, attr.Name, strings.Join(declared.Values, ", ")))
		}
	}

	return domain.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// GenerateVariationName builds a default display name by joining attribute
// values in order, e.g. "Large Blue". Staff-entered names take precedence.
func GenerateVariationName(attrs []domain.AttributeValue) string {
	values := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		values = append(values, attr.Value)
	}
	return strings.Join(values, " ")
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
