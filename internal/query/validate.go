// internal/query/validate.go
package query

import (
	"fmt"
	"regexp"
	"strings"

	apierrors "voteview-client/internal/common/errors"
)

// datePattern accepts YYYY, YYYY-MM (MM 01-12) and YYYY-MM-DD (DD 01-31).
// Day-of-month is only range-checked, not checked against the calendar.
var datePattern = regexp.MustCompile(`^\d{4}(-(0[1-9]|1[0-2])(-(0[1-9]|[12]\d|3[01]))?)?$`)

func validate(p Params) error {
	if p.isEmpty() {
		return apierrors.NewValidationError("", "at least one search parameter must be set")
	}

	if err := validateDate("startdate", p.StartDate); err != nil {
		return err
	}
	if err := validateDate("enddate", p.EndDate); err != nil {
		return err
	}

	for _, c := range p.Congress {
		if c <= 0 || c > 999 {
			return apierrors.NewValidationError("congress",
				fmt.Sprintf("congress number %d must be in (0, 999]", c))
		}
	}

	if err := validateSupport(p.MinSupport, p.MaxSupport); err != nil {
		return err
	}

	if p.Chamber != "" {
		switch strings.ToLower(p.Chamber) {
		case "house", "senate":
		default:
			return apierrors.NewValidationError("chamber",
				fmt.Sprintf("chamber %q must be house or senate", p.Chamber))
		}
	}

	return nil
}

func validateDate(field, value string) error {
	if value == "" {
		return nil
	}
	if !datePattern.MatchString(value) {
		return apierrors.NewValidationError(field,
			fmt.Sprintf("date %q must be YYYY, YYYY-MM or YYYY-MM-DD", value))
	}
	return nil
}

func validateSupport(min, max *float64) error {
	if min != nil && (*min < 0 || *min > 100) {
		return apierrors.NewValidationError("support",
			fmt.Sprintf("minimum support %v must be in [0, 100]", *min))
	}
	if max != nil && (*max < 0 || *max > 100) {
		return apierrors.NewValidationError("support",
			fmt.Sprintf("maximum support %v must be in [0, 100]", *max))
	}
	if min != nil && max != nil && *max < *min {
		return apierrors.NewValidationError("support",
			fmt.Sprintf("maximum support %v is below minimum %v", *max, *min))
	}
	return nil
}
