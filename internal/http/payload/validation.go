package payload

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var (
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	amountRegex  = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	emailRegex   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	limitRegex   = regexp.MustCompile(`^[0-9]+$`)
)

var (
	addressRule = validation.Match(addressRegex).Error("must be a 0x-prefixed 20 byte hex address")
	amountRule  = validation.Match(amountRegex).Error("must be a positive decimal number")
	emailRule   = validation.Match(emailRegex).Error("must be a valid email address")
)

// Validate runs the payload's own rules when it has any.
func Validate(object any) error {
	v, ok := object.(validation.Validatable)
	if !ok {
		return nil
	}

	if err := v.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}

// dateRule accepts an RFC3339 timestamp or a plain date.
var dateRule = validation.By(func(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, _, err := parseDate(s); err != nil {
		return fmt.Errorf("must be RFC3339 or %s", dateLayout)
	}
	return nil
})

// parseDate reports whether the input carried only a date so range ends
// can be stretched to the end of that day.
func parseDate(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), false, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.UTC(), true, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount: %w", err)
	}
	return amount, nil
}
