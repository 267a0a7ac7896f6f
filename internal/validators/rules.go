package validators

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// rule is a single check bound to the field it guards.
type rule struct {
	field string
	ok    bool
	msg   string
}

// evaluate reports violated rules of the requested fields, or of all
// fields when none are requested. Messages keep declaration order.
func evaluate(rules []rule, fields ...string) error {
	selected := make(map[string]bool, len(fields))
	for _, f := range fields {
		known := false
		for _, r := range rules {
			if r.field == f {
				known = true
				break
			}
		}
		if !known {
			return ErrUnknownField
		}
		selected[f] = true
	}

	var messages []string
	for _, r := range rules {
		if len(selected) > 0 && !selected[r.field] {
			continue
		}
		if !r.ok {
			messages = append(messages, r.msg)
		}
	}

	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}

func notEmpty(field, value string) rule {
	return rule{field: field, ok: strings.TrimSpace(value) != "", msg: field + " should not be empty"}
}

func isEmail(field, value string) rule {
	return rule{field: field, ok: validEmail(value), msg: field + " must be an email"}
}

func isPhone(field, value string) rule {
	return rule{field: field, ok: validPhone(value), msg: field + " must be a valid phone number"}
}

func maxBytes(field, value string, limit int) rule {
	return rule{field: field, ok: len(value) <= limit, msg: fmt.Sprintf("%s must be at most %d bytes", field, limit)}
}

func nonNegative(field string, value float64) rule {
	return rule{field: field, ok: value >= 0, msg: field + " must not be negative"}
}

func optionalNotEmpty(field string, value *string) rule {
	return rule{field: field, ok: value == nil || strings.TrimSpace(*value) != "", msg: field + " should not be empty"}
}

func validEmail(value string) bool {
	if value == "" {
		return false
	}
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}

var (
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
	phonePattern    = regexp.MustCompile(`^\+?[1-9][0-9]{6,14}$`)
)

func validPhone(value string) bool {
	return phonePattern.MatchString(phoneSeparators.Replace(value))
}
