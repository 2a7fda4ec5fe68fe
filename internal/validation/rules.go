package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d{3})?Z$`)

// field reports how a key is populated: absent (missing, null or ""), a string, or a
// value of some other JSON type.
type field struct {
	value     string
	present   bool
	wrongType bool
}

func (p Payload) field(name string) field {
	raw, ok := p[name]
	if !ok || raw == nil {
		return field{}
	}
	s, ok := raw.(string)
	if !ok {
		return field{present: true, wrongType: true}
	}
	if s == "" {
		return field{}
	}
	return field{value: s, present: true}
}

func lengthWithin(value string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	return n >= min && n <= max
}

// IsISODate reports whether value is a strict UTC timestamp that also denotes a real instant.
func IsISODate(value string) bool {
	_, ok := parseISODate(value)
	return ok
}

func parseISODate(value string) (time.Time, bool) {
	if !isoDateRegex.MatchString(value) {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

func isUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

type collector struct {
	errs []string
}

func (c *collector) add(msg string) {
	c.errs = append(c.errs, msg)
}

// text runs a trimmed length rule; missingMsg is only reported on create.
func (c *collector) text(p Payload, name string, min, max int, isUpdate bool, invalidMsg, missingMsg string) {
	f := p.field(name)
	switch {
	case f.wrongType:
		c.add(invalidMsg)
	case f.present:
		if !lengthWithin(f.value, min, max) {
			c.add(invalidMsg)
		}
	case !isUpdate && missingMsg != "":
		c.add(missingMsg)
	}
}

func (c *collector) id(p Payload, name string, isUpdate bool, invalidMsg, missingMsg string) {
	f := p.field(name)
	switch {
	case f.wrongType:
		c.add(invalidMsg)
	case f.present:
		if !isUUID(f.value) {
			c.add(invalidMsg)
		}
	case !isUpdate && missingMsg != "":
		c.add(missingMsg)
	}
}

// date returns the parsed instant when the field is present and well formed.
func (c *collector) date(p Payload, name string, isUpdate bool, invalidMsg, missingMsg string) (time.Time, bool) {
	f := p.field(name)
	switch {
	case f.wrongType:
		c.add(invalidMsg)
	case f.present:
		t, ok := parseISODate(f.value)
		if !ok {
			c.add(invalidMsg)
			return time.Time{}, false
		}
		return t, true
	case !isUpdate && missingMsg != "":
		c.add(missingMsg)
	}
	return time.Time{}, false
}

// enum checks membership in allowed; on create an absent value is filled into out with
// the first allowed value, lower-cased.
func (c *collector) enum(p, out Payload, name string, allowed []string, isUpdate bool, invalidMsg string) {
	f := p.field(name)
	switch {
	case f.wrongType:
		c.add(invalidMsg)
	case f.present:
		for _, a := range allowed {
			if f.value == a {
				return
			}
		}
		c.add(invalidMsg)
	case !isUpdate && len(allowed) > 0:
		out[name] = strings.ToLower(allowed[0])
	}
}

func (c *collector) immutable(p Payload, name string, isUpdate bool, msg string) {
	if !isUpdate {
		return
	}
	if _, ok := p[name]; ok {
		c.add(msg)
	}
}
