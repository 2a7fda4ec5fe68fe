package validation

import (
	"fmt"

	"contesthub/internal/domain"
)

// ValidateID checks that an identifier path segment is UUID-shaped before any lookup.
func ValidateID(resource, raw string) error {
	if raw == "" || !isUUID(raw) {
		return &domain.ValidationError{Messages: []string{
			fmt.Sprintf("Invalid %s id. Please provide a valid %s id in UUID format.", resource, resource),
		}}
	}
	return nil
}
