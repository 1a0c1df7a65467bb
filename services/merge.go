package services

import (
	"strings"

	"github.com/yeremiapane/hotel-brand-api/models"
	"github.com/yeremiapane/hotel-brand-api/repository"
)

// Partial updates coalesce: a value overwrites the stored one only when it is
// present and, for strings and lists, not empty.

func mergeString(f repository.Fields, column string, v *string) {
	if v != nil && strings.TrimSpace(*v) != "" {
		f[column] = *v
	}
}

func mergeInt(f repository.Fields, column string, v *int) {
	if v != nil {
		f[column] = *v
	}
}

func mergeFloat(f repository.Fields, column string, v *float64) {
	if v != nil {
		f[column] = *v
	}
}

func mergeList(f repository.Fields, column string, v []string) {
	if len(v) > 0 {
		f[column] = models.StringList(v)
	}
}

func optional(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}
