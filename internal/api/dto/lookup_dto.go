package dto

import (
	"github.com/zaer/hr-service/internal/domain"
)

// LookupResponse renders a reference record. The label key depends on the
// kind, e.g. "name" for nationalities or "title" for designations.
func LookupResponse(item *domain.Lookup) map[string]any {
	return map[string]any{
		"uid":             item.ID,
		item.Kind.Field(): item.Label,
		"created_by":      item.CreatedBy,
		"modified_by":     item.ModifiedBy,
		"date_created":    item.DateCreated,
		"date_modified":   item.DateModified,
	}
}

// OrgUnitResponse renders a hierarchy node with its parent key, e.g. "division_uid".
func OrgUnitResponse(unit *domain.OrgUnit) map[string]any {
	return map[string]any{
		"uid":                  unit.ID,
		"name":                 unit.Name,
		unit.Level.ParentKey(): unit.ParentID,
		"created_by":           unit.CreatedBy,
		"modified_by":          unit.ModifiedBy,
		"date_created":         unit.DateCreated,
		"date_modified":        unit.DateModified,
	}
}
