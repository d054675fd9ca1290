package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"

	"athwela/internal/domain/entities"
)

// Attributes that never change through a PIN-gated patch, whatever the collection.
var protectedFields = []string{"id", "secret_pin", "secret_pin_hash", "created_at", "updated_at", "version"}

// Need lifecycle state only moves through Pledge/Receive/Reopen. The derived
// names are listed too so clients echoing a response back do not trip validation.
var needLifecycleFields = []string{
	"pledges", "received_amount", "closed",
	"pledged_amount", "donor_pin", "pledged_at", "status",
}

// fieldValidator checks a patch value and returns it in the shape the store
// expects for that attribute.
type fieldValidator func(v any) (any, error)

// patchPolicy is the set of descriptive attributes a collection accepts in a patch.
type patchPolicy struct {
	stripped []string
	fields   map[string]fieldValidator
}

func (p patchPolicy) sanitize(collection string, patch entities.Patch) (entities.Patch, error) {
	clean := patch.Without(p.stripped...)
	if dropped := len(patch) - len(clean); dropped > 0 {
		log.Printf("[guard][usecase] stripped protected fields collection=%s count=%d", collection, dropped)
	}
	for k, v := range clean {
		validate, ok := p.fields[k]
		if !ok {
			return nil, fmt.Errorf("%w: field %q cannot be updated", ErrInvalidPatch, k)
		}
		if v == nil {
			return nil, fmt.Errorf("%w: field %q must not be null", ErrInvalidPatch, k)
		}
		normalized, err := validate(v)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidPatch, k, err)
		}
		clean[k] = normalized
	}
	if len(clean) == 0 {
		return nil, ErrInvalidPatch
	}
	return clean, nil
}

func defaultPatchPolicies() map[string]patchPolicy {
	withLifecycle := append(append([]string{}, protectedFields...), needLifecycleFields...)
	return map[string]patchPolicy{
		entities.CollectionNeeds: {
			stripped: withLifecycle,
			fields: map[string]fieldValidator{
				"type":           oneOf(string(entities.NeedTypeGoods), string(entities.NeedTypeService)),
				"item":           nonEmptyString,
				"category":       anyString,
				"urgency":        oneOf(string(entities.UrgencyLow), string(entities.UrgencyMedium), string(entities.UrgencyHigh)),
				"affected_count": nonNegativeInt,
				"demographics":   decodeAs[entities.Demographics],
				"quantity":       nonNegativeInt,
				"unit":           anyString,
				"district":       anyString,
				"location":       anyString,
				"coordinates":    decodeAs[entities.Coordinates],
				"contact_name":   anyString,
				"contact_number": anyString,
				"description":    anyString,
				"people_needed":  nonNegativeInt,
			},
		},
		entities.CollectionPeople: {
			stripped: protectedFields,
			fields: map[string]fieldValidator{
				"name":                 nonEmptyString,
				"nic":                  anyString,
				"district":             anyString,
				"status":               oneOf(string(entities.PersonStatusSafe), string(entities.PersonStatusMissing)),
				"last_seen_location":   anyString,
				"last_seen_date":       anyString,
				"age":                  nonNegativeInt,
				"gender":               anyString,
				"physical_description": anyString,
				"coordinates":          decodeAs[entities.Coordinates],
				"contact_number":       anyString,
				"reporter_name":        anyString,
				"reporter_contact":     anyString,
				"message":              anyString,
			},
		},
		entities.CollectionVolunteers: {
			stripped: protectedFields,
			fields: map[string]fieldValidator{
				"name":           nonEmptyString,
				"contact_number": nonEmptyString,
				"district":       anyString,
				"location":       anyString,
				"coordinates":    decodeAs[entities.Coordinates],
				"skills":         decodeAs[[]string],
				"coverage_area":  anyString,
				"status":         oneOf(string(entities.VolunteerStatusAvailable), string(entities.VolunteerStatusBusy)),
			},
		},
		entities.CollectionServiceRequests: {
			stripped: protectedFields,
			fields: map[string]fieldValidator{
				"category": oneOf(
					string(entities.ServiceCategoryRescue),
					string(entities.ServiceCategoryMedical),
					string(entities.ServiceCategoryEvacuation),
					string(entities.ServiceCategoryCleanup),
					string(entities.ServiceCategoryOther),
				),
				"details":  decodeAs[map[string]any],
				"location": decodeAs[entities.ServiceLocation],
				"contact":  decodeAs[entities.ServiceContact],
				"status": oneOf(
					string(entities.ServiceRequestStatusPending),
					string(entities.ServiceRequestStatusInProgress),
					string(entities.ServiceRequestStatusCompleted),
				),
			},
		},
	}
}

// maxPatchInt keeps counts inside the 32-bit range so they fit the entity's int
// on every platform.
const maxPatchInt = math.MaxInt32

func anyString(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("must be a string")
	}
	return s, nil
}

func nonEmptyString(v any) (any, error) {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil, fmt.Errorf("must be a non-empty string")
	}
	return s, nil
}

func nonNegativeInt(v any) (any, error) {
	var n float64
	switch x := v.(type) {
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case float64:
		// JSON numbers decode as float64.
		n = x
	default:
		return nil, fmt.Errorf("must be a non-negative integer")
	}
	if n < 0 || n > maxPatchInt || n != math.Trunc(n) {
		return nil, fmt.Errorf("must be an integer between 0 and %d", maxPatchInt)
	}
	return int(n), nil
}

// decodeAs round-trips v through JSON into T so nested values carry the same shape
// the repository reads back. Unknown keys are rejected.
func decodeAs[T any](v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var out T
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("must be a %T: %v", out, err)
	}
	return out, nil
}

func oneOf(allowed ...string) fieldValidator {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if ok {
			for _, a := range allowed {
				if s == a {
					return s, nil
				}
			}
		}
		return nil, fmt.Errorf("must be one of %v", allowed)
	}
}
