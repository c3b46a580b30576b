package postal

import "github.com/google/uuid"

// ConfigurationView is a tenant's resolved, enabled option set: only active
// catalog records the tenant has assignments for, each list ordered by sort
// order. It is the unit stored in the tenant configuration cache and must
// never be served partially built.
type ConfigurationView struct {
	TenantKey string               `json:"tenant_key"`
	Colors    []PrintColorOption   `json:"colors"`
	Sides     []PrintSideOption    `json:"sides"`
	Envelopes []EnvelopeFormat     `json:"envelopes"`
	Speeds    []PostageSpeedOption `json:"speeds"`
}

// Envelope returns the enabled envelope with the given id, if any
func (v *ConfigurationView) Envelope(id uuid.UUID) (*EnvelopeFormat, bool) {
	for i := range v.Envelopes {
		if v.Envelopes[i].ID == id {
			return &v.Envelopes[i], true
		}
	}
	return nil, false
}

// Speed returns the enabled speed with the given id, if any
func (v *ConfigurationView) Speed(id uuid.UUID) (*PostageSpeedOption, bool) {
	for i := range v.Speeds {
		if v.Speeds[i].ID == id {
			return &v.Speeds[i], true
		}
	}
	return nil, false
}

// HasSideMode reports whether the tenant has an enabled side option whose
// code carries the given mode
func (v *ConfigurationView) HasSideMode(mode PrintSideMode) bool {
	for i := range v.Sides {
		if v.Sides[i].Code == string(mode) {
			return true
		}
	}
	return false
}

// AdmissibleEnvelopes returns the enabled envelopes that can carry the given
// sheet weight, preserving sort order.
func (v *ConfigurationView) AdmissibleEnvelopes(sheetWeightGrams int) []EnvelopeFormat {
	out := make([]EnvelopeFormat, 0, len(v.Envelopes))
	for _, e := range v.Envelopes {
		if e.CanCarry(sheetWeightGrams) {
			out = append(out, e)
		}
	}
	return out
}
