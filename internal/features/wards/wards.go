package wards

import "strings"

// Registry holds the known ward list for the deployment. Reports,
// announcements and users must reference one of these wards.
type Registry struct {
	wards []string
	index map[string]bool
}

// TargetAll is the announcement targeting sentinel for "every ward".
const TargetAll = "all"

// Normalize returns the canonical spelling of a ward: trimmed and lowercased.
// Wards are persisted and matched in this form only.
func Normalize(ward string) string {
	return strings.ToLower(strings.TrimSpace(ward))
}

func NewRegistry(wards []string) *Registry {
	normalized := make([]string, 0, len(wards))
	index := make(map[string]bool, len(wards))
	for _, w := range wards {
		n := Normalize(w)
		normalized = append(normalized, n)
		index[n] = true
	}
	return &Registry{wards: normalized, index: index}
}

// List returns the known wards in registry order.
func (r *Registry) List() []string {
	out := make([]string, len(r.wards))
	copy(out, r.wards)
	return out
}

// Canonical maps any accepted spelling to the stored form. Callers must
// persist and filter on the returned string, never the input.
func (r *Registry) Canonical(ward string) (string, bool) {
	n := Normalize(ward)
	return n, r.index[n]
}

// CanonicalTarget is Canonical extended with the "all" sentinel.
func (r *Registry) CanonicalTarget(ward string) (string, bool) {
	n := Normalize(ward)
	if n == TargetAll {
		return n, true
	}
	return n, r.index[n]
}

// IsValid reports whether the ward is known (case-insensitive).
func (r *Registry) IsValid(ward string) bool {
	_, ok := r.Canonical(ward)
	return ok
}

// IsValidTarget accepts a known ward or the "all" sentinel.
func (r *Registry) IsValidTarget(ward string) bool {
	_, ok := r.CanonicalTarget(ward)
	return ok
}
