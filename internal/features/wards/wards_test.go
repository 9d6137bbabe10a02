package wards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryList(t *testing.T) {
	r := NewRegistry([]string{"kati", "magharibi"})

	list := r.List()
	require.Equal(t, []string{"kati", "magharibi"}, list)

	// List returns a copy; callers must not be able to mutate the registry.
	list[0] = "mutated"
	require.Equal(t, []string{"kati", "magharibi"}, r.List())
}

func TestRegistryIsValid(t *testing.T) {
	r := NewRegistry([]string{"kati", "Magharibi"})

	require.True(t, r.IsValid("kati"))
	require.True(t, r.IsValid("KATI"))
	require.True(t, r.IsValid("  magharibi "))
	require.False(t, r.IsValid("kusini"))
	require.False(t, r.IsValid(""))
}

func TestRegistryCanonical(t *testing.T) {
	r := NewRegistry([]string{"kati", "Magharibi"})

	ward, ok := r.Canonical(" KATI ")
	require.True(t, ok)
	require.Equal(t, "kati", ward)

	ward, ok = r.Canonical("magharibi")
	require.True(t, ok)
	require.Equal(t, "magharibi", ward)

	_, ok = r.Canonical("kusini")
	require.False(t, ok)
}

func TestRegistryCanonicalTarget(t *testing.T) {
	r := NewRegistry([]string{"kati"})

	target, ok := r.CanonicalTarget(" ALL ")
	require.True(t, ok)
	require.Equal(t, TargetAll, target)

	target, ok = r.CanonicalTarget("Kati")
	require.True(t, ok)
	require.Equal(t, "kati", target)

	_, ok = r.CanonicalTarget("kusini")
	require.False(t, ok)
}

func TestRegistryListIsCanonical(t *testing.T) {
	r := NewRegistry([]string{" Kati ", "MAGHARIBI"})
	require.Equal(t, []string{"kati", "magharibi"}, r.List())
}

func TestRegistryIsValidTarget(t *testing.T) {
	r := NewRegistry([]string{"kati"})

	require.True(t, r.IsValidTarget("all"))
	require.True(t, r.IsValidTarget("ALL"))
	require.True(t, r.IsValidTarget("kati"))
	require.False(t, r.IsValidTarget("kusini"))
}
