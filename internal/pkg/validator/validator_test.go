package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("asha@example.com"))
	require.True(t, IsValidEmail("juma.omari+jirani@mail.co.tz"))

	require.False(t, IsValidEmail(""))
	require.False(t, IsValidEmail("   "))
	require.False(t, IsValidEmail("no-at-sign"))
	require.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidPhone(t *testing.T) {
	require.True(t, IsValidPhone("+255712345678"))
	require.True(t, IsValidPhone("255712345678"))

	require.False(t, IsValidPhone(""))
	require.False(t, IsValidPhone("0712-345-678"))
	require.False(t, IsValidPhone("not a phone"))
}

func TestIsBlank(t *testing.T) {
	require.True(t, IsBlank(""))
	require.True(t, IsBlank("  \t\n"))
	require.False(t, IsBlank("x"))
}
