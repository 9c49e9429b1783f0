package nav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/inventory-keeper/internal/client/nav"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name          string
		route         nav.Route
		authenticated bool
		expected      nav.Decision
	}{
		{
			name:          "protected route without auth redirects to login",
			route:         nav.Route{Path: nav.PathItems, RequiresAuth: true},
			authenticated: false,
			expected:      nav.RedirectLogin,
		},
		{
			name:          "protected route with auth proceeds",
			route:         nav.Route{Path: nav.PathItems, RequiresAuth: true},
			authenticated: true,
			expected:      nav.Proceed,
		},
		{
			name:          "login while authenticated redirects home",
			route:         nav.Route{Path: nav.PathLogin},
			authenticated: true,
			expected:      nav.RedirectHome,
		},
		{
			name:          "register while authenticated redirects home",
			route:         nav.Route{Path: nav.PathRegister},
			authenticated: true,
			expected:      nav.RedirectHome,
		},
		{
			name:          "login while anonymous proceeds",
			route:         nav.Route{Path: nav.PathLogin},
			authenticated: false,
			expected:      nav.Proceed,
		},
		{
			name:          "public route while anonymous proceeds",
			route:         nav.Route{Path: nav.PathHome},
			authenticated: false,
			expected:      nav.Proceed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, nav.Decide(tc.route, tc.authenticated))
		})
	}
}

func TestFind(t *testing.T) {
	route, ok := nav.Find(nav.PathReports)
	require.True(t, ok)
	assert.True(t, route.RequiresAuth)
	assert.Equal(t, "reports", route.Name)

	_, ok = nav.Find("/unknown")
	assert.False(t, ok)
}
