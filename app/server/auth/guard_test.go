package auth

import (
	"context"
	"github.com/Edward-Brock/x-dimension/app/server/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestGuard_Authenticate(t *testing.T) {
	h := newHarness(t)
	created := h.signUp(t, "Ann", "ann1", "secret123")
	pair := h.signIn(t, "ann1", "secret123")

	claims, err := h.guard.Authenticate("Bearer " + pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.Subject)
	assert.Equal(t, []string{constants.RoleNameUser}, claims.Roles)
}

func TestGuard_HeaderShapes(t *testing.T) {
	h := newHarness(t)
	h.signUp(t, "Ann", "ann1", "secret123")
	pair := h.signIn(t, "ann1", "secret123")

	cases := []struct {
		header string
		want   *Error
	}{
		{"", ErrMissingHeader},
		{"Bearer", ErrMalformedHeader},
		{"Bearer ", ErrMalformedHeader},
		{"bearer " + pair.AccessToken, ErrMalformedHeader},
		{"Token " + pair.AccessToken, ErrMalformedHeader},
		{"Bearer " + pair.AccessToken + " extra", ErrMalformedHeader},
		{"Bearer  " + pair.AccessToken, ErrMalformedHeader},
		{"Bearer garbage", ErrUnauthenticated},
		{"Bearer " + pair.RefreshToken, ErrUnauthenticated},
	}
	for _, tc := range cases {
		_, err := h.guard.Authenticate(tc.header)
		assert.ErrorIs(t, err, tc.want, "header %q", tc.header)
	}
}

func TestGuard_Profile(t *testing.T) {
	h := newHarness(t)
	created := h.signUp(t, "Ann", "ann1", "secret123")
	pair := h.signIn(t, "ann1", "secret123")

	claims, err := h.guard.Authenticate("Bearer " + pair.AccessToken)
	require.NoError(t, err)

	profile, err := h.guard.Profile(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, created.ID, profile.ID)
	assert.Equal(t, "ann1", profile.Username)
	assert.Equal(t, []string{constants.RoleNameUser}, profile.Roles)

	delete(h.store.users, created.ID)
	_, err = h.guard.Profile(context.Background(), claims)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
