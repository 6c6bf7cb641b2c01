package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"
	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/users"
)

func loadedContext(t *testing.T, a *Authenticator) context.Context {
	t.Helper()
	ctx, err := a.Manager().Load(context.Background(), "")
	require.NoError(t, err)
	return ctx
}

func newAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	store := users.NewUserStore(nil, nil)
	_, err := store.Create("chief", "editor-pass", model.RoleEditor)
	require.NoError(t, err)
	_, err = store.Create("eu-desk", "europe-pass", "europe")
	require.NoError(t, err)
	return NewAuthenticator(store)
}

func TestLoginBindsIdentity(t *testing.T) {
	a := newAuthenticator(t)
	ctx := loadedContext(t, a)

	redirect, err := a.Login(ctx, "eu-desk", "europe-pass")
	require.NoError(t, err)
	assert.Equal(t, "/europe/admin.html", redirect)

	id, role, ok := a.Identity(ctx)
	assert.True(t, ok)
	assert.Equal(t, "eu-desk", id)
	assert.Equal(t, "europe", role)
}

func TestLoginEditorRedirect(t *testing.T) {
	a := newAuthenticator(t)
	ctx := loadedContext(t, a)

	redirect, err := a.Login(ctx, "chief", "editor-pass")
	require.NoError(t, err)
	assert.Equal(t, "/admin.html", redirect)
}

func TestLoginWrongPassword(t *testing.T) {
	a := newAuthenticator(t)
	ctx := loadedContext(t, a)

	_, err := a.Login(ctx, "chief", "wrong")
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)

	_, _, ok := a.Identity(ctx)
	assert.False(t, ok)
}

func TestLogoutRedirects(t *testing.T) {
	a := newAuthenticator(t)

	ctx := loadedContext(t, a)
	_, err := a.Login(ctx, "eu-desk", "europe-pass")
	require.NoError(t, err)
	assert.Equal(t, "/europe/", a.Logout(ctx))

	ctx = loadedContext(t, a)
	_, err = a.Login(ctx, "chief", "editor-pass")
	require.NoError(t, err)
	assert.Equal(t, "/", a.Logout(ctx))
}

func TestLogoutWithoutSession(t *testing.T) {
	a := newAuthenticator(t)
	ctx := loadedContext(t, a)
	assert.Equal(t, "/", a.Logout(ctx))
}

func TestLogoutDestroysIdentity(t *testing.T) {
	a := newAuthenticator(t)
	ctx := loadedContext(t, a)
	_, err := a.Login(ctx, "chief", "editor-pass")
	require.NoError(t, err)

	a.Logout(ctx)
	_, _, ok := a.Identity(ctx)
	assert.False(t, ok)
}

func TestAdminPage(t *testing.T) {
	assert.Equal(t, "/admin.html", AdminPage(model.RoleEditor))
	assert.Equal(t, "/asia/admin.html", AdminPage("asia"))
}
