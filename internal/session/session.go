// Package session implements login sessions on top of scs: an opaque
// cookie references a server-held {id, role} pair.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"
	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/users"
)

const (
	keyUserID = "uid"
	keyRole   = "role"
)

// Authenticator verifies credentials against the user store and owns
// the resulting sessions. Sessions live in memory and expire a fixed
// 24 hours after creation; there is no idle-timeout sliding.
type Authenticator struct {
	manager *scs.SessionManager
	users   *users.UserStore
}

// NewAuthenticator wires a session manager with the portal's cookie
// policy. Session data stays in scs's in-memory store.
func NewAuthenticator(store *users.UserStore) *Authenticator {
	m := scs.New()
	m.Lifetime = 24 * time.Hour
	m.IdleTimeout = 0 // fixed expiry from creation, no sliding window
	m.Cookie.HttpOnly = true
	m.Cookie.SameSite = http.SameSiteLaxMode
	m.Cookie.Secure = false // running behind plain HTTP, e.g. localhost or a proxy
	return &Authenticator{manager: m, users: store}
}

// Manager exposes the underlying scs manager for the LoadAndSave
// wrapper around the HTTP handler chain.
func (a *Authenticator) Manager() *scs.SessionManager {
	return a.manager
}

// Login verifies the credentials and, on success, binds the identity
// to the session and returns the role's admin page. The session token
// is renewed first so a pre-login token cannot be fixated.
func (a *Authenticator) Login(ctx context.Context, username, password string) (string, error) {
	account, err := a.users.Verify(username, password)
	if err != nil {
		return "", err
	}
	if err := a.manager.RenewToken(ctx); err != nil {
		return "", err
	}
	a.manager.Put(ctx, keyUserID, account.ID)
	a.manager.Put(ctx, keyRole, account.Role)
	return AdminPage(account.Role), nil
}

// Logout destroys the session and returns where the client should go
// next: a continent role lands on its region's front page, everyone
// else on the portal home. It never fails, session or not.
func (a *Authenticator) Logout(ctx context.Context) string {
	redirect := "/"
	if role := a.manager.GetString(ctx, keyRole); role != model.RoleEditor && model.ValidRole(role) {
		redirect = "/" + role + "/"
	}
	_ = a.manager.Destroy(ctx)
	return redirect
}

// Identity returns the authenticated id and role, or ok == false for
// an anonymous request.
func (a *Authenticator) Identity(ctx context.Context) (id, role string, ok bool) {
	id = a.manager.GetString(ctx, keyUserID)
	role = a.manager.GetString(ctx, keyRole)
	return id, role, id != ""
}

// AdminPage maps a role to its admin surface: editors manage the whole
// portal, a continent role manages its own region.
func AdminPage(role string) string {
	if role == model.RoleEditor {
		return "/admin.html"
	}
	return "/" + role + "/admin.html"
}
