package store

import (
	"strings"

	"github.com/photokeep/photokeep/pkg/photos"
)

/**************************************************************************************************
** SessionState is the explicit login state. The admin session is its own variant rather
** than a nil current user, so "no one has logged in yet" and "the admin is logged in" are
** distinguishable.
**************************************************************************************************/
type SessionState int

const (
	StateLoggedOut SessionState = iota // No active session
	StateAdmin                         // The privileged admin identity, no backing User
	StateUser                          // A regular account with a loaded User
)

func (s SessionState) String() string {
	switch s {
	case StateAdmin:
		return "admin"
	case StateUser:
		return "user"
	}
	return "logged-out"
}

/**************************************************************************************************
** Session pairs the state with the loaded user. user is non-nil only in StateUser.
**************************************************************************************************/
type Session struct {
	state SessionState
	user  *photos.User
}

// State returns the current session state.
func (l *Library) State() SessionState {
	return l.session.state
}

// CurrentUser returns the logged-in user, nil unless a regular account session is active.
func (l *Library) CurrentUser() *photos.User {
	return l.session.user
}

// IsAdminLoggedIn reports whether the privileged admin session is active.
func (l *Library) IsAdminLoggedIn() bool {
	return l.session.state == StateAdmin
}

/**************************************************************************************************
** Login starts a session for the given name. The reserved admin name always succeeds and
** starts the privileged session. Any other name must be a registered account; its User is
** taken from memory or lazily created (and persisted) when the account exists in the
** registry without a stored record.
**
** @param username - Account name, matched case-insensitively
** @return bool - true when a session was started; on failure the session is unchanged
**************************************************************************************************/
func (l *Library) Login(username string) bool {
	if strings.EqualFold(username, photos.AdminUsername) {
		l.session = Session{state: StateAdmin}
		return true
	}

	if !l.admin.UserExists(username) {
		return false
	}

	user := l.UserByName(username)
	if user == nil {
		user = photos.NewUser(username)
		l.users = append(l.users, user)
		if err := l.SaveUser(user); err != nil {
			l.logger.WithError(err).WithField("user", username).Error("Failed to persist new user record")
		}
	}

	l.session = Session{state: StateUser, user: user}
	return true
}

/**************************************************************************************************
** Logout persists the current user, if any, and clears the session.
**************************************************************************************************/
func (l *Library) Logout() {
	if l.session.user != nil {
		if err := l.SaveUser(l.session.user); err != nil {
			l.logger.WithError(err).Error("Failed to save user on logout")
		}
	}
	l.session = Session{}
}

/**************************************************************************************************
** SaveCurrentUser flushes the logged-in user's record. A no-op for the admin session and
** while logged out.
**************************************************************************************************/
func (l *Library) SaveCurrentUser() error {
	if l.session.user == nil {
		return nil
	}
	return l.SaveUser(l.session.user)
}
