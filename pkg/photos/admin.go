package photos

import (
	"strings"
)

/**************************************************************************************************
** Reserved account names. "admin" denotes the privileged session and never has a backing
** User record; "stock" is the always-present demo account seeded on first run.
**************************************************************************************************/
const (
	AdminUsername = "admin"
	StockUsername = "stock"
)

/**************************************************************************************************
** UserStore is the persistence capability Admin needs: creating an account writes the
** fresh User record and deleting one removes it. The store package's Library implements
** it; tests use an in-memory stub.
**************************************************************************************************/
type UserStore interface {
	SaveUser(user *User) error
	DeleteUser(username string) error
}

/**************************************************************************************************
** Admin is the account registry. It keeps the list of usernames and, together with its
** UserStore, couples account-list mutation with account-data creation: CreateUser both
** appends the name and persists a brand-new User record in one call.
**
** "stock" is seeded into every fresh Admin and can never be deleted. "admin" can never be
** created or deleted as a regular account.
**************************************************************************************************/
type Admin struct {
	usernames []string
	store     UserStore
}

/**************************************************************************************************
** NewAdmin creates an Admin with the stock account pre-registered.
**
** @param store - Persistence backend for created/deleted accounts
** @return *Admin - The new registry
**************************************************************************************************/
func NewAdmin(store UserStore) *Admin {
	return &Admin{
		usernames: []string{StockUsername},
		store:     store,
	}
}

/**************************************************************************************************
** RestoreAdmin rebuilds an Admin from a persisted username list, re-seeding the stock
** account if the list lost it.
**************************************************************************************************/
func RestoreAdmin(usernames []string, store UserStore) *Admin {
	admin := &Admin{
		usernames: append([]string{}, usernames...),
		store:     store,
	}
	if !admin.UserExists(StockUsername) {
		admin.usernames = append(admin.usernames, StockUsername)
	}
	return admin
}

/**************************************************************************************************
** CreateUser registers a new account and immediately persists an empty User record for
** it. Blank names, duplicates (case-insensitive) and the reserved "admin" name are
** rejected.
**
** @param username - Account name, trimmed before any check
** @return bool - true if the account was created
**************************************************************************************************/
func (a *Admin) CreateUser(username string) bool {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return false
	}
	if strings.EqualFold(trimmed, AdminUsername) {
		return false
	}
	if a.UserExists(trimmed) {
		return false
	}

	a.usernames = append(a.usernames, trimmed)
	if a.store != nil {
		// The store logs its own I/O failures; the in-memory list stays authoritative.
		_ = a.store.SaveUser(NewUser(trimmed))
	}
	return true
}

/**************************************************************************************************
** DeleteUser removes an account and its backing record. The stock and admin names can
** never be deleted.
**
** @return bool - true if the account was removed
**************************************************************************************************/
func (a *Admin) DeleteUser(username string) bool {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return false
	}
	if strings.EqualFold(trimmed, StockUsername) || strings.EqualFold(trimmed, AdminUsername) {
		return false
	}

	for i, existing := range a.usernames {
		if strings.EqualFold(existing, trimmed) {
			a.usernames = append(a.usernames[:i], a.usernames[i+1:]...)
			if a.store != nil {
				_ = a.store.DeleteUser(existing)
			}
			return true
		}
	}
	return false
}

// ListUsers returns a copy of the registered usernames.
func (a *Admin) ListUsers() []string {
	out := make([]string, len(a.usernames))
	copy(out, a.usernames)
	return out
}

// UserExists reports whether the name is registered, case-insensitively.
func (a *Admin) UserExists(username string) bool {
	for _, existing := range a.usernames {
		if strings.EqualFold(existing, username) {
			return true
		}
	}
	return false
}
