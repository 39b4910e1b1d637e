package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/photokeep/photokeep/pkg/photos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/************************************************************************************************
** Test the session state machine: LoggedOut -> Admin/User -> LoggedOut
************************************************************************************************/
func TestSessionStateMachine(t *testing.T) {
	library := openTestLibrary(t, t.TempDir(), "")

	// Before any login nothing is active, including the admin session.
	assert.Equal(t, StateLoggedOut, library.State())
	assert.False(t, library.IsAdminLoggedIn())
	assert.Nil(t, library.CurrentUser())

	// The reserved admin name always succeeds, any casing.
	assert.True(t, library.Login("ADMIN"))
	assert.Equal(t, StateAdmin, library.State())
	assert.True(t, library.IsAdminLoggedIn())
	assert.Nil(t, library.CurrentUser(), "the admin session has no backing user")

	// Unknown accounts fail and leave the session untouched.
	assert.False(t, library.Login("nonexistent"))
	assert.Equal(t, StateAdmin, library.State())

	// The stock account is always loginable.
	assert.True(t, library.Login("stock"))
	assert.Equal(t, StateUser, library.State())
	assert.False(t, library.IsAdminLoggedIn())
	require.NotNil(t, library.CurrentUser())
	assert.Equal(t, "stock", library.CurrentUser().Username())

	library.Logout()
	assert.Equal(t, StateLoggedOut, library.State())
	assert.Nil(t, library.CurrentUser())
}

/************************************************************************************************
** Test lazy user creation: a registry entry without a record gets a fresh persisted User
************************************************************************************************/
func TestLoginLazilyCreatesUser(t *testing.T) {
	dataDir := t.TempDir()
	library := openTestLibrary(t, dataDir, "")
	require.True(t, library.Admin().CreateUser("alice"))
	require.NoError(t, library.SaveAdmin())

	// Simulate a lost record: the registry knows alice, the file is gone.
	userFile := filepath.Join(dataDir, "users", "alice.json")
	require.NoError(t, os.Remove(userFile))
	reopened := openTestLibrary(t, dataDir, "")
	require.True(t, reopened.Admin().UserExists("alice"))
	require.Nil(t, reopened.UserByName("alice"))

	assert.True(t, reopened.Login("alice"))
	require.NotNil(t, reopened.CurrentUser())
	assert.Equal(t, "alice", reopened.CurrentUser().Username())
	assert.FileExists(t, userFile, "the lazily created user is persisted immediately")
}

/************************************************************************************************
** Test that logout persists the current user's mutations
************************************************************************************************/
func TestLogoutPersistsCurrentUser(t *testing.T) {
	dataDir := t.TempDir()
	photoDir := t.TempDir()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	library := openTestLibrary(t, dataDir, "")
	require.True(t, library.Admin().CreateUser("alice"))
	require.NoError(t, library.SaveAdmin())
	require.True(t, library.Login("alice"))

	alice := library.CurrentUser()
	require.True(t, alice.CreateAlbum("Trip"))
	photo := alice.AddPhoto(writeImageFile(t, photoDir, "a.jpg", day), "Trip")
	require.NotNil(t, photo)
	require.True(t, photo.AddTag("location", "Paris"))
	library.Logout()

	reopened := openTestLibrary(t, dataDir, "")
	require.True(t, reopened.Login("alice"))
	reloaded := reopened.CurrentUser()
	require.NotNil(t, reloaded.Album("Trip"))
	require.Equal(t, 1, reloaded.Album("Trip").Count())
	assert.True(t, reloaded.Album("Trip").PhotoAt(0).HasTag("location", "Paris"))
}

/************************************************************************************************
** Test SaveCurrentUser: a no-op outside a user session, a real flush inside one
************************************************************************************************/
func TestSaveCurrentUser(t *testing.T) {
	dataDir := t.TempDir()
	library := openTestLibrary(t, dataDir, "")

	assert.NoError(t, library.SaveCurrentUser(), "no session, nothing to do")

	require.True(t, library.Login("admin"))
	assert.NoError(t, library.SaveCurrentUser(), "admin session has no record to write")
	assert.NoFileExists(t, filepath.Join(dataDir, "users", "admin.json"))

	require.True(t, library.Login("stock"))
	stock := library.CurrentUser()
	require.True(t, stock.CreateAlbum("Extra"))
	require.NoError(t, library.SaveCurrentUser())

	reopened := openTestLibrary(t, dataDir, "")
	assert.NotNil(t, reopened.UserByName("stock").Album("Extra"))
}

/************************************************************************************************
** Test Close: everything flushed, session ended
************************************************************************************************/
func TestClose(t *testing.T) {
	dataDir := t.TempDir()
	library := openTestLibrary(t, dataDir, "")
	require.True(t, library.Admin().CreateUser("alice"))
	require.True(t, library.Login("alice"))
	require.True(t, library.CurrentUser().CreateAlbum("Trip"))

	require.NoError(t, library.Close())
	assert.Equal(t, StateLoggedOut, library.State())

	reopened := openTestLibrary(t, dataDir, "")
	assert.True(t, reopened.Admin().UserExists("alice"))
	require.True(t, reopened.Login("alice"))
	assert.NotNil(t, reopened.CurrentUser().Album("Trip"))
}

/************************************************************************************************
** Test that the library satisfies the persistence capability Admin depends on
************************************************************************************************/
func TestLibraryImplementsUserStore(t *testing.T) {
	var _ photos.UserStore = (*Library)(nil)
}
