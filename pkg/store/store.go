// Package store persists the photo library to a file-per-user JSON store and coordinates
// the single login session. It replaces the classic process-wide singleton with an
// explicitly constructed Library that callers open, use and close.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/photokeep/photokeep/pkg/photos"
	"github.com/photokeep/photokeep/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	adminFileName = "admin.json"
	usersDirName  = "users"
	userFileExt   = ".json"
	stockAlbum    = "stock"
)

/**************************************************************************************************
** Library is the process-wide coordinator: it loads the Admin registry and every
** persisted User from a storage directory, tracks the logged-in session, and writes
** everything back on the explicit save calls. Nothing is saved automatically on mutation.
**
** I/O failures during load are logged and replaced with safe defaults (fresh Admin, fresh
** User); in-memory state stays the source of truth until the next save.
**
** Library implements photos.UserStore, which is how Admin persists the accounts it
** creates and deletes.
**************************************************************************************************/
type Library struct {
	dataDir  string
	usersDir string
	stockDir string
	admin    *photos.Admin
	users    []*photos.User
	session  Session
	logger   *logrus.Logger
}

/**************************************************************************************************
** Open initializes the storage layout and loads all persisted state.
**
** On first run it creates a fresh Admin registry, persists it, and seeds the stock user
** with a "stock" album populated from the image files in stockDir (when the directory
** exists). On every open it reconciles the Admin username list against the available user
** records, re-scans stockDir into the stock album, and guarantees an in-memory "admin"
** placeholder User even though the admin identity has no stored data.
**
** @param dataDir - Root storage directory (admin.json and users/ live here)
** @param stockDir - Directory of seed photos for the stock user, may be empty
** @param logger - Logger instance for load/save diagnostics
** @return *Library - The opened library
** @return error - When the storage directories cannot be created
**************************************************************************************************/
func Open(dataDir, stockDir string, logger *logrus.Logger) (*Library, error) {
	if logger == nil {
		logger = logrus.New()
	}

	usersDir := filepath.Join(dataDir, usersDirName)
	if err := os.MkdirAll(usersDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory %q: %w", usersDir, err)
	}

	l := &Library{
		dataDir:  dataDir,
		usersDir: usersDir,
		stockDir: stockDir,
		users:    []*photos.User{},
		logger:   logger,
	}

	l.loadAdmin()
	l.loadAllUsers()
	return l, nil
}

/**************************************************************************************************
** Close flushes all state and ends any active session.
**************************************************************************************************/
func (l *Library) Close() error {
	err := l.SaveData()
	l.session = Session{}
	return err
}

// Admin returns the account registry.
func (l *Library) Admin() *photos.Admin {
	return l.admin
}

// Users returns a copy of the in-memory user list.
func (l *Library) Users() []*photos.User {
	out := make([]*photos.User, len(l.users))
	copy(out, l.users)
	return out
}

// UserByName returns the loaded user with the given name (case-insensitive), or nil.
func (l *Library) UserByName(username string) *photos.User {
	for _, user := range l.users {
		if strings.EqualFold(user.Username(), username) {
			return user
		}
	}
	return nil
}

/**************************************************************************************************
** adminRecord is the on-disk form of the Admin registry. Only the username list is
** stored; "admin" itself is never written.
**************************************************************************************************/
type adminRecord struct {
	Usernames []string `json:"usernames"`
}

/**************************************************************************************************
** loadAdmin reads the admin file, falling back to a fresh registry (persisted
** immediately, stock user seeded) on first run and on corrupt data.
**************************************************************************************************/
func (l *Library) loadAdmin() {
	path := filepath.Join(l.dataDir, adminFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		l.admin = photos.NewAdmin(l)
		if saveErr := l.SaveAdmin(); saveErr != nil {
			l.logger.WithError(saveErr).Error("Failed to persist fresh admin registry")
		}
		l.seedStockUser()
		return
	}
	if err != nil {
		l.logger.WithError(err).Error("Failed to read admin registry, starting fresh")
		l.admin = photos.NewAdmin(l)
		return
	}

	var record adminRecord
	if err := json.Unmarshal(data, &record); err != nil {
		l.logger.WithError(err).Error("Corrupt admin registry, starting fresh")
		l.admin = photos.NewAdmin(l)
		return
	}
	l.admin = photos.RestoreAdmin(record.Usernames, l)
}

/**************************************************************************************************
** loadAllUsers decodes every users/*.json record, rehydrating each one, and reconciles
** the result: the stock user gets its album and seed photos refreshed, and an "admin"
** placeholder user is guaranteed in memory.
**************************************************************************************************/
func (l *Library) loadAllUsers() {
	l.users = []*photos.User{}

	entries, err := os.ReadDir(l.usersDir)
	if err != nil {
		l.logger.WithError(err).Error("Failed to list user records")
		entries = nil
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), userFileExt) {
			continue
		}
		username := strings.TrimSuffix(entry.Name(), userFileExt)
		user := l.loadUser(username)
		if user == nil {
			continue
		}
		l.users = append(l.users, user)
		if strings.EqualFold(username, photos.StockUsername) {
			l.ensureStockPhotos(user)
		}
	}

	// The admin identity has no stored record but always has an in-memory placeholder.
	if l.UserByName(photos.AdminUsername) == nil {
		l.users = append(l.users, photos.NewUser(photos.AdminUsername))
	}
}

/**************************************************************************************************
** loadUser reads and rehydrates one user record. A missing file returns nil; a corrupt
** file is logged and returns nil so the caller can fall back to a fresh user.
**************************************************************************************************/
func (l *Library) loadUser(username string) *photos.User {
	path := l.userFile(username)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.logger.WithError(err).WithField("user", username).Error("Failed to read user record")
		}
		return nil
	}

	user := &photos.User{}
	if err := json.Unmarshal(data, user); err != nil {
		l.logger.WithError(err).WithField("user", username).Error("Corrupt user record, ignoring")
		return nil
	}
	user.Rehydrate()
	return user
}

/**************************************************************************************************
** seedStockUser creates the stock account on first run: a user with a "stock" album
** populated from the stock photo directory, persisted immediately.
**************************************************************************************************/
func (l *Library) seedStockUser() {
	stock := photos.NewUser(photos.StockUsername)
	stock.CreateAlbum(stockAlbum)
	l.importStockPhotos(stock)
	if err := l.SaveUser(stock); err != nil {
		l.logger.WithError(err).Error("Failed to persist stock user")
	}
	l.users = append(l.users, stock)
}

/**************************************************************************************************
** ensureStockPhotos makes sure an already-persisted stock user still has its album and
** picks up any new files dropped into the stock photo directory since the last run.
**************************************************************************************************/
func (l *Library) ensureStockPhotos(stock *photos.User) {
	if stock.Album(stockAlbum) == nil {
		stock.CreateAlbum(stockAlbum)
	}
	l.importStockPhotos(stock)
	if err := l.SaveUser(stock); err != nil {
		l.logger.WithError(err).Error("Failed to persist stock user")
	}
}

/**************************************************************************************************
** importStockPhotos scans the stock directory for image files and adds each one to the
** stock album. Already-imported files are skipped by the album's own dedup.
**************************************************************************************************/
func (l *Library) importStockPhotos(stock *photos.User) {
	if l.stockDir == "" {
		return
	}
	entries, err := os.ReadDir(l.stockDir)
	if err != nil {
		if !os.IsNotExist(err) {
			l.logger.WithError(err).Error("Failed to scan stock photo directory")
		}
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !utils.IsImageFile(entry.Name()) {
			continue
		}
		stock.AddPhoto(filepath.Join(l.stockDir, entry.Name()), stockAlbum)
	}
}

/**************************************************************************************************
** SaveAdmin writes the account registry to disk.
**************************************************************************************************/
func (l *Library) SaveAdmin() error {
	record := adminRecord{Usernames: l.admin.ListUsers()}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding admin registry: %w", err)
	}
	path := filepath.Join(l.dataDir, adminFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		l.logger.WithError(err).Error("Failed to save admin registry")
		return fmt.Errorf("writing admin registry: %w", err)
	}
	return nil
}

/**************************************************************************************************
** SaveUser writes one user record. The admin placeholder is never written to disk.
** Implements photos.UserStore.
**************************************************************************************************/
func (l *Library) SaveUser(user *photos.User) error {
	if user == nil || strings.EqualFold(user.Username(), photos.AdminUsername) {
		return nil
	}
	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding user %q: %w", user.Username(), err)
	}
	if err := os.WriteFile(l.userFile(user.Username()), data, 0o644); err != nil {
		l.logger.WithError(err).WithField("user", user.Username()).Error("Failed to save user record")
		return fmt.Errorf("writing user %q: %w", user.Username(), err)
	}
	return nil
}

/**************************************************************************************************
** SaveUsers writes every in-memory user record.
**************************************************************************************************/
func (l *Library) SaveUsers() error {
	var firstErr error
	for _, user := range l.users {
		if err := l.SaveUser(user); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

/**************************************************************************************************
** SaveData flushes users and the admin registry in one call.
**************************************************************************************************/
func (l *Library) SaveData() error {
	userErr := l.SaveUsers()
	adminErr := l.SaveAdmin()
	if userErr != nil {
		return userErr
	}
	return adminErr
}

/**************************************************************************************************
** DeleteUser removes an account's record and in-memory entry. The admin identity can
** never be deleted. Implements photos.UserStore; Admin.DeleteUser guards the stock
** account before calling this.
**************************************************************************************************/
func (l *Library) DeleteUser(username string) error {
	if strings.EqualFold(username, photos.AdminUsername) {
		return fmt.Errorf("the %q identity cannot be deleted", photos.AdminUsername)
	}

	for i, user := range l.users {
		if strings.EqualFold(user.Username(), username) {
			l.users = append(l.users[:i], l.users[i+1:]...)
			break
		}
	}

	path := l.userFile(username)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		l.logger.WithError(err).WithField("user", username).Error("Failed to delete user record")
		return fmt.Errorf("deleting user %q: %w", username, err)
	}
	return nil
}

func (l *Library) userFile(username string) string {
	return filepath.Join(l.usersDir, username+userFileExt)
}
