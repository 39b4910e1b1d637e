package photos

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

/**************************************************************************************************
** Tag type cardinality values. A "single" tag type accepts one value at a time, a
** "multiple" tag type accepts several (e.g. person).
**************************************************************************************************/
const (
	TagTypeSingle   = "single"
	TagTypeMultiple = "multiple"
)

/**************************************************************************************************
** User owns a photo library: albums with case-insensitively unique names, a registry of
** every photo keyed by absolute file path, tag type definitions, and a user-level tag
** namespace separate from per-photo tags.
**
** The registry is the single arena for Photo instances. Adding the same file to two
** albums reuses one *Photo, so caption and tag edits are visible from every album. Albums
** persist only photo paths; Rehydrate re-links them to registry entries after any load.
**************************************************************************************************/
type User struct {
	username string
	albums   []*Album
	tagTypes map[string]string // tag name -> TagTypeSingle | TagTypeMultiple
	registry map[string]*Photo // file path -> Photo, the dedup arena
	tags     []Tag             // user-level tags
}

/**************************************************************************************************
** NewUser creates a user with no albums and the default tag types seeded:
** location=single, person=multiple, event=single.
**************************************************************************************************/
func NewUser(username string) *User {
	u := &User{
		username: username,
		albums:   []*Album{},
		tagTypes: map[string]string{},
		registry: map[string]*Photo{},
		tags:     []Tag{},
	}
	u.seedDefaultTagTypes()
	return u
}

func (u *User) seedDefaultTagTypes() {
	u.tagTypes["location"] = TagTypeSingle
	u.tagTypes["person"] = TagTypeMultiple
	u.tagTypes["event"] = TagTypeSingle
}

// Username returns the account name, the user's identity.
func (u *User) Username() string {
	return u.username
}

/**************************************************************************************************
** CreateAlbum adds a new empty album. Fails when an album with the same name
** (case-insensitive) already exists.
**
** @param name - Album name
** @return bool - true if the album was created
**************************************************************************************************/
func (u *User) CreateAlbum(name string) bool {
	if u.Album(name) != nil {
		return false
	}
	u.albums = append(u.albums, NewAlbum(name))
	return true
}

/**************************************************************************************************
** DeleteAlbum removes the named album. Photos stay in the registry only while another
** album still references them; the registry itself is pruned on the next Rehydrate.
**
** @return bool - true if an album was removed
**************************************************************************************************/
func (u *User) DeleteAlbum(name string) bool {
	for i, album := range u.albums {
		if album.SameName(name) {
			u.albums = append(u.albums[:i], u.albums[i+1:]...)
			return true
		}
	}
	return false
}

/**************************************************************************************************
** RenameAlbum renames oldName to newName. Fails when oldName is not found or newName
** collides with an existing album (case-insensitive).
**************************************************************************************************/
func (u *User) RenameAlbum(oldName, newName string) bool {
	if u.Album(newName) != nil {
		return false
	}
	album := u.Album(oldName)
	if album == nil {
		return false
	}
	album.Rename(newName)
	return true
}

// Album returns the album with the given name (case-insensitive), or nil.
func (u *User) Album(name string) *Album {
	for _, album := range u.albums {
		if album.SameName(name) {
			return album
		}
	}
	return nil
}

// Albums returns a copy of the album list.
func (u *User) Albums() []*Album {
	out := make([]*Album, len(u.albums))
	copy(out, u.albums)
	return out
}

/**************************************************************************************************
** AddPhoto adds the file at path to the named album, creating the Photo through the
** registry so the same file always yields the same *Photo instance. Returns nil when the
** album does not exist, the file cannot be read, or the album already contains the photo.
** A nil return for an already-member photo does not mean the photo is gone: it may still
** live in other albums and in the registry.
**
** @param path - Path to the image file
** @param albumName - Target album
** @return *Photo - The photo that was added, or nil
**************************************************************************************************/
func (u *User) AddPhoto(path, albumName string) *Photo {
	return u.AddPhotoWithOptions(path, albumName, false)
}

/**************************************************************************************************
** AddPhotoWithOptions is AddPhoto with an opt-in EXIF capture date; see
** NewPhotoWithOptions. The EXIF option only matters when the photo is not already in the
** registry.
**************************************************************************************************/
func (u *User) AddPhotoWithOptions(path, albumName string, useExif bool) *Photo {
	album := u.Album(albumName)
	if album == nil {
		return nil
	}

	photo, err := u.lookupOrCreate(path, useExif)
	if err != nil {
		return nil
	}

	if album.AddPhoto(photo) {
		return photo
	}
	return nil
}

/**************************************************************************************************
** lookupOrCreate resolves path against the registry, constructing and indexing a new
** Photo on a miss.
**************************************************************************************************/
func (u *User) lookupOrCreate(path string, useExif bool) (*Photo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if existing, ok := u.registry[abs]; ok {
		return existing, nil
	}
	photo, err := NewPhotoWithOptions(abs, useExif)
	if err != nil {
		return nil, err
	}
	u.registry[photo.FilePath] = photo
	return photo, nil
}

/**************************************************************************************************
** RemovePhotoFromAlbum removes the photo from the named album.
**
** @return bool - true if the photo was removed
**************************************************************************************************/
func (u *User) RemovePhotoFromAlbum(photo *Photo, albumName string) bool {
	album := u.Album(albumName)
	if album == nil {
		return false
	}
	return album.RemovePhoto(photo)
}

/**************************************************************************************************
** CopyPhoto adds the photo to toAlbum while leaving it in fromAlbum. Fails when either
** album is missing, the photo is not in the source, or the destination already has it.
** The destination receives the same *Photo instance, never a clone.
**************************************************************************************************/
func (u *User) CopyPhoto(photo *Photo, fromAlbum, toAlbum string) bool {
	source := u.Album(fromAlbum)
	dest := u.Album(toAlbum)
	if source == nil || dest == nil {
		return false
	}
	if !source.Contains(photo) {
		return false
	}
	return dest.AddPhoto(photo)
}

/**************************************************************************************************
** MovePhoto is copy-then-remove: the photo leaves the source album only when the copy
** into the destination succeeded.
**************************************************************************************************/
func (u *User) MovePhoto(photo *Photo, fromAlbum, toAlbum string) bool {
	if !u.CopyPhoto(photo, fromAlbum, toAlbum) {
		return false
	}
	return u.RemovePhotoFromAlbum(photo, fromAlbum)
}

/**************************************************************************************************
** AllPhotos returns every registered photo, sorted by file path for stable output. The
** registry is per-user and deduplicated, so photos shared across albums appear once.
**************************************************************************************************/
func (u *User) AllPhotos() []*Photo {
	out := make([]*Photo, 0, len(u.registry))
	for _, photo := range u.registry {
		out = append(out, photo)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FilePath < out[j].FilePath
	})
	return out
}

/**************************************************************************************************
** SearchByDateRange returns every photo in the registry whose DateTaken falls inside
** [start, end], inclusive on both bounds. The search spans the whole library, not a
** single album.
**************************************************************************************************/
func (u *User) SearchByDateRange(start, end time.Time) []*Photo {
	results := []*Photo{}
	for _, photo := range u.AllPhotos() {
		if photo.DateTaken.Before(start) || photo.DateTaken.After(end) {
			continue
		}
		results = append(results, photo)
	}
	return results
}

/**************************************************************************************************
** SearchByTags filters the whole photo registry through the criteria predicate.
**************************************************************************************************/
func (u *User) SearchByTags(criteria Criteria) []*Photo {
	results := []*Photo{}
	for _, photo := range u.AllPhotos() {
		if criteria.Matches(photo) {
			results = append(results, photo)
		}
	}
	return results
}

/**************************************************************************************************
** CreateAlbumFromSearch creates a new album holding the given photos, typically search
** results. Fails when the name collides with an existing album. Photos already in the new
** album (duplicate entries in the input) are silently skipped by Album.AddPhoto.
**
** @param name - Name for the new album
** @param members - Photos to insert, in order
** @return bool - true if the album was created
**************************************************************************************************/
func (u *User) CreateAlbumFromSearch(name string, members []*Photo) bool {
	if u.Album(name) != nil {
		return false
	}
	album := NewAlbum(name)
	for _, photo := range members {
		album.AddPhoto(photo)
	}
	u.albums = append(u.albums, album)
	return true
}

/**************************************************************************************************
** AddTagType registers a new tag type. The name is lowercased; a name that is already a
** recognized tag type is rejected.
**
** @param name - Tag type name
** @param singleValued - true for "single" cardinality, false for "multiple"
** @return bool - true if the tag type was added
**************************************************************************************************/
func (u *User) AddTagType(name string, singleValued bool) bool {
	if name == "" {
		return false
	}
	key := strings.ToLower(name)
	if _, exists := u.tagTypes[key]; exists {
		return false
	}
	if singleValued {
		u.tagTypes[key] = TagTypeSingle
	} else {
		u.tagTypes[key] = TagTypeMultiple
	}
	return true
}

// TagTypes returns a copy of the tag type map.
func (u *User) TagTypes() map[string]string {
	out := make(map[string]string, len(u.tagTypes))
	for name, cardinality := range u.tagTypes {
		out[name] = cardinality
	}
	return out
}

/**************************************************************************************************
** AddTag adds a user-level tag. User tags are a namespace of their own, unrelated to any
** photo's tags, with the same duplicate rule.
**************************************************************************************************/
func (u *User) AddTag(tag Tag) bool {
	if containsTag(u.tags, tag) {
		return false
	}
	u.tags = append(u.tags, tag)
	return true
}

// RemoveTag removes a user-level tag.
func (u *User) RemoveTag(tag Tag) bool {
	for i, existing := range u.tags {
		if existing.Equal(tag) {
			u.tags = append(u.tags[:i], u.tags[i+1:]...)
			return true
		}
	}
	return false
}

// Tags returns a copy of the user-level tag list.
func (u *User) Tags() []Tag {
	out := make([]Tag, len(u.tags))
	copy(out, u.tags)
	return out
}

// TagsByName returns the user-level tags with the given name, case-insensitive.
func (u *User) TagsByName(name string) []Tag {
	result := []Tag{}
	for _, tag := range u.tags {
		if strings.EqualFold(tag.Name, name) {
			result = append(result, tag)
		}
	}
	return result
}

// ClearTags removes every user-level tag.
func (u *User) ClearTags() {
	u.tags = []Tag{}
}

/**************************************************************************************************
** Rehydrate restores the invariants a decoded user cannot carry on disk. It must run
** exactly once after any deserialization, before the user is handed out:
**
** - album photo paths are re-linked to registry instances, so the "same file, same
**   *Photo" rule holds again after load;
** - registry entries no album references are dropped, matching the rule that the
**   registry is rebuilt from the albums;
** - a missing or empty tag type map is reseeded with the defaults;
** - nil collections decoded from hand-edited files become empty ones;
** - every album's date range is recomputed.
**************************************************************************************************/
func (u *User) Rehydrate() {
	if u.registry == nil {
		u.registry = map[string]*Photo{}
	}
	if u.albums == nil {
		u.albums = []*Album{}
	}
	if u.tags == nil {
		u.tags = []Tag{}
	}
	if len(u.tagTypes) == 0 {
		u.tagTypes = map[string]string{}
		u.seedDefaultTagTypes()
	}

	for _, album := range u.albums {
		album.relink(func(path string) *Photo {
			return u.registry[path]
		})
	}

	referenced := map[string]bool{}
	for _, album := range u.albums {
		for _, photo := range album.Photos() {
			referenced[photo.FilePath] = true
		}
	}
	for path := range u.registry {
		if !referenced[path] {
			delete(u.registry, path)
		}
	}
}

/**************************************************************************************************
** userRecord is the on-disk form of a user. The registry is persisted once as the photo
** arena; albums carry ordered path lists into it.
**************************************************************************************************/
type userRecord struct {
	Username string            `json:"username"`
	Albums   []*Album          `json:"albums"`
	Photos   map[string]*Photo `json:"photos"`
	Tags     []Tag             `json:"tags"`
	TagTypes map[string]string `json:"tagTypes"`
}

func (u *User) MarshalJSON() ([]byte, error) {
	return json.Marshal(userRecord{
		Username: u.username,
		Albums:   u.albums,
		Photos:   u.registry,
		Tags:     u.tags,
		TagTypes: u.tagTypes,
	})
}

func (u *User) UnmarshalJSON(data []byte) error {
	var record userRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}
	u.username = record.Username
	u.albums = record.Albums
	u.registry = record.Photos
	u.tags = record.Tags
	u.tagTypes = record.TagTypes
	return nil
}
