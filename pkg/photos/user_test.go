package photos

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/************************************************************************************************
** Test album CRUD with the case-insensitive uniqueness rule
************************************************************************************************/
func TestUserAlbumLifecycle(t *testing.T) {
	user := NewUser("alice")

	assert.True(t, user.CreateAlbum("Trip"))
	assert.False(t, user.CreateAlbum("trip"), "names are unique case-insensitively")
	assert.NotNil(t, user.Album("TRIP"))

	assert.True(t, user.CreateAlbum("Favorites"))
	assert.False(t, user.RenameAlbum("Trip", "favorites"), "rename into an existing name must fail")
	assert.False(t, user.RenameAlbum("Nope", "Other"))
	assert.True(t, user.RenameAlbum("Trip", "Holiday"))
	assert.Nil(t, user.Album("Trip"))
	assert.NotNil(t, user.Album("holiday"))

	assert.True(t, user.DeleteAlbum("Favorites"))
	assert.False(t, user.DeleteAlbum("Favorites"))
	assert.Len(t, user.Albums(), 1)
}

/************************************************************************************************
** Test photo registry dedup: the same file in two albums is one Photo instance
************************************************************************************************/
func TestUserAddPhotoRegistryReuse(t *testing.T) {
	dir := t.TempDir()
	mtime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	path := writePhotoFile(t, dir, "a.jpg", mtime)

	user := NewUser("alice")
	user.CreateAlbum("Trip")
	user.CreateAlbum("Favorites")

	first := user.AddPhoto(path, "Trip")
	require.NotNil(t, first)
	assert.Equal(t, mtime, first.DateTaken)

	assert.Nil(t, user.AddPhoto(path, "Trip"), "already a member of that album")
	assert.Nil(t, user.AddPhoto(path, "NoSuchAlbum"))

	second := user.AddPhoto(path, "Favorites")
	require.NotNil(t, second)
	assert.Same(t, first, second, "registry must hand out one instance per file")

	second.SetCaption("shared caption")
	assert.Equal(t, "shared caption", user.Album("Trip").PhotoAt(0).Caption)

	assert.Len(t, user.AllPhotos(), 1, "registry is deduplicated")
}

/************************************************************************************************
** Test the copy/move failure matrix: missing albums, photo not in source, duplicate in
** destination, and the success path sharing one instance
************************************************************************************************/
func TestUserCopyAndMovePhoto(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	path := writePhotoFile(t, dir, "a.jpg", day)

	user := NewUser("alice")
	user.CreateAlbum("Trip")
	user.CreateAlbum("Favorites")
	photo := user.AddPhoto(path, "Trip")
	require.NotNil(t, photo)

	outsider := datedPhoto("/not/in/trip.jpg", day)
	assert.False(t, user.CopyPhoto(outsider, "Trip", "Favorites"), "photo not in source")
	assert.False(t, user.CopyPhoto(photo, "Nope", "Favorites"), "missing source album")
	assert.False(t, user.CopyPhoto(photo, "Trip", "Nope"), "missing destination album")

	assert.True(t, user.CopyPhoto(photo, "Trip", "Favorites"))
	assert.True(t, user.Album("Trip").Contains(photo), "copy leaves the source untouched")
	assert.Same(t, photo, user.Album("Favorites").PhotoAt(0), "same identity, not a clone")

	assert.False(t, user.CopyPhoto(photo, "Trip", "Favorites"), "destination already has it")

	// Move fails when the copy fails, and the source keeps the photo.
	assert.False(t, user.MovePhoto(photo, "Trip", "Favorites"))
	assert.True(t, user.Album("Trip").Contains(photo))

	user.CreateAlbum("Archive")
	assert.True(t, user.MovePhoto(photo, "Trip", "Archive"))
	assert.False(t, user.Album("Trip").Contains(photo))
	assert.True(t, user.Album("Archive").Contains(photo))
}

/************************************************************************************************
** Test date-range search: whole registry, inclusive on both bounds
************************************************************************************************/
func TestUserSearchByDateRange(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)

	user := NewUser("alice")
	user.CreateAlbum("Trip")
	early := user.AddPhoto(writePhotoFile(t, dir, "early.jpg", base.Add(-48*time.Hour)), "Trip")
	boundary := user.AddPhoto(writePhotoFile(t, dir, "boundary.jpg", base), "Trip")
	late := user.AddPhoto(writePhotoFile(t, dir, "late.jpg", base.Add(48*time.Hour)), "Trip")
	require.NotNil(t, early)
	require.NotNil(t, boundary)
	require.NotNil(t, late)

	// Degenerate range [d, d] returns exactly the photos taken at d.
	exact := user.SearchByDateRange(base, base)
	require.Len(t, exact, 1)
	assert.Same(t, boundary, exact[0])

	all := user.SearchByDateRange(base.Add(-48*time.Hour), base.Add(48*time.Hour))
	assert.Len(t, all, 3, "both bounds are inclusive")

	none := user.SearchByDateRange(base.Add(time.Second), base.Add(time.Hour))
	assert.Empty(t, none)
}

/************************************************************************************************
** Scenario: create alice, album Trip, import a photo, tag it and find it by tag search
************************************************************************************************/
func TestUserTagSearchScenario(t *testing.T) {
	dir := t.TempDir()
	mtime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	path := writePhotoFile(t, dir, "a.jpg", mtime)

	user := NewUser("alice")
	require.True(t, user.CreateAlbum("Trip"))

	photo := user.AddPhoto(path, "Trip")
	require.NotNil(t, photo)
	assert.Equal(t, mtime, photo.DateTaken)

	assert.True(t, photo.AddTag("location", "Paris"))
	assert.False(t, photo.AddTag("location", "Paris"))

	results := user.SearchByTags(NewTagCriteria("location", "Paris"))
	require.Len(t, results, 1)
	assert.Same(t, photo, results[0])

	assert.Empty(t, user.SearchByTags(NewTagCriteria("location", "London")))
}

/************************************************************************************************
** Test creating an album from search results, with the lenient duplicate skip
************************************************************************************************/
func TestUserCreateAlbumFromSearch(t *testing.T) {
	user := NewUser("alice")
	user.CreateAlbum("Existing")

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := datedPhoto("/a.jpg", day)
	b := datedPhoto("/b.jpg", day.Add(time.Hour))

	assert.False(t, user.CreateAlbumFromSearch("existing", []*Photo{a}), "name collision")

	// Duplicate entries in the input are skipped silently by the album's own dedup.
	assert.True(t, user.CreateAlbumFromSearch("Results", []*Photo{a, b, a}))
	album := user.Album("Results")
	require.NotNil(t, album)
	assert.Equal(t, 2, album.Count())
	assert.Equal(t, "/a.jpg", album.PhotoAt(0).FilePath)
	assert.Equal(t, "/b.jpg", album.PhotoAt(1).FilePath)
}

/************************************************************************************************
** Test tag type definitions: defaults seeded, lowercase keys, duplicates rejected
************************************************************************************************/
func TestUserTagTypes(t *testing.T) {
	user := NewUser("alice")

	types := user.TagTypes()
	assert.Equal(t, TagTypeSingle, types["location"])
	assert.Equal(t, TagTypeMultiple, types["person"])
	assert.Equal(t, TagTypeSingle, types["event"])

	assert.False(t, user.AddTagType("Location", true), "already recognized after lowercasing")
	assert.True(t, user.AddTagType("Weather", true))
	assert.True(t, user.AddTagType("mood", false))
	assert.False(t, user.AddTagType("", true))

	types = user.TagTypes()
	assert.Equal(t, TagTypeSingle, types["weather"])
	assert.Equal(t, TagTypeMultiple, types["mood"])
}

/************************************************************************************************
** Test the user-level tag namespace: separate from photo tags, same dedup rule
************************************************************************************************/
func TestUserLevelTags(t *testing.T) {
	user := NewUser("alice")

	assert.True(t, user.AddTag(NewTag("Interest", "hiking")))
	assert.False(t, user.AddTag(NewTag("interest", "HIKING")))
	assert.True(t, user.AddTag(NewTag("interest", "painting")))
	assert.Len(t, user.Tags(), 2)
	assert.Len(t, user.TagsByName("INTEREST"), 2)

	assert.True(t, user.RemoveTag(NewTag("interest", "hiking")))
	assert.False(t, user.RemoveTag(NewTag("interest", "hiking")))
	assert.Len(t, user.Tags(), 1)

	user.ClearTags()
	assert.Empty(t, user.Tags())
}

/************************************************************************************************
** Test Rehydrate in isolation: re-linking, registry pruning, default reseeding
************************************************************************************************/
func TestUserRehydrate(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	user := NewUser("alice")
	user.CreateAlbum("Trip")
	user.CreateAlbum("Favorites")
	photo := user.AddPhoto(writePhotoFile(t, dir, "a.jpg", day), "Trip")
	require.NotNil(t, photo)
	require.NotNil(t, user.AddPhoto(writePhotoFile(t, dir, "b.jpg", day.Add(time.Hour)), "Trip"))
	photo.AddTag("location", "Paris")
	photo.SetCaption("louvre")
	user.CopyPhoto(photo, "Trip", "Favorites")

	data, err := json.Marshal(user)
	require.NoError(t, err)

	reloaded := &User{}
	require.NoError(t, json.Unmarshal(data, reloaded))
	reloaded.Rehydrate()

	assert.Equal(t, "alice", reloaded.Username())
	require.Len(t, reloaded.AllPhotos(), 2)

	trip := reloaded.Album("Trip")
	favorites := reloaded.Album("Favorites")
	require.NotNil(t, trip)
	require.NotNil(t, favorites)
	assert.Equal(t, 2, trip.Count())

	// The shared photo resolves to one instance across albums again.
	assert.Same(t, trip.PhotoAt(0), favorites.PhotoAt(0))
	assert.Equal(t, "louvre", favorites.PhotoAt(0).Caption)
	assert.True(t, favorites.PhotoAt(0).HasTag("location", "Paris"))

	// Date ranges are recomputed from the re-linked members.
	require.NotNil(t, trip.StartDate())
	assert.Equal(t, day, *trip.StartDate())
	assert.Equal(t, day.Add(time.Hour), *trip.EndDate())
}

func TestUserRehydrateDefaults(t *testing.T) {
	// A minimal hand-written record: no tag types, no tags, no photos.
	raw := []byte(`{"username":"bob","albums":[{"name":"Empty","photos":[]}]}`)

	user := &User{}
	require.NoError(t, json.Unmarshal(raw, user))
	user.Rehydrate()

	assert.Equal(t, TagTypeSingle, user.TagTypes()["location"], "missing tag types are reseeded")
	assert.Empty(t, user.Tags())
	assert.Empty(t, user.AllPhotos())
	require.NotNil(t, user.Album("Empty"))
	assert.Equal(t, "No photos", user.Album("Empty").DateRangeString())
}

/************************************************************************************************
** Test that Rehydrate drops registry entries no album references
************************************************************************************************/
func TestUserRehydratePrunesOrphans(t *testing.T) {
	raw := []byte(`{
		"username": "carol",
		"albums": [{"name": "Trip", "photos": ["/a.jpg"]}],
		"photos": {
			"/a.jpg": {"filePath": "/a.jpg", "caption": "", "dateTaken": "2024-01-01T00:00:00Z", "tags": []},
			"/orphan.jpg": {"filePath": "/orphan.jpg", "caption": "", "dateTaken": "2024-01-01T00:00:00Z", "tags": []}
		},
		"tags": [],
		"tagTypes": {"location": "single"}
	}`)

	user := &User{}
	require.NoError(t, json.Unmarshal(raw, user))
	user.Rehydrate()

	all := user.AllPhotos()
	require.Len(t, all, 1, "unreferenced registry entries are rebuilt away")
	assert.Equal(t, "/a.jpg", all[0].FilePath)
}
