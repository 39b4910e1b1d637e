package photos

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

/**************************************************************************************************
** Album is a named, ordered collection of photo references. Albums never own their
** photos: the same *Photo may appear in any number of albums, so a caption or tag edit is
** visible everywhere. Album identity is the name, case-insensitive; the owning User
** enforces name uniqueness, the album itself does not.
**
** StartDate and EndDate are derived from the member photos (min and max DateTaken) and
** recomputed after every insert and remove. Both are nil while the album is empty.
**
** On disk an album stores only the ordered list of photo paths; the paths are re-linked
** against the user's photo registry by User.Rehydrate after load.
**************************************************************************************************/
type Album struct {
	name      string
	photos    []*Photo
	startDate *time.Time
	endDate   *time.Time

	// Photo paths decoded from disk, consumed by User.Rehydrate.
	pendingPaths []string
}

/**************************************************************************************************
** NewAlbum creates an empty album with the given name and no date range.
**************************************************************************************************/
func NewAlbum(name string) *Album {
	return &Album{
		name:   name,
		photos: []*Photo{},
	}
}

/**************************************************************************************************
** AddPhoto appends a photo reference. A photo already in the album (same file path) is
** rejected and the date range is left untouched.
**
** @param photo - The photo to add
** @return bool - true if the photo was added
**************************************************************************************************/
func (a *Album) AddPhoto(photo *Photo) bool {
	if photo == nil || a.Contains(photo) {
		return false
	}
	a.photos = append(a.photos, photo)
	a.updateDateRange()
	return true
}

/**************************************************************************************************
** RemovePhoto removes the photo (matched by file path) and recomputes the date range.
**
** @return bool - true if the photo was removed
**************************************************************************************************/
func (a *Album) RemovePhoto(photo *Photo) bool {
	if photo == nil {
		return false
	}
	for i, member := range a.photos {
		if member.SameFile(photo) {
			a.photos = append(a.photos[:i], a.photos[i+1:]...)
			a.updateDateRange()
			return true
		}
	}
	return false
}

// Contains reports whether the album holds the photo, by file path.
func (a *Album) Contains(photo *Photo) bool {
	if photo == nil {
		return false
	}
	for _, member := range a.photos {
		if member.SameFile(photo) {
			return true
		}
	}
	return false
}

// PhotoAt returns the photo at index, or nil when out of bounds.
func (a *Album) PhotoAt(index int) *Photo {
	if index < 0 || index >= len(a.photos) {
		return nil
	}
	return a.photos[index]
}

// Photos returns a copy of the member list, preserving order.
func (a *Album) Photos() []*Photo {
	out := make([]*Photo, len(a.photos))
	copy(out, a.photos)
	return out
}

// Count returns the number of photos in the album.
func (a *Album) Count() int {
	return len(a.photos)
}

// Name returns the album name.
func (a *Album) Name() string {
	return a.name
}

/**************************************************************************************************
** Rename sets a new name without any uniqueness check; User.RenameAlbum checks for
** collisions before calling this.
**************************************************************************************************/
func (a *Album) Rename(name string) {
	a.name = name
}

// SameName reports case-insensitive name equality, the album identity rule.
func (a *Album) SameName(name string) bool {
	return strings.EqualFold(a.name, name)
}

// StartDate returns the earliest member DateTaken, nil when the album is empty.
func (a *Album) StartDate() *time.Time {
	return a.startDate
}

// EndDate returns the latest member DateTaken, nil when the album is empty.
func (a *Album) EndDate() *time.Time {
	return a.endDate
}

/**************************************************************************************************
** DateRangeString renders the date range for display: "No photos" when empty, a single
** date when all photos share one, otherwise "start to end".
**************************************************************************************************/
func (a *Album) DateRangeString() string {
	if a.startDate == nil || a.endDate == nil {
		return "No photos"
	}
	start := a.startDate.Format(time.DateTime)
	end := a.endDate.Format(time.DateTime)
	if start == end {
		return start
	}
	return start + " to " + end
}

/**************************************************************************************************
** updateDateRange scans all members tracking min and max DateTaken. An empty album
** clears both bounds.
**************************************************************************************************/
func (a *Album) updateDateRange() {
	if len(a.photos) == 0 {
		a.startDate = nil
		a.endDate = nil
		return
	}

	start := a.photos[0].DateTaken
	end := a.photos[0].DateTaken
	for _, photo := range a.photos {
		if photo.DateTaken.Before(start) {
			start = photo.DateTaken
		}
		if photo.DateTaken.After(end) {
			end = photo.DateTaken
		}
	}
	a.startDate = &start
	a.endDate = &end
}

func (a *Album) String() string {
	return fmt.Sprintf("%s (%d photos)", a.name, len(a.photos))
}

/**************************************************************************************************
** albumRecord is the on-disk form of an album: the name plus the ordered photo paths.
**************************************************************************************************/
type albumRecord struct {
	Name   string   `json:"name"`
	Photos []string `json:"photos"`
}

func (a *Album) MarshalJSON() ([]byte, error) {
	record := albumRecord{
		Name:   a.name,
		Photos: make([]string, 0, len(a.photos)),
	}
	for _, photo := range a.photos {
		record.Photos = append(record.Photos, photo.FilePath)
	}
	return json.Marshal(record)
}

func (a *Album) UnmarshalJSON(data []byte) error {
	var record albumRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}
	a.name = record.Name
	a.photos = []*Photo{}
	a.pendingPaths = record.Photos
	a.startDate = nil
	a.endDate = nil
	return nil
}

/**************************************************************************************************
** relink resolves the photo paths decoded from disk into live *Photo references using the
** supplied lookup, then recomputes the date range. Paths the lookup cannot resolve are
** dropped. Called once per album by User.Rehydrate.
**************************************************************************************************/
func (a *Album) relink(lookup func(path string) *Photo) {
	if a.pendingPaths == nil {
		a.updateDateRange()
		return
	}
	a.photos = make([]*Photo, 0, len(a.pendingPaths))
	for _, path := range a.pendingPaths {
		if photo := lookup(path); photo != nil && !a.Contains(photo) {
			a.photos = append(a.photos, photo)
		}
	}
	a.pendingPaths = nil
	a.updateDateRange()
}
