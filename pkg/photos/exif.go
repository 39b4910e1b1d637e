package photos

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

/**************************************************************************************************
** exifDateTaken reads the EXIF capture date from the file at path. Files without EXIF
** data (or without a date tag) are not an error to the caller; the boolean reports
** whether a usable date was found and the caller falls back to the file mtime.
**
** @param path - Absolute path to the image file
** @return time.Time - EXIF capture date, zero when not found
** @return bool - true when a date was extracted
**************************************************************************************************/
func exifDateTaken(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}

	taken, err := x.DateTime()
	if err != nil {
		return time.Time{}, false
	}
	return taken, true
}
