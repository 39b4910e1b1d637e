// Package utils provides small shared helpers for the photokeep packages.
package utils

import (
	"path/filepath"
	"strings"
)

/**************************************************************************************************
** ContainsFold checks if a string is present in a slice of strings, ignoring case.
**
** @param list - Slice of strings to search
** @param s - String to search for
** @return bool - True if string is present in slice, false otherwise
**************************************************************************************************/
func ContainsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

/**************************************************************************************************
** IsImageFile reports whether the path looks like a supported image by extension.
** The store uses this to filter stock photo directories; image content is never validated
** here, the file-picker collaborator is responsible for that.
**
** @param path - File path to check
** @return bool - True for .jpg, .jpeg, .png, .gif and .bmp files
**************************************************************************************************/
func IsImageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp":
		return true
	}
	return false
}

/**************************************************************************************************
** RemoveEmptyStrings removes all empty strings from a string array and returns a new
** array without the empty strings. Preserves the order of non-empty strings.
**
** @param arr - Array to process
** @return []string - New array containing only non-empty strings
**************************************************************************************************/
func RemoveEmptyStrings(arr []string) []string {
	result := make([]string, 0, len(arr))

	for _, str := range arr {
		if str != "" {
			result = append(result, str)
		}
	}

	return result
}
