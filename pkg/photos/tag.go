package photos

import "strings"

/**************************************************************************************************
** Tag represents a single name/value annotation on a photo or a user. The name is always
** stored lowercase; identity is case-insensitive on both fields, so ("Location", "Paris")
** and ("location", "paris") are the same tag. The value keeps its original casing for
** display but is folded for comparison.
**************************************************************************************************/
type Tag struct {
	Name  string `json:"name"`  // Tag name, always lowercase
	Value string `json:"value"` // Tag value, original casing preserved
}

/**************************************************************************************************
** NewTag builds a Tag from raw user input. The name is lowercased; empty inputs stay
** empty strings rather than being rejected.
**
** @param name - Tag name (any casing)
** @param value - Tag value
** @return Tag - Normalized tag
**************************************************************************************************/
func NewTag(name, value string) Tag {
	return Tag{
		Name:  strings.ToLower(name),
		Value: value,
	}
}

/**************************************************************************************************
** Equal reports whether two tags are the same annotation, comparing name and value
** case-insensitively.
**************************************************************************************************/
func (t Tag) Equal(other Tag) bool {
	return strings.EqualFold(t.Name, other.Name) && strings.EqualFold(t.Value, other.Value)
}

/**************************************************************************************************
** Key returns the lowercase identity string for this tag, suitable for dedup maps.
**************************************************************************************************/
func (t Tag) Key() string {
	return strings.ToLower(t.Name) + "\x00" + strings.ToLower(t.Value)
}

func (t Tag) String() string {
	return t.Name + ": " + t.Value
}

/**************************************************************************************************
** containsTag reports whether the tag list already holds an equal tag.
**************************************************************************************************/
func containsTag(tags []Tag, tag Tag) bool {
	for _, existing := range tags {
		if existing.Equal(tag) {
			return true
		}
	}
	return false
}
