package photos

/**************************************************************************************************
** MatchMode selects how a Criteria combines its tags when matching a photo.
**************************************************************************************************/
type MatchMode int

const (
	MatchSingle MatchMode = iota // Photo must carry the one tag
	MatchAll                     // Photo must carry both tags (AND)
	MatchAny                     // Photo must carry either tag (OR)
)

func (m MatchMode) String() string {
	switch m {
	case MatchSingle:
		return "single"
	case MatchAll:
		return "and"
	case MatchAny:
		return "or"
	}
	return "unknown"
}

/**************************************************************************************************
** Criteria is a pure predicate over a photo's tags. It holds one or two tags and a match
** mode; Matches never mutates the photo and has no error conditions.
**************************************************************************************************/
type Criteria struct {
	Mode   MatchMode `json:"mode"`
	First  Tag       `json:"first"`
	Second Tag       `json:"second,omitempty"` // Only meaningful for MatchAll / MatchAny
}

/**************************************************************************************************
** NewTagCriteria builds a single-tag criteria: a photo matches when it carries the tag.
**
** @param name - Tag name to match
** @param value - Tag value to match
** @return Criteria - Single-tag predicate
**************************************************************************************************/
func NewTagCriteria(name, value string) Criteria {
	return Criteria{
		Mode:  MatchSingle,
		First: NewTag(name, value),
	}
}

/**************************************************************************************************
** NewPairCriteria builds a two-tag criteria. With conjunctive true a photo must carry both
** tags; otherwise either tag is enough.
**
** @param name1, value1 - First tag
** @param name2, value2 - Second tag
** @param conjunctive - true for AND, false for OR
** @return Criteria - Two-tag predicate
**************************************************************************************************/
func NewPairCriteria(name1, value1, name2, value2 string, conjunctive bool) Criteria {
	mode := MatchAny
	if conjunctive {
		mode = MatchAll
	}
	return Criteria{
		Mode:   mode,
		First:  NewTag(name1, value1),
		Second: NewTag(name2, value2),
	}
}

/**************************************************************************************************
** Matches evaluates the photo's tag list against this criteria.
**************************************************************************************************/
func (c Criteria) Matches(photo *Photo) bool {
	if photo == nil {
		return false
	}
	switch c.Mode {
	case MatchSingle:
		return containsTag(photo.Tags, c.First)
	case MatchAll:
		return containsTag(photo.Tags, c.First) && containsTag(photo.Tags, c.Second)
	case MatchAny:
		return containsTag(photo.Tags, c.First) || containsTag(photo.Tags, c.Second)
	}
	return false
}
