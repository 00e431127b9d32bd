package inventory

import "strings"

// Condition indicates whether a unit is new or used stock.
type Condition string

// Unit conditions.
const (
	ConditionNew  Condition = "New"
	ConditionUsed Condition = "Used"
)

// String returns the string representation of a Condition.
func (c Condition) String() string {
	return string(c)
}

// ParseCondition derives a Condition from raw condition text and the unit's
// URL. Any occurrence of "used" or "pre-owned" in either input means used;
// everything else defaults to new.
func ParseCondition(raw, url string) Condition {
	text := strings.ToLower(raw)
	link := strings.ToLower(url)
	if strings.Contains(text, "used") || strings.Contains(text, "pre-owned") ||
		strings.Contains(link, "used") || strings.Contains(link, "pre-owned") {
		return ConditionUsed
	}
	return ConditionNew
}
