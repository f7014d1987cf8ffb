package domain

import "errors"

// CategoryGroup buckets the slices of a user's wheel of life.
type CategoryGroup string

const (
	GroupHealth        CategoryGroup = "Health"
	GroupRelationships CategoryGroup = "Relationships"
	GroupCareer        CategoryGroup = "Career"
	GroupOther         CategoryGroup = "Other"
)

var ErrCategoryNotFound = errors.New("category not found")
var ErrInvalidCategory = errors.New("invalid category")

// Category is one slice of a user's wheel, owned by exactly one user.
type Category struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Group     CategoryGroup `json:"categoryGroup"`
	UserEmail string        `json:"-"`
}

// Valid reports whether g is one of the known groups.
func (g CategoryGroup) Valid() bool {
	switch g {
	case GroupHealth, GroupRelationships, GroupCareer, GroupOther:
		return true
	}
	return false
}

// DefaultCategories returns the standard set every new user starts with.
func DefaultCategories(userEmail string) []Category {
	return []Category{
		{Name: "Finances", Group: GroupCareer, UserEmail: userEmail},
		{Name: "Mental Health", Group: GroupHealth, UserEmail: userEmail},
		{Name: "Physical Health", Group: GroupHealth, UserEmail: userEmail},
		{Name: "Friends", Group: GroupRelationships, UserEmail: userEmail},
		{Name: "Family", Group: GroupRelationships, UserEmail: userEmail},
		{Name: "Romance", Group: GroupRelationships, UserEmail: userEmail},
		{Name: "Growth", Group: GroupCareer, UserEmail: userEmail},
		{Name: "Purpose", Group: GroupCareer, UserEmail: userEmail},
		{Name: "Social Engagement", Group: GroupOther, UserEmail: userEmail},
		{Name: "Entertainment", Group: GroupOther, UserEmail: userEmail},
	}
}
