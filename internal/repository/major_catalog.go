package repository

import (
	"strings"

	"github.com/coopsight/coopsight-backend/internal/model"
)

// MajorCatalog is the fixed set of valid academic majors. Name lookups are
// case-insensitive; stored names are upper-case canonical. The catalog is
// immutable after construction, so it has no Reset.
type MajorCatalog struct {
	majors []model.Major
}

func NewMajorCatalog() *MajorCatalog {
	return &MajorCatalog{
		majors: []model.Major{
			{MajorID: 1, Name: "COMPUTER SCIENCE"},
			{MajorID: 2, Name: "DESIGN"},
			{MajorID: 3, Name: "MATH"},
		},
	}
}

// IsValid reports whether name is in the catalog, ignoring case.
func (c *MajorCatalog) IsValid(name string) bool {
	_, ok := c.IDOf(name)
	return ok
}

// IDOf resolves a major name to its ID, ignoring case.
func (c *MajorCatalog) IDOf(name string) (int, bool) {
	upper := strings.ToUpper(name)
	for _, m := range c.majors {
		if m.Name == upper {
			return m.MajorID, true
		}
	}
	return 0, false
}

// NameOf resolves a major ID to its canonical name.
func (c *MajorCatalog) NameOf(id int) (string, bool) {
	for _, m := range c.majors {
		if m.MajorID == id {
			return m.Name, true
		}
	}
	return "", false
}
