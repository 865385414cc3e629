package listing

import (
	"fmt"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
)

type Tab string

const (
	TabAll     Tab = "all"
	TabPopular Tab = "popular"
	TabNew     Tab = "new"
)

func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case "", TabAll:
		return TabAll, nil
	case TabPopular, TabNew:
		return Tab(s), nil
	}
	return "", fmt.Errorf("unknown tab %q", s)
}

// Select narrows an already published listing to one tab.
func (t Tab) Select(courses []models.Course) []models.Course {
	if t == TabAll || t == "" {
		return courses
	}
	result := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if (t == TabPopular && c.Popular) || (t == TabNew && c.New) {
			result = append(result, c)
		}
	}
	return result
}
