package models

type CourseLevel = string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
	LevelAllLevels    CourseLevel = "All Levels"
)

// SelectableLevels are the level tokens offered by the catalog filter.
var SelectableLevels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelAllLevels}

type LessonType string

const (
	LessonVideo      LessonType = "video"
	LessonQuiz       LessonType = "quiz"
	LessonAssignment LessonType = "assignment"
	LessonArticle    LessonType = "article"
)

type Instructor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
}

type Lesson struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Duration  string     `json:"duration"`
	Type      LessonType `json:"type"`
	Completed bool       `json:"completed,omitempty"`
	Preview   bool       `json:"preview,omitempty"`
}

type CurriculumSection struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

type Review struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	Rating  int    `json:"rating"`
	Date    string `json:"date"`
	Comment string `json:"comment"`
}

type Course struct {
	ID               string     `json:"id"`
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description"`
	Thumbnail        string     `json:"thumbnail"`
	Instructor       Instructor `json:"instructor"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	Students    int     `json:"students"`
	Duration    string  `json:"duration"`
	Lessons     int     `json:"lessons"`
	Level       string  `json:"level"`
	LastUpdated string  `json:"last_updated"`

	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price,omitempty"`

	Tags     []string `json:"tags"`
	Category string   `json:"category"`
	Featured bool     `json:"featured"`
	Popular  bool     `json:"popular"`
	New      bool     `json:"new"`

	WhatYouWillLearn []string            `json:"what_you_will_learn"`
	Requirements     []string            `json:"requirements"`
	Curriculum       []CurriculumSection `json:"curriculum"`
	Reviews          []Review            `json:"reviews"`
}

// EffectivePrice is the discounted price when one is set, otherwise the list price.
func (c Course) EffectivePrice() float64 {
	if c.DiscountPrice != nil {
		return *c.DiscountPrice
	}
	return c.Price
}

// CategorySlug is the slug of the course's category name.
func (c Course) CategorySlug() string {
	return Slugify(c.Category)
}

// LessonIDs returns every curriculum lesson id in order.
func (c Course) LessonIDs() []string {
	var ids []string
	for _, section := range c.Curriculum {
		for _, lesson := range section.Lessons {
			ids = append(ids, lesson.ID)
		}
	}
	return ids
}

// CourseSummary is the card-sized projection used by dashboard views and exports.
type CourseSummary struct {
	ID             string  `json:"id"`
	Slug           string  `json:"slug"`
	Title          string  `json:"title"`
	Thumbnail      string  `json:"thumbnail"`
	InstructorName string  `json:"instructor_name"`
	Level          string  `json:"level"`
	Category       string  `json:"category"`
	Price          float64 `json:"price"`
	EffectivePrice float64 `json:"effective_price"`
	Rating         float64 `json:"rating"`
}

func (c Course) Summary() CourseSummary {
	return CourseSummary{
		ID:             c.ID,
		Slug:           c.Slug,
		Title:          c.Title,
		Thumbnail:      c.Thumbnail,
		InstructorName: c.Instructor.Name,
		Level:          c.Level,
		Category:       c.Category,
		Price:          c.Price,
		EffectivePrice: c.EffectivePrice(),
		Rating:         c.Rating,
	}
}
