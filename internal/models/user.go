package models

import "slices"

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// CourseProgress tracks how far a learner got through one enrolled course.
type CourseProgress struct {
	CourseID   string `json:"course_id"`
	Progress   int    `json:"progress"`
	LastLesson string `json:"last_lesson"`
	TimeLeft   string `json:"time_left"`
}

type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Avatar string   `json:"avatar"`
	Role   UserRole `json:"role"`

	EnrolledCourses  []string         `json:"enrolled_courses"`
	CompletedCourses []string         `json:"completed_courses"`
	SavedCourses     []string         `json:"saved_courses"`
	Progress         []CourseProgress `json:"progress"`
	Certificates     []string         `json:"certificates"`
}

func (u User) IsEnrolled(courseID string) bool {
	return slices.Contains(u.EnrolledCourses, courseID)
}

func (u User) HasSaved(courseID string) bool {
	return slices.Contains(u.SavedCourses, courseID)
}

// Clone returns a copy that shares no slices with u.
func (u User) Clone() User {
	u.EnrolledCourses = slices.Clone(u.EnrolledCourses)
	u.CompletedCourses = slices.Clone(u.CompletedCourses)
	u.SavedCourses = slices.Clone(u.SavedCourses)
	u.Progress = slices.Clone(u.Progress)
	u.Certificates = slices.Clone(u.Certificates)
	return u
}

type UpcomingEvent struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Date     string  `json:"date"`
	Course   string  `json:"course"`
	CourseID *string `json:"course_id"`
}
