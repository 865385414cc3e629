package memory

import "github.com/SAP-F-2025/course-catalog-service/internal/models"

// DefaultUserID identifies the learner every simulated login falls back to.
const DefaultUserID = "1"

func seedLearner() models.User {
	return models.User{
		ID:               DefaultUserID,
		Name:             "John Doe",
		Email:            "john.doe@example.com",
		Avatar:           "/placeholder.svg?height=64&width=64&text=JD",
		Role:             models.RoleStudent,
		EnrolledCourses:  []string{"1", "2", "6"},
		CompletedCourses: []string{"3", "5", "7", "9", "10", "4", "8"},
		SavedCourses:     []string{"4", "8"},
		Progress: []models.CourseProgress{
			{CourseID: "1", Progress: 68, LastLesson: "HTML Forms and Input Elements", TimeLeft: "2h 15m"},
			{CourseID: "2", Progress: 42, LastLesson: "useState Hook", TimeLeft: "3h 30m"},
			{CourseID: "6", Progress: 23, LastLesson: "NumPy Arrays", TimeLeft: "4h 45m"},
		},
		Certificates: []string{"3", "5", "7", "9", "10"},
	}
}

func courseRef(id string) *string {
	return &id
}

func seedUpcomingEvents() []models.UpcomingEvent {
	return []models.UpcomingEvent{
		{ID: "1", Title: "Live Q&A Session", Date: "Today, 3:00 PM", Course: "Web Development", CourseID: courseRef("1")},
		{ID: "2", Title: "Group Project Meeting", Date: "Tomorrow, 10:00 AM", Course: "React.js", CourseID: courseRef("2")},
		{ID: "3", Title: "Workshop: Portfolio Building", Date: "Fri, 2:00 PM", Course: "Career Development"},
	}
}

func seedManagedUsers() []models.ManagedUser {
	avatar := func(initials string) string {
		return "/placeholder.svg?height=40&width=40&text=" + initials
	}
	return []models.ManagedUser{
		{ID: "1", Name: "John Doe", Email: "john.doe@example.com", Role: models.RoleStudent, Status: models.AccountActive, JoinedDate: "Mar 10, 2023", Avatar: avatar("JD")},
		{ID: "2", Name: "Sarah Williams", Email: "sarah.williams@example.com", Role: models.RoleInstructor, Status: models.AccountActive, JoinedDate: "Jan 5, 2023", Avatar: avatar("SW")},
		{ID: "3", Name: "Michael Chen", Email: "michael.chen@example.com", Role: models.RoleAdmin, Status: models.AccountActive, JoinedDate: "Feb 15, 2023", Avatar: avatar("MC")},
		{ID: "4", Name: "Emily Rodriguez", Email: "emily.rodriguez@example.com", Role: models.RoleStudent, Status: models.AccountInactive, JoinedDate: "Apr 20, 2023", Avatar: avatar("ER")},
		{ID: "5", Name: "David Kim", Email: "david.kim@example.com", Role: models.RoleInstructor, Status: models.AccountPending, JoinedDate: "May 8, 2023", Avatar: avatar("DK")},
		{ID: "6", Name: "Jessica Thompson", Email: "jessica.thompson@example.com", Role: models.RoleStudent, Status: models.AccountActive, JoinedDate: "Jun 12, 2023", Avatar: avatar("JT")},
		{ID: "7", Name: "Robert Wilson", Email: "robert.wilson@example.com", Role: models.RoleStudent, Status: models.AccountActive, JoinedDate: "Jul 3, 2023", Avatar: avatar("RW")},
		{ID: "8", Name: "Lisa Martinez", Email: "lisa.martinez@example.com", Role: models.RoleInstructor, Status: models.AccountActive, JoinedDate: "Aug 22, 2023", Avatar: avatar("LM")},
	}
}

func seedContent() []models.ContentItem {
	return []models.ContentItem{
		{ID: "1", Title: "Web Development Masterclass", Type: models.ContentCourse, Author: "Alex Johnson", Status: models.ContentPublished, CreatedDate: "Jan 15, 2023", LastUpdated: "Mar 10, 2023"},
		{ID: "2", Title: "Introduction to Machine Learning", Type: models.ContentCourse, Author: "Michael Chen", Status: models.ContentDraft, CreatedDate: "Feb 5, 2023", LastUpdated: "Feb 20, 2023"},
		{ID: "3", Title: "Summer Coding Bootcamp", Type: models.ContentEvent, Author: "Sarah Williams", Status: models.ContentPublished, CreatedDate: "Mar 1, 2023", LastUpdated: "Mar 15, 2023"},
		{ID: "4", Title: "New Course Submission Guidelines", Type: models.ContentArticle, Author: "Admin", Status: models.ContentPublished, CreatedDate: "Apr 10, 2023", LastUpdated: "Apr 10, 2023"},
		{ID: "5", Title: "Advanced JavaScript Techniques", Type: models.ContentCourse, Author: "David Kim", Status: models.ContentReview, CreatedDate: "May 5, 2023", LastUpdated: "May 18, 2023"},
		{ID: "6", Title: "UI/UX Design Principles", Type: models.ContentCourse, Author: "Lisa Martinez", Status: models.ContentPublished, CreatedDate: "Jun 12, 2023", LastUpdated: "Jun 30, 2023"},
	}
}

func seedPlans() []models.Plan {
	return []models.Plan{
		{
			Key:          "basic",
			Name:         "Basic",
			MonthlyPrice: 9.99,
			YearlyPrice:  99.99,
			Features:     []string{"Access to 50+ courses", "Basic course materials", "Course completion certificates", "24/7 support"},
			Limitations:  []string{"No downloadable resources", "No live sessions", "Limited course selection"},
		},
		{
			Key:          "pro",
			Name:         "Professional",
			MonthlyPrice: 19.99,
			YearlyPrice:  199.99,
			Features: []string{
				"Access to 200+ courses",
				"Downloadable resources",
				"Course completion certificates",
				"Live Q&A sessions",
				"Priority support",
				"Offline viewing",
			},
			Limitations: []string{"Limited instructor contact"},
		},
		{
			Key:          "premium",
			Name:         "Premium",
			MonthlyPrice: 29.99,
			YearlyPrice:  299.99,
			Features: []string{
				"Access to all courses",
				"Downloadable resources",
				"Course completion certificates",
				"Live Q&A sessions",
				"1-on-1 instructor sessions",
				"Priority support",
				"Offline viewing",
				"Early access to new courses",
			},
			Limitations: []string{},
		},
	}
}
