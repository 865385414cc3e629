package models

type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
	AccountPending  AccountStatus = "pending"
)

// ManagedUser is a row of the admin panel's user table.
type ManagedUser struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Role       UserRole      `json:"role"`
	Status     AccountStatus `json:"status"`
	JoinedDate string        `json:"joined_date"`
	Avatar     string        `json:"avatar"`
}

type ContentType string

const (
	ContentCourse  ContentType = "course"
	ContentArticle ContentType = "article"
	ContentEvent   ContentType = "event"
)

type ContentStatus string

const (
	ContentDraft     ContentStatus = "draft"
	ContentReview    ContentStatus = "review"
	ContentPublished ContentStatus = "published"
)

// ContentItem is a row of the admin panel's content table.
type ContentItem struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Type        ContentType   `json:"type"`
	Author      string        `json:"author"`
	Status      ContentStatus `json:"status"`
	CreatedDate string        `json:"created_date"`
	LastUpdated string        `json:"last_updated"`
}

type BulkAction string

const (
	BulkDelete     BulkAction = "delete"
	BulkActivate   BulkAction = "activate"
	BulkDeactivate BulkAction = "deactivate"
)

type AdminTarget string

const (
	TargetUser    AdminTarget = "user"
	TargetContent AdminTarget = "content"
)
