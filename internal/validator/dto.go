package validator

import "github.com/SAP-F-2025/course-catalog-service/internal/models"

// LoginRequest is shared by the student, instructor and admin portals
type LoginRequest struct {
	Email    string `json:"email" validate:"notblank,email_address"`
	Password string `json:"password" validate:"notblank"`
	Portal   string `json:"portal" validate:"omitempty,oneof=student instructor admin"`
}

// InstructorApplicationRequest is the "become an instructor" registration form
type InstructorApplicationRequest struct {
	FirstName     string `json:"first_name" validate:"notblank,max=100"`
	LastName      string `json:"last_name" validate:"notblank,max=100"`
	Email         string `json:"email" validate:"notblank,email_address"`
	Password      string `json:"password" validate:"notblank,min=8"`
	Phone         string `json:"phone" validate:"omitempty,max=30"`
	Expertise     string `json:"expertise" validate:"notblank,expertise"`
	Bio           string `json:"bio" validate:"notblank,min=50,max=2000"`
	Website       string `json:"website" validate:"omitempty,url"`
	LinkedIn      string `json:"linkedin" validate:"omitempty,url"`
	TermsAccepted bool   `json:"terms_accepted" validate:"accepted"`
}

// ContactRequest represents the contact page form
type ContactRequest struct {
	Name    string `json:"name" validate:"notblank,max=100"`
	Email   string `json:"email" validate:"notblank,email_address"`
	Subject string `json:"subject" validate:"omitempty,oneof=general support billing partnership"`
	Message string `json:"message" validate:"notblank,min=10,max=5000"`
}

type ProfileUpdateRequest struct {
	FirstName string `json:"first_name" validate:"notblank,max=100"`
	LastName  string `json:"last_name" validate:"notblank,max=100"`
	Email     string `json:"email" validate:"notblank,email_address"`
	Bio       string `json:"bio" validate:"omitempty,max=500"`
	Location  string `json:"location" validate:"omitempty,max=100"`
	Website   string `json:"website" validate:"omitempty,url"`
}

type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password" validate:"notblank"`
	NewPassword     string `json:"new_password" validate:"notblank,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"notblank,eqfield=NewPassword"`
}

// AvatarUpdateRequest describes the uploaded picture; the bytes are never stored.
type AvatarUpdateRequest struct {
	FileName    string `json:"file_name" validate:"notblank,max=255"`
	ContentType string `json:"content_type" validate:"omitempty,oneof=image/png image/jpeg image/gif image/webp"`
}

type PlanChangeRequest struct {
	Plan string `json:"plan" validate:"notblank"`
}

type BillingCycleRequest struct {
	Cycle models.BillingCycle `json:"cycle" validate:"oneof=monthly yearly"`
}

// PaymentMethodRequest is the add-card form
type PaymentMethodRequest struct {
	CardNumber string `json:"card_number" validate:"notblank,card_number"`
	CardName   string `json:"card_name" validate:"notblank,max=100"`
	ExpiryDate string `json:"expiry_date" validate:"notblank,card_expiry"`
	CVV        string `json:"cvv" validate:"notblank,numeric,min=3,max=4"`
}

// AppearanceUpdateRequest carries only the settings that changed.
type AppearanceUpdateRequest struct {
	Theme         *string `json:"theme" validate:"omitempty,oneof=light dark system"`
	FontSize      *int    `json:"font_size" validate:"omitempty,min=12,max=20"`
	Animations    *bool   `json:"animations"`
	ReducedMotion *bool   `json:"reduced_motion"`
	HighContrast  *bool   `json:"high_contrast"`
}

// ListingUpdateRequest batches filter edits into one recomputation
type ListingUpdateRequest struct {
	Query    *string  `json:"query" validate:"omitempty,max=200"`
	Category *string  `json:"category" validate:"omitempty,max=100"`
	Levels   []string `json:"levels" validate:"omitempty,dive,course_level"`
	MinPrice *float64 `json:"min_price" validate:"omitempty,min=0"`
	MaxPrice *float64 `json:"max_price" validate:"omitempty,min=0"`
}

// ListingLevelToggleRequest names one level to switch on or off
type ListingLevelToggleRequest struct {
	Value string `json:"value" validate:"course_level"`
}

type ListingPriceRequest struct {
	MinPrice float64 `json:"min_price" validate:"min=0"`
	MaxPrice float64 `json:"max_price" validate:"min=0"`
}

type AdminUserRequest struct {
	Name   string `json:"name" validate:"notblank,max=100"`
	Email  string `json:"email" validate:"notblank,email_address"`
	Role   string `json:"role" validate:"user_role"`
	Status string `json:"status" validate:"oneof=active inactive pending"`
}

type AdminContentRequest struct {
	Title  string `json:"title" validate:"notblank,max=200"`
	Type   string `json:"type" validate:"oneof=course article event"`
	Author string `json:"author" validate:"omitempty,max=100"`
	Status string `json:"status" validate:"oneof=draft review published"`
}

// BulkActionRequest may carry an empty selection; the service reports that
// as a notification rather than a validation failure.
type BulkActionRequest struct {
	Target string   `json:"target" validate:"oneof=user content"`
	Action string   `json:"action" validate:"oneof=delete activate deactivate"`
	IDs    []string `json:"ids" validate:"omitempty,dive,notblank"`
}
