package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/SAP-F-2025/course-catalog-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// ExpertiseOptions are the areas offered on the instructor application form.
var ExpertiseOptions = []string{
	"Web Development",
	"Mobile Development",
	"Data Science",
	"Machine Learning",
	"UI/UX Design",
	"Digital Marketing",
	"Business",
	"Photography",
	"Music",
	"Language Learning",
	"Other",
}

var (
	emailPattern  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
)

// BusinessValidator handles form rule validation
type BusinessValidator struct {
	validate *validator.Validate
}

// NewBusinessValidator creates a new business validator
func NewBusinessValidator() *BusinessValidator {
	validate := validator.New()

	// report fields by their json names so messages line up with the form inputs
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	bv := &BusinessValidator{validate: validate}
	bv.registerBusinessRules()

	return bv
}

// Validate validates business rules for any struct
func (bv *BusinessValidator) Validate(s interface{}) ValidationErrors {
	err := bv.validate.Struct(s)
	if err != nil {
		return ToValidationErrors(err)
	}
	return nil
}

// ValidatePasswordChange adds the checks a struct tag cannot express.
func (bv *BusinessValidator) ValidatePasswordChange(req *PasswordChangeRequest) ValidationErrors {
	errs := bv.Validate(req)
	if !errs.Has("new_password") && req.NewPassword == req.CurrentPassword && req.CurrentPassword != "" {
		errs = append(errs, ValidationError{
			Field:   "new_password",
			Message: "New password must be different from the current password",
			Rule:    "nefield",
		})
	}
	return errs
}

func (bv *BusinessValidator) registerBusinessRules() {
	// Required text that is not just whitespace
	bv.validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	bv.validate.RegisterValidation("email_address", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	// Checkbox that must be ticked
	bv.validate.RegisterValidation("accepted", func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.Bool && fl.Field().Bool()
	})

	bv.validate.RegisterValidation("expertise", func(fl validator.FieldLevel) bool {
		return slices.Contains(ExpertiseOptions, fl.Field().String())
	})

	// MM/YY
	bv.validate.RegisterValidation("card_expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})

	// 13-19 digits, spaces and dashes allowed between groups
	bv.validate.RegisterValidation("card_number", func(fl validator.FieldLevel) bool {
		digits := strings.NewReplacer(" ", "", "-", "").Replace(fl.Field().String())
		if len(digits) < 13 || len(digits) > 19 {
			return false
		}
		_, err := strconv.ParseUint(digits, 10, 64)
		return err == nil
	})

	bv.validate.RegisterValidation("course_level", func(fl validator.FieldLevel) bool {
		return slices.Contains(models.SelectableLevels, fl.Field().String())
	})

	bv.validate.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).IsValid()
	})
}

// Messages the forms show, keyed by field and rule.
var fieldMessages = map[string]string{
	"first_name.notblank": "First name is required",
	"last_name.notblank":  "Last name is required",

	"email.notblank":      "Email is required",
	"email.email_address": "Please enter a valid email address",

	"password.notblank": "Password is required",
	"password.min":      "Password must be at least 8 characters",

	"expertise.notblank":  "Please select your area of expertise",
	"expertise.expertise": "Please select your area of expertise",
	"bio.notblank":        "Bio is required",
	"bio.min":             "Bio must be at least 50 characters",

	"terms_accepted.accepted": "You must accept the terms and conditions",

	"name.notblank":    "Name is required",
	"message.notblank": "Message is required",
	"message.min":      "Message must be at least 10 characters",
	"subject.oneof":    "Please select a subject",

	"current_password.notblank": "Current password is required",
	"new_password.notblank":     "New password is required",
	"new_password.min":          "Password must be at least 8 characters",
	"confirm_password.notblank": "Please confirm your new password",
	"confirm_password.eqfield":  "Passwords do not match",

	"card_number.notblank":    "Card number is required",
	"card_number.card_number": "Please enter a valid card number",
	"card_name.notblank":      "Name on card is required",
	"expiry_date.notblank":    "Expiry date is required",
	"expiry_date.card_expiry": "Expiry date must be in MM/YY format",
	"cvv.notblank":            "CVV is required",

	"title.notblank": "Title is required",
	"theme.oneof":    "Theme must be light, dark or system",
	"font_size.min":  "Font size must be between 12 and 20",
	"font_size.max":  "Font size must be between 12 and 20",
}

// getErrorMessage returns user-friendly error messages
func getErrorMessage(err validator.FieldError) string {
	if msg, ok := fieldMessages[err.Field()+"."+err.Tag()]; ok {
		return msg
	}

	switch err.Tag() {
	case "required", "notblank":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	case "numeric":
		return "must contain digits only"
	case "url":
		return "must be a valid URL"
	case "email_address":
		return "Please enter a valid email address"
	case "course_level":
		return "must be Beginner, Intermediate, Advanced or All Levels"
	case "user_role":
		return "must be a valid user role"
	default:
		return fmt.Sprintf("validation failed for rule '%s'", err.Tag())
	}
}
