package models

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

const (
	MinFontSize     = 12
	MaxFontSize     = 20
	DefaultFontSize = 16
)

// Appearance holds the display preferences chosen on the appearance settings page.
type Appearance struct {
	Theme         Theme `json:"theme"`
	FontSize      int   `json:"font_size"`
	Animations    bool  `json:"animations"`
	ReducedMotion bool  `json:"reduced_motion"`
	HighContrast  bool  `json:"high_contrast"`
}

func DefaultAppearance() Appearance {
	return Appearance{
		Theme:      ThemeSystem,
		FontSize:   DefaultFontSize,
		Animations: true,
	}
}

type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

type Plan struct {
	Key          string   `json:"key"`
	Name         string   `json:"name"`
	MonthlyPrice float64  `json:"monthly_price"`
	YearlyPrice  float64  `json:"yearly_price"`
	Features     []string `json:"features"`
	Limitations  []string `json:"limitations"`
}
