package models

// Position names where the CTA is anchored on the viewer's screen
type Position string

const (
	PositionBottomLeft   Position = "bottom-left"
	PositionBottomRight  Position = "bottom-right"
	PositionBottomBanner Position = "bottom-banner"
	PositionCustom       Position = "custom"
)

// Theme selects the light or dark color-and-logo treatment
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// FontFamilies is the fixed set of fonts the editor offers.
// The first entry is the default.
var FontFamilies = []string{"Inter", "Roboto", "Poppins", "Georgia", "Courier New"}

// Editing UI ranges for numeric style fields. The codec does not
// re-validate these; only the editor clamps to them.
const (
	MinFontSize     = 10
	MaxFontSize     = 24
	MinScale        = 0.8
	MaxScale        = 1.5
	MinCornerRadius = 0
	MaxCornerRadius = 30
)

// Offset is a pixel offset from the container origin
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CtaData holds one CTA's visual and content configuration
type CtaData struct {
	Message         string   `json:"message"`
	ButtonText      string   `json:"buttonText"`
	ButtonURL       string   `json:"buttonUrl"`
	Position        Position `json:"position,omitempty"`
	Theme           Theme    `json:"theme,omitempty"`
	BgColor         string   `json:"bgColor,omitempty"`
	BtnColor        string   `json:"btnColor,omitempty"`
	ProfileImageURL string   `json:"profileImageUrl,omitempty"`
	FontFamily      string   `json:"fontFamily,omitempty"`
	FontSize        int      `json:"fontSize,omitempty"`
	Scale           float64  `json:"scale,omitempty"`
	// CornerRadius is a pointer because 0 is a legal radius, distinct
	// from the field being absent.
	CornerRadius   *int    `json:"cornerRadius,omitempty"`
	CustomPosition *Offset `json:"customPosition,omitempty"`
}

// IntPtr is a convenience for building CtaData literals
func IntPtr(v int) *int {
	return &v
}

// DefaultCta returns the starting configuration for a new creation session
func DefaultCta() CtaData {
	return CtaData{
		Message:      "Like what you see?",
		ButtonText:   "Learn more",
		Position:     PositionBottomLeft,
		Theme:        ThemeLight,
		BgColor:      "#ffffff",
		BtnColor:     "#1877f2",
		FontFamily:   FontFamilies[0],
		FontSize:     14,
		Scale:        1,
		CornerRadius: IntPtr(8),
	}
}

// ApplyDefaults fills any absent optional field with its default value.
// This is the single "complete the model" step: it runs once when a
// payload is decoded, so downstream code can assume a fully populated
// model instead of defaulting field-by-field at render time.
func ApplyDefaults(d *CtaData) {
	if d.Position == "" {
		d.Position = PositionBottomLeft
	}
	if d.Theme == "" {
		d.Theme = ThemeLight
	}
	if d.FontFamily == "" {
		d.FontFamily = FontFamilies[0]
	}
	if d.FontSize == 0 {
		d.FontSize = 14
	}
	if d.Scale == 0 {
		d.Scale = 1
	}
	if d.CornerRadius == nil {
		d.CornerRadius = IntPtr(8)
	}
}

// ClampStyle pins the numeric style fields to the ranges the editing UI
// offers. Decode never calls this; links generated elsewhere keep
// whatever values they carry.
func ClampStyle(d *CtaData) {
	if d.FontSize < MinFontSize {
		d.FontSize = MinFontSize
	}
	if d.FontSize > MaxFontSize {
		d.FontSize = MaxFontSize
	}
	if d.Scale < MinScale {
		d.Scale = MinScale
	}
	if d.Scale > MaxScale {
		d.Scale = MaxScale
	}
	if d.CornerRadius != nil {
		if *d.CornerRadius < MinCornerRadius {
			d.CornerRadius = IntPtr(MinCornerRadius)
		}
		if *d.CornerRadius > MaxCornerRadius {
			d.CornerRadius = IntPtr(MaxCornerRadius)
		}
	}
}
