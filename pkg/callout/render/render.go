// Package render maps a CTA configuration to concrete visual
// attributes. Rendering is pure: the input model is never mutated.
package render

import (
	"github.com/callouthq/callout/pkg/callout/models"
)

// Sandbox capability sets for the embedded target frame. The viewer
// frame is restrictive because it hosts arbitrary third-party content
// in front of visitors; the creator preview is author-controlled and
// gets forms and popups back.
const (
	ViewerSandbox  = "allow-scripts allow-same-origin"
	CreatorSandbox = "allow-scripts allow-same-origin allow-forms allow-popups"
)

// fallbackLogoGlyph is shown when no profile image is configured
const fallbackLogoGlyph = "📣"

// fontStacks maps the enumerated family names to full CSS stacks
var fontStacks = map[string]string{
	"Inter":       `"Inter", system-ui, sans-serif`,
	"Roboto":      `"Roboto", system-ui, sans-serif`,
	"Poppins":     `"Poppins", system-ui, sans-serif`,
	"Georgia":     `Georgia, "Times New Roman", serif`,
	"Courier New": `"Courier New", Courier, monospace`,
}

// Visual is the fully resolved description of how a CTA draws
type Visual struct {
	Message    string `json:"message"`
	ButtonText string `json:"buttonText"`
	ButtonURL  string `json:"buttonUrl"`

	Position       models.Position `json:"position"`
	CustomPosition *models.Offset  `json:"customPosition,omitempty"`

	BgColor      string `json:"bgColor"`
	TextColor    string `json:"textColor"`
	BtnColor     string `json:"btnColor"`
	BtnTextColor string `json:"btnTextColor"`

	// LogoURL is the configured profile image; LogoGlyph is the
	// fallback shown when it is absent.
	LogoURL   string `json:"logoUrl,omitempty"`
	LogoGlyph string `json:"logoGlyph,omitempty"`

	FontStack    string  `json:"fontStack"`
	FontSize     int     `json:"fontSize"`
	Scale        float64 `json:"scale"`
	CornerRadius int     `json:"cornerRadius"`

	// TransformOrigin anchors the scale transform at the bottom edge,
	// so increasing scale grows the element upward.
	TransformOrigin string `json:"transformOrigin"`

	Editable bool `json:"editable"`
}

// Render resolves a configuration to its visual attributes. Absent
// optional fields get the fixed defaults; the caller's model is left
// untouched.
func Render(data models.CtaData, editable bool) Visual {
	models.ApplyDefaults(&data)

	var custom *models.Offset
	if data.CustomPosition != nil {
		c := *data.CustomPosition
		custom = &c
	}

	v := Visual{
		Message:         data.Message,
		ButtonText:      data.ButtonText,
		ButtonURL:       data.ButtonURL,
		Position:        data.Position,
		CustomPosition:  custom,
		BgColor:         data.BgColor,
		BtnColor:        data.BtnColor,
		BtnTextColor:    "#ffffff",
		FontSize:        data.FontSize,
		Scale:           data.Scale,
		CornerRadius:    *data.CornerRadius,
		TransformOrigin: "bottom",
		Editable:        editable,
	}

	switch data.Theme {
	case models.ThemeDark:
		v.TextColor = "#f5f7fa"
		if v.BgColor == "" {
			v.BgColor = "#1f2933"
		}
	default:
		v.TextColor = "#1f2933"
		if v.BgColor == "" {
			v.BgColor = "#ffffff"
		}
	}

	if data.ProfileImageURL != "" {
		v.LogoURL = data.ProfileImageURL
	} else {
		v.LogoGlyph = fallbackLogoGlyph
	}

	if stack, ok := fontStacks[data.FontFamily]; ok {
		v.FontStack = stack
	} else {
		v.FontStack = fontStacks[models.FontFamilies[0]]
	}

	return v
}
