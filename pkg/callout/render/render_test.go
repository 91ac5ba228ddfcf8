package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/callouthq/callout/pkg/callout/models"
)

func TestRenderLightTheme(t *testing.T) {
	d := models.DefaultCta()
	v := Render(d, false)

	if v.TextColor != "#1f2933" {
		t.Errorf("Unexpected light text color %s", v.TextColor)
	}
	if v.BgColor != "#ffffff" {
		t.Errorf("Unexpected background %s", v.BgColor)
	}
	if v.Editable {
		t.Error("Expected non-editable visual")
	}
}

func TestRenderDarkTheme(t *testing.T) {
	d := models.DefaultCta()
	d.Theme = models.ThemeDark
	d.BgColor = ""
	v := Render(d, true)

	if v.TextColor != "#f5f7fa" {
		t.Errorf("Unexpected dark text color %s", v.TextColor)
	}
	if v.BgColor != "#1f2933" {
		t.Errorf("Expected dark fallback background, got %s", v.BgColor)
	}
	if !v.Editable {
		t.Error("Expected editable visual")
	}
}

func TestRenderLogoFallback(t *testing.T) {
	d := models.DefaultCta()
	v := Render(d, false)
	if v.LogoURL != "" || v.LogoGlyph == "" {
		t.Errorf("Expected fallback glyph without a profile image, got url=%q glyph=%q", v.LogoURL, v.LogoGlyph)
	}

	d.ProfileImageURL = "https://cdn.example.com/me.png"
	v = Render(d, false)
	if v.LogoURL != d.ProfileImageURL || v.LogoGlyph != "" {
		t.Errorf("Expected configured image to win over the glyph, got url=%q glyph=%q", v.LogoURL, v.LogoGlyph)
	}
}

func TestRenderPassesNumericFieldsThrough(t *testing.T) {
	d := models.DefaultCta()
	d.FontSize = 18
	d.Scale = 1.3
	d.CornerRadius = models.IntPtr(0)
	v := Render(d, false)

	if v.FontSize != 18 || v.Scale != 1.3 || v.CornerRadius != 0 {
		t.Errorf("Numeric fields not passed through: %+v", v)
	}
	if v.TransformOrigin != "bottom" {
		t.Errorf("Expected scale anchored at the bottom edge, got %q", v.TransformOrigin)
	}
}

func TestRenderSubstitutesDefaultsForAbsentFields(t *testing.T) {
	v := Render(models.CtaData{Message: "Hi", ButtonText: "Go", ButtonURL: "https://x.com"}, false)

	if v.Position != models.PositionBottomLeft {
		t.Errorf("Expected default position, got %s", v.Position)
	}
	if v.FontSize != 14 || v.Scale != 1 || v.CornerRadius != 8 {
		t.Errorf("Expected default numeric fields, got %+v", v)
	}
	if v.FontStack == "" {
		t.Error("Expected a font stack for the default family")
	}
}

func TestRenderUnknownFontFallsBack(t *testing.T) {
	d := models.DefaultCta()
	d.FontFamily = "Wingdings"
	v := Render(d, false)

	if v.FontStack != fontStacks[models.FontFamilies[0]] {
		t.Errorf("Expected fallback to the first enumerated font, got %q", v.FontStack)
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	d := models.CtaData{
		Message:        "Hi",
		ButtonText:     "Go",
		ButtonURL:      "https://x.com",
		Position:       models.PositionCustom,
		CustomPosition: &models.Offset{X: 10, Y: 20},
	}
	snapshot := d
	snapshotOffset := *d.CustomPosition

	v := Render(d, false)

	if !reflect.DeepEqual(d, snapshot) {
		t.Errorf("Render mutated its input: before=%+v after=%+v", snapshot, d)
	}
	if *d.CustomPosition != snapshotOffset {
		t.Error("Render mutated the input's custom position")
	}

	// The visual's offset is a copy, not an alias
	v.CustomPosition.X = 999
	if d.CustomPosition.X != 10 {
		t.Error("Visual aliases the input's custom position")
	}
}

func TestSandboxCapabilitySets(t *testing.T) {
	// The viewer frame is restrictive; the creator preview adds forms
	// and popups on top of the same base set
	for _, cap := range []string{"allow-scripts", "allow-same-origin"} {
		if !strings.Contains(ViewerSandbox, cap) || !strings.Contains(CreatorSandbox, cap) {
			t.Errorf("Expected both sandboxes to carry %s", cap)
		}
	}
	for _, cap := range []string{"allow-forms", "allow-popups"} {
		if strings.Contains(ViewerSandbox, cap) {
			t.Errorf("Viewer sandbox must not carry %s", cap)
		}
		if !strings.Contains(CreatorSandbox, cap) {
			t.Errorf("Creator sandbox should carry %s", cap)
		}
	}
}
