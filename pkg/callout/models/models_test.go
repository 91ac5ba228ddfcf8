package models

import "testing"

func TestDefaultCta(t *testing.T) {
	d := DefaultCta()

	if d.Position != PositionBottomLeft {
		t.Errorf("Expected default position bottom-left, got %s", d.Position)
	}
	if d.Theme != ThemeLight {
		t.Errorf("Expected default theme light, got %s", d.Theme)
	}
	if d.FontFamily != FontFamilies[0] {
		t.Errorf("Expected default font %s, got %s", FontFamilies[0], d.FontFamily)
	}
	if d.FontSize != 14 || d.Scale != 1 {
		t.Errorf("Unexpected default style fields: fontSize=%d scale=%v", d.FontSize, d.Scale)
	}
	if d.CornerRadius == nil || *d.CornerRadius != 8 {
		t.Errorf("Expected default corner radius 8, got %v", d.CornerRadius)
	}
}

func TestApplyDefaultsFillsAbsentFields(t *testing.T) {
	d := CtaData{
		Message:    "Hello",
		ButtonText: "Go",
		ButtonURL:  "https://x.com",
	}

	ApplyDefaults(&d)

	if d.Position != PositionBottomLeft {
		t.Errorf("Expected position bottom-left, got %s", d.Position)
	}
	if d.Theme != ThemeLight {
		t.Errorf("Expected theme light, got %s", d.Theme)
	}
	if d.FontSize != 14 {
		t.Errorf("Expected fontSize 14, got %d", d.FontSize)
	}
	if d.Scale != 1 {
		t.Errorf("Expected scale 1, got %v", d.Scale)
	}
	if d.CornerRadius == nil || *d.CornerRadius != 8 {
		t.Errorf("Expected corner radius 8, got %v", d.CornerRadius)
	}
	if d.FontFamily != "Inter" {
		t.Errorf("Expected fontFamily Inter, got %s", d.FontFamily)
	}
}

func TestApplyDefaultsKeepsSetFields(t *testing.T) {
	d := CtaData{
		Position:     PositionBottomBanner,
		Theme:        ThemeDark,
		FontFamily:   "Georgia",
		FontSize:     20,
		Scale:        1.2,
		CornerRadius: IntPtr(0),
	}

	ApplyDefaults(&d)

	if d.Position != PositionBottomBanner || d.Theme != ThemeDark || d.FontFamily != "Georgia" {
		t.Error("ApplyDefaults overwrote populated fields")
	}
	if d.FontSize != 20 || d.Scale != 1.2 {
		t.Error("ApplyDefaults overwrote populated numeric fields")
	}
	if *d.CornerRadius != 0 {
		t.Errorf("Expected explicit zero corner radius to survive, got %d", *d.CornerRadius)
	}
}

func TestClampStyle(t *testing.T) {
	d := CtaData{FontSize: 99, Scale: 0.1, CornerRadius: IntPtr(50)}
	ClampStyle(&d)

	if d.FontSize != MaxFontSize {
		t.Errorf("Expected fontSize clamped to %d, got %d", MaxFontSize, d.FontSize)
	}
	if d.Scale != MinScale {
		t.Errorf("Expected scale clamped to %v, got %v", MinScale, d.Scale)
	}
	if *d.CornerRadius != MaxCornerRadius {
		t.Errorf("Expected corner radius clamped to %d, got %d", MaxCornerRadius, *d.CornerRadius)
	}
}

func TestValidateForGenerate(t *testing.T) {
	ok := CtaData{Message: "Hi", ButtonText: "Go", ButtonURL: "https://x.com"}

	if err := ValidateForGenerate("https://site.com", ok); err != nil {
		t.Errorf("Expected valid configuration to pass, got %v", err)
	}

	if err := ValidateForGenerate("", ok); err == nil {
		t.Error("Expected empty target URL to fail validation")
	}

	missingButton := ok
	missingButton.ButtonURL = "  "
	if err := ValidateForGenerate("https://site.com", missingButton); err == nil {
		t.Error("Expected empty button URL to fail validation")
	}

	// For A/B, either variant missing its button URL blocks generation
	if err := ValidateForGenerate("https://site.com", ok, missingButton); err == nil {
		t.Error("Expected A/B pair with one invalid variant to fail validation")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidateForGenerate("")
	var vErr *ValidationError
	if e, isValidation := err.(*ValidationError); isValidation {
		vErr = e
	} else {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if vErr.Error() == "" {
		t.Error("Expected a human-readable validation message")
	}
}
