package models

import "strings"

// ValidationError represents a validation error
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateForGenerate checks the fields that must be present before a
// share link can be generated. Generation is blocked on failure; no
// payload is produced. For an A/B pair, both variants must pass.
func ValidateForGenerate(targetURL string, variants ...CtaData) error {
	if strings.TrimSpace(targetURL) == "" {
		return &ValidationError{"Target URL is required"}
	}
	for _, v := range variants {
		if strings.TrimSpace(v.ButtonURL) == "" {
			return &ValidationError{"Button URL is required"}
		}
	}
	return nil
}
