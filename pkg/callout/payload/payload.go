package payload

import (
	"github.com/callouthq/callout/pkg/callout/models"
)

// Kind discriminates the two payload shapes
type Kind string

const (
	KindSingle Kind = "single"
	KindAB     Kind = "ab"
)

// LinkPayload is the full configuration a share link carries: either one
// CTA shown unconditionally, or an A/B pair sharing one target URL.
type LinkPayload struct {
	Kind      Kind
	TargetURL string
	// Data is set for single payloads
	Data *models.CtaData
	// Variants holds exactly two entries for A/B payloads
	Variants []models.CtaData
}

// NewSingle freezes one CTA configuration into a payload.
// The data is copied so later edits to the live model don't leak in.
func NewSingle(targetURL string, data models.CtaData) LinkPayload {
	return LinkPayload{
		Kind:      KindSingle,
		TargetURL: targetURL,
		Data:      &data,
	}
}

// NewAB freezes an A/B pair into a payload.
func NewAB(targetURL string, a, b models.CtaData) LinkPayload {
	return LinkPayload{
		Kind:      KindAB,
		TargetURL: targetURL,
		Variants:  []models.CtaData{a, b},
	}
}

// CorruptLinkError is returned when a link fragment cannot be decoded
// into a well-formed payload. Decoding is all-or-nothing: a corrupt
// link never yields a partially populated payload.
type CorruptLinkError struct {
	Reason string
}

func (e *CorruptLinkError) Error() string {
	return "corrupt link: " + e.Reason
}
