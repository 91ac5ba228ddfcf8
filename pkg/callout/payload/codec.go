package payload

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/callouthq/callout/pkg/callout/models"
)

// wirePayload is the JSON shape that travels in the link fragment
type wirePayload struct {
	Type      Kind             `json:"type"`
	TargetURL string           `json:"targetUrl"`
	Data      *models.CtaData  `json:"data,omitempty"`
	Variants  []models.CtaData `json:"variants,omitempty"`
}

// Encode serializes a payload to a URL-fragment-safe string.
// Decode(Encode(p)) is structurally equal to p for any well-formed p.
// No compaction or size limiting is performed: fragment length grows
// with payload size.
func Encode(p LinkPayload) (string, error) {
	switch p.Kind {
	case KindSingle:
		if p.Data == nil {
			return "", fmt.Errorf("single payload has no data")
		}
	case KindAB:
		if len(p.Variants) != 2 {
			return "", fmt.Errorf("ab payload needs exactly 2 variants, got %d", len(p.Variants))
		}
	default:
		return "", fmt.Errorf("unknown payload kind %q", p.Kind)
	}

	wire := wirePayload{
		Type:      p.Kind,
		TargetURL: p.TargetURL,
		Data:      p.Data,
		Variants:  p.Variants,
	}
	raw, err := json.Marshal(wire)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode parses a link fragment back into a payload. Any input that
// does not reverse-encode into one of the declared shapes fails with
// CorruptLinkError; nothing is ever partially accepted. Every embedded
// configuration comes back fully populated (defaults applied), so
// downstream code never defaults field-by-field.
func Decode(text string) (LinkPayload, error) {
	raw, err := base64.RawURLEncoding.DecodeString(text)
	if err != nil {
		return LinkPayload{}, &CorruptLinkError{"not a valid encoding"}
	}

	var wire wirePayload
	if err := json.Unmarshal(raw, &wire); err != nil {
		return LinkPayload{}, &CorruptLinkError{"not valid payload data"}
	}

	if strings.TrimSpace(wire.TargetURL) == "" {
		return LinkPayload{}, &CorruptLinkError{"missing target URL"}
	}

	switch wire.Type {
	case KindSingle:
		if wire.Data == nil || wire.Variants != nil {
			return LinkPayload{}, &CorruptLinkError{"malformed single payload"}
		}
		models.ApplyDefaults(wire.Data)
		return LinkPayload{
			Kind:      KindSingle,
			TargetURL: wire.TargetURL,
			Data:      wire.Data,
		}, nil
	case KindAB:
		if wire.Data != nil || len(wire.Variants) != 2 {
			return LinkPayload{}, &CorruptLinkError{"ab payload must carry exactly 2 variants"}
		}
		for i := range wire.Variants {
			models.ApplyDefaults(&wire.Variants[i])
		}
		return LinkPayload{
			Kind:      KindAB,
			TargetURL: wire.TargetURL,
			Variants:  wire.Variants,
		}, nil
	default:
		return LinkPayload{}, &CorruptLinkError{"unknown payload type"}
	}
}

// BuildLink assembles the shareable viewer URL for an encoded fragment
func BuildLink(baseURL, fragment string) string {
	return strings.TrimRight(baseURL, "/") + "/v#" + fragment
}
