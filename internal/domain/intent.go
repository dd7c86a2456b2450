package domain

import (
	"bytes"
	"encoding/json"
	"time"
)

// ISO8601Millis matches the browser's Date.toISOString output.
const ISO8601Millis = "2006-01-02T15:04:05.000Z07:00"

// Surface identifies the UI area a purchase intent originates from and
// how its label is keyed in the outbound payload.
type Surface struct {
	Name       string
	LabelField string
	Source     string
}

var (
	// SurfaceCTA is the generic get-started call-to-action.
	SurfaceCTA = Surface{Name: "cta", LabelField: "action", Source: "landing_cta"}

	// SurfacePricing is the per-plan purchase button in the pricing section.
	SurfacePricing = Surface{Name: "pricing", LabelField: "package", Source: "pricing_section"}
)

// CTAAction is the fixed label sent for the generic call-to-action.
const CTAAction = "get_started"

// SurfaceByName returns the surface registered under name.
func SurfaceByName(name string) (Surface, bool) {
	switch name {
	case SurfaceCTA.Name:
		return SurfaceCTA, true
	case SurfacePricing.Name:
		return SurfacePricing, true
	default:
		return Surface{}, false
	}
}

// PurchaseIntentEvent is the payload sent to the purchase-intent webhook.
type PurchaseIntentEvent struct {
	Surface         Surface
	ActionOrPackage string
	Timestamp       time.Time
	ClientSignature string
}

// NewPurchaseIntentEvent builds an event stamped with now.
func NewPurchaseIntentEvent(surface Surface, label, userAgent string, now time.Time) PurchaseIntentEvent {
	return PurchaseIntentEvent{
		Surface:         surface,
		ActionOrPackage: label,
		Timestamp:       now,
		ClientSignature: userAgent,
	}
}

// MarshalJSON writes the label under the surface's field name followed by
// timestamp, source and userAgent, in that order.
func (e PurchaseIntentEvent) MarshalJSON() ([]byte, error) {
	field := e.Surface.LabelField
	if field == "" {
		field = SurfaceCTA.LabelField
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	pairs := [][2]string{
		{field, e.ActionOrPackage},
		{"timestamp", e.Timestamp.UTC().Format(ISO8601Millis)},
		{"source", e.Surface.Source},
		{"userAgent", e.ClientSignature},
	}
	for i, kv := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(kv[0])
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(kv[1])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ControlID returns the busy-state key of the control that raised an
// intent on surface with label.
func ControlID(surface Surface, label string) string {
	if surface.Name == SurfacePricing.Name {
		return "plan:" + label
	}
	return surface.Name
}
