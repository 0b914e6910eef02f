package toast

import (
	"time"
)

// Variant determines how a notification is grouped and rendered.
type Variant string

const (
	// VariantToast renders independently at its own position, never stacked.
	VariantToast Variant = "toast"
	// VariantSooner renders in a capped stack shared with other sooner
	// notifications at the same position.
	VariantSooner Variant = "sooner"
	// VariantBanner renders full-width.
	VariantBanner Variant = "banner"
)

// Type represents the notification type/severity.
type Type string

const (
	TypeDefault Type = "default"
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
)

// Position is a named screen anchor for rendering.
type Position string

const (
	PositionTopRight    Position = "top-right"
	PositionTopLeft     Position = "top-left"
	PositionBottomRight Position = "bottom-right"
	PositionBottomLeft  Position = "bottom-left"
	PositionCenter      Position = "center"
)

// Notification is the core domain model for a transient UI notification.
// Records are immutable after creation; the only lifecycle transition is
// removal from the active set (by expiry or explicit dismiss).
type Notification struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Variant   Variant       `json:"variant,omitempty"`
	Type      Type          `json:"type,omitempty"`
	Position  Position      `json:"position,omitempty"`
	Duration  time.Duration `json:"-"`
	CreatedAt time.Time     `json:"created_at"`
}

// Persistent reports whether the notification stays in the active set until
// explicitly dismissed. A zero duration means no expiry timer is armed.
func (n Notification) Persistent() bool {
	return n.Duration <= 0
}

// Normalized returns a copy with unrecognized or empty variant, type, and
// position values replaced by the documented defaults. Stored records keep
// the values exactly as supplied; normalization happens when options are
// read for rendering, so unknown values degrade instead of being rejected.
func (n Notification) Normalized() Notification {
	switch n.Variant {
	case VariantToast, VariantSooner, VariantBanner:
	default:
		n.Variant = VariantToast
	}
	switch n.Type {
	case TypeDefault, TypeSuccess, TypeError, TypeWarning:
	default:
		n.Type = TypeDefault
	}
	switch n.Position {
	case PositionTopRight, PositionTopLeft, PositionBottomRight, PositionBottomLeft, PositionCenter:
	default:
		n.Position = PositionTopRight
	}
	return n
}

// Option configures a single notification at Add time.
type Option func(*Notification)

// WithVariant sets the rendering variant.
func WithVariant(v Variant) Option {
	return func(n *Notification) { n.Variant = v }
}

// WithType sets the notification type/severity.
func WithType(t Type) Option {
	return func(n *Notification) { n.Type = t }
}

// WithPosition sets the screen anchor.
func WithPosition(p Position) Option {
	return func(n *Notification) { n.Position = p }
}

// WithDuration arms automatic removal after d elapses. A duration <= 0
// leaves the notification in place until explicitly dismissed.
func WithDuration(d time.Duration) Option {
	return func(n *Notification) { n.Duration = d }
}
