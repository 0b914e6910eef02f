package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// NotificationID records a notification identifier under the key
// "notification_id". If id is empty, it returns an empty Attr.
func NotificationID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("notification_id", id)
}

// Variant records a notification variant under the key "variant".
// If variant is empty, it returns an empty Attr.
func Variant(variant string) slog.Attr {
	if variant == "" {
		return slog.Attr{}
	}
	return slog.String("variant", variant)
}

// Position records a screen anchor under the key "position".
// If position is empty, it returns an empty Attr.
func Position(position string) slog.Attr {
	if position == "" {
		return slog.Attr{}
	}
	return slog.String("position", position)
}

// Count records the active-set size under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
