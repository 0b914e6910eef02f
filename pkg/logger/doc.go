// Package logger provides a slog.Logger factory with consistent defaults
// and typed attribute helpers for the notification domain.
//
// # Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithAttr(slog.String("service", "toastd")),
//	)
//
//	log.Info("notification removed",
//		logger.NotificationID(id),
//		logger.Variant("sooner"),
//	)
//
// Attribute helpers return an empty Attr for zero values, which slog
// silently drops, so call sites never need nil checks.
package logger
