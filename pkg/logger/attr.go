package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Messages records validation messages under the key "messages".
// If there are none, it returns an empty Attr.
func Messages(msgs []string) slog.Attr {
	if len(msgs) == 0 {
		return slog.Attr{}
	}
	return slog.Any("messages", msgs)
}

// Field records the form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// FieldType records the form field type under the key "type".
func FieldType(typ string) slog.Attr {
	return slog.String("type", typ)
}

// Transition records a lifecycle transition as a "transition" group.
func Transition(from, to, event string) slog.Attr {
	return Group("transition",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("event", event),
	)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
