// Package output provides shared serialization of message groups for structured output.
package output

import (
	"github.com/farcloser/lintreport/internal/types"
)

// GroupToMap converts a message group into the canonical map structure
// used for structured (JSON, markdown, console) rendering.
func GroupToMap(group types.Group) map[string]any {
	meta := map[string]any{
		"summary": SummaryToMap(group.Messages),
	}

	messages := make([]any, 0, len(group.Messages))
	for _, message := range group.Messages {
		messages = append(messages, MessageToMap(message))
	}

	meta["messages"] = messages

	return meta
}

// MessageToMap converts a single message to a map. Position and rule are only
// present when known.
func MessageToMap(message *types.Message) map[string]any {
	entry := map[string]any{
		"type":   message.Type,
		"plugin": message.Plugin,
		"text":   message.Text,
	}

	if message.Rule != "" {
		entry["rule"] = message.Rule
	}

	if pos, ok := message.Position(); ok {
		entry["line"] = pos.Line
		entry["column"] = pos.Column
	}

	return entry
}

// SummaryToMap counts messages per type.
func SummaryToMap(messages []*types.Message) map[string]any {
	var warnings, errs, other int

	for _, message := range messages {
		switch message.Type {
		case types.TypeWarning:
			warnings++
		case types.TypeError:
			errs++
		default:
			other++
		}
	}

	return map[string]any{
		"message_count": len(messages),
		"warnings":      warnings,
		"errors":        errs,
		"other":         other,
	}
}
