package lintreport

import "slices"

// Filter returns the messages whose plugin is in plugins, in their original order.
// An empty plugins list keeps every message.
func Filter(messages []*Message, plugins []string) []*Message {
	if len(plugins) == 0 {
		return messages
	}

	kept := make([]*Message, 0, len(messages))

	for _, message := range messages {
		if slices.Contains(plugins, message.Plugin) {
			kept = append(kept, message)
		}
	}

	return kept
}

// GroupBySource groups messages by their source key, using fallback for messages without a
// node-level override. Groups come out in first-seen order, and messages keep their
// relative order inside a group.
func GroupBySource(messages []*Message, fallback string) []Group {
	var groups []Group

	index := map[string]int{}

	for _, message := range messages {
		key := message.SourceKey(fallback)

		idx, ok := index[key]
		if !ok {
			idx = len(groups)
			index[key] = idx
			groups = append(groups, Group{Source: key})
		}

		groups[idx].Messages = append(groups[idx].Messages, message)
	}

	return groups
}

// Difference returns all minus every element of remove, compared by identity.
// The order of the remaining elements is preserved.
func Difference(all, remove []*Message) []*Message {
	if len(remove) == 0 {
		return slices.Clone(all)
	}

	drop := make(map[*Message]struct{}, len(remove))
	for _, message := range remove {
		drop[message] = struct{}{}
	}

	remaining := make([]*Message, 0, len(all))

	for _, message := range all {
		if _, ok := drop[message]; !ok {
			remaining = append(remaining, message)
		}
	}

	return remaining
}
