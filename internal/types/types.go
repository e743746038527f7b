package types

// Message types with a meaning for the run outcome. Any other value is carried verbatim.
const (
	TypeWarning = "warning"
	TypeError   = "error"
)

// Input identifies where a piece of linted source came from.
// File is set for units read from disk, ID for in-memory sources (e.g. "<input css 1>").
type Input struct {
	File string `json:"file,omitempty" msgpack:"file,omitempty"`
	ID   string `json:"id,omitempty"   msgpack:"id,omitempty"`
}

// Key returns File, else ID, else the empty string.
func (i Input) Key() string {
	if i.File != "" {
		return i.File
	}

	return i.ID
}

// Position is a 1-based line and column.
type Position struct {
	Line   int `json:"line"   msgpack:"line"`
	Column int `json:"column" msgpack:"column"`
}

// Source is a source-location reference.
type Source struct {
	Input Input     `json:"input"           msgpack:"input"`
	Start *Position `json:"start,omitempty" msgpack:"start,omitempty"`
}

// Node is the syntax node a message points at. Only its source matters here.
type Node struct {
	Source *Source `json:"source,omitempty" msgpack:"source,omitempty"`
}

// Message is a single diagnostic produced by a lint plugin.
type Message struct {
	Type   string `json:"type"             msgpack:"type"`
	Plugin string `json:"plugin"           msgpack:"plugin"`
	Text   string `json:"text"             msgpack:"text"`
	Rule   string `json:"rule,omitempty"   msgpack:"rule,omitempty"`
	Line   int    `json:"line,omitempty"   msgpack:"line,omitempty"`
	Column int    `json:"column,omitempty" msgpack:"column,omitempty"`
	Node   *Node  `json:"node,omitempty"   msgpack:"node,omitempty"`
}

// SourceKey returns the node-level source override of the message, or fallback when the
// message carries none.
func (m *Message) SourceKey(fallback string) string {
	if m.Node != nil && m.Node.Source != nil {
		if key := m.Node.Source.Input.Key(); key != "" {
			return key
		}
	}

	return fallback
}

// Position returns the line and column of the message.
// Explicit Line/Column win over the node start position.
func (m *Message) Position() (Position, bool) {
	if m.Line > 0 {
		return Position{Line: m.Line, Column: m.Column}, true
	}

	if m.Node != nil && m.Node.Source != nil && m.Node.Source.Start != nil && m.Node.Source.Start.Line > 0 {
		return *m.Node.Source.Start, true
	}

	return Position{}, false
}

// IsProblem reports whether the message is a warning or an error.
func (m *Message) IsProblem() bool {
	return m.Type == TypeWarning || m.Type == TypeError
}

// Root is the root node of a linted unit.
type Root struct {
	Source *Source `json:"source,omitempty" msgpack:"source,omitempty"`
}

// Unit is the result of linting one file or in-memory source.
type Unit struct {
	Messages []*Message `json:"messages" msgpack:"messages"`
	Root     Root       `json:"root"     msgpack:"root"`
}

// SourceKey returns the unit's own source key, or the empty string if it has none.
func (u *Unit) SourceKey() string {
	if u.Root.Source == nil {
		return ""
	}

	return u.Root.Source.Input.Key()
}

// Group is the set of messages sharing one source key, in their original order.
// It is what a Formatter renders.
type Group struct {
	Source   string
	Messages []*Message
}
