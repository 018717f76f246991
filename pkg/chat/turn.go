package chat

// Role identifies the author of a turn.
type Role string

const (
	// RoleUser marks a turn typed by the person chatting.
	RoleUser Role = "user"

	// RoleAssistant marks a model reply or a synthesized error turn.
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Turn is one message of a conversation. Its JSON form matches the
// OpenAI-compatible message object.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// UserTurn returns a turn authored by the user.
func UserTurn(content string) Turn {
	return Turn{Role: RoleUser, Content: content}
}

// AssistantTurn returns a turn authored by the assistant.
func AssistantTurn(content string) Turn {
	return Turn{Role: RoleAssistant, Content: content}
}

// Snapshot is a point-in-time copy of a session.
type Snapshot struct {
	// Turns is the transcript in order. Callers own the slice.
	Turns []Turn

	// Loading is true while a request is in flight.
	Loading bool
}
