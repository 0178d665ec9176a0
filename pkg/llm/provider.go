package llm

import "context"

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Part is one piece of a multimodal prompt. Exactly one of Text, FileURI or
// InlineData should be set.
type Part struct {
	Text       string
	FileURI    string
	FileMIME   string
	InlineData []byte
	InlineMIME string
}

// Message is one prior turn of a conversation.
type Message struct {
	Role string
	Text string
}

// Request carries everything one generation call needs. History is replayed
// before Parts so the model sees the conversation so far.
type Request struct {
	System  string
	History []Message
	Parts   []Part
}

// Provider generates text from a multimodal request. Implementations must
// respect ctx cancellation so callers can enforce deadlines.
type Provider interface {
	GenerateContent(ctx context.Context, req *Request) (string, error)
}
