package constant

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleModel     = "model"
)

const (
	InstanceTypeChat      = "chat"
	InstanceTypeQuiz      = "quiz"
	InstanceTypeFlashcard = "flashcard"
)
