package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_REGISTERED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewUserRegisteredEvent(userId, email string) Event {
	return BaseEvent{
		Type:       "USER_REGISTERED",
		Data:       map[string]interface{}{"user_id": userId, "email": email},
		OccurredAt: time.Now(),
	}
}

func NewFileUploadedEvent(fileId, folderId, userId string) Event {
	return BaseEvent{
		Type:       "FILE_UPLOADED",
		Data:       map[string]interface{}{"file_id": fileId, "folder_id": folderId, "user_id": userId},
		OccurredAt: time.Now(),
	}
}

func NewQuizGeneratedEvent(quizId, folderId, userId string, questionCount int) Event {
	return BaseEvent{
		Type: "QUIZ_GENERATED",
		Data: map[string]interface{}{
			"quiz_id":        quizId,
			"folder_id":      folderId,
			"user_id":        userId,
			"question_count": questionCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewSummaryGeneratedEvent(summaryId, fileId, folderId, userId string) Event {
	return BaseEvent{
		Type: "SUMMARY_GENERATED",
		Data: map[string]interface{}{
			"summary_id": summaryId,
			"file_id":    fileId,
			"folder_id":  folderId,
			"user_id":    userId,
		},
		OccurredAt: time.Now(),
	}
}
