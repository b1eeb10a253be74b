package chat

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrEmptyMessage          = errors.New("message content is empty")
	ErrSelfChat              = errors.New("chat requires two distinct participants")
	ErrChatNotFound          = errors.New("chat not found")
	ErrChatAlreadyExists     = errors.New("chat already exists for participants")
	ErrNotParticipant        = errors.New("user is not a chat participant")
)
