package domain

type (
	BoardId          = int64
	BoardName        = string
	BoardDescription = string

	TopicId      = int64
	TopicSubject = string

	PostId  = int64
	MsgText = string

	UserId   = int64
	Username = string
	Password = string

	// SessionId identifies a browser session for per-session view de-duplication.
	SessionId = string
)
