package domain

import "time"

type PostCreationData struct {
	Board   BoardId
	Topic   TopicId
	Author  UserId
	Message MsgText
}

type PostEditData struct {
	Id      PostId
	Editor  User
	Message MsgText
}

type Post struct {
	Id        PostId  `json:"id"`
	Message   MsgText `json:"message"`
	Topic     TopicId `json:"topic_id"`
	CreatedBy UserId  `json:"created_by"`
	// CreatedAt is the last-touched time: refreshed on every edit.
	CreatedAt time.Time `json:"created_at"`
	// MessageHTML is Message rendered from markdown and sanitized. Not stored.
	MessageHTML string `json:"message_html,omitempty"`
}
