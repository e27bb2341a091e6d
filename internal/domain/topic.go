package domain

import "time"

// to iterate thru layers: handler -> service -> storage
type TopicCreationData struct {
	Board   BoardId
	Subject TopicSubject
	Author  UserId
	Message MsgText
}

type Topic struct {
	Id        TopicId      `json:"id"`
	Subject   TopicSubject `json:"subject"`
	Board     BoardId      `json:"board_id"`
	CreatedBy UserId       `json:"created_by"`
	CreatedAt time.Time    `json:"created_at"`
	Views     int64        `json:"views"`
}

// TopicSummary is a topic row as listed on a board page.
type TopicSummary struct {
	Topic
	Replies      int       `json:"replies"` // posts excluding the opening one
	LastActivity time.Time `json:"last_activity"`
}

// TopicWithPosts is a full topic page, posts oldest first.
type TopicWithPosts struct {
	Topic
	Posts []Post `json:"posts"`
}
