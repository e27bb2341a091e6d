package domain

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Name        BoardName
	Description BoardDescription
}

type BoardUpdateData struct {
	Id          BoardId
	Name        BoardName
	Description BoardDescription
}

type Board struct {
	Id          BoardId          `json:"id"`
	Name        BoardName        `json:"name"`
	Description BoardDescription `json:"description"`
}

// BoardSummary is a board enriched with the derived counters shown on listings.
type BoardSummary struct {
	Board
	TopicCount int   `json:"topic_count"`
	PostCount  int   `json:"post_count"`
	LastPost   *Post `json:"last_post"`
}
