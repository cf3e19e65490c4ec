package dto

type VoteRequest struct {
	Value       int    `json:"value"`
	AnonymousID string `json:"anonymousId"`
}

type VoteResponse struct {
	Message  string `json:"message"`
	UserVote *int   `json:"userVote"`
}

type VoteStatusResponse struct {
	Score     int  `json:"score"`
	Upvotes   int  `json:"upvotes"`
	Downvotes int  `json:"downvotes"`
	UserVote  *int `json:"userVote"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

type SaveStatusResponse struct {
	Saved bool `json:"saved"`
}
