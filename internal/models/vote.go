package models

// VoteOp is the submitted vote operation.
type VoteOp string

const (
	VoteUp     VoteOp = "up"
	VoteDown   VoteOp = "down"
	VoteRemove VoteOp = "remove"
)

// Vote is a user's signed vote on a review.
type Vote struct {
	ReviewID string `db:"review_id" json:"review_id"`
	UserID   string `db:"user_id" json:"user_id"`
	Value    int    `db:"vote" json:"vote"`
}

// VoteTally is the summed score of a review.
type VoteTally struct {
	ReviewID string `db:"review_id" json:"review_id"`
	Score    int    `db:"score" json:"score"`
}

// Value maps an operation to +1/-1. Anything other than "up" counts as down.
func (op VoteOp) Value() int {
	if op == VoteUp {
		return 1
	}
	return -1
}
