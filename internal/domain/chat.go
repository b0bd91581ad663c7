package domain

import "time"

// ChatRole identifies the author of a transcript entry.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one turn of a chat transcript.
type ChatMessage struct {
	Role ChatRole  `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// ChatSession is a snapshot of a conversation.
type ChatSession struct {
	ID       string        `json:"id"`
	Messages []ChatMessage `json:"messages"`
	Started  time.Time     `json:"startedAt"`
}
