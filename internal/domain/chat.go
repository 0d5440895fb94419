package domain

type ChatRole string

const (
	ChatUser ChatRole = "user"
	ChatBot  ChatRole = "bot"
)

type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}
