package domain

// Message roles for chat-completion requests. Every request the executor
// builds contains exactly one system message followed by one user message.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single role-tagged entry in a chat-completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// QAPair is one generated training pair: the question that was asked and
// the model's answer. Pairs are only created for successful requests and
// are never mutated afterwards; a failed request produces no pair at all.
type QAPair struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}
