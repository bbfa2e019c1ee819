package workersai

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type RunRequest struct {
	Messages []Message `json:"messages"`
}
