package feed

// CommentEvent is one comment pushed by the KakaoTalk bridge for a
// group-purchase post.
type CommentEvent struct {
	PostID    string `json:"postId"`
	CommentID string `json:"commentId"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	SentAt    int64  `json:"sentAt"`
}

// ReplyRequest posts an order-summary reply back under a post.
type ReplyRequest struct {
	PostID  string `json:"postId"`
	Message string `json:"message"`
}

type WebSocketState int

const (
	WSStateDisconnected WebSocketState = iota
	WSStateConnecting
	WSStateConnected
	WSStateReconnecting
	WSStateFailed
)

func (s WebSocketState) String() string {
	switch s {
	case WSStateDisconnected:
		return "disconnected"
	case WSStateConnecting:
		return "connecting"
	case WSStateConnected:
		return "connected"
	case WSStateReconnecting:
		return "reconnecting"
	case WSStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
