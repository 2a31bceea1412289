package bot

import (
	"fmt"
	"strings"

	"github.com/luahn/gonggu-order-go/internal/domain"
	"github.com/luahn/gonggu-order-go/internal/util"
)

const maxNameRunes = 30

// FormatSuggestions renders an order-summary reply for one comment.
func FormatSuggestions(author string, suggestions []*domain.Suggestion) string {
	var sb strings.Builder

	if author != "" {
		sb.WriteString(fmt.Sprintf("📦 %s님 주문 확인\n", author))
	} else {
		sb.WriteString("📦 주문 확인\n")
	}

	for i, suggestion := range suggestions {
		sb.WriteString(fmt.Sprintf("%d. %s %d개 (%s, %.0f%%)\n",
			i+1,
			util.TruncateRunes(suggestion.ProductName, maxNameRunes),
			suggestion.Quantity,
			suggestion.Reason,
			suggestion.Confidence*100,
		))
	}

	sb.WriteString(fmt.Sprintf("— %s 자동 분석, 다르면 댓글로 알려주세요",
		util.FormatKST(util.NowKST(), "01/02 15:04")))

	return sb.String()
}
