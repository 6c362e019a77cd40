package usecase

const (
	// WeakYenThreshold を超えると円安傾向とみなします。
	WeakYenThreshold = 150.0
	// StrongYenThreshold を下回ると円高傾向とみなします。
	StrongYenThreshold = 145.0
)

// 為替コメント
const (
	CommentNoInformation = "no exchange information"
	CommentWeakYen       = "yen-weakening bias (tailwind for exporters)"
	CommentStrongYen     = "yen-strengthening bias (tailwind for importers)"
	CommentNeutral       = "exchange rate in a neutral zone"
)

// ExchangeComment はUSD/JPYレートに対する定性的なコメントを返します。
// 145以上150以下は中立です。
func ExchangeComment(rate *float64) string {
	switch {
	case rate == nil:
		return CommentNoInformation
	case *rate > WeakYenThreshold:
		return CommentWeakYen
	case *rate < StrongYenThreshold:
		return CommentStrongYen
	default:
		return CommentNeutral
	}
}
