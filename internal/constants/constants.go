package constants

import "time"

// Confidence levels and tuning constants of the matcher heuristics. The
// bonus and blend values are deliberately frozen so results stay
// reproducible across releases.
var Confidence = struct {
	NumberBased      float64
	SingleProduct    float64
	UnitPatternBase  float64
	NameMatchBase    float64
	ScoreBonusCap    float64
	UnitSynonymBonus float64
}{
	NumberBased:      0.95, // explicit "N번" reference
	SingleProduct:    0.9,  // bare quantity against a one-product catalog
	UnitPatternBase:  0.55,
	NameMatchBase:    0.6,
	ScoreBonusCap:    0.4, // similarity contribution above the base
	UnitSynonymBonus: 0.2, // title shares a unit-word group with the fragment
}

// NameBlend weighs token overlap against character-bigram overlap in the
// product-name matcher.
var NameBlend = struct {
	Jaccard float64
	Dice    float64
}{
	Jaccard: 0.5,
	Dice:    0.5,
}

var SuggestionLimits = struct {
	MinQuantity           int
	MaxQuantity           int
	DefaultMaxSuggestions int
	TopCandidatesPerMatch int
}{
	MinQuantity:           1,
	MaxQuantity:           99, // 공동구매 수량 상한
	DefaultMaxSuggestions: 3,
	TopCandidatesPerMatch: 3,
}

var CacheTTL = struct {
	Catalog         time.Duration
	Analysis        time.Duration
	ScrapedComments time.Duration
}{
	Catalog:         10 * time.Minute, // 10분 - 게시글 상품 목록
	Analysis:        5 * time.Minute,  // 5분 - 댓글 분석 결과
	ScrapedComments: 30 * time.Minute, // 30분 - 백필 스크랩 결과
}

var FeedConfig = struct {
	MaxReconnectAttempts int
	ReconnectDelay       time.Duration
}{
	MaxReconnectAttempts: 5,
	ReconnectDelay:       5 * time.Second,
}

var RedisConfig = struct {
	ReadyTimeout time.Duration
}{
	ReadyTimeout: 5 * time.Second,
}

// PostgresTuning sizes the catalog connection pool. Catalog reads are small
// and bursty, one query per analyzed post, so the pool stays modest.
var PostgresTuning = struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectTimeout  time.Duration
}{
	MaxOpenConns:    8,
	MaxIdleConns:    4,
	ConnMaxLifetime: 10 * time.Minute,
	ConnectTimeout:  5 * time.Second,
}

var BatchConfig = struct {
	Concurrency int
}{
	Concurrency: 8,
}

var InputLimits = struct {
	MaxCommentLength int
}{
	MaxCommentLength: 500,
}
