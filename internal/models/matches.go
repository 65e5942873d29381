package models

// MatchesPerUser is the fixed size of every generated match history.
const MatchesPerUser = 10

// DateLayout renders match dates as UTC ISO-8601 with millisecond precision.
const DateLayout = "2006-01-02T15:04:05.000Z"

// MatchRecord is one synthetic match as shown on the dashboard
type MatchRecord struct {
	MatchID            string  `json:"matchId"`
	Agent              string  `json:"agent"`
	Map                string  `json:"map"`
	Kills              int     `json:"kills"`
	Deaths             int     `json:"deaths"`
	Assists            int     `json:"assists"`
	Win                bool    `json:"win"`
	Date               string  `json:"date"`
	HeadshotPercentage float64 `json:"headshotPercentage"`
}

// UserMatchDocument is everything persisted for a single uid.
// Matches are kept in generation order, most recent first.
type UserMatchDocument struct {
	UID     string        `json:"uid"`
	Matches []MatchRecord `json:"matches"`
}
