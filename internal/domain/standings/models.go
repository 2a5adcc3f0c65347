package standings

// Record is a wins/losses split.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Standing is one team's line in the current league standings.
type Standing struct {
	TeamID               string  `json:"teamId"`
	Tricode              string  `json:"tricode"`
	TeamName             string  `json:"teamName"`
	Nickname             string  `json:"nickname"`
	Overall              Record  `json:"overall"`
	WinPct               float64 `json:"winPct"`
	LossPct              float64 `json:"lossPct"`
	GamesBehind          float64 `json:"gamesBehind"`
	DivisionGamesBehind  float64 `json:"divisionGamesBehind"`
	ConferenceRank       int     `json:"conferenceRank"`
	DivisionRank         int     `json:"divisionRank"`
	Conference           Record  `json:"conference"`
	Division             Record  `json:"division"`
	Home                 Record  `json:"home"`
	Away                 Record  `json:"away"`
	LastTen              Record  `json:"lastTen"`
	Streak               int     `json:"streak"`
	IsWinStreak          bool    `json:"isWinStreak"`
	ClinchedPlayoffsCode string  `json:"clinchedPlayoffsCode,omitempty"`
}
