package coaches

// Coach is a head or assistant coach on a team's staff.
type Coach struct {
	PersonID     string `json:"personId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	TeamID       string `json:"teamId"`
	IsAssistant  bool   `json:"isAssistant"`
	SortSequence int    `json:"sortSequence"`
	College      string `json:"college"`
}
