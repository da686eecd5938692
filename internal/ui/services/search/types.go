package search

// State holds the search bar state
type State struct {
	Input       string // what the user has typed so far
	Applied     string // last query handed to the store
	BarOpen     bool
	ResultsOpen bool
	Matches     int
	pending     uint64 // sequence number of the newest scheduled query
}

// QueryReadyMsg is delivered when the quiet period after a keystroke ends
type QueryReadyMsg struct {
	Seq   uint64
	Query string
}
