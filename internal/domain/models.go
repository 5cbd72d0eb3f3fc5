package domain

import "time"

// Combo represents one configured secret key sequence
type Combo struct {
	Name  string
	Keys  []string // key symbols in match order
	Panel string   // text shown in the panel the combo toggles
}

// MatchRecord represents one completed match during the session
type MatchRecord struct {
	Combo string
	At    time.Time
}
