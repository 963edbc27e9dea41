package games

// Key is a canonical game identifier from the closed taxonomy.
type Key string

const (
	League       Key = "league"
	Valorant     Key = "valorant"
	RocketLeague Key = "rocketleague"
	CS2          Key = "cs2"
	Dota2        Key = "dota2"
	Other        Key = "other"
)

// All is the game filter sentinel that keeps every game.
const All = "all"

// Meta describes how a game is presented to clients.
type Meta struct {
	Key   Key    `json:"key"`
	Label string `json:"label"`
	Badge string `json:"badge"`
	Logo  string `json:"logo,omitempty"`
}

// DefaultAccent is the accent color shared by every game today.
const DefaultAccent = "#22d3ee"

var accents = map[Key]string{
	League:       DefaultAccent,
	Valorant:     DefaultAccent,
	RocketLeague: DefaultAccent,
	CS2:          DefaultAccent,
	Dota2:        DefaultAccent,
}

// Accent returns the color token associated with a game.
func Accent(k Key) string {
	if accent, ok := accents[k]; ok {
		return accent
	}
	return DefaultAccent
}
