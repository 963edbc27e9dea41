package games

import (
	"fmt"
	"strings"
)

var aliases = map[string]Key{
	"league-of-legends": League,
	"lol":               League,
	"league":            League,
	"valorant":          Valorant,
	"rocket-league":     RocketLeague,
	"rocketleague":      RocketLeague,
	"rl":                RocketLeague,
	"cs-go":             CS2,
	"csgo":              CS2,
	"cs2":               CS2,
	"dota-2":            Dota2,
}

type keywordRule struct {
	keyword string
	key     Key
}

// Evaluated in order; the first containing keyword wins.
var keywordRules = []keywordRule{
	{"league", League},
	{"valorant", Valorant},
	{"rocket", RocketLeague},
	{"counter", CS2},
	{"cs2", CS2},
	{"dota", Dota2},
}

var known = []Key{League, Valorant, RocketLeague, CS2, Dota2}

// Resolve maps a provider videogame slug and display name to a canonical key.
// Empty strings are treated as absent. Alias lookup on the slug wins over
// keyword matching on the name; anything unmatched resolves to Other.
func Resolve(slug, name string) Key {
	if key, ok := aliases[strings.ToLower(slug)]; ok {
		return key
	}

	lowered := strings.ToLower(name)
	for _, rule := range keywordRules {
		if strings.Contains(lowered, rule.keyword) {
			return rule.key
		}
	}
	return Other
}

// Keys returns the supported game keys, excluding Other.
func Keys() []Key {
	out := make([]Key, len(known))
	copy(out, known)
	return out
}

// IsKnown reports whether k belongs to the taxonomy, Other included.
func IsKnown(k Key) bool {
	if k == Other {
		return true
	}
	for _, candidate := range known {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseFilter validates a game filter value. Empty input means All.
func ParseFilter(raw string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" || value == All {
		return All, nil
	}
	if IsKnown(Key(value)) {
		return value, nil
	}
	return "", fmt.Errorf("unknown game %q", raw)
}
