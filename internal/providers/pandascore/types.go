package pandascore

// matchResponse mirrors the subset of a PandaScore match record the
// normalizer reads. Pointer fields distinguish absent from zero.
type matchResponse struct {
	ID          int64              `json:"id"`
	Status      string             `json:"status"`
	BeginAt     *string            `json:"begin_at"`
	ScheduledAt *string            `json:"scheduled_at"`
	StartAt     *string            `json:"start_at"`
	Opponents   []opponentSlot     `json:"opponents"`
	Videogame   *videogameResponse `json:"videogame"`
	Results     []resultResponse   `json:"results"`
}

type opponentSlot struct {
	Opponent *opponentResponse `json:"opponent"`
}

type opponentResponse struct {
	ID      *int64  `json:"id"`
	Name    string  `json:"name"`
	Acronym *string `json:"acronym"`
}

type videogameResponse struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type resultResponse struct {
	TeamID *int64 `json:"team_id"`
	Score  *int   `json:"score"`
}
