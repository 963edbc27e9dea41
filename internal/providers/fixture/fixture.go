package fixture

import (
	"context"
	_ "embed"
	"os"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/preston-bernstein/esports-tracker/internal/domain/matches"
)

//go:embed matches.json
var bundled []byte

// Provider serves a static dataset used when remote data is unavailable.
type Provider struct {
	matches []matches.Match
}

// New returns a provider backed by the bundled dataset. The dataset ships
// with the binary, so a decode failure is a build defect and panics.
func New() *Provider {
	list, err := decode(bundled)
	if err != nil {
		panic(err)
	}
	return &Provider{matches: list}
}

// NewFromFile loads an alternative dataset in the same format as the bundled one.
func NewFromFile(path string) (*Provider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read fixture %s", path)
	}
	list, err := decode(raw)
	if err != nil {
		return nil, crerr.Wrapf(err, "fixture %s", path)
	}
	return &Provider{matches: list}, nil
}

// FetchMatches returns a copy of the dataset; it never fails.
func (p *Provider) FetchMatches(ctx context.Context) ([]matches.Match, error) {
	_ = ctx
	return p.Matches(), nil
}

// Matches returns a copy of the dataset.
func (p *Provider) Matches() []matches.Match {
	out := make([]matches.Match, len(p.matches))
	copy(out, p.matches)
	return out
}

func decode(raw []byte) ([]matches.Match, error) {
	var list []matches.Match
	if err := sonic.Unmarshal(raw, &list); err != nil {
		return nil, crerr.Wrap(err, "decode fixture matches")
	}
	if list == nil {
		list = []matches.Match{}
	}
	seen := make(map[string]int, len(list))
	for i, m := range list {
		if err := validate.Struct(newRecord(m)); err != nil {
			return nil, crerr.Wrapf(err, "fixture match %d", i)
		}
		id := m.ID.String()
		if first, dup := seen[id]; dup {
			return nil, crerr.Newf("fixture match %d repeats id %q of match %d", i, id, first)
		}
		seen[id] = i
	}
	return list, nil
}

var validate = validator.New()

// record holds the fields a dataset entry must carry to be rendered.
type record struct {
	ID     string    `validate:"required"`
	TeamA  string    `validate:"required"`
	TeamB  string    `validate:"required"`
	Date   time.Time `validate:"required"`
	Status string    `validate:"oneof=upcoming played"`
	Game   string    `validate:"oneof=league valorant rocketleague cs2 dota2 other"`
}

func newRecord(m matches.Match) record {
	return record{
		ID:     m.ID.String(),
		TeamA:  m.TeamA,
		TeamB:  m.TeamB,
		Date:   m.Date,
		Status: string(m.Status),
		Game:   string(m.Game),
	}
}
