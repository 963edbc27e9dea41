// Command matchctl loads matches once with the server's configuration and
// prints them as tables.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	crerr "github.com/cockroachdb/errors"

	appgames "github.com/preston-bernstein/esports-tracker/internal/app/games"
	appmatches "github.com/preston-bernstein/esports-tracker/internal/app/matches"
	"github.com/preston-bernstein/esports-tracker/internal/clock"
	"github.com/preston-bernstein/esports-tracker/internal/config"
	"github.com/preston-bernstein/esports-tracker/internal/domain/games"
	domainmatches "github.com/preston-bernstein/esports-tracker/internal/domain/matches"
	"github.com/preston-bernstein/esports-tracker/internal/logging"
	"github.com/preston-bernstein/esports-tracker/internal/server"
)

const appVersion = "dev"

type globalFlags struct {
	Provider string `help:"Match provider (pandascore or fixture). Overrides PROVIDER." placeholder:"NAME"`
	Fixture  string `help:"Local dataset used when the provider is unavailable." type:"path"`
	TZ       string `name:"tz" help:"Display timezone, e.g. Europe/Berlin."`
}

func (g globalFlags) apply(cfg *config.Config) {
	if p := strings.ToLower(strings.TrimSpace(g.Provider)); p != "" {
		cfg.Provider = p
	}
	if g.Fixture != "" {
		cfg.FixturePath = g.Fixture
	}
	if g.TZ != "" {
		cfg.Display.Timezone = g.TZ
	}
}

type cli struct {
	globalFlags

	List      listCmd      `cmd:"" help:"List matches for a status and game."`
	Live      liveCmd      `cmd:"" help:"List matches in progress."`
	Games     gamesCmd     `cmd:"" help:"List the game catalog with match counts."`
	Dashboard dashboardCmd `cmd:"" help:"Print live matches, the filtered list and per-game counts."`
}

type listCmd struct {
	Status string `short:"s" help:"Status filter: all, upcoming or played."`
	Game   string `short:"g" help:"Game filter key, or all."`
}

func (c *listCmd) Run(e *env) error {
	f, err := e.filter(c.Status, c.Game)
	if err != nil {
		return err
	}
	e.load()
	now := e.clock.Now()
	renderMatches(e.out, "Matches", domainmatches.Present(e.svc.Filtered(f), now, e.loc))
	return nil
}

type liveCmd struct {
	Game string `short:"g" help:"Game filter key, or all."`
}

func (c *liveCmd) Run(e *env) error {
	f, err := e.filter("", c.Game)
	if err != nil {
		return err
	}
	e.load()
	renderMatches(e.out, "Live", domainmatches.Present(e.svc.Live(f), e.clock.Now(), e.loc))
	return nil
}

type gamesCmd struct{}

func (c *gamesCmd) Run(e *env) error {
	e.load()
	renderGames(e.out, appgames.NewService(e.svc).Options())
	return nil
}

type dashboardCmd struct {
	Status string `short:"s" help:"Status filter: all, upcoming or played."`
	Game   string `short:"g" help:"Game filter key, or all."`
}

func (c *dashboardCmd) Run(e *env) error {
	f, err := e.filter(c.Status, c.Game)
	if err != nil {
		return err
	}
	e.load()
	renderDashboard(e.out, domainmatches.BuildDashboard(e.svc.Matches(), f, e.clock.Now(), e.loc))
	return nil
}

// env is bound into every command's Run.
type env struct {
	ctx    context.Context
	cfg    config.Config
	logger *slog.Logger
	out    io.Writer
	clock  clock.Clock
	svc    *appmatches.Service
	loc    *time.Location
}

func newEnv(ctx context.Context, cfg config.Config, out io.Writer, logger *slog.Logger) *env {
	return &env{
		ctx:    ctx,
		cfg:    cfg,
		logger: logger,
		out:    out,
		clock:  clock.Func(time.Now),
	}
}

func (e *env) filter(status, game string) (domainmatches.Filter, error) {
	st, err := domainmatches.ParseStatusFilter(status, e.cfg.Display.AllowAllStatus)
	if err != nil {
		return domainmatches.Filter{}, crerr.Wrap(err, "status")
	}
	g, err := games.ParseFilter(game)
	if err != nil {
		return domainmatches.Filter{}, crerr.Wrap(err, "game")
	}
	return domainmatches.Filter{Status: st, Game: g}, nil
}

// load runs a single refresh and prints where the data came from.
func (e *env) load() appmatches.LoadResult {
	if e.svc == nil {
		e.svc = server.NewMatchService(e.cfg, e.logger, nil)
	}
	if e.loc == nil {
		e.loc = server.DisplayLocation(e.cfg, e.logger)
	}
	res := e.svc.Refresh(e.ctx)
	renderSource(e.out, res)
	return res
}

func run(ctx context.Context, args []string, out io.Writer, cfg config.Config) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("matchctl"),
		kong.Description("Inspect the esports match schedule from the command line."),
		kong.Writers(out, out),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	c.globalFlags.apply(&cfg)

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "matchctl",
		Version: appVersion,
		Output:  os.Stderr,
	})
	return kctx.Run(newEnv(ctx, cfg, out, logger))
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, config.Load()); err != nil {
		fmt.Fprintln(os.Stderr, "matchctl:", err)
		os.Exit(1)
	}
}
