package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"morris/agent"
	"morris/engine"
	"morris/experiments"
	"morris/game"
	"morris/meta"
	"morris/searcher"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrUsage        = errors.New("usage: morris [flags] <input_file> <output_file> <depth> | play | matchups | sweep | serve")
	ErrInvalidDepth = errors.New("depth must be a non-negative integer")
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	err := run(os.Args[1:], os.Stdout)
	if code := exitCode(err); code != 0 {
		log.Error().Err(err).Msg("morris failed")
		os.Exit(code)
	}
}

// run dispatches to a subcommand unless args already form a search, so
// input files may share a subcommand's name
func run(args []string, stdout io.Writer) error {
	if len(args) == 0 || isSearch(args) {
		return runSearch(args, stdout)
	}
	switch args[0] {
	case "play":
		return runPlay(args[1:], stdout)
	case "matchups":
		return runMatchups(args[1:])
	case "sweep":
		return runSweep(args[1:])
	case "serve":
		return runServe(args[1:])
	default:
		return runSearch(args, stdout)
	}
}

// isSearch reports whether args are exactly <input_file> <output_file> <depth>
func isSearch(args []string) bool {
	if len(args) != 3 {
		return false
	}
	_, err := strconv.Atoi(args[2])
	return err == nil
}

// exitCode maps a run error to the process status. Asking for help is not a
// failure.
func exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 1
}

// setLogLevel applies the -log-level flag to the global logger
func setLogLevel(level string) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(parsed)
	return nil
}

// runSearch reads a board, searches it for White and writes the chosen
// successor. Every input is validated before the output file is created.
func runSearch(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("morris", flag.ContinueOnError)
	variant := fs.String("variant", meta.DEFAULT_VARIANT, "Rules variant: opening or game")
	policy := fs.String("eval", meta.DEFAULT_EVAL, "Evaluation policy: material or weighted")
	logLevel := fs.String("log-level", "info", "Log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := setLogLevel(*logLevel); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return ErrUsage
	}
	inputFile, outputFile := fs.Arg(0), fs.Arg(1)

	depth, err := parseDepth(fs.Arg(2))
	if err != nil {
		return err
	}
	board, err := readBoard(inputFile)
	if err != nil {
		return err
	}
	m, err := searcher.NewMinimaxByName(*variant, *policy)
	if err != nil {
		return err
	}

	log.Debug().Msgf("searching %s to depth %d (%s/%s)", board, depth, *variant, *policy)
	result := m.Search(board, depth)

	if err := os.WriteFile(outputFile, []byte(result.Board.String()), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Fprintf(stdout, "Board Position: %s\n", result.Board)
	fmt.Fprintf(stdout, "Positions evaluated by static estimation: %d.\n", result.Leaves)
	fmt.Fprintf(stdout, "MINIMAX estimate: %d.\n", result.Score)
	return nil
}

func parseDepth(s string) (int, error) {
	depth, err := strconv.Atoi(s)
	if err != nil || depth < 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidDepth)
	}
	return depth, nil
}

// readBoard parses the first line of path
func readBoard(path string) (game.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return game.Board{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return game.Board{}, fmt.Errorf("failed to read input file: %w", err)
	}
	return game.ParseBoard(strings.TrimSpace(line))
}

func runPlay(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	whiteDepth := fs.Int("white-depth", meta.DEFAULT_DEPTH, "Search depth of White")
	blackDepth := fs.Int("black-depth", meta.DEFAULT_DEPTH, "Search depth of Black")
	policy := fs.String("eval", meta.DEFAULT_EVAL, "Evaluation policy of both sides")
	start := fs.String("board", "", "Starting board (default empty)")
	pieces := fs.Int("pieces", meta.PIECES_PER_SIDE, "Placements per side")
	maxTurns := fs.Int("max-turns", meta.MAX_TURNS, "Turns before the game is drawn")
	remote := fs.String("black-url", "", "Agent server playing Black (default local search)")
	logLevel := fs.String("log-level", "info", "Log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := setLogLevel(*logLevel); err != nil {
		return err
	}
	if *whiteDepth < 1 || *blackDepth < 1 {
		return fmt.Errorf("play needs depths of at least 1: %w", ErrInvalidDepth)
	}

	options := []engine.Option{engine.WithPiecesPerSide(*pieces), engine.WithMaxTurns(*maxTurns)}
	if *start != "" {
		board, err := game.ParseBoard(*start)
		if err != nil {
			return err
		}
		options = append(options, engine.WithBoard(board))
	}

	var black engine.Agent = engine.LocalAgent{Depth: *blackDepth, Evaluator: *policy}
	if *remote != "" {
		black = engine.RemoteAgent{URL: *remote, Depth: *blackDepth, Evaluator: *policy}
	}
	e := engine.LocalEngine(engine.LocalAgent{Depth: *whiteDepth, Evaluator: *policy}, black, options...)

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Final position: %s\n", e.Board)
	if winner == game.Empty {
		fmt.Fprintf(stdout, "Draw after %d moves.\n", gameMetric.TotalMoves)
	} else {
		fmt.Fprintf(stdout, "Winner: %s after %d moves.\n", winner, gameMetric.TotalMoves)
	}
	return nil
}

func runMatchups(args []string) error {
	fs := flag.NewFlagSet("matchups", flag.ContinueOnError)
	name := fs.String("name", "matchups", "Experiment name")
	out := fs.String("out", meta.EXPERIMENTS_DIR, "Directory of the records")
	games := fs.Int("games", meta.MATCHUP_GAMES, "Games per matchup")
	pieces := fs.Int("pieces", meta.PIECES_PER_SIDE, "Placements per side")
	maxTurns := fs.Int("max-turns", meta.MAX_TURNS, "Turns before a game is drawn")
	logLevel := fs.String("log-level", "info", "Log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := setLogLevel(*logLevel); err != nil {
		return err
	}
	if *games < 1 {
		return fmt.Errorf("matchups need at least one game, got %d", *games)
	}

	_, err := experiments.RunMatchups(experiments.MatchupConfig{
		Name:          *name,
		Dir:           *out,
		Games:         *games,
		PiecesPerSide: *pieces,
		MaxTurns:      *maxTurns,
		Configs:       experiments.DefaultMatchupAgents,
		MatchUps:      experiments.DefaultMatchUps,
	})
	return err
}

func runSweep(args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	name := fs.String("name", "depth_sweep", "Experiment name")
	out := fs.String("out", meta.EXPERIMENTS_DIR, "Directory of the records")
	boards := fs.Int("boards", meta.SWEEP_BOARDS, "Random boards per depth")
	maxDepth := fs.Int("max-depth", meta.SWEEP_MAX_DEPTH, "Deepest search")
	seed := fs.Uint64("seed", 1, "Seed of the random boards")
	logLevel := fs.String("log-level", "info", "Log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := setLogLevel(*logLevel); err != nil {
		return err
	}
	if *maxDepth < 1 {
		return fmt.Errorf("sweep needs a max depth of at least 1: %w", ErrInvalidDepth)
	}

	_, err := experiments.RunDepthSweep(experiments.SweepConfig{
		Name:     *name,
		Dir:      *out,
		Boards:   *boards,
		MaxDepth: *maxDepth,
		Seed:     *seed,
		Agents:   experiments.DefaultSweepAgents,
	})
	return err
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", meta.SERVE_ADDR, "Listen address")
	logLevel := fs.String("log-level", "info", "Log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := setLogLevel(*logLevel); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return agent.StartAgentServer(ctx, *addr)
}
