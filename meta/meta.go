// meta/meta.go
package meta

// DEFAULT_DEPTH is the search depth used when none is given.
const DEFAULT_DEPTH = 3

// DEFAULT_VARIANT is the rules variant searched when none is given.
const DEFAULT_VARIANT = "game"

// DEFAULT_EVAL is the evaluation policy used when none is given.
const DEFAULT_EVAL = "weighted"

// PIECES_PER_SIDE is the number of placements each side makes in self-play.
const PIECES_PER_SIDE = 8

// MAX_TURNS ends a self-play game as a draw.
const MAX_TURNS = 200

// MAX_SERVE_DEPTH bounds the depth the agent server searches to.
const MAX_SERVE_DEPTH = 5

// SERVE_ADDR is the default listen address of the agent server.
const SERVE_ADDR = ":8080"

// SWEEP_BOARDS is the number of random boards per sweep.
const SWEEP_BOARDS = 10

// SWEEP_MAX_DEPTH is the deepest search of a sweep.
const SWEEP_MAX_DEPTH = 3

// MATCHUP_GAMES is the number of games per matchup.
const MATCHUP_GAMES = 2

// MATCHUP_DEPTH is the search depth of the default matchup agents.
const MATCHUP_DEPTH = 2

// EXPERIMENTS_DIR is where experiment records are written.
const EXPERIMENTS_DIR = "experiments"
