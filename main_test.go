package main

import (
	"bytes"
	"flag"
	"morris/game"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) (input, output string) {
	t.Helper()
	dir := t.TempDir()
	input = filepath.Join(dir, "board1.txt")
	output = filepath.Join(dir, "board2.txt")
	require.NoError(t, os.WriteFile(input, []byte(content), 0644))
	return input, output
}

func TestRunSearch(t *testing.T) {
	t.Run("writes the chosen board and reports the search", func(t *testing.T) {
		input, output := writeInput(t, "xxxxxxxxxxxxxxxxxxxxx\n")
		var stdout bytes.Buffer

		err := runSearch([]string{"-variant", "opening", "-eval", "material", input, output, "2"}, &stdout)

		require.NoError(t, err)
		written, err := os.ReadFile(output)
		require.NoError(t, err)
		require.Equal(t, "Wxxxxxxxxxxxxxxxxxxxx", string(written), "No trailing delimiter")
		require.Equal(t,
			"Board Position: Wxxxxxxxxxxxxxxxxxxxx\n"+
				"Positions evaluated by static estimation: 420.\n"+
				"MINIMAX estimate: 0.\n",
			stdout.String())
	})

	t.Run("depth zero evaluates the input board", func(t *testing.T) {
		input, output := writeInput(t, "WWWxxxxxxxxxxxxxxxxxx")
		var stdout bytes.Buffer

		require.NoError(t, runSearch([]string{input, output, "0"}, &stdout))
		require.Contains(t, stdout.String(), "Positions evaluated by static estimation: 1.")
		require.Contains(t, stdout.String(), "MINIMAX estimate: 10000.")
	})

	t.Run("fatal input errors leave no output file", func(t *testing.T) {
		cases := []struct {
			name  string
			board string
			depth string
			err   error
		}{
			{"depth not an integer", "xxxxxxxxxxxxxxxxxxxxx", "two", ErrInvalidDepth},
			{"negative depth", "xxxxxxxxxxxxxxxxxxxxx", "-1", ErrInvalidDepth},
			{"short board", "xxxxxxxxxx", "1", game.ErrBoardLength},
			{"long board", "WWWxxxxxxxxxxxxxxxxxxx", "1", game.ErrBoardLength},
			{"unknown character", "xxxxxxxxxxxxxxxxxxxxy", "1", game.ErrInvalidCell},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				input, output := writeInput(t, tc.board)
				var stdout bytes.Buffer

				err := runSearch([]string{input, output, tc.depth}, &stdout)

				require.ErrorIs(t, err, tc.err)
				require.NoFileExists(t, output)
				require.Empty(t, stdout.String())
			})
		}
	})

	t.Run("unknown variant", func(t *testing.T) {
		input, output := writeInput(t, "xxxxxxxxxxxxxxxxxxxxx")
		err := runSearch([]string{"-variant", "blitz", input, output, "1"}, &bytes.Buffer{})
		require.ErrorIs(t, err, game.ErrUnknownVariant)
		require.NoFileExists(t, output)
	})

	t.Run("wrong number of arguments", func(t *testing.T) {
		require.ErrorIs(t, runSearch([]string{"in.txt"}, &bytes.Buffer{}), ErrUsage)
	})

	t.Run("missing input file", func(t *testing.T) {
		dir := t.TempDir()
		err := runSearch([]string{filepath.Join(dir, "nope.txt"), filepath.Join(dir, "out.txt"), "1"}, &bytes.Buffer{})
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestRunPlay(t *testing.T) {
	var stdout bytes.Buffer

	err := runPlay([]string{"-white-depth", "1", "-black-depth", "1", "-eval", "material", "-max-turns", "4", "-log-level", "warn"}, &stdout)

	require.NoError(t, err)
	require.Contains(t, stdout.String(), "Draw after 4 moves.")

	err = runPlay([]string{"-white-depth", "0"}, &bytes.Buffer{})
	require.ErrorIs(t, err, ErrInvalidDepth)
}

func TestRunSweep(t *testing.T) {
	dir := t.TempDir()

	err := runSweep([]string{"-out", dir, "-boards", "1", "-max-depth", "1", "-log-level", "warn"})

	require.NoError(t, err)
	require.DirExists(t, filepath.Join(dir, "depth_sweep"))
}

func TestRunMatchups(t *testing.T) {
	dir := t.TempDir()

	err := runMatchups([]string{"-out", dir, "-games", "1", "-pieces", "2", "-max-turns", "6", "-log-level", "warn"})

	require.NoError(t, err)
	runs, err := os.ReadDir(filepath.Join(dir, "matchups"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		require.FileExists(t, filepath.Join(dir, "matchups", runs[0].Name(), name))
	}

	require.Error(t, runMatchups([]string{"-out", dir, "-games", "0"}))
}

func TestRun(t *testing.T) {
	t.Run("input file named after a subcommand is searched", func(t *testing.T) {
		dir := t.TempDir()
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() { os.Chdir(wd) })
		require.NoError(t, os.WriteFile("play", []byte("xxxxxxxxxxxxxxxxxxxxx"), 0644))
		var stdout bytes.Buffer

		require.NoError(t, run([]string{"play", "out.txt", "0"}, &stdout))
		require.Contains(t, stdout.String(), "Board Position: xxxxxxxxxxxxxxxxxxxxx")
		require.FileExists(t, "out.txt")
	})

	t.Run("dispatches subcommands", func(t *testing.T) {
		var stdout bytes.Buffer
		require.NoError(t, run([]string{"play", "-white-depth", "1", "-black-depth", "1", "-eval", "material", "-max-turns", "2", "-log-level", "warn"}, &stdout))
		require.Contains(t, stdout.String(), "Draw after 2 moves.")
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		for _, args := range [][]string{{"-h"}, {"play", "-h"}, {"matchups", "-h"}} {
			err := run(args, &bytes.Buffer{})
			require.ErrorIs(t, err, flag.ErrHelp)
			require.Zero(t, exitCode(err))
		}
	})

	t.Run("failures exit non-zero", func(t *testing.T) {
		require.Equal(t, 1, exitCode(run([]string{"in.txt"}, &bytes.Buffer{})))
		require.Zero(t, exitCode(nil))
	})
}
