package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"morris/agent"
	"morris/experiments/metrics"
	"morris/game"
	"net/http"
	"time"
)

// RemoteAgent asks an agent server for its moves.
type RemoteAgent struct {
	URL       string
	Depth     int
	Evaluator string
	Client    *http.Client
}

func (a RemoteAgent) FindMove(board game.Board, player game.Cell, variant string) (game.Board, metrics.SearchMetric, error) {
	payload := agent.SearchRequest{
		Board:   board.String(),
		Depth:   a.Depth,
		Variant: variant,
		Eval:    a.Evaluator,
		Player:  player.Symbol(),
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return board, metrics.SearchMetric{}, fmt.Errorf("failed to encode request: %w", err)
	}

	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}

	start := time.Now()
	resp, err := client.Post(a.URL+"/api/search", "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		return board, metrics.SearchMetric{}, fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return board, metrics.SearchMetric{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var result agent.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return board, metrics.SearchMetric{}, fmt.Errorf("failed to decode response: %w", err)
	}
	next, err := game.ParseBoard(result.Board)
	if err != nil {
		return board, metrics.SearchMetric{}, fmt.Errorf("agent returned a malformed board: %w", err)
	}

	return next, metrics.SearchMetric{
		Depth:    a.Depth,
		Variant:  variant,
		Leaves:   result.Leaves,
		Score:    result.Score,
		Duration: time.Since(start),
	}, nil
}
