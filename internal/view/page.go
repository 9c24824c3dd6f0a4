// Package view derives what the browser page shows from the game state.
package view

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
)

const statusDraw = "It's a draw"

// game - read side of the game controller.
type game interface {
	Board() entity.Board
	Turn() string
	Verdict() entity.Verdict
}

type Cell struct {
	Index    int    `json:"index"`
	Mark     string `json:"mark"`
	Disabled bool   `json:"disabled"`
	Winning  bool   `json:"winning"`
}

type Page struct {
	Cells    [entity.BoardSize]Cell `json:"cells"`
	Status   string                 `json:"status"`
	Turn     string                 `json:"turn,omitempty"`
	Verdict  entity.Verdict         `json:"verdict"`
	Finished bool                   `json:"finished"`
}

// Build - snapshot of everything the page renders.
func Build(g game) Page {
	board := g.Board()
	verdict := g.Verdict()
	finished := !verdict.IsOngoing()

	page := Page{
		Status:   Status(verdict, g.Turn()),
		Verdict:  verdict,
		Finished: finished,
	}

	if !finished {
		page.Turn = g.Turn()
	}

	for i, mark := range board {
		page.Cells[i] = Cell{
			Index:    i,
			Mark:     mark,
			Disabled: finished || mark != entity.EmptyCell,
			Winning:  verdict.InLine(i),
		}
	}

	return page
}

// Status - the line shown above the board.
func Status(verdict entity.Verdict, turn string) string {
	switch {
	case verdict.IsWon():
		return fmt.Sprintf("Winner: %s", verdict.Winner)
	case verdict.IsDraw():
		return statusDraw
	default:
		return fmt.Sprintf("Next player: %s", turn)
	}
}

// Rows - cells grouped by board row for the grid template.
func (that Page) Rows() [][]Cell {
	rows := make([][]Cell, 0, 3)
	for i := 0; i < len(that.Cells); i += 3 {
		rows = append(rows, that.Cells[i:i+3])
	}

	return rows
}
