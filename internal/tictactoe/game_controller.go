package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-web/internal/entity"
)

// GameController - holds the board and the mark that plays next. It is the
// only place the board is mutated. Not safe for concurrent use.
type GameController struct {
	board entity.Board
	turn  string
}

func NewGameController() *GameController {
	return &GameController{turn: entity.PlayerX}
}

// Place - puts the current mark on the cell and passes the turn. Out of
// range cells, occupied cells and finished games are ignored. Reports
// whether the board changed.
func (that *GameController) Place(cell int) bool {
	if !entity.ValidCell(cell) {
		return false
	}

	if that.board[cell] != entity.EmptyCell {
		return false
	}

	if !entity.Evaluate(that.board).IsOngoing() {
		return false
	}

	that.board[cell] = that.turn
	that.turn = entity.NextMark(that.turn)

	return true
}

// Reset - empties the board and gives the first move back to X.
func (that *GameController) Reset() {
	that.board = entity.Board{}
	that.turn = entity.PlayerX
}

func (that *GameController) Board() entity.Board {
	return that.board
}

func (that *GameController) Turn() string {
	return that.turn
}

// Verdict - recomputed from the board on every call.
func (that *GameController) Verdict() entity.Verdict {
	return entity.Evaluate(that.board)
}

func (that *GameController) Moves() int {
	return that.board.Count()
}
