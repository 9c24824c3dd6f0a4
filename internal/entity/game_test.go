package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("Empty board is ongoing", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: evaluating the board
		verdict := Evaluate(board)

		// Then: the game should be ongoing without a winner
		assert.True(t, verdict.IsOngoing())
		assert.Empty(t, verdict.Winner)
		assert.Nil(t, verdict.Line)
	})

	t.Run("Returns PlayerX with the top row", func(t *testing.T) {
		// Given: a board where Player X has the top row
		board := Board{
			PlayerX, PlayerX, PlayerX,
			EmptyCell, EmptyCell, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: evaluating the board
		verdict := Evaluate(board)

		// Then: X should win with triple [0,1,2]
		require.True(t, verdict.IsWon())
		assert.Equal(t, PlayerX, verdict.Winner)
		require.NotNil(t, verdict.Line)
		assert.Equal(t, [3]int{0, 1, 2}, *verdict.Line)
	})

	t.Run("Returns PlayerO with the anti-diagonal", func(t *testing.T) {
		// Given: a board where Player O holds cells 2, 4 and 6
		board := Board{
			PlayerX, PlayerX, PlayerO,
			EmptyCell, PlayerO, EmptyCell,
			PlayerO, EmptyCell, PlayerX,
		}

		// When: evaluating the board
		verdict := Evaluate(board)

		// Then: O should win with triple [2,4,6]
		require.True(t, verdict.IsWon())
		assert.Equal(t, PlayerO, verdict.Winner)
		assert.Equal(t, [3]int{2, 4, 6}, *verdict.Line)
	})

	t.Run("Returns draw for a full board without a line", func(t *testing.T) {
		// Given: a full board with no three-in-a-row
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}

		// When: evaluating the board
		verdict := Evaluate(board)

		// Then: it should be a draw
		assert.True(t, verdict.IsDraw())
		assert.Empty(t, verdict.Winner)
		assert.Nil(t, verdict.Line)
	})

	t.Run("A win on the last free cell is not a draw", func(t *testing.T) {
		// Given: a full board where X completes the left column
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerX, PlayerX, PlayerO,
		}

		// When: evaluating the board
		verdict := Evaluate(board)

		// Then: X should win with triple [0,3,6]
		require.True(t, verdict.IsWon())
		assert.Equal(t, [3]int{0, 3, 6}, *verdict.Line)
	})

	t.Run("First triple in scan order wins", func(t *testing.T) {
		// Given: a board where X holds both the top row and the left column
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerX, PlayerO, PlayerO,
		}

		// When: evaluating the board
		verdict := Evaluate(board)

		// Then: the row is reported because rows are checked before columns
		assert.Equal(t, [3]int{0, 1, 2}, *verdict.Line)
	})

	t.Run("Repeated evaluation yields the same verdict", func(t *testing.T) {
		board := Board{
			PlayerO, PlayerX, EmptyCell,
			EmptyCell, PlayerO, PlayerX,
			EmptyCell, EmptyCell, PlayerO,
		}

		first := Evaluate(board)
		second := Evaluate(board)

		assert.Equal(t, first, second)
	})
}

// TestEvaluate_AllBoards checks every assignment of X, O and empty to the
// nine cells against a direct line-by-line classification.
func TestEvaluate_AllBoards(t *testing.T) {
	marks := []string{EmptyCell, PlayerX, PlayerO}

	total := 1
	for i := 0; i < BoardSize; i++ {
		total *= len(marks)
	}

	for code := 0; code < total; code++ {
		var board Board
		n := code
		for i := range board {
			board[i] = marks[n%len(marks)]
			n /= len(marks)
		}

		verdict := Evaluate(board)

		var firstLine *[3]int
		for _, combo := range WinCombos {
			if board[combo[0]] != EmptyCell && board[combo[0]] == board[combo[1]] && board[combo[1]] == board[combo[2]] {
				line := combo
				firstLine = &line
				break
			}
		}

		switch {
		case firstLine != nil:
			require.True(t, verdict.IsWon(), "board %v", board)
			require.Equal(t, board[firstLine[0]], verdict.Winner, "board %v", board)
			require.Equal(t, *firstLine, *verdict.Line, "board %v", board)
		case board.Count() == BoardSize:
			require.True(t, verdict.IsDraw(), "board %v", board)
		default:
			require.True(t, verdict.IsOngoing(), "board %v", board)
		}
	}
}

func TestVerdict_InLine(t *testing.T) {
	t.Run("Cells of the winning line are reported", func(t *testing.T) {
		// Given: a verdict won on the middle column
		line := [3]int{1, 4, 7}
		verdict := Verdict{Status: StatusWon, Winner: PlayerO, Line: &line}

		// Then: only cells 1, 4 and 7 are in the line
		for cell := 0; cell < BoardSize; cell++ {
			assert.Equal(t, cell == 1 || cell == 4 || cell == 7, verdict.InLine(cell), "cell %d", cell)
		}
	})

	t.Run("Ongoing verdict has no line", func(t *testing.T) {
		verdict := Verdict{Status: StatusOngoing}

		assert.False(t, verdict.InLine(0))
	})
}

func TestBoard(t *testing.T) {
	t.Run("Count and IsFull", func(t *testing.T) {
		// Given: a board with three marks
		board := Board{PlayerX, EmptyCell, PlayerO, EmptyCell, PlayerX}

		// Then: three cells are counted and the board is not full
		assert.Equal(t, 3, board.Count())
		assert.False(t, board.IsFull())
	})

	t.Run("ValidCell bounds", func(t *testing.T) {
		assert.True(t, ValidCell(0))
		assert.True(t, ValidCell(8))
		assert.False(t, ValidCell(-1))
		assert.False(t, ValidCell(9))
	})

	t.Run("NextMark alternates", func(t *testing.T) {
		assert.Equal(t, PlayerO, NextMark(PlayerX))
		assert.Equal(t, PlayerX, NextMark(PlayerO))
	})
}
