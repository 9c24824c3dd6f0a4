package entity

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"

	PlayerX   = "X"
	PlayerO   = "O"
	EmptyCell = ""
)

const BoardSize = 9

// Board - the 3x3 grid, cells are addressed by index 0-8 row by row.
type Board [BoardSize]string

// WinCombos - rows, columns and diagonals in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Verdict - classification of a board snapshot.
type Verdict struct {
	Status string  `json:"status"`
	Winner string  `json:"winner,omitempty"`
	Line   *[3]int `json:"line,omitempty"`
}

// Evaluate - returns the verdict for the given board. The first complete
// triple in WinCombos order wins.
func Evaluate(board Board) Verdict {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			line := combo
			return Verdict{Status: StatusWon, Winner: a, Line: &line}
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Verdict{Status: StatusOngoing}
	}

	return Verdict{Status: StatusDraw}
}

func (that Verdict) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that Verdict) IsWon() bool {
	return that.Status == StatusWon
}

func (that Verdict) IsDraw() bool {
	return that.Status == StatusDraw
}

// InLine - reports whether the cell belongs to the winning triple.
func (that Verdict) InLine(cell int) bool {
	if that.Line == nil {
		return false
	}

	for _, idx := range that.Line {
		if idx == cell {
			return true
		}
	}

	return false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Count - number of non-empty cells.
func (that Board) Count() int {
	var n int
	for _, cell := range that {
		if cell != EmptyCell {
			n++
		}
	}

	return n
}

// ValidCell - reports whether the index addresses a cell of the board.
func ValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// NextMark - the mark that plays after the given one.
func NextMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
