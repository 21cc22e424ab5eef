package game

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
)

// knightSteps are the eight L-shaped steps a placed player can take.
var knightSteps = []Move{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Board is an Isolation board. Boards are never mutated after construction;
// Forecast and the With* builders return copies.
type Board struct {
	width     int
	height    int
	blocked   []bool  // Indexed by row*width + col
	locations [3]Move // Indexed by Player, NoMove until the player's first move
	active    Player
	moveCount int
}

// NewBoard returns an empty board with Player1 to move.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic("board dimensions must be positive")
	}
	return &Board{
		width:     width,
		height:    height,
		blocked:   make([]bool, width*height),
		locations: [3]Move{NoMove, NoMove, NoMove},
		active:    Player1,
	}
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	blocked := make([]bool, len(b.blocked))
	copy(blocked, b.blocked)
	return &Board{
		width:     b.width,
		height:    b.height,
		blocked:   blocked,
		locations: b.locations,
		active:    b.active,
		moveCount: b.moveCount,
	}
}

// WithBlocked returns a copy of the board with the given cells blocked.
func (b *Board) WithBlocked(cells ...Move) *Board {
	nb := b.Copy()
	for _, c := range cells {
		if nb.inBounds(c) {
			nb.blocked[nb.index(c)] = true
		}
	}
	return nb
}

// WithLocations returns a copy of the board with both players placed (their
// cells blocked) and active to move. Pass NoMove to leave a player unplaced.
func (b *Board) WithLocations(p1, p2 Move, active Player) *Board {
	nb := b.Copy()
	for player, loc := range map[Player]Move{Player1: p1, Player2: p2} {
		nb.locations[player] = loc
		if !loc.IsNone() && nb.inBounds(loc) {
			nb.blocked[nb.index(loc)] = true
		}
	}
	nb.active = active
	return nb
}

func (b *Board) index(m Move) int {
	return m.Row*b.width + m.Col
}

func (b *Board) inBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.height && m.Col >= 0 && m.Col < b.width
}

func (b *Board) ActivePlayer() Player {
	return b.active
}

func (b *Board) Opponent(p Player) Player {
	return p.Opponent()
}

func (b *Board) MoveCount() int {
	return b.moveCount
}

func (b *Board) Dimensions() (int, int) {
	return b.width, b.height
}

func (b *Board) Location(p Player) Move {
	return b.locations[p]
}

func (b *Board) MoveIsLegal(m Move) bool {
	return b.inBounds(m) && !b.blocked[b.index(m)]
}

// BlankSpaces lists the open cells in row-major order.
func (b *Board) BlankSpaces() []Move {
	blanks := make([]Move, 0, len(b.blocked))
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			m := Move{Row: row, Col: col}
			if !b.blocked[b.index(m)] {
				blanks = append(blanks, m)
			}
		}
	}
	return blanks
}

func (b *Board) BlankCount() int {
	count := 0
	for _, blocked := range b.blocked {
		if !blocked {
			count++
		}
	}
	return count
}

func (b *Board) LegalMoves() []Move {
	return b.LegalMovesFor(b.active)
}

// LegalMovesFor returns any blank cell for an unplaced player, otherwise the
// knight steps from its location that land on blank cells.
func (b *Board) LegalMovesFor(p Player) []Move {
	loc := b.locations[p]
	if loc.IsNone() {
		return b.BlankSpaces()
	}
	moves := make([]Move, 0, len(knightSteps))
	for _, step := range knightSteps {
		m := Move{Row: loc.Row + step.Row, Col: loc.Col + step.Col}
		if b.MoveIsLegal(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// Forecast returns the board after the active player moves to m. The move is
// assumed legal.
func (b *Board) Forecast(m Move) State {
	return b.Apply(m)
}

// Apply is Forecast with a concrete return type.
func (b *Board) Apply(m Move) *Board {
	nb := b.Copy()
	nb.blocked[nb.index(m)] = true
	nb.locations[nb.active] = m
	nb.active = nb.active.Opponent()
	nb.moveCount++
	return nb
}

func (b *Board) IsLoser(p Player) bool {
	return p == b.active && len(b.LegalMovesFor(p)) == 0
}

func (b *Board) IsWinner(p Player) bool {
	return p != b.active && len(b.LegalMovesFor(b.active)) == 0
}

// Winner returns the winning player, or NoPlayer while the game is running.
func (b *Board) Winner() Player {
	if len(b.LegalMoves()) == 0 {
		return b.active.Opponent()
	}
	return NoPlayer
}

func (b *Board) Hash() uint64 {
	buf := make([]byte, 0, len(b.blocked)+4*8+1)
	for _, blocked := range b.blocked {
		if blocked {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	for _, p := range []Player{Player1, Player2} {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(b.locations[p].Row)))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(b.locations[p].Col)))
	}
	buf = append(buf, byte(b.active))
	return xxhash.Sum64(buf)
}

// String renders the board with 1 and 2 for the players and - for blocked cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < b.width; col++ {
		fmt.Fprintf(&sb, " %d  ", col)
	}
	sb.WriteString("\n")
	for row := 0; row < b.height; row++ {
		fmt.Fprintf(&sb, "%d |", row)
		for col := 0; col < b.width; col++ {
			m := Move{Row: row, Col: col}
			symbol := " "
			switch {
			case m == b.locations[Player1]:
				symbol = "1"
			case m == b.locations[Player2]:
				symbol = "2"
			case b.blocked[b.index(m)]:
				symbol = "-"
			}
			fmt.Fprintf(&sb, " %s |", symbol)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
