package entity

import (
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeserialize(t *testing.T) {
	t.Run("Parses the wire form", func(t *testing.T) {
		// Given: a 3x3 board with every kind of cell
		data := []byte(`{
			"boardSize": 3,
			"board": [0, 1, 2, -1, 0, 0, 0, 0, 0],
			"currentTurnColor": "white",
			"colorAssignment": {"first": "black", "second": "white"},
			"skillUsage": {"first": {"flySand": false, "mountain": true, "cleaner": false}, "second": {"flySand": false, "mountain": false, "cleaner": false}},
			"winner": null
		}`)

		// When: parsing it
		state, err := Deserialize(data)

		// Then: every field is restored
		require.NoError(t, err)
		assert.Equal(t, 3, state.BoardSize)
		assert.Equal(t, []Cell{CellEmpty, CellBlack, CellWhite, CellDamaged, 0, 0, 0, 0, 0}, state.Board)
		assert.Equal(t, ColorWhite, state.CurrentTurn)
		assert.Equal(t, SeatSecond, state.CurrentSeat())
		assert.True(t, state.SkillUsage.First.Mountain)
		assert.Nil(t, state.Winner)
	})

	t.Run("Board cells serialise as small integers", func(t *testing.T) {
		state := GameState{
			BoardSize:       2,
			Board:           []Cell{CellDamaged, CellEmpty, CellBlack, CellWhite},
			CurrentTurn:     ColorBlack,
			ColorAssignment: NewColorAssignment(ColorBlack),
		}

		data, err := Serialize(state)

		require.NoError(t, err)
		assert.Contains(t, string(data), `"board":[-1,0,1,2]`)
		assert.Contains(t, string(data), `"winner":null`)
	})

	t.Run("Rejects structurally invalid states", func(t *testing.T) {
		cases := map[string]string{
			"not json":       `{`,
			"zero size":      `{"boardSize":0,"board":[],"currentTurnColor":"black","colorAssignment":{"first":"black","second":"white"}}`,
			"short board":    `{"boardSize":2,"board":[0,0,0],"currentTurnColor":"black","colorAssignment":{"first":"black","second":"white"}}`,
			"bad cell":       `{"boardSize":1,"board":[3],"currentTurnColor":"black","colorAssignment":{"first":"black","second":"white"}}`,
			"bad turn":       `{"boardSize":1,"board":[0],"currentTurnColor":"red","colorAssignment":{"first":"black","second":"white"}}`,
			"same colors":    `{"boardSize":1,"board":[0],"currentTurnColor":"black","colorAssignment":{"first":"black","second":"black"}}`,
			"short line":     `{"boardSize":5,"board":[1,1,1,1,1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0],"currentTurnColor":"white","colorAssignment":{"first":"black","second":"white"},"winner":{"color":"black","seat":"first","lineCells":[{"x":0,"y":0}]}}`,
			"seat mismatch":  `{"boardSize":1,"board":[0],"currentTurnColor":"black","colorAssignment":{"first":"black","second":"white"},"winner":{"color":"black","seat":"second","lineCells":[]}}`,
			"cell off board": `{"boardSize":1,"board":[0],"currentTurnColor":"black","colorAssignment":{"first":"black","second":"white"},"winner":{"color":"black","seat":"first","lineCells":[{"x":0,"y":0},{"x":1,"y":0},{"x":2,"y":0},{"x":3,"y":0},{"x":4,"y":0}]}}`,
		}

		for name, data := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := Deserialize([]byte(data))

				assert.ErrorIs(t, err, apperror.ErrInvalidState)
			})
		}
	})
}

func TestGameState_Clone(t *testing.T) {
	// Given: a finished state
	state := GameState{
		BoardSize:       1,
		Board:           []Cell{CellBlack},
		CurrentTurn:     ColorWhite,
		ColorAssignment: NewColorAssignment(ColorBlack),
		Winner:          &Winner{Color: ColorBlack, Seat: SeatFirst, LineCells: []Coord{{X: 0, Y: 0}}},
	}

	// When: the clone is modified
	clone := state.Clone()
	clone.Board[0] = CellEmpty
	clone.Winner.LineCells[0].X = 9

	// Then: the original is untouched
	assert.Equal(t, CellBlack, state.Board[0])
	assert.Equal(t, 0, state.Winner.LineCells[0].X)
}

func TestColorsAndSkills(t *testing.T) {
	t.Run("Color assignment maps seats and colors both ways", func(t *testing.T) {
		colors := NewColorAssignment(ColorWhite)

		assert.Equal(t, ColorWhite, colors.Of(SeatFirst))
		assert.Equal(t, ColorBlack, colors.Of(SeatSecond))
		assert.Equal(t, SeatSecond, colors.SeatOf(ColorBlack))
		assert.Equal(t, ColorAssignment{First: ColorBlack, Second: ColorWhite}, colors.Swapped())
		assert.Equal(t, ColorBlack, NewColorAssignment("").First)
	})

	t.Run("Skill usage is tracked per seat", func(t *testing.T) {
		var usage SkillUsage

		next := usage.With(SeatSecond, SkillCleaner)

		assert.False(t, usage.Of(SeatSecond).Used(SkillCleaner))
		assert.True(t, next.Of(SeatSecond).Used(SkillCleaner))
		assert.False(t, next.Of(SeatFirst).Used(SkillCleaner))
		assert.False(t, next.Of(SeatSecond).Used(SkillFlySand))
	})

	t.Run("Skill targets expose their shape", func(t *testing.T) {
		cell, ok := CellTarget(SkillFlySand, 2, 3).Cell()
		assert.True(t, ok)
		assert.Equal(t, Coord{X: 2, Y: 3}, cell)

		_, ok = LineTarget(AxisRow, 1).Cell()
		assert.False(t, ok)

		axis, index, ok := LineTarget(AxisCol, 4).Line()
		assert.True(t, ok)
		assert.Equal(t, AxisCol, axis)
		assert.Equal(t, 4, index)
	})
}
