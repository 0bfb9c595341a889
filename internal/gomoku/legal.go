package gomoku

import "github.com/rocketscienceinc/gomoku-backend/internal/entity"

// ListLegalPlacements returns every empty cell in row-major order, or nothing when it is not
// color's turn.
func ListLegalPlacements(state entity.GameState, color entity.Color) []entity.Coord {
	if state.IsFinished() || color != state.CurrentTurn {
		return nil
	}

	return cellsMatching(state, entity.CellEmpty)
}

// ListLegalSkillTargets returns every target kind accepts for color right now.
func ListLegalSkillTargets(state entity.GameState, kind entity.SkillKind, color entity.Color) []entity.SkillTarget {
	if state.IsFinished() || color != state.CurrentTurn || !kind.Valid() {
		return nil
	}

	if state.SkillUsage.Of(state.ColorAssignment.SeatOf(color)).Used(kind) {
		return nil
	}

	var targets []entity.SkillTarget

	switch kind {
	case entity.SkillFlySand:
		for _, c := range cellsMatching(state, color.Opponent().Stone()) {
			targets = append(targets, entity.CellTarget(kind, c.X, c.Y))
		}
	case entity.SkillMountain:
		for _, c := range cellsMatching(state, entity.CellEmpty) {
			targets = append(targets, entity.CellTarget(kind, c.X, c.Y))
		}
	case entity.SkillCleaner:
		for i := 0; i < state.BoardSize; i++ {
			targets = append(targets, entity.LineTarget(entity.AxisRow, i), entity.LineTarget(entity.AxisCol, i))
		}
	}

	return targets
}

func cellsMatching(state entity.GameState, want entity.Cell) []entity.Coord {
	var cells []entity.Coord
	for y := 0; y < state.BoardSize; y++ {
		for x := 0; x < state.BoardSize; x++ {
			if state.At(x, y) == want {
				cells = append(cells, entity.Coord{X: x, Y: y})
			}
		}
	}

	return cells
}
