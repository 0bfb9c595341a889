package entity

type ActionType string

const (
	ActionPlace    ActionType = "place"
	ActionUseSkill ActionType = "useSkill"
)

// Action is a move submitted by a client, either a placement or a skill.
type Action struct {
	Type    ActionType   `json:"type"              validate:"oneof=place useSkill"`
	Color   Color        `json:"color"             validate:"oneof=black white"`
	X       *int         `json:"x,omitempty"       validate:"required_if=Type place"`
	Y       *int         `json:"y,omitempty"       validate:"required_if=Type place"`
	SkillID SkillKind    `json:"skillId,omitempty" validate:"required_if=Type useSkill"`
	Target  *SkillTarget `json:"target,omitempty"`
}

// SkillTarget is a cell for flySand and mountain, or a row/column for cleaner.
type SkillTarget struct {
	SkillID SkillKind `json:"skillId"`
	X       *int      `json:"x,omitempty"`
	Y       *int      `json:"y,omitempty"`
	Axis    Axis      `json:"axis,omitempty"`
	Index   *int      `json:"index,omitempty"`
}

func PlaceAction(color Color, x, y int) Action {
	return Action{Type: ActionPlace, Color: color, X: &x, Y: &y}
}

func SkillAction(color Color, target SkillTarget) Action {
	return Action{Type: ActionUseSkill, Color: color, SkillID: target.SkillID, Target: &target}
}

func CellTarget(kind SkillKind, x, y int) SkillTarget {
	return SkillTarget{SkillID: kind, X: &x, Y: &y}
}

func LineTarget(axis Axis, index int) SkillTarget {
	return SkillTarget{SkillID: SkillCleaner, Axis: axis, Index: &index}
}

// Cell returns the targeted coordinate of a cell-shaped target.
func (that SkillTarget) Cell() (Coord, bool) {
	if that.X == nil || that.Y == nil {
		return Coord{}, false
	}
	return Coord{X: *that.X, Y: *that.Y}, true
}

// Line returns the targeted axis and index of a line-shaped target.
func (that SkillTarget) Line() (Axis, int, bool) {
	if that.Index == nil || (that.Axis != AxisRow && that.Axis != AxisCol) {
		return "", 0, false
	}
	return that.Axis, *that.Index, true
}
