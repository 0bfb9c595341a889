package entity

// SkillKind identifies one of the three single-use skills.
type SkillKind string

const (
	// SkillFlySand removes one opponent stone.
	SkillFlySand SkillKind = "flySand"
	// SkillMountain turns one empty cell into a damaged cell.
	SkillMountain SkillKind = "mountain"
	// SkillCleaner removes every stone along a full row or column.
	SkillCleaner SkillKind = "cleaner"
)

// SkillKinds lists every skill in a stable order.
var SkillKinds = [3]SkillKind{SkillFlySand, SkillMountain, SkillCleaner}

func (that SkillKind) Valid() bool {
	switch that {
	case SkillFlySand, SkillMountain, SkillCleaner:
		return true
	default:
		return false
	}
}

type Axis string

const (
	AxisRow Axis = "row"
	AxisCol Axis = "col"
)

// SkillSet holds the used flag of each skill for one seat.
type SkillSet struct {
	FlySand  bool `json:"flySand"`
	Mountain bool `json:"mountain"`
	Cleaner  bool `json:"cleaner"`
}

func (that SkillSet) Used(kind SkillKind) bool {
	switch kind {
	case SkillFlySand:
		return that.FlySand
	case SkillMountain:
		return that.Mountain
	case SkillCleaner:
		return that.Cleaner
	default:
		return false
	}
}

// With returns a copy with the given skill marked as used.
func (that SkillSet) With(kind SkillKind) SkillSet {
	switch kind {
	case SkillFlySand:
		that.FlySand = true
	case SkillMountain:
		that.Mountain = true
	case SkillCleaner:
		that.Cleaner = true
	}
	return that
}

// SkillUsage holds the skill flags of both seats.
type SkillUsage struct {
	First  SkillSet `json:"first"`
	Second SkillSet `json:"second"`
}

func (that SkillUsage) Of(seat Seat) SkillSet {
	if seat == SeatSecond {
		return that.Second
	}
	return that.First
}

// With returns a copy with kind marked as used for seat.
func (that SkillUsage) With(seat Seat, kind SkillKind) SkillUsage {
	if seat == SeatSecond {
		that.Second = that.Second.With(kind)
	} else {
		that.First = that.First.With(kind)
	}
	return that
}
