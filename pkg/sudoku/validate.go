package sudoku

// GroupKind identifies one of the three Sudoku rule-group kinds.
type GroupKind int

const (
	RowGroup GroupKind = iota
	ColumnGroup
	BoxGroup
)

func (k GroupKind) String() string {
	switch k {
	case RowGroup:
		return "row"
	case ColumnGroup:
		return "column"
	case BoxGroup:
		return "box"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind as its lowercase name for JSON and YAML
// output.
func (k GroupKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Violation records one duplicated digit within a single rule group: the
// group's kind and index (both identifying one of the 27 groups), the digit
// value, and every cell where that digit occurs within the group, in
// occurrence order. Cells always holds at least two entries.
type Violation struct {
	Kind  GroupKind `json:"kind" yaml:"kind"`
	Index int       `json:"index" yaml:"index"`
	Value uint8     `json:"value" yaml:"value"`
	Cells []Cell    `json:"cells" yaml:"cells"`
}

// slot tracks the occurrences of one digit within one rule group. It moves
// through three states, one way only: unknown (never seen), present (seen
// once, at first), corrupted (seen twice or more, with every occurrence in
// cells). A slot is never reset within one Validate call.
type slot struct {
	state slotState
	first Cell
	cells []Cell
}

type slotState uint8

const (
	slotUnknown slotState = iota
	slotPresent
	slotCorrupted
)

func (s *slot) mark(c Cell) {
	switch s.state {
	case slotUnknown:
		s.state = slotPresent
		s.first = c
	case slotPresent:
		s.state = slotCorrupted
		s.cells = []Cell{s.first, c}
	case slotCorrupted:
		s.cells = append(s.cells, c)
	}
}

// Validate checks the grid against Sudoku placement rules and returns every
// violation found. A nil result means the grid is valid. Cells holding 0
// carry no digit and join no rule group.
//
// The grid is visited twice: one pass over the 81 cells fills three fixed
// 9×9 seen tables (rows, columns, boxes), then a pass over the 243 slots
// extracts the violations. The extra pass buys completeness: every
// violation is reported in one call instead of stopping at the first.
//
// Violations are ordered by kind (rows, then columns, then boxes), then by
// group index, then by digit value.
func (g Grid) Validate() []Violation {
	var rowSeen, colSeen, boxSeen [Size][Size]slot

	for i, row := range g.cells {
		for j, val := range row {
			if val == 0 {
				continue
			}
			c := Cell{Row: i, Col: j}
			box := i/3*3 + j/3

			rowSeen[i][val-1].mark(c)
			colSeen[j][val-1].mark(c)
			boxSeen[box][val-1].mark(c)
		}
	}

	var violations []Violation
	collect := func(seen *[Size][Size]slot, kind GroupKind) {
		for index := range seen {
			for digit := range seen[index] {
				if s := &seen[index][digit]; s.state == slotCorrupted {
					violations = append(violations, Violation{
						Kind:  kind,
						Index: index,
						Value: uint8(digit + 1),
						Cells: s.cells,
					})
				}
			}
		}
	}
	collect(&rowSeen, RowGroup)
	collect(&colSeen, ColumnGroup)
	collect(&boxSeen, BoxGroup)
	return violations
}

// EmptyCells returns every cell holding no digit, in row-major order. A
// fully specified puzzle returns nil.
func (g Grid) EmptyCells() []Cell {
	var empty []Cell
	for i, row := range g.cells {
		for j, val := range row {
			if val == 0 {
				empty = append(empty, Cell{Row: i, Col: j})
			}
		}
	}
	return empty
}
