package spawn

// Family selects which pattern set a generator draws from.
type Family int

const (
	FamilyCoin Family = iota
	FamilyObstacle
)

func (f Family) String() string {
	switch f {
	case FamilyCoin:
		return "coin"
	case FamilyObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Placement is one element of a pattern: a lane and how many spacing steps
// ahead of the pattern origin the item sits.
type Placement struct {
	Lane int
	Step int
}

// Pattern names, keyed by phase.
const (
	PatternLine        = "line"
	PatternZigzag      = "zigzag"
	PatternAlternating = "alternating"
	PatternDiamond     = "diamond"
	PatternWall        = "wall"
	PatternComplex     = "complex"
)

var (
	coinDiamondLanes     = []int{1, 0, 1, 2, 1}
	coinComplexLanes     = []int{0, 2, 1, 0, 2, 1}
	obstacleComplexLanes = []int{0, 2, 1, 0, 2}
)

// PatternName returns the pattern a family uses in the given phase.
func PatternName(family Family, phase int) string {
	switch {
	case phase <= 1:
		return PatternLine
	case phase == 2:
		if family == FamilyObstacle {
			return PatternAlternating
		}
		return PatternZigzag
	case phase == 3:
		if family == FamilyObstacle {
			return PatternWall
		}
		return PatternDiamond
	default:
		return PatternComplex
	}
}

// Generate builds the pattern for a phase. Count-driven patterns draw their
// length uniformly from [minCount, maxCount]. Literal lanes at or beyond
// lanes are dropped, never remapped, and dropped entries keep their step so
// the remaining items stay where they would have been.
func Generate(family Family, phase, lanes, minCount, maxCount int, rng Rand) []Placement {
	if lanes <= 0 {
		return nil
	}

	switch PatternName(family, phase) {
	case PatternLine:
		count := drawCount(rng, minCount, maxCount)
		lane := rng.Intn(lanes)
		out := make([]Placement, 0, count)
		for i := 0; i < count; i++ {
			out = append(out, Placement{Lane: lane, Step: i})
		}
		return out

	case PatternZigzag:
		count := drawCount(rng, minCount, maxCount)
		out := make([]Placement, 0, count)
		for i := 0; i < count; i++ {
			out = append(out, Placement{Lane: i % lanes, Step: i})
		}
		return out

	case PatternAlternating:
		out := make([]Placement, 0, (lanes+1)/2)
		for lane := 0; lane < lanes; lane += 2 {
			out = append(out, Placement{Lane: lane})
		}
		return out

	case PatternWall:
		out := make([]Placement, 0, lanes)
		for lane := 0; lane < lanes; lane++ {
			out = append(out, Placement{Lane: lane})
		}
		return out

	case PatternDiamond:
		return fromTable(coinDiamondLanes, len(coinDiamondLanes), lanes)

	default:
		count := drawCount(rng, minCount, maxCount)
		table := coinComplexLanes
		if family == FamilyObstacle {
			table = obstacleComplexLanes
		}
		return fromTable(table, count, lanes)
	}
}

// fromTable cycles a literal lane table to count entries, dropping lanes that
// do not exist.
func fromTable(table []int, count, lanes int) []Placement {
	out := make([]Placement, 0, count)
	for i := 0; i < count; i++ {
		lane := table[i%len(table)]
		if lane >= lanes {
			continue
		}
		out = append(out, Placement{Lane: lane, Step: i})
	}
	return out
}

func drawCount(rng Rand, minCount, maxCount int) int {
	count := rangeInt(rng, minCount, maxCount)
	if count < 0 {
		return 0
	}
	return count
}
