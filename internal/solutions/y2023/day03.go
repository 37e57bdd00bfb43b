package y2023

// schematicNumber is a run of digits in the engine schematic.
type schematicNumber struct {
	value int
	row   int
	start int
	end   int // inclusive
}

// schematicSymbol is any byte that is neither a digit nor '.'.
type schematicSymbol struct {
	char byte
	row  int
	col  int
}

type schematic struct {
	numbers []schematicNumber
	symbols []schematicSymbol
}

func parseSchematic(lines []string) schematic {
	var s schematic
	for row, line := range lines {
		start := -1
		value := 0
		for col := 0; col <= len(line); col++ {
			if col < len(line) && isDigit(line[col]) {
				if start < 0 {
					start = col
				}
				value = value*10 + int(line[col]-'0')
				continue
			}
			if start >= 0 {
				s.numbers = append(s.numbers, schematicNumber{value: value, row: row, start: start, end: col - 1})
				start, value = -1, 0
			}
			if col < len(line) && line[col] != '.' {
				s.symbols = append(s.symbols, schematicSymbol{char: line[col], row: row, col: col})
			}
		}
	}
	return s
}

// adjacent reports whether sym touches n, diagonals included.
func (n schematicNumber) adjacent(sym schematicSymbol) bool {
	return sym.row >= n.row-1 && sym.row <= n.row+1 &&
		sym.col >= n.start-1 && sym.col <= n.end+1
}

// SumPartNumbers sums every number adjacent to at least one symbol.
func SumPartNumbers(lines []string) int {
	s := parseSchematic(lines)
	sum := 0
	for _, n := range s.numbers {
		for _, sym := range s.symbols {
			if n.adjacent(sym) {
				sum += n.value
				break
			}
		}
	}
	return sum
}

// SumGearRatios sums, over every '*' adjacent to exactly two numbers, the
// product of those numbers.
func SumGearRatios(lines []string) int {
	s := parseSchematic(lines)
	sum := 0
	for _, sym := range s.symbols {
		if sym.char != '*' {
			continue
		}
		var parts []int
		for _, n := range s.numbers {
			if n.adjacent(sym) {
				parts = append(parts, n.value)
			}
		}
		if len(parts) == 2 {
			sum += parts[0] * parts[1]
		}
	}
	return sum
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
