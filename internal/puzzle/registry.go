package puzzle

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps puzzle keys to solvers.
type Registry struct {
	mu      sync.RWMutex
	solvers map[Key]Solver
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[Key]Solver)}
}

// Register adds a solver for year/day/part.
// Panics on an invalid key, a nil solver or a duplicate registration, all of
// which are wiring mistakes.
func (r *Registry) Register(year, day, part int, s Solver) {
	k := Key{Year: year, Day: day, Part: part}
	if year <= 0 || day < 1 || day > 25 || (part != 1 && part != 2) {
		panic(fmt.Sprintf("puzzle: invalid key %s", k))
	}
	if s == nil {
		panic(fmt.Sprintf("puzzle: nil solver for %s", k))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.solvers[k]; exists {
		panic(fmt.Sprintf("puzzle: duplicate solver for %s", k))
	}
	r.solvers[k] = s
}

// Lookup returns the solver registered for k.
func (r *Registry) Lookup(k Key) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.solvers[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPuzzle, k)
	}
	return s, nil
}

// Keys returns every registered key in year, day, part order.
func (r *Registry) Keys() []Key {
	r.mu.RLock()
	keys := make([]Key, 0, len(r.solvers))
	for k := range r.solvers {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Years returns the years with at least one solver, ascending.
func (r *Registry) Years() []int {
	var years []int
	for _, k := range r.Keys() {
		if len(years) == 0 || years[len(years)-1] != k.Year {
			years = append(years, k.Year)
		}
	}
	return years
}

// Days returns the days of year with at least one solver, ascending.
func (r *Registry) Days(year int) []int {
	var days []int
	for _, k := range r.Keys() {
		if k.Year != year {
			continue
		}
		if len(days) == 0 || days[len(days)-1] != k.Day {
			days = append(days, k.Day)
		}
	}
	return days
}

// Parts returns the registered parts of year/day, ascending.
func (r *Registry) Parts(year, day int) []int {
	var parts []int
	for _, k := range r.Keys() {
		if k.Year == year && k.Day == day {
			parts = append(parts, k.Part)
		}
	}
	return parts
}

// Latest returns the most recent registered year and day.
// ok is false when the registry is empty.
func (r *Registry) Latest() (year, day int, ok bool) {
	keys := r.Keys()
	if len(keys) == 0 {
		return 0, 0, false
	}
	last := keys[len(keys)-1]
	return last.Year, last.Day, true
}
