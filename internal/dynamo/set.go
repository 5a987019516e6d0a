package dynamo

// Set holds one spring per tracked value, index-aligned with the caller's data.
type Set struct {
	springiness  float64
	dampingRatio float64
	items        []*Dynamics
}

func NewSet(springiness, dampingRatio float64) (*Set, error) {
	if err := validate(springiness, dampingRatio); err != nil {
		return nil, err
	}
	return &Set{springiness: springiness, dampingRatio: dampingRatio}, nil
}

// Init points the set at a new snapshot of values. When the number of values
// changed, every spring is rebuilt and grows from zero; otherwise the existing
// springs are retargeted and keep their velocity.
func (s *Set) Init(values []float64, now int64) {
	if len(s.items) != len(values) {
		s.items = make([]*Dynamics, len(values))
		for i, v := range values {
			d := mustNew(s.springiness, s.dampingRatio)
			d.SetPosition(0, now)
			d.SetTargetPosition(v, now)
			s.items[i] = d
		}
		return
	}
	for i, v := range values {
		s.items[i].SetTargetPosition(v, now)
	}
}

// UpdateAll advances every spring and reports whether any of them still needs
// another frame.
func (s *Set) UpdateAll(now int64) bool {
	active := false
	for _, d := range s.items {
		d.Update(now)
		if !d.IsAtRest() {
			active = true
		}
	}
	return active
}

// Update advances every spring; it lets a Set stand in wherever a single
// animated value is expected.
func (s *Set) Update(now int64) { s.UpdateAll(now) }

// IsAtRest reports whether every spring is at rest.
func (s *Set) IsAtRest() bool {
	for _, d := range s.items {
		if !d.IsAtRest() {
			return false
		}
	}
	return true
}

// Sum totals the current, animated positions.
func (s *Set) Sum() float64 {
	sum := 0.0
	for _, d := range s.items {
		sum += d.Position()
	}
	return sum
}

func (s *Set) Len() int { return len(s.items) }

func (s *Set) At(i int) *Dynamics { return s.items[i] }

func (s *Set) Positions() []float64 {
	out := make([]float64, len(s.items))
	for i, d := range s.items {
		out[i] = d.Position()
	}
	return out
}

func (s *Set) Targets() []float64 {
	out := make([]float64, len(s.items))
	for i, d := range s.items {
		out[i] = d.TargetPosition()
	}
	return out
}
