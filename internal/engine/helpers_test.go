package engine

// scriptedRandom replays fixed draws and returns zero once a queue runs dry.
type scriptedRandom struct {
	ints       []int
	floats     []float64
	intCalls   int
	floatCalls int
}

func (s *scriptedRandom) Intn(n int) int {
	s.intCalls++
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedRandom) Float64() float64 {
	s.floatCalls++
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func option(text string, mutate func(*EventOption)) EventOption {
	o := EventOption{Text: text, EffectDescription: text + " happened"}
	if mutate != nil {
		mutate(&o)
	}
	return o
}

func activeEvent(id string, repeat bool) GameEvent {
	return GameEvent{
		ID:          id,
		Title:       "Event " + id,
		Weight:      1,
		AllowRepeat: repeat,
		Options:     []EventOption{option("first", nil), option("second", nil)},
	}
}
