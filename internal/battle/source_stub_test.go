package battle

import "errors"

// scriptedSource answers IntN through intFn and always returns float for
// Float64. A nil intFn never misses and picks the first living target.
type scriptedSource struct {
	intFn func(n int) int
	float float64
	calls int
}

func (s *scriptedSource) IntN(n int) (int, error) {
	s.calls++
	if s.intFn != nil {
		return s.intFn(n), nil
	}
	if n == missRollSpan {
		return missRollSpan - 1, nil
	}
	return 0, nil
}

func (s *scriptedSource) Float64() (float64, error) { return s.float, nil }

// neverMiss hits every time at the midpoint multiplier (x1.0).
func neverMiss() *scriptedSource { return &scriptedSource{float: 0.5} }

// alwaysMiss misses every attack attempt.
func alwaysMiss() *scriptedSource {
	return &scriptedSource{intFn: func(int) int { return 0 }, float: 0.5}
}

type failingSource struct {
	after int
	calls int
}

var errDrained = errors.New("entropy drained")

func (f *failingSource) IntN(n int) (int, error) {
	f.calls++
	if f.calls > f.after {
		return 0, errDrained
	}
	return n - 1, nil
}

func (f *failingSource) Float64() (float64, error) { return 0.5, nil }
