package aspect

import "time"

// StopWatch measures wall-clock time on the monotonic clock.
type StopWatch struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

func NewStopWatch() *StopWatch {
	return &StopWatch{}
}

func (s *StopWatch) Start() {
	s.start = time.Now()
	s.elapsed = 0
	s.running = true
}

func (s *StopWatch) Stop() {
	if !s.running {
		return
	}
	s.elapsed = time.Since(s.start)
	s.running = false
}

func (s *StopWatch) StartTime() time.Time {
	return s.start
}

// Elapsed is the measured time truncated to milliseconds. While running it
// reports the time since Start.
func (s *StopWatch) Elapsed() time.Duration {
	d := s.elapsed
	if s.running {
		d = time.Since(s.start)
	}
	return d.Truncate(time.Millisecond)
}

func (s *StopWatch) TotalTimeMillis() int64 {
	return s.Elapsed().Milliseconds()
}
