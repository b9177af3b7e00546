// internal/input/scripted.go
package input

// Scripted replays queued frames, then returns empty frames.
// Used by tests and by headless runs.
type Scripted struct {
	frames []Frame
}

func NewScripted(frames ...Frame) *Scripted {
	return &Scripted{frames: frames}
}

// Push appends frames to the queue.
func (s *Scripted) Push(frames ...Frame) {
	s.frames = append(s.frames, frames...)
}

// Type queues one frame carrying the runes of text.
func (s *Scripted) Type(text string) {
	s.Push(Frame{Chars: []rune(text)})
}

func (s *Scripted) Poll() Frame {
	if len(s.frames) == 0 {
		return Frame{}
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

