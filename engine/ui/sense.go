package ui

// Sense records a widget's pointer interaction. Interactive widgets own one
// and expose it through Sensor; the controller sets hovered and captured and
// fires clicks during HandleEvent, and advances the timers during Update.
type Sense struct {
	clicked      bool
	clickTime    float64
	hoveredTime  float64
	capturedTime float64
	hasClick     bool
	hovered      bool
	captured     bool
}

func (s *Sense) Hovered() bool  { return s.hovered }
func (s *Sense) Captured() bool { return s.captured }

func (s *Sense) SetHovered(hovered bool) {
	if hovered && !s.hovered {
		s.hoveredTime = 0
	}
	s.hovered = hovered
}

func (s *Sense) SetCaptured(captured bool) {
	if captured && !s.captured {
		s.capturedTime = 0
	}
	s.captured = captured
}

func (s *Sense) Click() {
	s.clicked = true
	s.hasClick = true
	s.clickTime = 0
}

// TakeClicked reports whether a click happened since the last call.
func (s *Sense) TakeClicked() bool {
	c := s.clicked
	s.clicked = false
	return c
}

// HoveredFor returns how long the widget has been hovered, or false.
func (s *Sense) HoveredFor() (float64, bool) { return s.hoveredTime, s.hovered }

// CapturedFor returns how long the widget has been captured, or false.
func (s *Sense) CapturedFor() (float64, bool) { return s.capturedTime, s.captured }

// SinceClick returns the time since the last click, or false if never clicked.
func (s *Sense) SinceClick() (float64, bool) { return s.clickTime, s.hasClick }

func (s *Sense) Update(dt float64) {
	if s.hasClick {
		s.clickTime += dt
	}
	if s.hovered {
		s.hoveredTime += dt
	}
	if s.captured {
		s.capturedTime += dt
	}
}
