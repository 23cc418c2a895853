package domino

// Listener receives change notifications for rendering and UI.
// Calls happen synchronously on the engine's thread of control.
type Listener interface {
	ScoreChanged(score int)
	LevelChanged(level int)
	ComboChanged(combo int)
	StatusMessage(msg string)
	GameOver()
}

// NopListener ignores every notification. Embed it to implement only the
// callbacks you need.
type NopListener struct{}

func (NopListener) ScoreChanged(int)     {}
func (NopListener) LevelChanged(int)     {}
func (NopListener) ComboChanged(int)     {}
func (NopListener) StatusMessage(string) {}
func (NopListener) GameOver()            {}

// ListenerFuncs adapts optional functions to a Listener.
type ListenerFuncs struct {
	OnScore    func(int)
	OnLevel    func(int)
	OnCombo    func(int)
	OnStatus   func(string)
	OnGameOver func()
}

var _ Listener = ListenerFuncs{}

func (l ListenerFuncs) ScoreChanged(score int) {
	if l.OnScore != nil {
		l.OnScore(score)
	}
}

func (l ListenerFuncs) LevelChanged(level int) {
	if l.OnLevel != nil {
		l.OnLevel(level)
	}
}

func (l ListenerFuncs) ComboChanged(combo int) {
	if l.OnCombo != nil {
		l.OnCombo(combo)
	}
}

func (l ListenerFuncs) StatusMessage(msg string) {
	if l.OnStatus != nil {
		l.OnStatus(msg)
	}
}

func (l ListenerFuncs) GameOver() {
	if l.OnGameOver != nil {
		l.OnGameOver()
	}
}
