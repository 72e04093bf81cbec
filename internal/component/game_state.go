package component

// GameStatus — компонент для хранения состояния партии.
// Переход Running -> GameOver односторонний.
type GameStatus int

const (
	StatusRunning GameStatus = iota
	StatusGameOver
)

func (s GameStatus) String() string {
	if s == StatusGameOver {
		return "GameOver"
	}
	return "Running"
}
