package constants

// Debug log location and rotation threshold
const (
	LogDir      = "logs"
	LogFileName = "snake.log"
	MaxLogSize  = 10 * 1024 * 1024
)
