package engine

// Config holds the fixed parameters of one simulation run.
type Config struct {
	MapWidth  int
	MapHeight int
	MaxDepth  int // floor indices run 0..MaxDepth-1
	Seed      int64
}

// DefaultConfig returns the standard dungeon dimensions.
func DefaultConfig() Config {
	return Config{
		MapWidth:  50,
		MapHeight: 40,
		MaxDepth:  10,
		Seed:      1,
	}
}

// Generation tuning shared by every floor.
const (
	roomAttempts = 15
	minRoomSize  = 5
	maxRoomSize  = 9
	rowBand      = 5
	maxMessages  = 50
)
