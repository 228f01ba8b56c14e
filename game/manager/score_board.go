package manager

import "sort"

const (
	DefaultHistorySize = 50 // Scores kept per session
	TopScores          = 5  // Scores shown on the game over screen
)

// ScoreBoard keeps finished game scores in memory, best first
type ScoreBoard struct {
	scores      []int
	limit       int
	gamesPlayed int
	total       int
}

func NewScoreBoard(limit int) *ScoreBoard {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &ScoreBoard{
		scores: make([]int, 0, limit),
		limit:  limit,
	}
}

// Record adds a finished game. Only the best scores up to the limit are kept,
// but every game counts towards GamesPlayed and Average.
func (sb *ScoreBoard) Record(score int) {
	sb.gamesPlayed++
	sb.total += score

	i := sort.Search(len(sb.scores), func(i int) bool { return sb.scores[i] < score })
	if i >= sb.limit {
		return
	}
	if len(sb.scores) < sb.limit {
		sb.scores = append(sb.scores, 0)
	}
	copy(sb.scores[i+1:], sb.scores[i:])
	sb.scores[i] = score
}

// Top returns up to n best scores in descending order
func (sb *ScoreBoard) Top(n int) []int {
	if n > len(sb.scores) {
		n = len(sb.scores)
	}
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	copy(out, sb.scores[:n])
	return out
}

// Best returns the high score, or 0 before any game finished
func (sb *ScoreBoard) Best() int {
	if len(sb.scores) == 0 {
		return 0
	}
	return sb.scores[0]
}

func (sb *ScoreBoard) GamesPlayed() int {
	return sb.gamesPlayed
}

// Average returns the mean score over every recorded game
func (sb *ScoreBoard) Average() float64 {
	if sb.gamesPlayed == 0 {
		return 0
	}
	return float64(sb.total) / float64(sb.gamesPlayed)
}
