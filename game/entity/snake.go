package entity

import "greedy-snake/game/types"

// selfCollisionSkip is the number of leading nodes a head can never land on
// after a single step, so they are left out of the self collision test.
const selfCollisionSkip = 3

// Snake is the player controlled creature. Nodes[0] is the head.
type Snake struct {
	nodes         []Node
	direction     types.Direction
	alive         bool
	ateFood       bool
	lastCollision types.CollisionType
}

// NewSnake returns the starting snake: five nodes in a row heading left
func NewSnake() *Snake {
	body := make([]types.Point, types.InitialLength)
	for i := range body {
		body[i] = types.Point{X: types.StartX + int32(i)*types.CellSize, Y: types.StartY}
	}
	return NewSnakeFrom(body, types.Left)
}

// NewSnakeFrom builds a snake from explicit body positions, head first.
// It panics on an empty body since a snake always has a head.
func NewSnakeFrom(body []types.Point, dir types.Direction) *Snake {
	if len(body) == 0 {
		panic("entity: snake needs at least one node")
	}
	nodes := make([]Node, len(body))
	for i, p := range body {
		nodes[i] = Node{Pos: p, Size: types.CellSize}
	}
	return &Snake{
		nodes:     nodes,
		direction: dir,
		alive:     true,
	}
}

func (s *Snake) Head() Node {
	return s.nodes[0]
}

func (s *Snake) Position() types.Point {
	return s.nodes[0].Pos
}

func (s *Snake) Length() int {
	return len(s.nodes)
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

func (s *Snake) Alive() bool {
	return s.alive
}

// LastCollision returns what killed the snake, or NoCollision while alive
func (s *Snake) LastCollision() types.CollisionType {
	return s.lastCollision
}

// Occupied returns the positions covered by the body
func (s *Snake) Occupied() []types.Point {
	out := make([]types.Point, len(s.nodes))
	for i, n := range s.nodes {
		out[i] = n.Pos
	}
	return out
}

// ChangeDirection sets the direction used by the next Move. Repeating the
// current direction or reversing it is ignored. Reports whether it took effect.
func (s *Snake) ChangeDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.direction || dir.Opposite(s.direction) {
		return false
	}
	s.direction = dir
	return true
}

// Move advances the snake one cell. The tail is kept when food was eaten
// since the previous move, which grows the snake by one node.
func (s *Snake) Move() {
	head := s.Head()
	newHead := Node{Pos: head.Pos.Add(s.direction.Step(head.Size)), Size: head.Size}

	s.nodes = append(s.nodes, Node{})
	copy(s.nodes[1:], s.nodes[:len(s.nodes)-1])
	s.nodes[0] = newHead

	if s.ateFood {
		s.ateFood = false
	} else {
		s.nodes = s.nodes[:len(s.nodes)-1]
	}
}

// CollideWithWall kills the snake when its head sticks out of the wall.
// A head flush against the wall is still inside.
func (s *Snake) CollideWithWall(w Wall) bool {
	if !w.Bounds.Contains(s.Head().Bounds()) {
		s.kill(types.WallCollision)
	}
	return s.alive
}

// CheckSelfCollision kills the snake when its head overlaps its own body
func (s *Snake) CheckSelfCollision() bool {
	head := s.Head().Pos
	for i := selfCollisionSkip; i < len(s.nodes); i++ {
		if s.nodes[i].Pos == head {
			s.kill(types.SelfCollision)
			break
		}
	}
	return s.alive
}

// EatFood reports whether the head is on the food and, if so, marks the
// snake to grow on its next move.
func (s *Snake) EatFood(f *Food) bool {
	if s.Head().Pos != f.Position() {
		return false
	}
	s.ateFood = true
	return true
}

// Stop ends the run without a collision, used when the board is full
func (s *Snake) Stop() {
	s.kill(types.NoCollision)
}

func (s *Snake) kill(cause types.CollisionType) {
	if !s.alive {
		return
	}
	s.alive = false
	s.lastCollision = cause
}

func (s *Snake) Render(surface Surface) {
	for _, n := range s.nodes {
		n.Render(surface)
	}
}
