package manager

import (
	"greedy-snake/game/entity"
	"greedy-snake/game/types"
)

type CollisionManager struct {
	wall entity.Wall
}

func NewCollisionManager(wall entity.Wall) *CollisionManager {
	return &CollisionManager{
		wall: wall,
	}
}

// Resolve runs the wall check and then the self check on the snake's new
// head, in that order, and reports which one killed it
func (cm *CollisionManager) Resolve(snake *entity.Snake) types.CollisionType {
	if !snake.Alive() {
		return snake.LastCollision()
	}
	if !snake.CollideWithWall(cm.wall) {
		return types.WallCollision
	}
	if !snake.CheckSelfCollision() {
		return types.SelfCollision
	}
	return types.NoCollision
}

// IsFoodCollision checks if the snake's head is on the food. A hit marks
// the snake to grow on its next move.
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, food *entity.Food) bool {
	return snake.Alive() && snake.EatFood(food)
}
