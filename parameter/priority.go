package parameter

// System Execution Priorities (lower runs first)
// Order within a Playing tick: spawn, motion, collision; score effects run inside collision
const (
	PrioritySpawn     = 10
	PriorityMotion    = 20 // After spawn, new items move on their first tick
	PriorityCollision = 30 // After motion, sees pruned live set
)
