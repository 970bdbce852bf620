package game

const (
	PlayfieldWidth  = 800.0
	PlayfieldHeight = 600.0

	PlayerStartX = 325.0
	PlayerStartY = 500.0
	PlayerStep   = 40.0 // horizontal move per key-down
	PlayerWidth  = 100.0
	PlayerHeight = 80.0

	MaxProjectiles   = 3
	ProjectileSpeed  = -6.0 // negative = upward
	ProjectileRadius = 5.0

	MaxEnemies      = 5
	EnemyMarginX    = 75.0
	EnemyInsetRight = 200.0
	EnemyMarginY    = 75.0
	EnemyMinRadius  = 10.0
	EnemyMaxRadius  = 50.0
	EnemySpeed      = 1.0

	PointsPerKill = 15
	StartingLives = 10
)
