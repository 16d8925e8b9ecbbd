package constant

// Scoring
const (
	// HazardCatchPoints is multiplied by the player's multiplier per caught owange
	HazardCatchPoints = 10

	// HazardGroundPenalty is subtracted when an owange reaches the ground
	HazardGroundPenalty = 2

	// FruitMultiplierStep is added to the multiplier per caught cherry
	FruitMultiplierStep = 1

	// InitialMultiplier is the multiplier at the start of a run
	InitialMultiplier = 1
)

// Spawning
const (
	// HazardRespawnDrop is how far below the field top a replacement owange appears
	HazardRespawnDrop = 200

	// FruitSpawnDrop is how far below the field top a cherry appears
	FruitSpawnDrop = 50
)

// Player
const (
	// GlideAllowance is the glide budget restored on landing, in frames
	GlideAllowance = 20

	// PlayerStartX, PlayerStartY place the player at the foot of the trunk
	PlayerStartX = 0
	PlayerStartY = 25
)
