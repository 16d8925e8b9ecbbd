package constant

// Simulation
const (
	// TimeStep is the fixed physics step per frame, in simulation time units.
	// Coarse on purpose; the simulation is stylized.
	TimeStep = 0.5

	// Gravity is the vertical acceleration of the space
	Gravity = -0.5
)

// Player motion, in world units per simulation time unit
const (
	PlayerMoveSpeed     = 6.0
	PlayerJumpSpeed     = 11.0
	PlayerGlideFallRate = 1.5
	PlayerMass          = 10.0
	PlayerWidth         = 12.0
	PlayerHeight        = 20.0
	PlayerFriction      = 0.9
)

// Tree shape
const (
	TrunkThickness    = 50.0
	TrunkLength       = 220.0
	TrunkBaseY        = 20.0
	BoughThickness    = 25.0 // Branches thinner than this end in a bough
	ForkThinning      = 0.75
	ForkLengthFalloff = 2.8
	ForkMin           = 3
	ForkMax           = 4
	BoughWidth        = 18.0
	BoughHeight       = 6.0
	BoughMass         = 1.0
	BoughGroup        = 1

	// TreeReferenceHeight is the field height TrunkLength is tuned for
	TreeReferenceHeight = 800.0
)

// Fruit
const (
	CherryRadius = 6.0
	CherryMass   = 1.0
	OwangeRadius = 10.0
	OwangeMass   = 2.0
	FruitBounce  = 0.2
)

// Bounds
const (
	// WallOutset offsets the left bounding trunk past the field edge
	WallOutset = 60.0

	// WallInset offsets the right bounding trunk inside the field edge
	WallInset = 10.0

	StaticRadius   = 2.0
	GroundFriction = 1.0
)
