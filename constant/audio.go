package constant

// Sound cue names, resolved against the sounds directory
const (
	CueHit     = "hit1"
	CueGoal    = "goal1"
	CueSplat   = "orange_splat2"
	CuePowerup = "powerup1"
)

// HazardCatchCues are chosen from at random when an owange is caught
var HazardCatchCues = []string{CueGoal}
