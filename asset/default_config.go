package asset

// DefaultConfig is the built-in game configuration, decoded before any user file
const DefaultConfig = `
# === Play field (world units) ===
[field]
width = 640.0
height = 480.0

# === Simulation ===
# gravity, timestep and glide default to the constant package values
[world]
owanges = 6
prune_interval = "3s"
cherry_interval = "12s"
seed = 0

# === Audio ===
[audio]
enabled = true
channels = 8
sample_rate = 44100
buffer = "100ms"
data_dir = ""
music_tracks = []

# === Logging ===
[log]
debug = false
# empty logs everything from debug up
level = ""
`
