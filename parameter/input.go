package parameter

// Keyboard Region Tracker (field units)
const (
	// TrackerWidth and TrackerHeight are the initial face box size
	TrackerWidth  = 160.0
	TrackerHeight = 160.0

	// TrackerStep is the distance moved per key press
	TrackerStep = 24.0

	// TrackerFastMultiplier scales steps for shifted keys (H/J/K/L)
	TrackerFastMultiplier = 3

	// TrackerResizeStep grows or shrinks the box per key press
	TrackerResizeStep = 16.0
	TrackerMinSize    = 48.0
	TrackerMaxSize    = 320.0
)
