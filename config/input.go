package config

// AggregationPolicy decides how several sources feeding the same action in one
// frame combine.
type AggregationPolicy int

const (
	// AggregateLast keeps whichever source wrote last in the frame.
	AggregateLast AggregationPolicy = iota
	// AggregateMax keeps the strongest contribution.
	AggregateMax
	// AggregateSum adds contributions, clamped to 1.
	AggregateSum
)

var aggregationNames = map[string]AggregationPolicy{
	"last": AggregateLast,
	"max":  AggregateMax,
	"sum":  AggregateSum,
}

// ParseAggregation maps "last", "max" or "sum" to a policy.
func ParseAggregation(name string) (AggregationPolicy, bool) {
	p, ok := aggregationNames[name]
	return p, ok
}

func (p AggregationPolicy) String() string {
	for name, v := range aggregationNames {
		if v == p {
			return name
		}
	}
	return "unknown"
}

// InputConfig holds the tunables of the action engine
type InputConfig struct {
	// Number of player handles gamepads can be assigned to
	MaxPlayers int
	// Player used by the single-player bind helpers
	DefaultPlayer int
	// Gamepad axis values at or below this magnitude count as released (0.0 to 1.0)
	AxisDeadzone float64
	// Multiplier turning mouse motion in pixels into a strength
	MouseSensitivity float64
	// Multiplier for wheel deltas
	WheelSensitivity float64
	// How fan-in from several bindings to one action is resolved
	Aggregation AggregationPolicy
}

// Input is the global input configuration
var Input InputConfig

// DefaultInput returns the configuration used when nothing overrides it.
func DefaultInput() InputConfig {
	return InputConfig{
		MaxPlayers:       4,
		DefaultPlayer:    0,
		AxisDeadzone:     0.05,
		MouseSensitivity: 0.1,
		WheelSensitivity: 1.0,
		Aggregation:      AggregateLast,
	}
}

func init() {
	Input = DefaultInput()
}
