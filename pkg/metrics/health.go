package metrics

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ComponentUp reports per-component health as a gauge: 1 healthy, 0
// failing.
var ComponentUp = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "loom_component_up",
		Help: "Whether a control-plane component is healthy (1) or failing (0)",
	},
	[]string{"component"},
)

// ComponentState is one component's last reported condition
type ComponentState struct {
	Healthy bool
	Detail  string
	Updated time.Time
}

type componentBoard struct {
	mu         sync.RWMutex
	components map[string]ComponentState
}

var board = &componentBoard{components: make(map[string]ComponentState)}

// SetComponentHealth records a component's condition and mirrors it into
// the loom_component_up gauge. The latest report wins.
func SetComponentHealth(name string, healthy bool, detail string) {
	board.mu.Lock()
	board.components[name] = ComponentState{
		Healthy: healthy,
		Detail:  detail,
		Updated: time.Now(),
	}
	board.mu.Unlock()

	up := 0.0
	if healthy {
		up = 1.0
	}
	ComponentUp.WithLabelValues(name).Set(up)
}

// ComponentHealth returns a snapshot of every reported component
func ComponentHealth() map[string]ComponentState {
	board.mu.RLock()
	defer board.mu.RUnlock()
	out := make(map[string]ComponentState, len(board.components))
	for name, state := range board.components {
		out[name] = state
	}
	return out
}

// UnhealthyComponents returns the names of the components currently
// failing, sorted for stable output.
func UnhealthyComponents() []string {
	board.mu.RLock()
	defer board.mu.RUnlock()
	var out []string
	for name, state := range board.components {
		if !state.Healthy {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
