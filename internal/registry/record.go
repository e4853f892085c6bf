package registry

import "time"

// Dependencies describes what a single plugin depends on. Both lists are
// optional and keep the order the client submitted them in.
type Dependencies struct {
	Depend     []string `json:"depend,omitempty"`
	Softdepend []string `json:"softdepend,omitempty"`
}

// PluginMap maps a plugin name to its dependency descriptor.
type PluginMap map[string]Dependencies

// PluginRecord is one persisted submission. Records are immutable after
// creation and are only ever removed by the expiry task.
type PluginRecord struct {
	ID        string    `json:"id"`
	Plugins   PluginMap `json:"plugins"`
	CreatedAt time.Time `json:"createdAt"`
}
