package discovery

import "slices"

// Collector is a DescriptorRegistry that keeps every registered location in
// discovery order. Registering a location whose identity was already seen is
// a no-op.
type Collector struct {
	locations []Location
	seen      map[string]struct{}
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[string]struct{})}
}

// RegisterDescriptor records loc.
func (c *Collector) RegisterDescriptor(loc Location) error {
	if c.seen == nil {
		c.seen = make(map[string]struct{})
	}
	key := loc.String()
	if _, ok := c.seen[key]; ok {
		return nil
	}
	c.seen[key] = struct{}{}
	c.locations = append(c.locations, loc)
	return nil
}

// Locations returns the recorded locations in discovery order.
func (c *Collector) Locations() []Location {
	return slices.Clone(c.locations)
}

// Len returns the number of recorded locations.
func (c *Collector) Len() int {
	return len(c.locations)
}
