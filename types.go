package beanscan

import "github.com/meigma/beanscan/discovery"

// --- Re-exports from discovery ---

// Location identifies a marker file inside an archive and opens it on demand.
type Location = discovery.Location

// DescriptorRegistry receives the location of every discovered marker file.
type DescriptorRegistry = discovery.DescriptorRegistry

// ClassIndexer consumes the bytes of one compiled class.
type ClassIndexer = discovery.ClassIndexer

// DescriptorRegistryFunc adapts a function to DescriptorRegistry.
type DescriptorRegistryFunc = discovery.DescriptorRegistryFunc

// ClassIndexerFunc adapts a function to ClassIndexer.
type ClassIndexerFunc = discovery.ClassIndexerFunc

// Collector is a DescriptorRegistry that records locations in discovery order.
type Collector = discovery.Collector

// Option configures a scan.
type Option = discovery.Option

// Event is a progress update emitted during a scan.
type Event = discovery.Event

// Stats summarizes a scan.
type Stats = discovery.Stats

// NewCollector returns an empty Collector.
var NewCollector = discovery.NewCollector

// Options re-exported from discovery.
var (
	WithLogger     = discovery.WithLogger
	WithMarkerName = discovery.WithMarkerName
	WithProgress   = discovery.WithProgress
)

// DefaultMarkerName is the name of the marker descriptor file.
const DefaultMarkerName = discovery.DefaultMarkerName
