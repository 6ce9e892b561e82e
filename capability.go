package textab

// Capability names a rendering feature the encoding target may or may not
// support. The encoder degrades gracefully when a capability it wants is
// missing: the rule-based variant falls back to the simple grid, and
// row-spanning wrappers are omitted in favor of raw content.
type Capability string

const (
	CapBooktabs  Capability = "booktabs"
	CapMultirow  Capability = "multirow"
	CapLongtable Capability = "longtable"
	CapArray     Capability = "array"
)

// CapabilityProvider answers whether the encoding target supports a
// rendering feature. Implementations are supplied by the caller; the
// encoder never probes the environment itself.
type CapabilityProvider interface {
	Has(c Capability) bool
}

// Capabilities is a fixed capability set implementing CapabilityProvider.
// Absent keys count as unsupported.
type Capabilities map[Capability]bool

// Has reports whether the capability is present in the set.
func (cs Capabilities) Has(c Capability) bool {
	return cs[c]
}

// AllCapabilities returns a set with every known capability enabled. It is
// the encoder's default when the caller supplies no provider.
func AllCapabilities() Capabilities {
	return Capabilities{
		CapBooktabs:  true,
		CapMultirow:  true,
		CapLongtable: true,
		CapArray:     true,
	}
}

// NoCapabilities returns an empty capability set, useful for exercising
// every fallback path.
func NoCapabilities() Capabilities {
	return Capabilities{}
}
