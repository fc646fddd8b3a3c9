package entities

// ServiceOption is one optional line inside a catalog service. Options carry
// no persisted quantity; quantities live on the customer's selection.
type ServiceOption struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ServiceCatalogEntry is one offering from the service catalog collaborator.
//
// Option identity is positional: selections reference options by index, so
// the option order of an entry must not be reshuffled within a snapshot.
type ServiceCatalogEntry struct {
	ServiceID   string          `json:"service_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	BasePrice   float64         `json:"base_price"`
	Options     []ServiceOption `json:"options"`
	Active      bool            `json:"active"`
}

// Catalog is an immutable snapshot of the service catalog, safe for
// concurrent reads. A new snapshot replaces the old one wholesale on an
// explicit reload; entries are never mutated in place.
type Catalog struct {
	entries []ServiceCatalogEntry
	byID    map[string]int
}

func NewCatalog(entries []ServiceCatalogEntry) *Catalog {
	c := &Catalog{
		entries: make([]ServiceCatalogEntry, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)
	for i, e := range c.entries {
		c.byID[e.ServiceID] = i
	}
	return c
}

func (c *Catalog) Entries() []ServiceCatalogEntry {
	out := make([]ServiceCatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Service looks up an entry by id. The second return is false for stale
// references; callers must treat that as "contributes nothing", not an error.
func (c *Catalog) Service(serviceID string) (ServiceCatalogEntry, bool) {
	i, ok := c.byID[serviceID]
	if !ok {
		return ServiceCatalogEntry{}, false
	}
	return c.entries[i], true
}

// Option resolves a positional option reference, false when either the
// service or the index is unknown.
func (c *Catalog) Option(serviceID string, optionIndex int) (ServiceOption, bool) {
	svc, ok := c.Service(serviceID)
	if !ok {
		return ServiceOption{}, false
	}
	if optionIndex < 0 || optionIndex >= len(svc.Options) {
		return ServiceOption{}, false
	}
	return svc.Options[optionIndex], true
}

func (c *Catalog) Len() int {
	return len(c.entries)
}
