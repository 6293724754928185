// core/impact/feedstock.go
// Feedstock records and the immutable catalog that holds them.

package impact

import (
	"fmt"
	"sort"
)

// Feedstock describes one ethanol source. Intensities are per liter of
// ethanol produced.
type Feedstock struct {
	Name                string
	WaterIntensityLPerL float64 // L water / L ethanol
	CarbonIntensityKgL  float64 // kg CO2e / L ethanol
	PriceUSDPerL        float64
	YieldLPerHectare    float64
	WaterScarcityIndex  float64 // 1.0 = baseline, >1.0 = water-stressed region
}

// Catalog maps feedstock keys to records. It is never mutated after NewCatalog.
type Catalog struct {
	byKey map[string]Feedstock
}

// NewCatalog copies records into a new Catalog.
func NewCatalog(records map[string]Feedstock) *Catalog {
	m := make(map[string]Feedstock, len(records))
	for k, v := range records {
		m[k] = v
	}
	return &Catalog{byKey: m}
}

// Lookup returns the record for key, or an error wrapping ErrUnknownFeedstock.
func (c *Catalog) Lookup(key string) (Feedstock, error) {
	f, ok := c.byKey[key]
	if !ok {
		return Feedstock{}, fmt.Errorf("%w: %q", ErrUnknownFeedstock, key)
	}
	return f, nil
}

// Keys returns all keys in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.byKey))
	for k := range c.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports the number of feedstocks in the catalog.
func (c *Catalog) Len() int { return len(c.byKey) }
