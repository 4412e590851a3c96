// Package db persists webTools records in a local key-value store backed by
// SQLite.
package db

// Record is one saved wavelength/pitch calculation.
type Record struct {
	Description string  `json:"description"`
	Frequency   float64 `json:"frequency"` // MHz
	Velocity    float64 `json:"velocity"`  // m/s
	Lambda      float64 `json:"lambda"`    // mm
	Pitch       float64 `json:"pitch"`     // mm
}

// Database is the ordered list of saved records. Insertion order is display
// order.
type Database struct {
	Probes []Record `json:"probes"`
}

// Len returns the number of records.
func (d Database) Len() int { return len(d.Probes) }

// Clone returns a copy that shares no backing array with d.
func (d Database) Clone() Database {
	out := Database{Probes: make([]Record, len(d.Probes))}
	copy(out.Probes, d.Probes)
	return out
}
