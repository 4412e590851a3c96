package scene

import "fmt"

// Msg is an input to Machine.Update.
type Msg interface {
	fmt.Stringer
}

// SwitchTo changes screen.
type SwitchTo struct {
	Target Kind
}

// Probe form edits.
type (
	UpdateDescription struct{ Value string }
	UpdateFrequency   struct{ Value float64 }
	UpdateVelocity    struct{ Value float64 }
)

// Refraction form edits.
type (
	UpdateIncidenceMin      struct{ Value float64 }
	UpdateIncidenceMax      struct{ Value float64 }
	UpdateVelocityIncidence struct{ Value float64 }
	UpdateVelocityMedium    struct{ Value float64 }
	UpdateVelocitySteel     struct{ Value float64 }
)

// Calculate runs the calculation of the active form.
type Calculate struct{}

// Save appends the probe draft to the records and persists them.
type Save struct{}

// ClearAll deletes every record after confirmation.
type ClearAll struct{}

func (m SwitchTo) String() string               { return "switch to " + m.Target.String() }
func (m UpdateDescription) String() string      { return fmt.Sprintf("update description %q", m.Value) }
func (m UpdateFrequency) String() string        { return fmt.Sprintf("update frequency %v", m.Value) }
func (m UpdateVelocity) String() string         { return fmt.Sprintf("update velocity %v", m.Value) }
func (m UpdateIncidenceMin) String() string     { return fmt.Sprintf("update incidence min %v", m.Value) }
func (m UpdateIncidenceMax) String() string     { return fmt.Sprintf("update incidence max %v", m.Value) }
func (m UpdateVelocityIncidence) String() string {
	return fmt.Sprintf("update incident velocity %v", m.Value)
}
func (m UpdateVelocityMedium) String() string { return fmt.Sprintf("update medium velocity %v", m.Value) }
func (m UpdateVelocitySteel) String() string  { return fmt.Sprintf("update steel velocity %v", m.Value) }
func (Calculate) String() string              { return "calculate" }
func (Save) String() string                   { return "save" }
func (ClearAll) String() string               { return "clear all" }
