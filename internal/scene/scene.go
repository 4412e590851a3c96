// Package scene is the screen state machine behind webTools: which screen is
// active, the unsaved draft it owns, and the saved records.
package scene

import (
	"github.com/enziog/webTools/internal/db"
	"github.com/enziog/webTools/internal/probe"
)

// Kind names a screen.
type Kind int

const (
	KindList Kind = iota
	KindProbeForm
	KindRefractionForm
	KindDemo
	KindSettings
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindProbeForm:
		return "probe form"
	case KindRefractionForm:
		return "refraction form"
	case KindDemo:
		return "demo"
	case KindSettings:
		return "settings"
	}
	return "unknown"
}

// Scene is the active screen together with any draft it owns. The concrete
// types are List, *ProbeForm, *RefractionForm, Demo and Settings.
type Scene interface {
	Kind() Kind
}

// List shows the saved records.
type List struct{}

// ProbeForm edits an unsaved record.
type ProbeForm struct {
	Draft db.Record
}

// RefractionForm edits an unsaved refraction calculation.
type RefractionForm struct {
	Draft probe.BeamAngle
}

// Demo is the TFM/PWI information screen.
type Demo struct{}

// Settings holds the clear-all action.
type Settings struct{}

func (List) Kind() Kind            { return KindList }
func (*ProbeForm) Kind() Kind      { return KindProbeForm }
func (*RefractionForm) Kind() Kind { return KindRefractionForm }
func (Demo) Kind() Kind            { return KindDemo }
func (Settings) Kind() Kind        { return KindSettings }

// enter builds the scene shown when switching to k, with an empty draft.
func enter(k Kind) Scene {
	switch k {
	case KindProbeForm:
		return &ProbeForm{}
	case KindRefractionForm:
		return &RefractionForm{}
	case KindDemo:
		return Demo{}
	case KindSettings:
		return Settings{}
	}
	return List{}
}
