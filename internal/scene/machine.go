package scene

import (
	"errors"
	"fmt"
	"log"

	"github.com/enziog/webTools/internal/db"
	"github.com/enziog/webTools/internal/i18n"
	"github.com/enziog/webTools/internal/probe"
)

// ErrIllegalTransition is returned for a message the active scene does not
// accept. The machine state is left unchanged.
var ErrIllegalTransition = errors.New("illegal message for scene")

// Storage persists the saved records.
type Storage interface {
	Load() db.Database
	Save(db.Database) error
	Clear() error
}

// Confirmer asks the user a yes/no question and blocks for the answer.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Machine owns the active scene and the saved records. It is not safe for
// concurrent use; messages are applied one at a time.
type Machine struct {
	storage Storage
	confirm Confirmer
	text    *i18n.Messages

	scene   Scene
	records db.Database
}

// New loads the saved records from storage and starts on the list screen.
// A nil text uses the default locale.
func New(storage Storage, confirm Confirmer, text *i18n.Messages) *Machine {
	if text == nil {
		text = i18n.Default()
	}
	return &Machine{
		storage: storage,
		confirm: confirm,
		text:    text,
		scene:   List{},
		records: storage.Load(),
	}
}

// Kind reports the active screen.
func (m *Machine) Kind() Kind { return m.scene.Kind() }

// Scene returns a copy of the active scene.
func (m *Machine) Scene() Scene {
	switch s := m.scene.(type) {
	case *ProbeForm:
		c := *s
		return &c
	case *RefractionForm:
		c := *s
		return &c
	}
	return m.scene
}

// Records returns a copy of the saved records in display order.
func (m *Machine) Records() []db.Record {
	return m.records.Clone().Probes
}

// Database returns a copy of the saved records.
func (m *Machine) Database() db.Database {
	return m.records.Clone()
}

// Update applies msg to the active scene. Illegal messages are logged and
// reported with ErrIllegalTransition; storage failures are wrapped.
func (m *Machine) Update(msg Msg) error {
	var err error
	switch s := m.scene.(type) {
	case List:
		err = m.updateList(msg)
	case *ProbeForm:
		err = m.updateProbe(s, msg)
	case *RefractionForm:
		err = m.updateRefraction(s, msg)
	case Demo:
		err = m.updateLeaf(msg)
	case Settings:
		err = m.updateSettings(msg)
	default:
		err = fmt.Errorf("unknown scene %T", s)
	}
	if errors.Is(err, ErrIllegalTransition) {
		log.Printf("scene: ignoring message: %v", err)
	}
	return err
}

func (m *Machine) illegal(msg Msg) error {
	return fmt.Errorf("%w: %s during %s", ErrIllegalTransition, msg, m.scene.Kind())
}

func (m *Machine) updateList(msg Msg) error {
	sw, ok := msg.(SwitchTo)
	if !ok || sw.Target == KindList {
		return m.illegal(msg)
	}
	switch sw.Target {
	case KindProbeForm, KindRefractionForm, KindDemo, KindSettings:
		m.scene = enter(sw.Target)
		return nil
	}
	return m.illegal(msg)
}

// updateLeaf handles the return switch shared by every non-list scene.
func (m *Machine) updateLeaf(msg Msg) error {
	if sw, ok := msg.(SwitchTo); ok && sw.Target == KindList {
		m.scene = List{}
		return nil
	}
	return m.illegal(msg)
}

func (m *Machine) updateProbe(s *ProbeForm, msg Msg) error {
	switch msg := msg.(type) {
	case UpdateDescription:
		s.Draft.Description = msg.Value
	case UpdateFrequency:
		s.Draft.Frequency = msg.Value
	case UpdateVelocity:
		s.Draft.Velocity = msg.Value
	case Calculate:
		res, err := probe.ComputeProbe(s.Draft.Frequency, s.Draft.Velocity)
		switch {
		case errors.Is(err, probe.ErrZeroInput):
			s.Draft.Description = m.text.ZeroWarning()
			return nil
		case err != nil:
			s.Draft.Lambda, s.Draft.Pitch = 0, 0
			s.Draft.Description = m.text.RangeWarning()
			return nil
		}
		s.Draft.Lambda = res.Lambda
		s.Draft.Pitch = res.Pitch
		s.Draft.Description = m.text.ProbeSummary(res.Lambda, res.Pitch)
	case Save:
		m.records.Probes = append(m.records.Probes, s.Draft)
		s.Draft = db.Record{}
		if err := m.storage.Save(m.records.Clone()); err != nil {
			return fmt.Errorf("persist records: %w", err)
		}
	default:
		return m.updateLeaf(msg)
	}
	return nil
}

func (m *Machine) updateRefraction(s *RefractionForm, msg Msg) error {
	switch msg := msg.(type) {
	case UpdateIncidenceMin:
		s.Draft.IncidenceMin = msg.Value
	case UpdateIncidenceMax:
		s.Draft.IncidenceMax = msg.Value
	case UpdateVelocityIncidence:
		s.Draft.VelocityIncidence = msg.Value
	case UpdateVelocityMedium:
		s.Draft.VelocityMedium = msg.Value
	case UpdateVelocitySteel:
		s.Draft.VelocitySteel = msg.Value
	case Calculate:
		s.Draft = probe.ComputeRefraction(s.Draft)
		s.Draft.Result = m.text.RefractionSummary(s.Draft)
	default:
		return m.updateLeaf(msg)
	}
	return nil
}

func (m *Machine) updateSettings(msg Msg) error {
	if _, ok := msg.(ClearAll); !ok {
		return m.updateLeaf(msg)
	}
	if m.confirm == nil || !m.confirm.Confirm(m.text.ClearConfirm()) {
		return nil
	}
	m.records = db.Database{Probes: []db.Record{}}
	if err := m.storage.Clear(); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	return nil
}
