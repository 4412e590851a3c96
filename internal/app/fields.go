package app

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/enziog/webTools/internal/i18n"
	"github.com/enziog/webTools/internal/scene"
)

// ErrNotFinite is wrapped by a FieldError for NaN or infinite input.
var ErrNotFinite = errors.New("value is not a finite number")

// FieldError reports numeric input that could not be parsed. The draft keeps
// its previous value.
type FieldError struct {
	Field string
	Text  string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: invalid number %q", e.Field, e.Text)
}

func (e *FieldError) Unwrap() error { return e.Err }

// parseNumber reads a numeric field. Blank text is 0 (unset).
func parseNumber(field, text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Text: text, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Field: field, Text: text, Err: ErrNotFinite}
	}
	return v, nil
}

// numberField is one numeric input on a form.
type numberField struct {
	label string // i18n key
	input textinput.Model
	msg   func(float64) scene.Msg
	err   *FieldError
}

func newNumberField(label, unit string, msg func(float64) scene.Msg) numberField {
	in := textinput.New()
	in.Placeholder = unit
	in.Prompt = "> "
	in.CharLimit = 32
	in.Width = 24
	return numberField{label: label, input: in, msg: msg}
}

func probeFields() []numberField {
	return []numberField{
		newNumberField(i18n.KeyFieldFrequency, "MHz", func(v float64) scene.Msg { return scene.UpdateFrequency{Value: v} }),
		newNumberField(i18n.KeyFieldVelocity, "m/s", func(v float64) scene.Msg { return scene.UpdateVelocity{Value: v} }),
	}
}

func refractionFields() []numberField {
	return []numberField{
		newNumberField(i18n.KeyFieldIncidenceMin, "°", func(v float64) scene.Msg { return scene.UpdateIncidenceMin{Value: v} }),
		newNumberField(i18n.KeyFieldIncidenceMax, "°", func(v float64) scene.Msg { return scene.UpdateIncidenceMax{Value: v} }),
		newNumberField(i18n.KeyFieldVelocityIncidence, "m/s", func(v float64) scene.Msg { return scene.UpdateVelocityIncidence{Value: v} }),
		newNumberField(i18n.KeyFieldVelocityMedium, "m/s", func(v float64) scene.Msg { return scene.UpdateVelocityMedium{Value: v} }),
		newNumberField(i18n.KeyFieldVelocitySteel, "m/s", func(v float64) scene.Msg { return scene.UpdateVelocitySteel{Value: v} }),
	}
}
