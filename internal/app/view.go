package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/enziog/webTools/internal/db"
	"github.com/enziog/webTools/internal/i18n"
	"github.com/enziog/webTools/internal/probe"
	"github.com/enziog/webTools/internal/scene"
	"github.com/enziog/webTools/internal/ui"
)

// demoMedia lists the TFM/PWI demonstration files shown on the demo screen.
var demoMedia = []struct {
	label string // i18n key
	file  string
}{
	{i18n.KeyDemoFMC, "Acquisition-FMC-ET-01.gif"},
	{i18n.KeyDemoPWI, "RECONSTRUCTION-TFM-ET.gif"},
	{i18n.KeyDemoECT, "N600_HVAC_HEATEXCHANGER_ECTINSPECTION_SUBTITLEMASTER_w(2)_480.mp4"},
}

var tabs = []struct {
	kind  scene.Kind
	key   string
	title string // i18n key
}{
	{scene.KindList, "", i18n.KeyTitleList},
	{scene.KindProbeForm, KeyProbe, i18n.KeyTitleProbe},
	{scene.KindRefractionForm, KeyRefraction, i18n.KeyTitleRefraction},
	{scene.KindDemo, KeyDemo, i18n.KeyTitleDemo},
	{scene.KindSettings, KeySettings, i18n.KeyTitleSettings},
}

func (m Model) probeDraft() db.Record {
	if f, ok := m.machine.Scene().(*scene.ProbeForm); ok {
		return f.Draft
	}
	return db.Record{}
}

func (m Model) refractionDraft() probe.BeamAngle {
	if f, ok := m.machine.Scene().(*scene.RefractionForm); ok {
		return f.Draft
	}
	return probe.BeamAngle{}
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))

	if m.confirming {
		sections = append(sections, m.renderConfirm())
	} else {
		sections = append(sections, m.renderBody())
	}

	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))
	if line := m.renderStatusLine(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) bodyHeight() int {
	if m.height == 0 {
		return 20
	}
	// Reserve: header(1) + dividers(2) + status(1) + footer(1)
	return max(5, m.height-5)
}

func (m Model) renderHeader() string {
	parts := []string{ui.TitleStyle.Render("webTools")}
	active := m.machine.Kind()
	for _, t := range tabs {
		label := m.text.Text(t.title)
		if t.key != "" {
			label = "[" + t.key + "] " + label
		}
		if t.kind == active {
			parts = append(parts, ui.TabActiveStyle.Render(label))
		} else {
			parts = append(parts, ui.TabStyle.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderBody() string {
	var body string
	switch m.machine.Kind() {
	case scene.KindList:
		body = m.renderList()
	case scene.KindProbeForm:
		body = m.renderProbeForm()
	case scene.KindRefractionForm:
		body = m.renderRefractionForm()
	case scene.KindDemo:
		body = m.renderDemo()
	case scene.KindSettings:
		body = m.renderSettings()
	}
	return clipLines(body, m.bodyHeight())
}

func (m Model) renderList() string {
	records := m.machine.Records()
	if len(records) == 0 {
		return ui.DimStyle.Render("  " + m.text.Text(i18n.KeyListEmpty))
	}

	var lines []string
	for i := m.listScroll; i < len(records); i++ {
		r := records[i]
		lines = append(lines, m.indexStyle(i).Render(fmt.Sprintf("#%d", i+1))+"  "+
			renderValue(m.text.Text(i18n.KeyFieldFrequency), r.Frequency, "MHz")+"  "+
			renderValue(m.text.Text(i18n.KeyFieldVelocity), r.Velocity, "m/s")+"  "+
			renderValue("λ", r.Lambda, "mm")+"  "+
			renderValue("pitch", r.Pitch, "mm"))
		if desc := m.renderMarkdown(r.Description); desc != "" {
			lines = append(lines, desc)
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// indexStyle highlights the record at the top of the scrolled list.
func (m Model) indexStyle(i int) lipgloss.Style {
	if i == m.listScroll {
		return ui.SelectedStyle
	}
	return ui.IndexStyle
}

func renderValue(label string, v float64, unit string) string {
	return ui.LabelStyle.Render(label+" ") + ui.ValueStyle.Render(probe.FormatNumber(v)) + ui.UnitStyle.Render(" "+unit)
}

func (m Model) renderFields() []string {
	var lines []string
	for i, f := range m.fields {
		label := m.text.Text(f.label)
		if i == m.focus {
			lines = append(lines, ui.LabelActiveStyle.Render(label))
		} else {
			lines = append(lines, ui.LabelStyle.Render(label))
		}
		lines = append(lines, "  "+f.input.View())
		if f.err != nil {
			lines = append(lines, "  "+ui.ErrorTextStyle.Render(f.err.Error()))
		}
	}
	return lines
}

func (m Model) renderProbeForm() string {
	lines := m.renderFields()

	d := m.probeDraft()
	lines = append(lines, "")
	lines = append(lines, "  "+renderValue("λ", d.Lambda, "mm")+"  "+renderValue("pitch", d.Pitch, "mm"))
	lines = append(lines, "")

	label := m.text.Text(i18n.KeyFieldDescription)
	if m.descriptionFocused() {
		lines = append(lines, ui.LabelActiveStyle.Render(label))
	} else {
		lines = append(lines, ui.LabelStyle.Render(label))
	}
	lines = append(lines, m.description.View())
	return strings.Join(lines, "\n")
}

func (m Model) renderRefractionForm() string {
	lines := m.renderFields()

	b := m.refractionDraft()
	lines = append(lines, "")
	lines = append(lines, "  "+renderValue("min", b.RefractionMin, "°")+"  "+renderValue("max", b.RefractionMax, "°"))
	if b.RefractionSteelMin != 0 || b.RefractionSteelMax != 0 {
		lines = append(lines, "  "+renderValue("steel min", b.RefractionSteelMin, "°")+"  "+renderValue("steel max", b.RefractionSteelMax, "°"))
	}
	lines = append(lines, "")
	lines = append(lines, ui.LabelStyle.Render(m.text.Text(i18n.KeyFieldResult)))
	if b.Result != "" {
		for _, l := range strings.Split(b.Result, "\n") {
			lines = append(lines, "  "+ui.ValueStyle.Render(l))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDemo() string {
	var lines []string
	for _, media := range demoMedia {
		lines = append(lines, ui.LabelStyle.Render(m.text.Text(media.label)))
		lines = append(lines, "  "+ui.DimStyle.Render(media.file))
	}
	lines = append(lines, "")
	lines = append(lines, ui.LabelStyle.Render(m.text.Text(i18n.KeyDemoCourse))+"  "+ui.LinkStyle.Render(CourseURL))
	return strings.Join(lines, "\n")
}

func (m Model) renderSettings() string {
	lines := []string{
		ui.FooterKeyStyle.Render("["+KeyClearAll+"]") + " " + ui.LabelStyle.Render(m.text.Text(i18n.KeyClearAll)),
		ui.FooterKeyStyle.Render("["+KeyMail+"]") + " " + ui.LabelStyle.Render(m.text.Text(i18n.KeySupport)) +
			"  " + ui.LinkStyle.Render(strings.TrimPrefix(SupportURL, "mailto:")),
		"",
		ui.DimStyle.Render(fmt.Sprintf("  %d  %s", len(m.machine.Records()), m.text.Text(i18n.KeyTitleList))),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderConfirm() string {
	box := ui.ModalStyle.Render(ui.ErrorStyle.Render(m.text.ClearConfirm()) + "\n\n" +
		ui.FooterKeyStyle.Render("y") + ui.FooterDescStyle.Render(" / ") + ui.FooterKeyStyle.Render("n"))
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderStatusLine() string {
	if m.errorMessage != "" {
		return ui.ErrorStyle.Render("Error: ") + ui.ErrorTextStyle.Render(m.errorMessage)
	}
	if m.statusText != "" {
		return ui.StatusStyle.Render(m.statusText)
	}
	return ""
}

func footerPart(key, desc string) string {
	return ui.FooterKeyStyle.Render(key) + ui.FooterDescStyle.Render(" "+desc)
}

func (m Model) renderFooter() string {
	var parts []string
	if m.confirming {
		parts = append(parts, footerPart("y", "Yes"), footerPart("n", "No"))
		return strings.Join(parts, "  ")
	}

	switch m.machine.Kind() {
	case scene.KindList:
		parts = append(parts,
			footerPart("p/r/d/s", "Screens"),
			footerPart("j/k", "Scroll"),
			footerPart("q", "Quit"))
	case scene.KindProbeForm:
		parts = append(parts,
			footerPart("Tab", "Next"),
			footerPart("Ctrl+E", "Calculate"),
			footerPart("Ctrl+S", "Save"),
			footerPart("Esc", "Back"))
	case scene.KindRefractionForm:
		parts = append(parts,
			footerPart("Tab", "Next"),
			footerPart("Ctrl+E", "Calculate"),
			footerPart("Esc", "Back"))
	case scene.KindDemo:
		parts = append(parts,
			footerPart("o", "Open course"),
			footerPart("Esc", "Back"),
			footerPart("q", "Quit"))
	case scene.KindSettings:
		parts = append(parts,
			footerPart("x", "Clear all"),
			footerPart("m", "Mail"),
			footerPart("Esc", "Back"),
			footerPart("q", "Quit"))
	}
	return strings.Join(parts, "  ")
}

// Helpers

func clipLines(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
