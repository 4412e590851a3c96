// Package i18n holds the user-facing strings of webTools for each supported
// locale and formats them through golang.org/x/text/message.
package i18n

import (
	"fmt"
	"sort"
	"strings"

	"github.com/enziog/webTools/internal/probe"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// BaseLocale is the locale the strings were first written in.
const BaseLocale = "zh-CN"

// Message keys.
const (
	KeyZeroWarning       = "probe.zero_warning"
	KeyRangeWarning      = "probe.range_warning"
	KeyProbeSummary      = "probe.summary"
	KeyRefractionSummary = "refraction.summary"
	KeyClearConfirm      = "settings.clear_confirm"

	KeyTitleList       = "title.list"
	KeyTitleProbe      = "title.probe"
	KeyTitleRefraction = "title.refraction"
	KeyTitleDemo       = "title.demo"
	KeyTitleSettings   = "title.settings"

	KeyFieldDescription       = "field.description"
	KeyFieldFrequency         = "field.frequency"
	KeyFieldVelocity          = "field.velocity"
	KeyFieldIncidenceMin      = "field.incidence_min"
	KeyFieldIncidenceMax      = "field.incidence_max"
	KeyFieldVelocityIncidence = "field.velocity_incidence"
	KeyFieldVelocityMedium    = "field.velocity_medium"
	KeyFieldVelocitySteel     = "field.velocity_steel"
	KeyFieldResult            = "field.result"

	KeyListEmpty     = "list.empty"
	KeyClearAll      = "settings.clear_all"
	KeySupport       = "settings.support"
	KeyDemoCourse    = "demo.course"
	KeyDemoFMC       = "demo.fmc"
	KeyDemoPWI       = "demo.pwi"
	KeyDemoECT       = "demo.ect"
	KeyStatusSaved   = "status.saved"
	KeyStatusCleared = "status.cleared"
)

var locales = map[string]map[string]string{
	"zh-CN": {
		KeyZeroWarning:       "频率/声速中有0值，请检查",
		KeyRangeWarning:      "频率/声速超出可计算范围，请检查",
		KeyProbeSummary:      "波长为%smm\npitch最小值为%smm",
		KeyRefractionSummary: "折射角范围为%s度～%s度\n按入射声速%sm/s折射声速%sm/s计算",
		KeyClearConfirm:      "确实要清除数据吗?",

		KeyTitleList:       "记录",
		KeyTitleProbe:      "波长&Pitch",
		KeyTitleRefraction: "PA探头折射角",
		KeyTitleDemo:       "TFM PWI演示",
		KeyTitleSettings:   "设置",

		KeyFieldDescription:       "结果",
		KeyFieldFrequency:         "频率",
		KeyFieldVelocity:          "声速",
		KeyFieldIncidenceMin:      "入射角（小）",
		KeyFieldIncidenceMax:      "入射角（大）",
		KeyFieldVelocityIncidence: "介质声速（入射角）",
		KeyFieldVelocityMedium:    "介质声速（折射角）",
		KeyFieldVelocitySteel:     "钢中声速",
		KeyFieldResult:            "结果",

		KeyListEmpty:     "暂无记录",
		KeyClearAll:      "清除所有数据",
		KeySupport:       "技术支持（邮箱）",
		KeyDemoCourse:    "TFM线上学习课程",
		KeyDemoFMC:       "FMC-TFM演示",
		KeyDemoPWI:       "PWI-TFM演示",
		KeyDemoECT:       "涡流检测视频",
		KeyStatusSaved:   "已保存",
		KeyStatusCleared: "数据已清除",
	},
	"en-US": {
		KeyZeroWarning:       "frequency/velocity contains a zero value, please check",
		KeyRangeWarning:      "frequency/velocity is out of the computable range, please check",
		KeyProbeSummary:      "wavelength is %smm\nminimum pitch is %smm",
		KeyRefractionSummary: "refraction angle range is %s° to %s°\ncalculated with incident velocity %sm/s and refracted velocity %sm/s",
		KeyClearConfirm:      "Really clear all data?",

		KeyTitleList:       "Records",
		KeyTitleProbe:      "Wavelength & Pitch",
		KeyTitleRefraction: "PA probe refraction angle",
		KeyTitleDemo:       "TFM PWI demo",
		KeyTitleSettings:   "Settings",

		KeyFieldDescription:       "Result",
		KeyFieldFrequency:         "Frequency (MHz)",
		KeyFieldVelocity:          "Velocity (m/s)",
		KeyFieldIncidenceMin:      "Incidence angle (min)",
		KeyFieldIncidenceMax:      "Incidence angle (max)",
		KeyFieldVelocityIncidence: "Velocity in wedge (m/s)",
		KeyFieldVelocityMedium:    "Velocity in part (m/s)",
		KeyFieldVelocitySteel:     "Velocity in steel (m/s)",
		KeyFieldResult:            "Result",

		KeyListEmpty:     "No records yet",
		KeyClearAll:      "Clear all data",
		KeySupport:       "Technical support (mail)",
		KeyDemoCourse:    "TFM online course",
		KeyDemoFMC:       "FMC-TFM demo",
		KeyDemoPWI:       "PWI-TFM demo",
		KeyDemoECT:       "Eddy current inspection video",
		KeyStatusSaved:   "Saved",
		KeyStatusCleared: "All data cleared",
	},
}

var (
	builder   = newBuilder()
	supported = supportedTags()
	matcher   = language.NewMatcher(supported)
)

func newBuilder() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale)))
	for locale, msgs := range locales {
		tag := language.MustParse(locale)
		for key, value := range msgs {
			if err := b.SetString(tag, key, value); err != nil {
				panic(fmt.Sprintf("i18n: register %s %s: %v", locale, key, err))
			}
		}
	}
	return b
}

func supportedTags() []language.Tag {
	names := Locales()
	// BaseLocale first so the matcher falls back to it.
	tags := []language.Tag{language.MustParse(BaseLocale)}
	for _, name := range names {
		if name != BaseLocale {
			tags = append(tags, language.MustParse(name))
		}
	}
	return tags
}

// Locales returns the supported locale identifiers, sorted.
func Locales() []string {
	out := make([]string, 0, len(locales))
	for locale := range locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Messages formats strings for one locale.
type Messages struct {
	locale  string
	printer *message.Printer
}

// New returns the Messages closest to locale. An empty locale selects
// BaseLocale; a malformed one is an error.
func New(locale string) (*Messages, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = BaseLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	_, idx, _ := matcher.Match(tag)
	chosen := supported[idx]
	return &Messages{
		locale:  chosen.String(),
		printer: message.NewPrinter(chosen, message.Catalog(builder)),
	}, nil
}

// Default returns the BaseLocale messages.
func Default() *Messages {
	m, err := New(BaseLocale)
	if err != nil {
		panic(err)
	}
	return m
}

// Locale reports the locale that was selected.
func (m *Messages) Locale() string { return m.locale }

// Text returns the plain string stored under key.
func (m *Messages) Text(key string) string {
	return m.printer.Sprintf(key)
}

// ZeroWarning is shown instead of results when an input is zero.
func (m *Messages) ZeroWarning() string {
	return m.Text(KeyZeroWarning)
}

// RangeWarning is shown instead of results when the wavelength overflows.
func (m *Messages) RangeWarning() string {
	return m.Text(KeyRangeWarning)
}

// ProbeSummary describes a wavelength/pitch result.
func (m *Messages) ProbeSummary(lambda, pitch float64) string {
	return m.printer.Sprintf(KeyProbeSummary, probe.FormatNumber(lambda), probe.FormatNumber(pitch))
}

// RefractionSummary describes a refraction range and the velocities used.
func (m *Messages) RefractionSummary(b probe.BeamAngle) string {
	return m.printer.Sprintf(KeyRefractionSummary,
		probe.FormatNumber(b.RefractionMin), probe.FormatNumber(b.RefractionMax),
		probe.FormatNumber(b.VelocityIncidence), probe.FormatNumber(b.VelocityMedium))
}

// ClearConfirm is the prompt shown before all records are deleted.
func (m *Messages) ClearConfirm() string {
	return m.Text(KeyClearConfirm)
}
