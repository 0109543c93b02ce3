package metadata

import (
	"time"

	"golang.org/x/text/language"
)

// Built-in attribute kinds.
const (
	KindCulture      = "culture"
	KindFormat       = "format"
	KindWaitSettings = "wait-settings"
	KindSettings     = "settings"
)

// CultureAttribute sets the culture used for value parsing and
// formatting.
type CultureAttribute struct {
	Targeting

	Tag language.Tag
}

// Kind implements the Attribute interface.
func (CultureAttribute) Kind() string { return KindCulture }

// FormatAttribute sets the format string used when converting the
// component's content to and from typed values.
type FormatAttribute struct {
	Targeting

	Value string
}

// Kind implements the Attribute interface.
func (FormatAttribute) Kind() string { return KindFormat }

// WaitSettingsAttribute overrides wait defaults for the components it
// targets. Zero fields leave the engine default in place.
type WaitSettingsAttribute struct {
	Targeting

	Timeout  time.Duration
	Interval time.Duration
}

// Kind implements the Attribute interface.
func (WaitSettingsAttribute) Kind() string { return KindWaitSettings }

// SettingsAttribute configures other attributes rather than the
// component itself. AppliesTo names the attribute kinds it configures;
// empty applies to all kinds. Queries supply the kind being configured
// through Filter.ForAttribute.
type SettingsAttribute struct {
	Targeting

	AppliesTo []string
	Values    map[string]any
}

// Kind implements the Attribute interface.
func (SettingsAttribute) Kind() string { return KindSettings }

// TargetAttributes implements the AttributeTargeted interface.
func (s SettingsAttribute) TargetAttributes() []string { return s.AppliesTo }

var (
	_ Targeted          = CultureAttribute{}
	_ Targeted          = FormatAttribute{}
	_ Targeted          = WaitSettingsAttribute{}
	_ AttributeTargeted = SettingsAttribute{}
)
