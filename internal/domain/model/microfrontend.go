package model

import (
	"encoding/json"
	"fmt"
)

// MicroFrontendType is the discriminator of the MicroFrontend variants.
type MicroFrontendType string

const (
	MicroFrontendTypeWidget       MicroFrontendType = "widget"
	MicroFrontendTypeWidgetConfig MicroFrontendType = "widget-config"
	MicroFrontendTypeAppBuilder   MicroFrontendType = "app-builder"
)

// MicroFrontendStack is the technology a micro frontend is built with.
type MicroFrontendStack string

const (
	MicroFrontendStackReact   MicroFrontendStack = "react"
	MicroFrontendStackAngular MicroFrontendStack = "angular"
	MicroFrontendStackCustom  MicroFrontendStack = "custom"
)

// AppBuilderSlot is the App Builder area an app-builder micro frontend renders in.
type AppBuilderSlot string

const (
	AppBuilderSlotPrimaryHeader AppBuilderSlot = "primary-header"
	AppBuilderSlotPrimaryMenu   AppBuilderSlot = "primary-menu"
	AppBuilderSlotContent       AppBuilderSlot = "content"
)

const (
	DefaultMicroFrontendGroup = "free"
	DefaultPublicFolder       = "public"
	DefaultBuildFolder        = "build"
)

var (
	MicroFrontendTypes  = []string{string(MicroFrontendTypeWidget), string(MicroFrontendTypeWidgetConfig), string(MicroFrontendTypeAppBuilder)}
	MicroFrontendStacks = []string{string(MicroFrontendStackReact), string(MicroFrontendStackAngular), string(MicroFrontendStackCustom)}
	AppBuilderSlots     = []string{string(AppBuilderSlotPrimaryHeader), string(AppBuilderSlotPrimaryMenu), string(AppBuilderSlotContent)}
	// DefaultTitleLanguages get a title when a widget is added without one.
	DefaultTitleLanguages = []string{"en", "it"}
)

// MicroFrontendVariant is implemented by Widget, WidgetConfig and AppBuilder.
type MicroFrontendVariant interface {
	Type() MicroFrontendType
	isMicroFrontendVariant()
}

// Widget is a micro frontend placed on portal pages.
type Widget struct {
	Titles        map[string]string
	ContextParams []string
}

// WidgetConfig is the configuration form of another widget.
type WidgetConfig struct{}

// AppBuilder extends the App Builder UI in one of its slots. Paths is only
// meaningful for the content slot, where it is required.
type AppBuilder struct {
	Slot  AppBuilderSlot
	Paths []string
}

func (Widget) Type() MicroFrontendType       { return MicroFrontendTypeWidget }
func (WidgetConfig) Type() MicroFrontendType { return MicroFrontendTypeWidgetConfig }
func (AppBuilder) Type() MicroFrontendType   { return MicroFrontendTypeAppBuilder }

func (Widget) isMicroFrontendVariant()       {}
func (WidgetConfig) isMicroFrontendVariant() {}
func (AppBuilder) isMicroFrontendVariant()   {}

// MicroFrontend is a frontend component of the bundle.
type MicroFrontend struct {
	Name         string
	Stack        MicroFrontendStack
	Group        string
	PublicFolder string
	BuildFolder  string
	ApiClaims    []ApiClaim
	Nav          []Nav
	Commands     *Commands
	Variant      MicroFrontendVariant
	Extra        Extra
}

// microFrontendJSON is the flat wire form of MicroFrontend.
type microFrontendJSON struct {
	Name          string             `json:"name"`
	Stack         MicroFrontendStack `json:"stack"`
	Type          MicroFrontendType  `json:"type"`
	Group         string             `json:"group,omitempty"`
	PublicFolder  string             `json:"publicFolder,omitempty"`
	BuildFolder   string             `json:"buildFolder,omitempty"`
	Titles        map[string]string  `json:"titles,omitempty"`
	ContextParams []string           `json:"contextParams,omitempty"`
	Slot          AppBuilderSlot     `json:"slot,omitempty"`
	Paths         []string           `json:"paths,omitempty"`
	ApiClaims     []ApiClaim         `json:"apiClaims"`
	Nav           []Nav              `json:"nav,omitempty"`
	Commands      *Commands          `json:"commands,omitempty"`
}

func (m MicroFrontend) MarshalJSON() ([]byte, error) {
	out := microFrontendJSON{
		Name:         m.Name,
		Stack:        m.Stack,
		Group:        m.Group,
		PublicFolder: m.PublicFolder,
		BuildFolder:  m.BuildFolder,
		ApiClaims:    m.ApiClaims,
		Nav:          m.Nav,
		Commands:     m.Commands,
	}
	if out.ApiClaims == nil {
		out.ApiClaims = []ApiClaim{}
	}

	switch v := m.Variant.(type) {
	case Widget:
		out.Type = MicroFrontendTypeWidget
		out.Titles = v.Titles
		out.ContextParams = v.ContextParams
	case WidgetConfig:
		out.Type = MicroFrontendTypeWidgetConfig
	case AppBuilder:
		out.Type = MicroFrontendTypeAppBuilder
		out.Slot = v.Slot
		out.Paths = v.Paths
	default:
		return nil, fmt.Errorf("micro frontend %s has no known type", m.Name)
	}

	data, err := marshalJSON(out)
	if err != nil {
		return nil, err
	}
	return withExtra(data, m.Extra)
}

func (m *MicroFrontend) UnmarshalJSON(data []byte) error {
	var in microFrontendJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	extra, err := splitExtra(data, in)
	if err != nil {
		return err
	}

	*m = MicroFrontend{
		Name:         in.Name,
		Stack:        in.Stack,
		Group:        in.Group,
		PublicFolder: in.PublicFolder,
		BuildFolder:  in.BuildFolder,
		ApiClaims:    in.ApiClaims,
		Nav:          in.Nav,
		Commands:     in.Commands,
		Extra:        extra,
	}

	switch in.Type {
	case MicroFrontendTypeWidget:
		m.Variant = Widget{Titles: in.Titles, ContextParams: in.ContextParams}
	case MicroFrontendTypeWidgetConfig:
		m.Variant = WidgetConfig{}
	case MicroFrontendTypeAppBuilder:
		m.Variant = AppBuilder{Slot: in.Slot, Paths: in.Paths}
	default:
		return fmt.Errorf("micro frontend %s has unknown type %q", in.Name, in.Type)
	}
	return nil
}

// Type returns the discriminator of the variant, or "" when unset.
func (m *MicroFrontend) Type() MicroFrontendType {
	if m.Variant == nil {
		return ""
	}
	return m.Variant.Type()
}

// ClaimIndex returns the position of the named API claim or -1.
func (m *MicroFrontend) ClaimIndex(name string) int {
	for i := range m.ApiClaims {
		if m.ApiClaims[i].Name == name {
			return i
		}
	}
	return -1
}

// ApplyDefaults fills the optional fields a new micro frontend starts with.
func (m *MicroFrontend) ApplyDefaults() {
	if m.Group == "" {
		m.Group = DefaultMicroFrontendGroup
	}
	if m.PublicFolder == "" {
		m.PublicFolder = DefaultPublicFolder
	}
	if m.BuildFolder == "" {
		m.BuildFolder = DefaultBuildFolder
	}
	if m.Variant == nil {
		m.Variant = Widget{}
	}
	if w, ok := m.Variant.(Widget); ok && len(w.Titles) == 0 {
		w.Titles = make(map[string]string, len(DefaultTitleLanguages))
		for _, lang := range DefaultTitleLanguages {
			w.Titles[lang] = m.Name
		}
		m.Variant = w
	}
}

// Validate checks the fields of a new micro frontend.
func (m *MicroFrontend) Validate() error {
	if err := ValidateIdentifier("micro frontend", m.Name); err != nil {
		return err
	}
	if !oneOf(string(m.Stack), MicroFrontendStacks) {
		return NewValidationError("invalid stack %q for micro frontend %s", m.Stack, m.Name)
	}
	if err := ValidateFolder("public folder", m.PublicFolder); err != nil {
		return err
	}
	if err := ValidateFolder("build folder", m.BuildFolder); err != nil {
		return err
	}

	switch v := m.Variant.(type) {
	case Widget, WidgetConfig:
	case AppBuilder:
		if !oneOf(string(v.Slot), AppBuilderSlots) {
			return NewValidationError("invalid slot %q for micro frontend %s", v.Slot, m.Name)
		}
		if v.Slot == AppBuilderSlotContent && len(v.Paths) == 0 {
			return NewValidationError("micro frontend %s in the %s slot requires at least one path", m.Name, v.Slot)
		}
	default:
		return NewValidationError("micro frontend %s has no type", m.Name)
	}
	return nil
}
