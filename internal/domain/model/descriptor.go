package model

import (
	"bytes"
	"encoding/json"
)

const (
	// DescriptorFileName is the manifest file at the root of every bundle.
	DescriptorFileName = "entando.json"

	BundleTypeBundle            = "bundle"
	BundleTypeSystemLevelBundle = "system-level-bundle"
)

// BundleDescriptor is the manifest of a bundle. It owns every microservice and
// micro frontend record.
type BundleDescriptor struct {
	Name           string          `json:"name"`
	Version        string          `json:"version"`
	Type           string          `json:"type"`
	Description    string          `json:"description,omitempty"`
	Microservices  []Microservice  `json:"microservices"`
	MicroFrontends []MicroFrontend `json:"microfrontends"`
	// Svc lists the auxiliary services enabled for local development.
	Svc    []string      `json:"svc,omitempty"`
	Global *GlobalConfig `json:"global,omitempty"`
	Extra  Extra         `json:"-"`
}

// GlobalConfig holds bundle-wide settings.
type GlobalConfig struct {
	Nav []Nav `json:"nav,omitempty"`
}

// Nav is a navigation entry contributed by a micro frontend or the bundle.
type Nav struct {
	Label  map[string]string `json:"label"`
	Target string            `json:"target"`
	URL    string            `json:"url"`
}

// MarshalJSON always emits the component lists, even when empty.
func (d BundleDescriptor) MarshalJSON() ([]byte, error) {
	type descriptor BundleDescriptor
	out := descriptor(d)
	if out.Microservices == nil {
		out.Microservices = []Microservice{}
	}
	if out.MicroFrontends == nil {
		out.MicroFrontends = []MicroFrontend{}
	}
	data, err := marshalJSON(out)
	if err != nil {
		return nil, err
	}
	return withExtra(data, d.Extra)
}

func (d *BundleDescriptor) UnmarshalJSON(data []byte) error {
	type descriptor BundleDescriptor
	var in descriptor
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	extra, err := splitExtra(data, in)
	if err != nil {
		return err
	}
	*d = BundleDescriptor(in)
	d.Extra = extra
	return nil
}

// marshalJSON is json.Marshal without HTML escaping, so that text such as
// descriptions survives a rewrite of the manifest unchanged.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ComponentNames returns micro frontend names followed by microservice names.
func (d *BundleDescriptor) ComponentNames() []string {
	names := make([]string, 0, len(d.MicroFrontends)+len(d.Microservices))
	for _, mfe := range d.MicroFrontends {
		names = append(names, mfe.Name)
	}
	for _, ms := range d.Microservices {
		names = append(names, ms.Name)
	}
	return names
}

// DuplicateComponentNames returns each component name that occurs more than
// once, in order of its second occurrence.
func (d *BundleDescriptor) DuplicateComponentNames() []string {
	seen := make(map[string]int)
	var duplicates []string
	for _, name := range d.ComponentNames() {
		seen[name]++
		if seen[name] == 2 {
			duplicates = append(duplicates, name)
		}
	}
	return duplicates
}

// MicroserviceIndex returns the position of the named microservice or -1.
func (d *BundleDescriptor) MicroserviceIndex(name string) int {
	for i := range d.Microservices {
		if d.Microservices[i].Name == name {
			return i
		}
	}
	return -1
}

// MicroFrontendIndex returns the position of the named micro frontend or -1.
func (d *BundleDescriptor) MicroFrontendIndex(name string) int {
	for i := range d.MicroFrontends {
		if d.MicroFrontends[i].Name == name {
			return i
		}
	}
	return -1
}

// ServiceIndex returns the position of the named auxiliary service or -1.
func (d *BundleDescriptor) ServiceIndex(name string) int {
	for i, svc := range d.Svc {
		if svc == name {
			return i
		}
	}
	return -1
}

// InternalClaimsOn returns "<mfe>/<claim>" for every internal API claim that
// targets the named microservice.
func (d *BundleDescriptor) InternalClaimsOn(serviceName string) []string {
	var refs []string
	for _, mfe := range d.MicroFrontends {
		for _, claim := range mfe.ApiClaims {
			if claim.Type == ApiClaimInternal && claim.ServiceName == serviceName {
				refs = append(refs, mfe.Name+"/"+claim.Name)
			}
		}
	}
	return refs
}
