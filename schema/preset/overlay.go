package preset

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema/overlay.cue
var overlaySchema string

// Overlay is the decoded content of a preset overlay file:
//
//	presets:
//	  - key: SHIPMENT
//	    title: Shipment
//	    title_plural: Shipments
//	    smart_code: HERA.LOGISTICS.TRANSPORT.ENTITY.SHIPMENT.v1
//	    module: LOGISTICS
//	    default_fields: [carrier, tracking_number, status]
type Overlay struct {
	Presets []EntityPreset `yaml:"presets"`
}

// LoadOverlay reads and validates the overlay file at path.
func LoadOverlay(path string) (*Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: read overlay: %w", err)
	}
	ov, err := ParseOverlay(data)
	if err != nil {
		return nil, fmt.Errorf("preset: overlay %s: %w", path, err)
	}
	return ov, nil
}

// ParseOverlay validates data against the overlay schema and decodes it.
func ParseOverlay(data []byte) (*Overlay, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if raw == nil {
		return &Overlay{}, nil
	}
	if err := validateOverlay(raw); err != nil {
		return nil, err
	}
	var ov Overlay
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	for i := range ov.Presets {
		ov.Presets[i].Key = Normalize(string(ov.Presets[i].Key))
	}
	return &ov, nil
}

// Registry returns a registry of the built-in catalog plus the overlay presets.
func (o *Overlay) Registry() (*Registry, error) {
	if o == nil {
		return New()
	}
	return New(o.Presets...)
}

func validateOverlay(raw map[string]any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(overlaySchema, cue.Filename("overlay.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile overlay schema: %w", err)
	}
	v := schema.Unify(ctx.Encode(raw))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid overlay:\n%s", cueerrors.Details(err, nil))
	}
	return nil
}
