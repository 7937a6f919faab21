// Package gen renders entity presets into source files of the ERP web
// application.
//
// # Pipeline
//
// A run for one entity type follows this flow:
//
//	Registry lookup (schema/preset)
//	        ↓
//	Pre gates (compiler/gate): smart code, registration, reserved fields
//	        ↓
//	Renderer: typed PageModel + embedded templates, no I/O
//	        ↓
//	StagedWriter: temporary files next to the final paths
//	        ↓
//	Post gates: page markers, component imports, optional tsc
//	        ↓
//	Commit (rename) or Discard, then Recorder
//
// # Artifacts
//
// The page is always rendered. The API route, README and entity config are
// features that can be turned off:
//
//	cfg, err := gen.NewConfig(
//	    gen.WithRoot("../web"),
//	    gen.WithFeatures("api"),
//	)
//	g, err := gen.New(cfg)
//	res, err := g.Generate(ctx, "CONTACT")
//
// Output paths come from the preset module and plural title:
//
//	CONTACT (CRM, "Contacts") → src/app/crm/contacts/page.tsx
//
// # Error Handling
//
// The package uses structured error types:
//
//   - ConfigError: invalid options
//   - GenerationError: rendering and file system failures
//   - InvariantError: output the renderer must never produce
//
// Gate failures are *gate.Error values and unknown entity types are
// *heragen.EntityTypeNotFoundError values; both pass through unchanged.
package gen
