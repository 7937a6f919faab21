package gate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/syssam/heragen/schema/smartcode"
)

// Built-in gate names.
const (
	NameSmartCodeFormat   = "smart-code-format"
	NameEntityTypeExists  = "entity-type-exists"
	NameFieldNameConflict = "field-name-conflict"
	NameGeneratedContent  = "generated-content"
	NameDependencyExists  = "dependency-exists"
	NameTypeScript        = "typescript-compile"
)

// PageMarkers are the strings every generated page must contain.
var PageMarkers = []string{"'use client'", "useUniversalEntity", "MobilePageLayout"}

var (
	// SmartCodeFormat validates the preset smart code.
	SmartCodeFormat = Gate{
		Name:        NameSmartCodeFormat,
		Phase:       Pre,
		Mandatory:   true,
		Default:     true,
		Description: "Smart code matches " + smartcode.Pattern,
		check: func(_ context.Context, in *Input) error {
			if err := smartcode.Validate(in.Preset.SmartCode); err != nil {
				return Fail(err.Error())
			}
			return nil
		},
	}

	// EntityTypeExists verifies the key resolves in the registry.
	EntityTypeExists = Gate{
		Name:        NameEntityTypeExists,
		Phase:       Pre,
		Mandatory:   true,
		Default:     true,
		Description: "Entity type is registered",
		check: func(_ context.Context, in *Input) error {
			if in.Registry == nil {
				return Failf("no registry to resolve %q against", in.Key)
			}
			if !in.Registry.Has(in.Key) {
				return Failf("entity type %q is not registered", in.Key)
			}
			return nil
		},
	}

	// FieldNameConflict rejects default fields owned by the entity tables.
	FieldNameConflict = Gate{
		Name:        NameFieldNameConflict,
		Phase:       Pre,
		Mandatory:   true,
		Default:     true,
		Description: "No default field uses a reserved column name",
		check: func(_ context.Context, in *Input) error {
			if conflicts := in.Preset.ReservedConflicts(); len(conflicts) > 0 {
				return Failf("reserved field names %s", strings.Join(conflicts, ", "))
			}
			return nil
		},
	}

	// GeneratedContent checks the structural markers of the page.
	GeneratedContent = Gate{
		Name:        NameGeneratedContent,
		Phase:       Post,
		Default:     true,
		Description: "Generated page carries its structural markers",
		check:       checkGeneratedContent,
	}

	// DependencyExists checks that every imported component exists.
	DependencyExists = Gate{
		Name:        NameDependencyExists,
		Phase:       Post,
		Default:     true,
		Description: "Every imported @/components module exists",
		check:       checkDependencies,
	}

	// TypeScript type-checks the project with `npx tsc --noEmit`.
	TypeScript = TypeScriptGate("npx", "tsc", "--noEmit")
)

// Defaults returns the built-in gates in evaluation order.
func Defaults() []Gate {
	return []Gate{
		SmartCodeFormat,
		EntityTypeExists,
		FieldNameConflict,
		GeneratedContent,
		DependencyExists,
		TypeScript,
	}
}

// TypeScriptGate returns a post gate running the given command in the
// project root. The gate fails with the tail of the output when the
// command exits non-zero. It is disabled by default.
func TypeScriptGate(name string, args ...string) Gate {
	return Gate{
		Name:        NameTypeScript,
		Phase:       Post,
		Description: "Project type-checks with " + strings.Join(append([]string{name}, args...), " "),
		check: func(ctx context.Context, in *Input) error {
			cmd := exec.CommandContext(ctx, name, args...)
			cmd.Dir = in.Root
			out, err := cmd.CombinedOutput()
			if err == nil {
				return nil
			}
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				return &Error{Cause: fmt.Errorf("run %s: %w", name, err)}
			}
			return Fail(tail(string(out), 20)...)
		},
	}
}

func checkGeneratedContent(_ context.Context, in *Input) error {
	src, ok := in.Files[in.Page]
	if !ok || in.Page == "" {
		return Skipf("page %s not generated", in.Page)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return &Error{Cause: fmt.Errorf("read %s: %w", in.Page, err)}
	}
	var missing []string
	for _, m := range PageMarkers {
		if !bytes.Contains(data, []byte(m)) {
			missing = append(missing, fmt.Sprintf("%s: missing %s", in.Page, m))
		}
	}
	if len(missing) > 0 {
		return Fail(missing...)
	}
	return nil
}

// componentImport matches module specifiers of @/components imports.
var componentImport = regexp.MustCompile(`(?m)^\s*import\s[^'"]*['"]@/components/([^'"]+)['"]`)

// ComponentImports returns the @/components module paths imported by src,
// without the alias prefix.
func ComponentImports(src []byte) []string {
	var paths []string
	for _, m := range componentImport.FindAllSubmatch(src, -1) {
		paths = append(paths, string(m[1]))
	}
	return paths
}

// ResolveComponent returns the candidate files of an @/components module
// relative to the project root.
func ResolveComponent(module string) []string {
	base := filepath.Join("src", "components", filepath.FromSlash(module))
	return []string{base + ".tsx", base + ".ts", filepath.Join(base, "index.tsx")}
}

func checkDependencies(_ context.Context, in *Input) error {
	paths := make([]string, 0, len(in.Files))
	for p := range in.Files {
		if ext := filepath.Ext(p); ext == ".tsx" || ext == ".ts" {
			paths = append(paths, p)
		}
	}
	slices.Sort(paths)
	var missing []string
	for _, p := range paths {
		data, err := os.ReadFile(in.Files[p])
		if err != nil {
			return &Error{Cause: fmt.Errorf("read %s: %w", p, err)}
		}
		for _, module := range ComponentImports(data) {
			if !componentExists(in.Root, module) {
				missing = append(missing, fmt.Sprintf("%s: @/components/%s not found", p, module))
			}
		}
	}
	if len(missing) > 0 {
		return Fail(slices.Compact(missing)...)
	}
	return nil
}

func componentExists(root, module string) bool {
	for _, c := range ResolveComponent(module) {
		if fi, err := os.Stat(filepath.Join(root, c)); err == nil && !fi.IsDir() {
			return true
		}
	}
	return false
}

func tail(s string, n int) []string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return []string{"type check failed"}
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
