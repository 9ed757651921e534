// SPDX-License-Identifier: MIT

// Package header renders a config.Document into the device_config.h
// constant listing consumed by the runtime.
package header

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dolphin-riscv/devcfg/internal/config"
)

// GuardSymbol brackets the generated file. It is a fixed token, not derived
// from the input.
const GuardSymbol = "DOLPHIN_DEVICE_CONFIG_H"

// Diagnostic records a field that was present in the document but could not
// be converted, and was therefore skipped. Each diagnostic also appears as an
// inline comment in the rendered output.
type Diagnostic struct {
	Owner string // "memory" or the device name
	Field string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("skipped invalid %s for %s", d.Field, d.Owner)
}

var identPattern = regexp.MustCompile(`[^A-Za-z0-9]`)

// Normalize derives the identifier fragment for a device name: every
// character outside ASCII letters and digits becomes "_", then the result is
// upper-cased. Total for any input; distinct names may collide.
func Normalize(name string) string {
	return strings.ToUpper(identPattern.ReplaceAllString(name, "_"))
}

// Render maps a document to the complete header text. It is deterministic
// and never fails: fields that cannot be converted degrade into inline
// comments and a Diagnostic, and processing continues. Lines always end in
// "\n" regardless of host convention.
func Render(doc *config.Document) ([]byte, []Diagnostic) {
	var b strings.Builder
	var diags []Diagnostic

	b.WriteString("#ifndef " + GuardSymbol + "\n")
	b.WriteString("#define " + GuardSymbol + "\n\n")

	if doc.Memory != nil {
		b.WriteString("/* memory */\n")
		if doc.Memory.Base != nil {
			if v, ok := toUint(doc.Memory.Base); ok {
				fmt.Fprintf(&b, "#define MEMORY_BASE %s\n", hexUL(v))
			} else {
				b.WriteString("/* skipping invalid memory_base */\n")
				diags = append(diags, Diagnostic{Owner: "memory", Field: "memory_base"})
			}
		}
		if doc.Memory.Size != nil {
			if v, ok := toUint(doc.Memory.Size); ok {
				fmt.Fprintf(&b, "#define MEMORY_SIZE %s\n", decUL(v))
			} else {
				b.WriteString("/* skipping invalid memory_size */\n")
				diags = append(diags, Diagnostic{Owner: "memory", Field: "memory_size"})
			}
		}
		b.WriteString("\n")
	}

	for _, dev := range doc.Devices {
		name, ok := dev.Name.(string)
		if !ok || name == "" {
			continue
		}
		ident := Normalize(name)
		fmt.Fprintf(&b, "/* device: %s */\n", name)

		if dev.Base != nil {
			if v, ok := toUint(dev.Base); ok {
				fmt.Fprintf(&b, "#define DEVICE_%s_BASE %s\n", ident, hexUL(v))
			} else {
				fmt.Fprintf(&b, "/* skipping invalid base for %s */\n", name)
				diags = append(diags, Diagnostic{Owner: name, Field: "base"})
			}
		}
		if dev.Size != nil {
			// Device sizes keep the address format. Memory size above is
			// decimal; the asymmetry is fixed schema behavior.
			if v, ok := toUint(dev.Size); ok {
				fmt.Fprintf(&b, "#define DEVICE_%s_SIZE %s\n", ident, hexUL(v))
			} else {
				fmt.Fprintf(&b, "/* skipping invalid size for %s */\n", name)
				diags = append(diags, Diagnostic{Owner: name, Field: "size"})
			}
		}
		if dev.Enabled != nil {
			enabled := 0
			if truthy(dev.Enabled) {
				enabled = 1
			}
			fmt.Fprintf(&b, "#define DEVICE_%s_ENABLED %d\n", ident, enabled)
		}
		if dev.Type != nil {
			fmt.Fprintf(&b, "#define DEVICE_%s_TYPE \"%s\"\n", ident, escapeType(dev.Type))
		}
		b.WriteString("\n")
	}

	b.WriteString("#endif // " + GuardSymbol + "\n")
	return []byte(b.String()), diags
}

func hexUL(v uint64) string {
	return fmt.Sprintf("0x%XUL", v)
}

func decUL(v uint64) string {
	return fmt.Sprintf("%dUL", v)
}

// escapeType quotes a type tag for use inside a string literal: embedded
// double quotes get a backslash prefix, nothing else is touched.
func escapeType(v any) string {
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprintf("%v", v)
	}
	return strings.ReplaceAll(s, `"`, `\"`)
}
