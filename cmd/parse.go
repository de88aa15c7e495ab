package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/blueprint-mson/mson-go/internal/diag"
	"github.com/blueprint-mson/mson-go/internal/mdblock"
	"github.com/blueprint-mson/mson-go/internal/mson"
	"github.com/blueprint-mson/mson-go/internal/rangeconv"
)

// diagnosticOut is the CLI-facing rendering of a diag.Warning: its message,
// kind, and source range translated from bytes to characters via
// rangeconv.BytesRangeSetToCharactersRangeSet — the one point a caller
// actually needs a displayable range, per spec.md §6.
type diagnosticOut struct {
	Message string                     `json:"message" yaml:"message"`
	Kind    string                     `json:"kind" yaml:"kind"`
	Ranges  []rangeconv.CharacterRange `json:"ranges,omitempty" yaml:"ranges,omitempty"`
}

// parseOutput is the top-level JSON/YAML schema for the parse command.
// Exactly one of Elements or Properties is populated, depending on --kind.
type parseOutput struct {
	Version     string          `json:"version" yaml:"version"`
	TraceID     string          `json:"trace_id" yaml:"trace_id"`
	Elements    []mson.Element  `json:"elements,omitempty" yaml:"elements,omitempty"`
	Properties  []mson.Property `json:"properties,omitempty" yaml:"properties,omitempty"`
	Diagnostics []diagnosticOut `json:"diagnostics" yaml:"diagnostics"`
}

func renderDiagnostics(source string, warnings []diag.Warning) []diagnosticOut {
	out := make([]diagnosticOut, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, diagnosticOut{
			Message: w.Message,
			Kind:    w.Kind.String(),
			Ranges:  rangeconv.BytesRangeSetToCharactersRangeSet(w.Ranges, source),
		})
	}
	return out
}

// NewParseCmd creates the parse subcommand: it reads a Markdown file, feeds
// it through internal/mdblock and internal/mson, and prints the resulting
// Element/Property tree plus diagnostics (spec.md §6's ParseElement /
// ParseProperty / ParseElements / ParseProperties, driven from files).
func NewParseCmd(reader SourceReader) *cobra.Command {
	var format string
	var kind string

	cmd := &cobra.Command{
		Use:          "parse <path>",
		Short:        "Parse an MSON document and print its element/property tree",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := reader.ReadSource(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("reading source: %w", err)
			}
			source := string(raw)
			nodes := mdblock.Build(source)

			out := parseOutput{Version: "1", TraceID: uuid.NewString()}

			switch kind {
			case "element":
				if len(nodes) == 0 {
					return fmt.Errorf("document has no top-level node to parse as an element")
				}
				e, report := mson.ParseElement(nodes[0])
				out.Elements = []mson.Element{e}
				out.Diagnostics = renderDiagnostics(source, report.Warnings)

			case "property":
				if len(nodes) == 0 {
					return fmt.Errorf("document has no top-level node to parse as a property")
				}
				p, report := mson.ParseProperty(nodes[0])
				out.Properties = []mson.Property{p}
				out.Diagnostics = renderDiagnostics(source, report.Warnings)

			case "properties":
				properties, report := mson.ParseProperties(&mson.Node{Children: nodes})
				out.Properties = properties
				out.Diagnostics = renderDiagnostics(source, report.Warnings)

			case "elements", "":
				elements, report := mson.ParseElements(&mson.Node{Children: nodes})
				out.Elements = elements
				out.Diagnostics = renderDiagnostics(source, report.Warnings)

			default:
				return fmt.Errorf("unknown --kind %q, expected element, property, elements or properties", kind)
			}

			return encodeOutput(cmd, format, out)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	cmd.Flags().StringVar(&kind, "kind", "elements", "Root shape to parse: element, property, elements or properties")
	return cmd
}

// encodeOutput writes v to cmd's stdout in the requested format.
func encodeOutput(cmd *cobra.Command, format string, v interface{}) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		if err := enc.Encode(v); err != nil {
			enc.Close()
			return fmt.Errorf("encoding output: %w", err)
		}
		return enc.Close()

	case "json", "":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown --format %q, expected json or yaml", format)
	}
}
