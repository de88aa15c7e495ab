package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blueprint-mson/mson-go/internal/mdblock"
	"github.com/blueprint-mson/mson-go/internal/mlint"
	"github.com/blueprint-mson/mson-go/internal/mson"
)

// NewLintCmd creates the lint subcommand: it parses a document the same way
// parse does, then re-walks the resulting tree for structural smells the
// core itself never flags (internal/mlint) — a second, read-only look at an
// already-built tree, grounded on the teacher's doctor pass.
func NewLintCmd(reader SourceReader) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:          "lint <path>",
		Short:        "Audit an MSON document's parsed tree for structural smells",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := reader.ReadSource(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("reading source: %w", err)
			}
			nodes := mdblock.Build(string(raw))

			findings, err := lintFindings(kind, nodes)
			if err != nil {
				return err
			}

			mlint.Sort(findings)
			for _, f := range findings {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s: %s (%s)\n", f.Severity, f.Path, f.Message, f.Code)
			}

			for _, f := range findings {
				if f.Severity == mlint.SeverityError {
					return fmt.Errorf("lint found structural errors")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "elements", "Root shape to parse: element, property, elements or properties")
	return cmd
}

func lintFindings(kind string, nodes []*mson.Node) ([]mlint.Finding, error) {
	switch kind {
	case "element":
		if len(nodes) == 0 {
			return nil, fmt.Errorf("document has no top-level node to parse as an element")
		}
		e, _ := mson.ParseElement(nodes[0])
		return mlint.AuditElement("", e), nil

	case "property":
		if len(nodes) == 0 {
			return nil, fmt.Errorf("document has no top-level node to parse as a property")
		}
		p, _ := mson.ParseProperty(nodes[0])
		return mlint.AuditProperty("", p), nil

	case "properties":
		properties, _ := mson.ParseProperties(&mson.Node{Children: nodes})
		var findings []mlint.Finding
		for _, p := range properties {
			findings = append(findings, mlint.AuditProperty(p.Name, p)...)
		}
		return findings, nil

	case "elements", "":
		elements, _ := mson.ParseElements(&mson.Node{Children: nodes})
		var findings []mlint.Finding
		for i, e := range elements {
			findings = append(findings, mlint.AuditElement(fmt.Sprintf("[%d]", i), e)...)
		}
		return findings, nil

	default:
		return nil, fmt.Errorf("unknown --kind %q, expected element, property, elements or properties", kind)
	}
}
