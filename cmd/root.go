// Package cmd implements the msonctl CLI commands.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// SourceReader reads the raw Markdown bytes the parse and lint commands
// operate on. It is the concrete realization of spec.md §6's "surrounding
// API Blueprint parser" collaborator, narrowed down to file I/O — the same
// role the teacher's ParseReader plays for _binder.md files.
type SourceReader interface {
	ReadSource(ctx context.Context, path string) ([]byte, error)
}

// fileSourceReader implements SourceReader using OS file I/O.
type fileSourceReader struct{}

func newDefaultSourceReader() *fileSourceReader {
	return &fileSourceReader{}
}

func (r *fileSourceReader) ReadSource(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

// NewRootCmd creates the root msonctl command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "msonctl",
		Short:         "msonctl - command-line driver for the MSON parser core",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          rootRunE,
	}
	root.AddCommand(NewParseCmd(newDefaultSourceReader()))
	root.AddCommand(NewLintCmd(newDefaultSourceReader()))
	return root
}

func rootRunE(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
