package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-utils/dot"
	"github.com/hasbyte1/go-utils/internal/logging"
)

func (a *app) newFlattenCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "flatten [file]",
		Short:   MsgFlattenShort,
		Long:    MsgFlattenLong,
		Example: "  dotx flatten config.yaml\n  echo '{\"a\":{\"b\":1}}' | dotx flatten --format list",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.readDocument(cmd, args)
			if err != nil {
				return err
			}
			done := logging.LogOperationStart(a.log, "flatten")
			flat, err := a.dot.Flatten(m)
			done()
			if err != nil {
				return err
			}
			return a.writeFlat(cmd, flat)
		},
	}
}

func (a *app) newUnflattenCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unflatten [file]",
		Aliases: []string{"expand"},
		Short:   MsgUnflattenShort,
		Long:    MsgUnflattenLong,
		Example: "  dotx unflatten --to yaml flat.json",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flat, err := a.readDocument(cmd, args)
			if err != nil {
				return err
			}
			done := logging.LogOperationStart(a.log, "unflatten")
			tree, err := a.dot.Unflatten(flat)
			done()
			if err != nil {
				return err
			}
			return a.writeTree(cmd, tree)
		},
	}
}

func (a *app) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <path> [file]",
		Short:   MsgGetShort,
		Long:    MsgGetLong,
		Example: "  dotx get server.port config.toml",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.readDocument(cmd, args[1:])
			if err != nil {
				return err
			}
			v, ok := a.dot.Lookup(m, args[0])
			if !ok {
				return fmt.Errorf("%w: %q", ErrNotFound, args[0])
			}
			if sub, isMap := v.(*dot.Map); isMap {
				return a.writeTree(cmd, sub)
			}
			return writeLeaf(cmd.OutOrStdout(), v)
		},
	}
}

func (a *app) newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest [file]",
		Short: MsgDigestShort,
		Long:  MsgDigestLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.readDocument(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), dot.Digest(m))
			return err
		},
	}
}
