package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/studio/internal/export"
)

// ErrKeyNotFound is returned by `storage get` for an absent key.
var ErrKeyNotFound = errors.New("key not found")

func newStorageCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Read and write the landing page storage",
	}
	cmd.AddCommand(newStorageKeysCmd(a))
	cmd.AddCommand(newStorageGetCmd(a))
	cmd.AddCommand(newStorageSetCmd(a))
	cmd.AddCommand(newStorageRmCmd(a))
	cmd.AddCommand(newStorageExportCmd(a))
	return cmd
}

func newStorageKeysCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, closeKV, err := openKV(cmd, a)
			if err != nil {
				return err
			}
			defer closeKV()

			keys, err := kv.Keys(cmd.Context())
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}

func newStorageGetCmd(a *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print a stored value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, closeKV, err := openKV(cmd, a)
			if err != nil {
				return err
			}
			defer closeKV()

			value, ok, err := kv.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", ErrKeyNotFound, args[0])
			}
			if !raw {
				var out bytes.Buffer
				if json.Indent(&out, []byte(value), "", "  ") == nil {
					value = out.String()
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the value exactly as stored")
	return cmd
}

func newStorageSetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <json>",
		Short: "Store a JSON value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !json.Valid([]byte(args[1])) {
				return fmt.Errorf("value for %s is not valid JSON", args[0])
			}
			kv, closeKV, err := openKV(cmd, a)
			if err != nil {
				return err
			}
			defer closeKV()
			return kv.Set(cmd.Context(), args[0], args[1])
		},
	}
}

func newStorageRmCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <key>",
		Aliases: []string{"remove"},
		Short:   "Remove a stored key",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, closeKV, err := openKV(cmd, a)
			if err != nil {
				return err
			}
			defer closeKV()
			return kv.Remove(cmd.Context(), args[0])
		},
	}
}

func newStorageExportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Export stored data to a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, closeKV, err := openKV(cmd, a)
			if err != nil {
				return err
			}
			defer closeKV()

			if err := export.Workbook(cmd.Context(), kv, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}
