package main

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/property"
	"github.com/spf13/cobra"
)

const absentText = "<absent>"

func newGetCmd(root *rootOptions) *cobra.Command {
	var (
		kindName string
		list     bool
		origin   bool
	)

	cmd := &cobra.Command{
		Use:   "get NAME",
		Short: "Resolve one property as the given kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := property.ParseKind(kindName)
			if err != nil {
				return err
			}

			snap, err := root.snapshot(cmd)
			if err != nil {
				return err
			}

			name := args[0]
			text, err := resolveText(snap, name, kind, list)
			if err != nil {
				return err
			}

			if origin {
				if src, ok := snap.Origin(name); ok {
					text = fmt.Sprintf("%s\t(%s)", text, src)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "string", "target kind (see 'propctl kinds')")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "resolve a comma-separated list of the kind")
	cmd.Flags().BoolVar(&origin, "origin", false, "print the source of the value")
	return cmd
}

// resolveText renders the resolved value canonically, lists joined by commas
func resolveText(p property.Lookup, name string, kind property.Kind, list bool) (string, error) {
	if list {
		values, ok, err := property.ResolveList(p, name, kind)
		if err != nil || !ok {
			return absentText, err
		}
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = v.String()
		}
		return strings.Join(parts, property.ListSeparator), nil
	}

	v, ok, err := property.ResolveScalar(p, name, kind)
	if err != nil || !ok {
		return absentText, err
	}
	return v.String(), nil
}

func newDumpCmd(root *rootOptions) *cobra.Command {
	var (
		format string
		debug  bool
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the merged properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := root.snapshot(cmd)
			if err != nil {
				return err
			}
			if debug {
				fmt.Fprint(cmd.OutOrStdout(), snap.Debug())
				return nil
			}
			return snap.Dump(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", property.FormatProperties, "output format: properties, toml, yaml or json")
	cmd.Flags().BoolVar(&debug, "debug", false, "show every source of every value")
	return cmd
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range property.SupportedKinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
}
