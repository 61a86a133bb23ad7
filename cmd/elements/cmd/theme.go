package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/go-drift/elements/pkg/theme"
)

func themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect theme files",
	}
	cmd.AddCommand(themeDumpCmd(), themeCheckCmd())
	return cmd
}

func themeDumpCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Print a theme with every key filled in",
		Long: `Print the default theme, or the given theme file overlaid onto the
default, in YAML or TOML. The output is a complete starting point for a
custom theme.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			t := theme.Default()
			if len(args) == 1 {
				if t, err = theme.Load(args[0]); err != nil {
					return err
				}
			}
			data, err := theme.Encode(t, f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or toml")
	return cmd
}

func themeCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check file...",
		Short: "Validate theme files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if _, err := theme.Load(path); err != nil {
					slog.Error("invalid theme", "file", path, "err", err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d theme files invalid", failed, len(args))
			}
			return nil
		},
	}
}

func parseFormat(s string) (theme.Format, error) {
	switch s {
	case "yaml", "yml":
		return theme.FormatYAML, nil
	case "toml":
		return theme.FormatTOML, nil
	default:
		return 0, fmt.Errorf("unknown format %q: want yaml or toml", s)
	}
}
