package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nfrund/dashboard/internal/theme"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func defaultThemeFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "dashctl-theme.json"
	}
	return filepath.Join(dir, "dashctl", "theme.json")
}

type themeCmdOptions struct {
	file        string
	prefersDark bool
	fs          afero.Fs
}

func (o *themeCmdOptions) store(cmd *cobra.Command) *theme.Store {
	s := theme.NewStore(theme.NewFilePersister(o.fs, o.file), theme.Default)
	if err := s.Init(cmd.Context()); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; using %s\n", err, theme.Default)
	}
	return s
}

func newThemeCmd() *cobra.Command {
	return newThemeCmdWithFs(afero.NewOsFs())
}

func newThemeCmdWithFs(fs afero.Fs) *cobra.Command {
	opts := &themeCmdOptions{fs: fs}
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Read or change the stored theme preference",
		Long: `Read or change the theme preference kept in a local file. It is the
same preference model the browser keeps in its cookie: light, dark or system,
dark when nothing has been stored.`,
	}
	cmd.PersistentFlags().StringVar(&opts.file, "file", defaultThemeFile(), "Preference file")
	cmd.PersistentFlags().BoolVar(&opts.prefersDark, "prefers-dark", true, "OS colour scheme used to resolve the system theme")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the stored theme",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				s := opts.store(cmd)
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", s.Current(), s.Resolve(opts.prefersDark))
			},
		},
		&cobra.Command{
			Use:       "set THEME",
			Short:     "Store a theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"light", "dark", "system"},
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := theme.Parse(args[0])
				if err != nil {
					return err
				}
				if err := opts.store(cmd).Set(cmd.Context(), t); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), t)
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				t, err := opts.store(cmd).Toggle(cmd.Context(), opts.prefersDark)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), t)
				return nil
			},
		},
	)
	return cmd
}
