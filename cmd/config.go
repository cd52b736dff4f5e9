package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zjrosen/themepark/internal/config"
	"github.com/zjrosen/themepark/internal/paths"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the themepark config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a commented default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := paths.ConfigFile()
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), configPath())
		return nil
	},
}

var configDirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "Print every directory scanned for themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, dir := range themeDirs() {
			status := "missing"
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				status = "ok"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", status, dir)
		}
		return nil
	},
}

var configAddDirCmd = &cobra.Command{
	Use:   "add-dir <dir>",
	Short: "Add a directory to theme_dirs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := filepath.Abs(paths.ExpandHome(args[0]))
		if err != nil {
			return err
		}
		dirs, err := config.AddThemeDir(configPath(), cfg.ThemeDirs, dir)
		if err != nil {
			return err
		}
		cfg.ThemeDirs = dirs
		fmt.Fprintf(cmd.OutOrStdout(), "theme_dirs: %d configured\n", len(dirs))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configPathCmd, configDirsCmd, configAddDirCmd)
	rootCmd.AddCommand(configCmd)
}
