package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/dendrascience/comics/comic"
	"github.com/dendrascience/comics/internal/config"
	"github.com/dendrascience/comics/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries the resolved configuration to every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *log.Logger
}

func (a *app) load() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Logger()
	return nil
}

func (a *app) open(path string) (*comic.Comic, error) {
	return comic.Open(path, a.cfg.ComicOptions(a.logger)...)
}

// bind ties a flag to a config key so the flag wins when it is set.
func (a *app) bind(cmd *cobra.Command, key, flag string) {
	a.bindFlag(key, cmd.Flags().Lookup(flag))
}

func (a *app) bindPersistent(cmd *cobra.Command, key, flag string) {
	a.bindFlag(key, cmd.PersistentFlags().Lookup(flag))
}

// bindFlag panics on a missing flag, which is a programming error.
func (a *app) bindFlag(key string, f *pflag.Flag) {
	if f == nil {
		panic(fmt.Sprintf("bind %s: no such flag", key))
	}
	if err := a.v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("bind %s to --%s: %v", key, f.Name, err))
	}
}

// NewRootCmd creates and returns the root cobra command for the comics CLI.
// It sets up all subcommands, command groups, and configuration loading.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "comics",
		Short: "comics - Manage file archives for comic books",
		Long: `comics manages file archives for comic books (CBZ, ZIP, CBR, RAR).

If the PATH for a command is a directory, the operation is applied to every
comic archive directly inside it. PATH may also be a glob such as
"library/**/*.cbr".

Edits are made on an unpacked copy in a staging directory ("_temp" in the
working directory by default) and saved as CBZ. Run one comics process per
working directory at a time.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/comics/config.yaml)")
	rootCmd.PersistentFlags().String("staging-dir", comic.DefaultStagingDir, "Directory comics are unpacked into while being edited")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("verify", true, "Verify repacked archives before replacing the original")
	a.bindPersistent(rootCmd, "staging_dir", "staging-dir")
	a.bindPersistent(rootCmd, "log.level", "log-level")
	a.bindPersistent(rootCmd, "verify", "verify")

	groupComics := "comics"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupComics,
		Title: "Comic Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	convertCmd := NewConvertCmd(a)
	pagesCmd := NewPagesCmd(a)
	renameCmd := NewRenameCmd(a)
	searchCmd := NewSearchCmd(a)
	uncompressCmd := NewUncompressCmd(a)
	validateCmd := NewValidateCmd(a)
	seedCmd := NewSeedCmd(a)
	versionCmd := NewVersionCmd()

	convertCmd.GroupID = groupComics
	pagesCmd.GroupID = groupComics
	renameCmd.GroupID = groupComics
	searchCmd.GroupID = groupComics
	uncompressCmd.GroupID = groupComics
	validateCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(uncompressCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
