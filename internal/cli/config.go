package cli

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/adleman/pkg/errors"
	"github.com/matzehuels/adleman/pkg/pipeline"
)

// genFlags holds the generation flags shared by the root and render commands.
type genFlags struct {
	nodes       int
	labelLength int
	alphabet    string
	seed        uint64
	config      string
}

// register adds the generation flags to cmd as persistent flags.
func (f *genFlags) register(cmd *cobra.Command) {
	def := pipeline.DefaultOptions()
	pf := cmd.PersistentFlags()
	pf.IntVarP(&f.nodes, "nodes", "n", def.Nodes, "number of nodes")
	pf.IntVar(&f.labelLength, "label-length", def.LabelLength, "symbols per node label")
	pf.StringVar(&f.alphabet, "alphabet", def.Alphabet, "label alphabet")
	pf.Uint64Var(&f.seed, "seed", 0, "random seed (0 derives one from the clock)")
	pf.StringVarP(&f.config, "config", "c", "", "TOML config file (default $XDG_CONFIG_HOME/adleman/config.toml)")
}

// options resolves the pipeline options for cmd.
// Explicitly set flags override the config file, which overrides defaults.
func (f *genFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()

	path, explicit := f.config, f.config != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path != "" {
		if err := loadConfig(path, &opts); err != nil {
			if explicit || !stderrors.Is(err, os.ErrNotExist) {
				return opts, err
			}
		} else {
			loggerFromContext(cmd.Context()).Debug("loaded config", "path", path)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("nodes") {
		opts.Nodes = f.nodes
	}
	if flags.Changed("label-length") {
		opts.LabelLength = f.labelLength
	}
	if flags.Changed("alphabet") {
		opts.Alphabet = f.alphabet
	}
	if flags.Changed("seed") {
		opts.Seed = f.seed
	}
	return opts, nil
}

// loadConfig decodes the TOML file at path over opts.
// Unknown keys are rejected so that typos do not pass silently.
func loadConfig(path string, opts *pipeline.Options) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	md, err := toml.DecodeFile(path, opts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// defaultConfigPath returns the config file location following XDG
// conventions, or "" if no config directory can be determined.
func defaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName, configFile)
}
