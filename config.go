package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind       string
	dictionary string
	history    string
	maxGuesses int
	port       int
	prefix     string
	profile    bool
	serveStats bool
	tlsCert    string
	tlsKey     string
	verbose    bool
	version    bool
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.dictionary == "" {
		return errors.New("a dictionary file must be provided via --dictionary")
	}
	if c.maxGuesses < 1 {
		return fmt.Errorf("invalid maximum guess count (must be at least 1): %d", c.maxGuesses)
	}
	if c.serveStats && c.history == "" {
		return errors.New("--serve-stats requires a history database (--history)")
	}
	if c.profile && !c.serveStats {
		return errors.New("--profile requires --serve-stats")
	}
	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("HANGMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "hangman",
		Short:         "A console hangman game, with optional round history and stats endpoint.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return Play(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address for the stats endpoint to bind to (env: HANGMAN_BIND)")
	fs.StringVarP(&cfg.dictionary, "dictionary", "d", "data/dictionary.txt", "path to newline-delimited word list (env: HANGMAN_DICTIONARY)")
	fs.StringVar(&cfg.history, "history", "", "path to sqlite round history database, empty to disable (env: HANGMAN_HISTORY)")
	fs.IntVarP(&cfg.maxGuesses, "max-guesses", "m", 6, "number of incorrect guesses before a round is lost (env: HANGMAN_MAX_GUESSES)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port for the stats endpoint to listen on (env: HANGMAN_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all stats endpoint URLs, for use behind reverse proxy (env: HANGMAN_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers on the stats endpoint (env: HANGMAN_PROFILE)")
	fs.BoolVar(&cfg.serveStats, "serve-stats", false, "serve round history over http while playing (env: HANGMAN_SERVE_STATS)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: HANGMAN_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: HANGMAN_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: HANGMAN_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: HANGMAN_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("hangman v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
