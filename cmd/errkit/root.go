package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jt0/errkit/envelope"
	"github.com/jt0/errkit/families"
	"github.com/jt0/errkit/logs"
)

const (
	outputKey   = "output"
	logLevelKey = "log-level"
)

func newRootCommand(out io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("ERRKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(outputKey, "text")
	v.SetDefault(logLevelKey, "warn")

	var configFile string

	root := &cobra.Command{
		Use:           "errkit",
		Short:         "Demonstrates type-erased error envelopes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				if err := v.ReadInConfig(); err != nil {
					return envelope.From[families.ConfigurationFamily](families.Configuration("unable to read " + configFile).Because(err))
				}
			}

			if err := logs.SetLevel(v.GetString(logLevelKey)); err != nil {
				return envelope.From[families.BadValueFamily](families.Invalid(logLevelKey, v.GetString(logLevelKey)).Because(err))
			}

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, json, or toml)")
	flags.StringP(outputKey, "o", "text", "output format: text, json, or yaml")
	flags.String(logLevelKey, "warn", "log level")
	_ = v.BindPFlag(outputKey, flags.Lookup(outputKey))
	_ = v.BindPFlag(logLevelKey, flags.Lookup(logLevelKey))

	root.AddCommand(newDemoCommand(v), newRenderCommand(v))

	return root
}
