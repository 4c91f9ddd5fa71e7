package cmd

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	xgxreport "github.com/xgx-io/xgx-report"
	"github.com/xgx-io/xgx-report/internal/config"
	"github.com/xgx-io/xgx-report/internal/log"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xgxreport",
	Short: "print an error chain as a plain report",
	Long: `xgxreport renders an error and its causes the way a program built on
xgx-report prints them: the error, a blank line, and an indented
"Caused by:" section.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", xgxreport.From(err))
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogging)

	config.SetDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.xgxreport.yaml)")
	rootCmd.PersistentFlags().StringP("verbose", "v", "info", "level of logging verbosity. can be error,info,debug,trace")
	rootCmd.PersistentFlags().StringP("output", "o", "pretty", "log output format. can be json,text,pretty")

	_ = viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag(config.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".xgxreport" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".xgxreport")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatal().Err(xgxreport.Wrap(err, "reading config")).Msg("failed to initialize")
		}
		return
	}
	log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
}

func initLogging() {
	if err := log.SetFormat(viper.GetString(config.KeyOutput)); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logging")
	}
	if err := log.SetLevelString(viper.GetString(config.KeyVerbose)); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logging")
	}
	log.Debug().
		Str("level", viper.GetString(config.KeyVerbose)).
		Str("format", viper.GetString(config.KeyOutput)).
		Msg("custom log settings")
}
