package cmd

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/radiofrance/xmlreport/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultLogLevel = "info"
	envPrefix       = "xmlreport"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use: "xmlreport",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Short: "Rewrite XML test and coverage reports for CI dashboards",
	Long: `xmlreport rewrites the XML reports produced by test runs so CI servers can display them:

  - coverage: resolve class filenames of a Cobertura report against its source directories
  - junit:    shorten test case class names and attach screenshots to JUnit reports

Run xmlreport --help for more information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	os.Exit(execute())
}

// execute runs the command line and returns the process exit code. Errors are reported
// through the logger at error level.
func execute() int {
	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	return 0
}

func init() {
	// Set logger level from flags as early as possible, then load config, then finalize from Viper
	cobra.OnInitialize(preInitLogLevelFromFlags, initConfig, initLogLevel)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.config/.xmlreport.yaml)")
	rootCmd.PersistentFlags().StringP("log-level", "l", defaultLogLevel,
		`Log level. Can be any standard log-level ("debug", "info", "warn", "error")`)

	bindPFlagsSnakeCase(rootCmd.PersistentFlags())

	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(coverageCommand())
	rootCmd.AddCommand(junitCommand())
	rootCmd.AddCommand(docgenCommand())
}

func initConfig() {
	viper.SetConfigType("yaml")

	if cfgFile != "" {
		// Use config file from the flag.
		setConfigFile(cfgFile)
	} else if val := os.Getenv("XMLREPORT_CONFIG"); val != "" {
		// Use config file from the env variable.
		setConfigFile(val)
	} else {
		workingDir, err := os.Getwd()
		cobra.CheckErr(err)

		// Add $HOME/.config and current directory as paths for Viper to search for the config file in.
		if homeDir, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(path.Join(homeDir, ".config"))
		}
		viper.AddConfigPath(workingDir)

		// Search config file with name ".xmlreport.yaml" or ".xmlreport.yml".
		viper.SetConfigName(".xmlreport")
	}

	// Env vars starting with the XMLREPORT_ prefix can override any configuration.
	// e.g. XMLREPORT_LOG_LEVEL, XMLREPORT_SCREENSHOTS_DIR, etc...
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	err := viper.ReadInConfig()
	if err != nil {
		// Non-blocking, every option has a default value.
		logger.Debugf("No config file loaded: %s", err)
	} else {
		logger.Infof("Using config file: %s", viper.ConfigFileUsed())
	}
}

func initLogLevel() {
	logLevel := viper.GetString("log_level")
	logger.SetLevel(&logLevel)
}

// preInitLogLevelFromFlags sets the log level from Cobra flags or env before config/env are loaded by Viper,
// so that early logs (like config not found) respect user-provided preference.
// Precedence respected here: flag > env (XMLREPORT_LOG_LEVEL) > config (handled later in initLogLevel via Viper).
func preInitLogLevelFromFlags() {
	flag := rootCmd.PersistentFlags().Lookup("log-level")
	if flag != nil && flag.Changed {
		val, err := rootCmd.PersistentFlags().GetString("log-level")
		if err == nil {
			logger.SetLevel(&val)
			return
		}
	}

	if val, ok := os.LookupEnv("XMLREPORT_LOG_LEVEL"); ok && val != "" {
		logger.SetLevel(&val)
	}
}

func setConfigFile(name string) {
	_, err := os.Stat(name)
	if err != nil {
		cobra.CheckErr(fmt.Errorf("config file %q not found", name))
	}

	viper.SetConfigFile(name)
}

// hydrateOptsFromViper copies all the viper values into our config struct.
// The mapping between viper identifiers and struct field names
// is ensured by `mapstructure` struct tags.
func hydrateOptsFromViper(opts any) {
	_ = viper.Unmarshal(opts)
}

// bindPFlagsSnakeCase binds the flags with viper values. The identifier of the viper value
// is the name of the flag with dashes replaced by underscores. This is required so we can
// retrieve values from viper with the same behaviour with config coming from files
// (my_config: "value") or from flags (--my-config=value).
func bindPFlagsSnakeCase(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		_ = viper.BindPFlag(strings.ReplaceAll(flag.Name, "-", "_"), flag)
	})
}
