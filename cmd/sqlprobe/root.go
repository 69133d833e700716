package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	core "sqlwrap/data/db"
	"sqlwrap/data/db/basic"
	"sqlwrap/logging"
)

type (
	Cmd struct {
		out       io.Writer
		v         *viper.Viper
		rootFlags rootFlags
	}

	rootFlags struct {
		cfgFile   string
		debugMode bool
		setup     []string
	}
)

func New(out io.Writer) *Cmd {
	return &Cmd{out: out, v: viper.New()}
}

func (c *Cmd) Execute(args []string) error {
	rootCmd := &cobra.Command{
		Use:   "sqlprobe",
		Short: "Run SQL through prepared statement wrappers",
		Long: `Run a single SQL statement against a database through the sqlwrap
statement and result-set wrappers and print the result.`,
		PersistentPreRunE: c.initConfig,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(c.out)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.rootFlags.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/.sqlprobe.yaml)")
	flags.BoolVar(&c.rootFlags.debugMode, "debug", false, "turn on debug output")
	flags.StringArrayVar(&c.rootFlags.setup, "setup", nil, "statement executed before the main one (repeatable)")
	flags.String("driver", "sqlite", "database driver (sqlite, postgres)")
	flags.String("dsn", "", "data source name")
	_ = c.v.BindPFlag("driver", flags.Lookup("driver"))
	_ = c.v.BindPFlag("dsn", flags.Lookup("dsn"))

	rootCmd.AddCommand(c.getQueryCmd())
	rootCmd.AddCommand(c.getExecCmd())

	return rootCmd.Execute()
}

// initConfig reads in config file and ENV variables if set.
func (c *Cmd) initConfig(cmd *cobra.Command, args []string) error {
	if c.rootFlags.cfgFile != "" {
		c.v.SetConfigFile(c.rootFlags.cfgFile)
	} else {
		c.v.SetConfigName(".sqlprobe")
		c.v.AddConfigPath(".")
		if cfgdir, err := os.UserConfigDir(); err == nil {
			c.v.AddConfigPath(cfgdir)
		}
	}

	c.bindEnv()

	level := logging.WarnLevel
	if c.rootFlags.debugMode {
		level = logging.DebugLevel
	}
	logging.SetLogger(logging.NewStdLoggerTo(cmd.ErrOrStderr(), "sqlprobe", level))

	configErr := c.v.ReadInConfig()
	if c.rootFlags.cfgFile != "" && configErr != nil {
		return fmt.Errorf("failed reading config file: %w", configErr)
	}
	if configErr == nil {
		logging.GetLogger().Debug(cmd.Context(), "using config file", logging.String("file", c.v.ConfigFileUsed()))
	}
	return nil
}

// bindEnv 将 core.DBConfig 的每个键绑定到 SQLPROBE_<KEY> 环境变量
//
// viper 的 Unmarshal 只能看到已知的键，仅靠 AutomaticEnv 不会读取未绑定的变量。
func (c *Cmd) bindEnv() {
	c.v.SetEnvPrefix("SQLPROBE")
	c.v.AutomaticEnv()
	for _, key := range configKeys() {
		_ = c.v.BindEnv(key)
	}
}

func configKeys() []string {
	t := reflect.TypeOf(core.DBConfig{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if key := t.Field(i).Tag.Get("mapstructure"); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

func (c *Cmd) loadConfig() (core.DBConfig, error) {
	var cfg core.DBConfig
	if err := c.v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openDB opens the configured database and runs --setup statements
func (c *Cmd) openDB(ctx context.Context) (*basic.DB, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	d, err := basic.New(cfg)
	if err != nil {
		return nil, err
	}
	for _, s := range c.rootFlags.setup {
		if _, err := d.Exec(ctx, s); err != nil {
			_ = d.Close()
			return nil, fmt.Errorf("setup %q: %w", s, err)
		}
	}
	return d, nil
}

func toArgs(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}
