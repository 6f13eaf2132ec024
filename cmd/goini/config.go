package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/muja/goini"
)

const envPrefix = "GOINI"

// app carries state shared by every subcommand.
type app struct {
	v      *viper.Viper
	logger *log.Logger
}

func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &app{v: v}
}

func (a *app) bindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (yaml, toml or json)")
	fs.String("comment-chars", goini.DefaultCommentChars, "characters starting a comment")
	fs.String("line-separator", `\n`, "line separator, a single byte or escape such as \\r")
	fs.Int("buffer-size", goini.DefaultBufferSize, "read buffer size, a power of two")
	fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlags(fs)
}

// load reads the optional config file and sets up logging.
func (a *app) load(cmd *cobra.Command) error {
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	level, err := log.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "goini",
		Level:  level,
	})
	a.logger.Debug("config loaded", "file", a.v.ConfigFileUsed())
	return nil
}

func (a *app) parserOptions() ([]goini.Option, error) {
	sep, err := parseSeparator(a.v.GetString("line-separator"))
	if err != nil {
		return nil, err
	}
	return []goini.Option{
		goini.WithCommentChars(a.v.GetString("comment-chars")),
		goini.WithLineSeparator(sep),
		goini.WithBufferSize(a.v.GetInt("buffer-size")),
		goini.WithLogger(a.logger),
	}, nil
}

func parseSeparator(s string) (byte, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	u, err := strconv.Unquote(`"` + s + `"`)
	if err != nil || len(u) != 1 {
		return 0, fmt.Errorf("line separator %q is not a single byte", s)
	}
	return u[0], nil
}

// readInput returns the named file, or stdin for "" and "-".
func readInput(cmd *cobra.Command, path string) (string, []byte, error) {
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", nil, fmt.Errorf("read file: %w", err)
		}
		return path, data, nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return "", nil, fmt.Errorf("no input file given and stdin is a terminal")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", nil, fmt.Errorf("read stdin: %w", err)
	}
	return "<stdin>", data, nil
}

func (a *app) parse(cmd *cobra.Command, path string) (*goini.File, []byte, error) {
	name, data, err := readInput(cmd, path)
	if err != nil {
		return nil, nil, err
	}
	opts, err := a.parserOptions()
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("parsing", "file", name, "bytes", len(data))
	f, err := goini.Parse(name, data, opts...)
	return f, data, err
}
