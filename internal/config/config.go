package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MINES"

type Logging struct {
	File        string
	Level       string
	Development bool
}

type App struct {
	Game       Game
	Log        Logging
	Sound      bool
	ResizePoll time.Duration
}

func (c App) Fields() logrus.Fields {
	fields := c.Game.Fields()
	fields["log_file"] = c.Log.File
	fields["log_level"] = c.Log.Level
	fields["development"] = c.Log.Development
	fields["sound"] = c.Sound
	fields["resize_poll"] = c.ResizePoll.String()
	return fields
}

func flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file path (yaml, toml or json)")
	fs.StringP("difficulty", "d", "easy", "board preset: easy, normal or hard")
	fs.String("board", "", `custom board in query form, e.g. "width=30&height=16&mines=99"`)
	fs.Int("width", 0, "board width, overrides the preset")
	fs.Int("height", 0, "board height, overrides the preset")
	fs.Int("mines", 0, "mine count, overrides the preset")
	fs.StringP("input", "i", Pointer.String(), "input mode: mouse or keyboard")
	fs.Bool("bordered", false, "draw a border around the board")
	fs.Bool("centered", true, "center the board in the terminal")
	fs.Bool("sound", false, "play sounds on win and loss")
	fs.String("log-file", "", "log file path, empty to disable logging")
	fs.String("log-level", "", "log level (default info, debug in development)")
	fs.Duration("resize-poll", 20*time.Millisecond, "terminal size polling interval")
	return fs
}

// Load resolves the configuration from flags, MINES_* environment
// variables and an optional config file, in that order of precedence.
// A -h/--help request comes back as [pflag.ErrHelp].
func Load(name string, args []string) (*App, error) {
	fs := flagSet(name)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("unable to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	return resolve(v)
}

func resolve(v *viper.Viper) (*App, error) {
	preset, err := LookupDifficulty(v.GetString("difficulty"))
	if err != nil {
		return nil, err
	}
	game := DefaultGame().WithDifficulty(preset)

	if s := v.GetString("board"); s != "" {
		board, err := ParseBoard(s)
		if err != nil {
			return nil, err
		}
		game = game.WithDifficulty(board.Difficulty())
	}
	if w := v.GetInt("width"); w > 0 {
		game.Width = w
	}
	if h := v.GetInt("height"); h > 0 {
		game.Height = h
	}
	if m := v.GetInt("mines"); m > 0 {
		game.Mines = m
	}

	if game.Input, err = ParseInputMode(v.GetString("input")); err != nil {
		return nil, err
	}
	game.Bordered = v.GetBool("bordered")
	game.Centered = v.GetBool("centered")

	if err := game.Validate(); err != nil {
		return nil, err
	}

	app := &App{
		Game: game,
		Log: Logging{
			File:        v.GetString("log-file"),
			Level:       v.GetString("log-level"),
			Development: Development(),
		},
		Sound:      v.GetBool("sound"),
		ResizePoll: v.GetDuration("resize-poll"),
	}
	if app.ResizePoll <= 0 {
		return nil, fmt.Errorf("resize poll interval %s must be positive", app.ResizePoll)
	}
	return app, nil
}
