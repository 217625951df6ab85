// Package options parses the spec location flags shared by the spec validators.
package options

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/kingrea/dream-team/internal/config"
)

// SpecFlags binds --directory/-d and --extension/-e to dest. The values
// already in dest are the flag defaults.
func SpecFlags(dest *config.SpecsConfig) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name: "directory", Usage: "directory that holds spec files",
			Aliases:     []string{"d"},
			Value:       dest.Directory,
			Destination: &dest.Directory,
		},
		&cli.StringFlag{
			Name: "extension", Usage: "file extension of spec files",
			Aliases:     []string{"e"},
			Value:       dest.Extension,
			Destination: &dest.Extension,
		},
	}
}

var specFlagNames = map[string]string{
	"-d": "directory", "--directory": "directory",
	"-e": "extension", "--extension": "extension",
}

// ParseSpec reads the spec flags from args (args[0] is the program name).
// Blank values fall back to defaults, then to the built-in location. Hook
// commands are written by hand into skill files, so parsing is lenient: a
// flag without a value keeps its default and unknown arguments are skipped.
func ParseSpec(args []string, defaults config.SpecsConfig) (config.SpecsConfig, error) {
	specs := defaults.WithDefaults()
	name := "hook"
	if len(args) > 0 {
		name = filepath.Base(args[0])
		args = append([]string{name}, lenientArgs(args[1:])...)
	} else {
		args = []string{name}
	}
	cmd := &cli.Command{
		Name:      name,
		Usage:     "validate generated spec files",
		Flags:     SpecFlags(&specs),
		HideHelp:  true,
		Writer:    os.Stderr,
		ErrWriter: os.Stderr,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return err
		},
		Action: func(context.Context, *cli.Command) error {
			return nil
		},
	}
	if err := cmd.Run(context.Background(), args); err != nil {
		return config.SpecsConfig{}, fmt.Errorf("options: %w", err)
	}
	return specs.WithDefaults(), nil
}

// lenientArgs keeps only recognised spec flags that carry a value and
// rewrites each as --name=value, so a value that starts with "-" is still a
// value. A space-separated value is the next argument, whatever it is.
func lenientArgs(args []string) []string {
	var kept []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if key, value, ok := strings.Cut(arg, "="); ok {
			if flag, known := specFlagNames[key]; known && value != "" {
				kept = append(kept, "--"+flag+"="+value)
			}
			continue
		}
		flag, known := specFlagNames[arg]
		if !known || i+1 >= len(args) || args[i+1] == "" {
			continue
		}
		i++
		kept = append(kept, "--"+flag+"="+args[i])
	}
	return kept
}
