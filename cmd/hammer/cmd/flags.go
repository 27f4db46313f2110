package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/hammer/cmd/hammer/internal/config"
	"github.com/go-drift/hammer/pkg/errors"
)

// flagValue returns the value for a flag written as "--name value" or
// "--name=value". ok is false when args[*i] is not the named flag.
// On a match *i is advanced past any consumed value.
func flagValue(args []string, i *int, name string) (value string, ok bool, err error) {
	arg := args[*i]
	if prefix := name + "="; strings.HasPrefix(arg, prefix) {
		return strings.TrimPrefix(arg, prefix), true, nil
	}
	if arg != name {
		return "", false, nil
	}
	if *i+1 >= len(args) {
		return "", true, fmt.Errorf("%s requires a value", name)
	}
	*i++
	return args[*i], true, nil
}

// intFlag is flagValue for positive integers.
func intFlag(args []string, i *int, name string, dst *int) (bool, error) {
	value, ok, err := flagValue(args, i, name)
	if !ok || err != nil {
		return ok, err
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return true, fmt.Errorf("%s must be a non-negative integer (got %q)", name, value)
	}
	*dst = n
	return true, nil
}

// surfaceOptions are the flags shared by the raster commands.
type surfaceOptions struct {
	out    string
	width  int
	height int
}

// parse consumes one surface flag at args[*i].
func (o *surfaceOptions) parse(args []string, i *int) (bool, error) {
	if args[*i] == "-o" {
		value, _, err := flagValue(args, i, "-o")
		if err != nil {
			return true, err
		}
		o.out = value
		return true, nil
	}
	if value, ok, err := flagValue(args, i, "--out"); ok {
		o.out = value
		return true, err
	}
	if ok, err := intFlag(args, i, "--width", &o.width); ok {
		return true, err
	}
	if ok, err := intFlag(args, i, "--height", &o.height); ok {
		return true, err
	}
	return false, nil
}

func (o surfaceOptions) validate() error {
	if o.width < 1 || o.height < 1 {
		return fmt.Errorf("surface must be at least 1x1 (got %dx%d)", o.width, o.height)
	}
	return nil
}

// loadConfig resolves hammer.yaml from the --config directory.
func loadConfig() (*config.Resolved, error) {
	resolved, err := config.Resolve(configDir)
	if err != nil {
		return nil, errors.New("config.Resolve", errors.KindConfig, fmt.Errorf("failed to load config: %w", err))
	}
	return resolved, nil
}
