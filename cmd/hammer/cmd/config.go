package cmd

import (
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration the other commands would use, as hammer.yaml.

Fields missing from hammer.yaml are filled in with defaults. The output
can be saved as a starting point:

  hammer config > hammer.yaml`,
		Usage: "hammer config",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if cfg.Path != "" {
		fmt.Fprintf(stdout, "# resolved from %s\n", cfg.Path)
	} else {
		fmt.Fprintln(stdout, "# defaults (no hammer.yaml found)")
	}
	_, err = stdout.Write(data)
	return err
}
