package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/notionaudit.yaml
var configTemplate embed.FS

// configFileName is the default configuration file name.
const configFileName = ".notionaudit"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new notionaudit configuration file",
		Long: `Initialize creates a new .notionaudit configuration file in the current
directory.

The generated file includes:
- A placeholder for the integration token
- Commented defaults for pacing and timeouts

Examples:
  # Create .notionaudit in current directory
  notionaudit init

  # Create config file at a specific path
  notionaudit init -o myconfig.yaml

  # Force overwrite existing file
  notionaudit init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/notionaudit.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// The file will hold a credential; keep it owner-only.
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Printf("Created configuration file: %s\n", outputPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Create an integration at https://www.notion.so/my-integrations")
	fmt.Println("  2. Replace the placeholder token in the file")
	fmt.Println("  3. Grant the integration access to the pages you want audited")

	return nil
}
