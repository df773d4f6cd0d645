package client

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/madking-api/internal/entities"
)

// kindPaths maps the kind argument onto its collection route
var kindPaths = map[string]string{
	"races":   "/races",
	"classes": "/classes",
	"origins": "/origins",
	"items":   "/items",
	"spells":  "/spells",
}

var namePrefix string

var listCmd = &cobra.Command{
	Use:       "list [races|classes|origins|items|spells]",
	Short:     "List catalog entries of one kind",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"races", "classes", "origins", "items", "spells"},
	RunE:      runList,
}

var getCmd = &cobra.Command{
	Use:   "get [races|classes|origins|items|spells] [id]",
	Short: "Get one catalog entry",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

var backgroundCmd = &cobra.Command{
	Use:   "background [origin-id]",
	Short: "Roll a random background from an origin",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackground,
}

func init() {
	listCmd.Flags().StringVar(&namePrefix, "prefix", "", "Only entries whose name starts with this")
}

func kindPath(kind string) (string, error) {
	path, ok := kindPaths[kind]
	if !ok {
		return "", fmt.Errorf("unknown catalog kind %q", kind)
	}
	return path, nil
}

// summary is the subset of fields every catalog entry shares
type summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func runList(_ *cobra.Command, args []string) error {
	path, err := kindPath(args[0])
	if err != nil {
		return err
	}

	var query url.Values
	if namePrefix != "" {
		query = url.Values{"name": {namePrefix}}
	}

	var entries []summary
	env, err := call(http.MethodGet, path, query, nil, &entries)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", args[0], err)
	}
	if jsonOutput {
		return printRaw(env)
	}

	fmt.Printf("Found %d %s:\n\n", len(entries), args[0])
	for _, e := range entries {
		fmt.Printf("%s (ID: %s)\n", e.Name, e.ID)
		if e.Description != "" {
			fmt.Printf("   %s\n", e.Description)
		}
	}
	return nil
}

func runGet(_ *cobra.Command, args []string) error {
	path, err := kindPath(args[0])
	if err != nil {
		return err
	}

	env, err := call(http.MethodGet, path+"/"+url.PathEscape(args[1]), nil, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", args[1], err)
	}
	return printRaw(env)
}

func runBackground(_ *cobra.Command, args []string) error {
	var bg entities.Background
	env, err := call(http.MethodGet, "/origins/"+url.PathEscape(args[0])+"/background", nil, nil, &bg)
	if err != nil {
		return fmt.Errorf("failed to roll background: %w", err)
	}
	if jsonOutput {
		return printRaw(env)
	}

	fmt.Printf("Trait:      %s\n", bg.PersonalityTrait)
	if bg.Ideal != nil {
		fmt.Printf("Ideal:      %s\n", bg.Ideal.Name)
	}
	fmt.Printf("Bond:       %s\n", bg.Bond)
	fmt.Printf("Flaw:       %s\n", bg.Flaw)
	fmt.Printf("Motivation: %s\n", bg.Motivation)
	fmt.Printf("Wealth:     %d\n", bg.StartingWealth)
	for _, c := range bg.Connections {
		fmt.Printf("Connection: %s (%s)\n", c.Name, c.Relationship)
	}
	return nil
}
