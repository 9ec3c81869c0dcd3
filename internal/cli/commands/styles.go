package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mistakeknot/hearthplan/internal/design"
)

// StylesCmd lists the style catalog.
func StylesCmd() *cobra.Command {
	var yamlOut bool
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the architectural style catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if yamlOut {
				data, err := yaml.Marshal(design.Catalog())
				if err != nil {
					return wrapCommandError("styles", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}
			for _, style := range design.AllStyles() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", style, strings.Join(design.Keywords(style), ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&yamlOut, "yaml", false, "Dump the full catalog as YAML")
	cmd.AddCommand(stylesShowCmd())
	return cmd
}

func stylesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <style>",
		Short: "Show the finish package for one style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := resolveStyle(args[0])
			if err != nil {
				return wrapCommandError("styles show", err)
			}
			pkg, _ := design.LookupPackage(style)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", style)
			printPackageSection(out, "Exterior", pkg.Exterior)
			printPackageSection(out, "Interior", pkg.Interior)
			printPackageSection(out, "Features", pkg.Features)
			return nil
		},
	}
}

func printPackageSection(out io.Writer, title string, items []string) {
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}

// resolveStyle matches user input against the style names, tolerating
// partial and slightly misspelled names via fuzzy matching.
func resolveStyle(raw string) (design.Style, error) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return "", fmt.Errorf("missing style name")
	}
	names := make([]string, 0, len(design.AllStyles()))
	for _, style := range design.AllStyles() {
		if string(style) == needle {
			return style, nil
		}
		names = append(names, string(style))
	}
	matches := fuzzy.Find(needle, names)
	if len(matches) == 0 {
		return "", fmt.Errorf("unknown style %q", raw)
	}
	return design.Style(matches[0].Str), nil
}
