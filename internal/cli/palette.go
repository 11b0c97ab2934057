package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/flowlane/pkg/core/lanes"
	"github.com/matzehuels/flowlane/pkg/errors"
)

// paletteCommand creates the palette command that shows lane colors.
func (c *CLI) paletteCommand() *cobra.Command {
	var (
		laneCount int
		colors    string
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the lane colors",
		Long: `Palette prints the colors lanes are drawn with. Lane n uses color
n mod len(palette), so with --lanes the table shows how colors repeat.`,
		Example: `  flowlane palette
  flowlane palette --lanes 8 --palette "#222,#e91e63,#00bcd4"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.loadOptions()
			if err != nil {
				return err
			}
			hex := opts.Palette
			if cmd.Flags().Changed("palette") {
				hex = parseList(colors)
			}

			p := lanes.DefaultPalette()
			if len(hex) > 0 {
				if p, err = lanes.NewPalette(hex...); err != nil {
					return errors.Wrap(errors.ErrCodeInvalidPalette, err, "palette")
				}
			}
			if err := errors.ValidateSize("lanes", laneCount); err != nil {
				return err
			}

			fmt.Print(formatPalette(p, laneCount))
			return nil
		},
	}

	cmd.Flags().IntVar(&laneCount, "lanes", 0, "number of lanes to list (default: one per color)")
	cmd.Flags().StringVar(&colors, "palette", "", "palette colors as comma-separated #rrggbb values")

	return cmd
}

// formatPalette renders a swatch row followed by a lane → color table.
func formatPalette(p lanes.Palette, laneCount int) string {
	if laneCount == 0 {
		laneCount = p.Len()
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Palette (%d colors)", p.Len())) + "\n")
	for _, h := range p.Hex() {
		b.WriteString(swatch(h) + " ")
	}
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	for lane := 0; lane < laneCount; lane++ {
		h := p.Color(lane).Hex()
		b.WriteString(keyStyle.Render(fmt.Sprintf("lane %d", lane)) + " " + swatch(h) + " " + StyleValue.Render(h) + "\n")
	}
	return b.String()
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   ")
}
