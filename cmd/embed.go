package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/shoutbase/shoutbase/internal/widget"
)

// EmbedCommand generates an embed snippet offline, without the API.
func EmbedCommand() *cli.Command {
	return &cli.Command{
		Name:      "embed",
		Usage:     "Generate a widget embed snippet",
		ArgsUsage: "TESTIMONIAL_ID",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "template",
				Usage: "Widget template id (card, quote, minimal, carousel, grid, spotlight)",
				Value: widget.DefaultTemplateID,
			},
			&cli.StringFlag{
				Name:  "theme",
				Usage: "Color theme",
			},
			&cli.BoolFlag{
				Name:  "dark",
				Usage: "Enable dark mode",
			},
			&cli.StringFlag{
				Name:  "highlight-color",
				Usage: "Accent color (any CSS color string)",
			},
			&cli.BoolFlag{
				Name:  "auto-rotate",
				Usage: "Rotate through testimonials automatically",
			},
		},
		Action: runEmbed,
	}
}

func runEmbed(c *cli.Context) error {
	cfg := widget.Defaults()
	cfg.WidgetTemplateID = c.String("template")
	if c.IsSet("theme") {
		cfg.Theme = c.String("theme")
	}
	if c.IsSet("dark") {
		cfg.DarkMode = c.Bool("dark")
	}
	if c.IsSet("highlight-color") {
		cfg.HighlightColor = c.String("highlight-color")
	}
	if c.IsSet("auto-rotate") {
		cfg.AutoRotate = c.Bool("auto-rotate")
	}

	fmt.Println(widget.Generate(cfg, c.Args().First()))
	return nil
}
