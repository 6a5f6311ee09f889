package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/confetti/config"
	"github.com/lixenwraith/confetti/confetti"
	"github.com/lixenwraith/confetti/vmath"
)

// particleDoc is the YAML form of a generated particle
type particleDoc struct {
	ID       int     `yaml:"id"`
	OriginX  float64 `yaml:"origin_x"`
	OriginY  float64 `yaml:"origin_y"`
	Size     float64 `yaml:"size"`
	Aspect   float64 `yaml:"aspect"`
	Color    string  `yaml:"color"`
	Rotation float64 `yaml:"rotation"`
	Shape    string  `yaml:"shape"`
	Delay    string  `yaml:"delay"`
}

func toParticleDocs(batch []confetti.Particle) []particleDoc {
	docs := make([]particleDoc, 0, len(batch))
	for _, p := range batch {
		docs = append(docs, particleDoc{
			ID:       p.ID,
			OriginX:  p.OriginX,
			OriginY:  p.OriginY,
			Size:     p.Size,
			Aspect:   p.AspectFactor,
			Color:    config.FormatHex(p.Color),
			Rotation: p.Rotation,
			Shape:    p.Shape.String(),
			Delay:    p.Delay.String(),
		})
	}
	return docs
}

func newBatchCmd(a *app) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Print one generated particle batch as YAML",
		Long: `Generates the batch a celebration would draw, using the configured count
and palette, and prints it without touching the terminal. A non-zero --seed
makes the output reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := a.cfg.PaletteRGB()
			if err != nil {
				return err
			}

			var sampler confetti.Sampler
			if seed != 0 {
				sampler = vmath.NewFastRand(seed)
			}

			batch := confetti.Generate(a.cfg.Confetti.Count, palette, sampler)
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(toParticleDocs(batch)); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "sampler seed, 0 for a random batch")
	return cmd
}
