package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/kaboom/internal/models"
	"github.com/KirkDiggler/kaboom/internal/services/analysis"
	"github.com/bwmarrin/discordgo"
)

// renderProbabilityResponse renders a single-die probability result
func renderProbabilityResponse(s *discordgo.Session, i *discordgo.InteractionCreate, output *analysis.QueryProbabilityOutput) error {
	description := fmt.Sprintf("A d%d totals **%d or more** with probability **%.2f%%**.",
		output.DieSize, output.Target, output.Probability*100)

	if output.Truncated {
		description += "\n⚠️ The computation hit its depth ceiling; the true probability is at least this large."
	}

	return RespondWithEmbed(s, i, fmt.Sprintf("🎲 Exploding d%d vs %d", output.DieSize, output.Target), description, nil)
}

// renderMaxProbabilityResponse renders a max-of-two probability result
func renderMaxProbabilityResponse(s *discordgo.Session, i *discordgo.InteractionCreate, output *analysis.QueryMaxProbabilityOutput) error {
	description := fmt.Sprintf("The higher of a d%d and a d%d totals **%d or more** with probability **%.2f%%**.",
		output.DieSizeA, output.DieSizeB, output.Target, output.Probability*100)

	if output.Truncated {
		description += "\n⚠️ The computation hit its depth ceiling; the true probability is at least this large."
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   fmt.Sprintf("d%d alone", output.DieSizeA),
			Value:  fmt.Sprintf("%.2f%%", output.ProbabilityA*100),
			Inline: true,
		},
		{
			Name:   fmt.Sprintf("d%d alone", output.DieSizeB),
			Value:  fmt.Sprintf("%.2f%%", output.ProbabilityB*100),
			Inline: true,
		},
	}

	return RespondWithEmbed(s, i, fmt.Sprintf("🎲 max(d%d, d%d) vs %d", output.DieSizeA, output.DieSizeB, output.Target), description, fields)
}

// renderExpectedValueResponse renders an expected-value result
func renderExpectedValueResponse(s *discordgo.Session, i *discordgo.InteractionCreate, output *analysis.QueryExpectedValueOutput) error {
	description := fmt.Sprintf("An exploding d%d totals **%.3f** on average.",
		output.DieSize, output.ExpectedValue)

	return RespondWithEmbed(s, i, fmt.Sprintf("🎲 Expected value of d%d", output.DieSize), description, nil)
}

// renderSweepResponse renders a sweep as a monospace table
func renderSweepResponse(s *discordgo.Session, i *discordgo.InteractionCreate, sweep *models.Sweep) error {
	var title string
	if sweep.Kind == models.SweepKindMax {
		title = fmt.Sprintf("🎲 P(max(d%d, dX) ≥ target)", sweep.FixedDieSize)
	} else {
		title = "🎲 P(dX ≥ target)"
	}

	description := fmt.Sprintf("```\n%s```", formatSweepTable(sweep))
	if sweep.Truncated {
		description += "\n⚠️ Some cells hit the depth ceiling and under-count their true probability."
	}

	return RespondWithEmbed(s, i, title, description, nil)
}

// formatSweepTable renders a sweep's cells as a plain-text table, one row
// per die size and one column per target
func formatSweepTable(sweep *models.Sweep) string {
	var b strings.Builder

	// Header
	b.WriteString(fmt.Sprintf("%-8s", "Die"))
	for _, target := range sweep.Targets {
		b.WriteString(fmt.Sprintf(" | %7s", fmt.Sprintf(">=%d", target)))
	}
	b.WriteString("\n")

	// Separator
	b.WriteString(strings.Repeat("-", 8))
	for range sweep.Targets {
		b.WriteString("-+-" + strings.Repeat("-", 7))
	}
	b.WriteString("\n")

	// Data rows
	for _, dieSize := range sweep.DieSizes {
		label := fmt.Sprintf("d%d", dieSize)
		if sweep.Kind == models.SweepKindMax {
			label = fmt.Sprintf("d%d+d%d", sweep.FixedDieSize, dieSize)
		}
		b.WriteString(fmt.Sprintf("%-8s", label))

		for _, target := range sweep.Targets {
			prob, ok := sweep.Cell(dieSize, target)
			if !ok {
				b.WriteString(fmt.Sprintf(" | %7s", "-"))
				continue
			}
			b.WriteString(fmt.Sprintf(" | %6.2f%%", prob*100))
		}
		b.WriteString("\n")
	}

	return b.String()
}
