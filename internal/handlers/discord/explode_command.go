package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/kaboom/internal/services/analysis"
	"github.com/bwmarrin/discordgo"
)

// Default sweep grid, matching the tables the analyzer produces
var (
	defaultSweepDieSizes = []int{4, 6, 8, 10, 12}
	defaultSweepTargets  = []int{4, 6, 8, 10}
)

const defaultFixedDieSize = 6

// ExplodeCommand handles the /explode command
type ExplodeCommand struct {
	BaseCommand
	analysisService analysis.Service
}

// NewExplodeCommand creates a new explode command handler
func NewExplodeCommand(analysisService analysis.Service) *ExplodeCommand {
	return &ExplodeCommand{
		BaseCommand: BaseCommand{
			Name:        "explode",
			Description: "Exploding dice probability queries",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "chance",
					Description: "Probability a single exploding die reaches a target",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "die",
							Description: "Number of faces on the die (e.g. 6 for a d6)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "target",
							Description: "Minimum total to reach",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "odds",
					Description: "Probability the max of two exploding dice reaches a target",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "die_a",
							Description: "Faces on the first die",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "die_b",
							Description: "Faces on the second die",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "target",
							Description: "Minimum total to reach",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "expected",
					Description: "Expected total of an exploding die",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "die",
							Description: "Number of faces on the die",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "sweep",
					Description: "Tabulate probabilities over the standard die/target grid",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "kind",
							Description: "What to sweep",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "single die", Value: "single"},
								{Name: "max of two (fixed first die)", Value: "max"},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "fixed_die",
							Description: "Faces on the fixed first die for a max sweep (default 6)",
						},
					},
				},
			},
		},
		analysisService: analysisService,
	}
}

// Handle processes a Discord interaction for the explode command
func (c *ExplodeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	sub := data.Options[0]
	options := subcommandOptions(sub)

	var err error
	switch sub.Name {
	case "chance":
		err = c.handleChance(s, i, options)
	case "odds":
		err = c.handleOdds(s, i, options)
	case "expected":
		err = c.handleExpected(s, i, options)
	case "sweep":
		err = c.handleSweep(s, i, options)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// subcommandOptions maps a subcommand's options by name
func subcommandOptions(sub *discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, opt := range sub.Options {
		options[opt.Name] = opt
	}
	return options
}

// handleChance handles the chance subcommand
func (c *ExplodeCommand) handleChance(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	dieSize := int(options["die"].IntValue())
	target := int(options["target"].IntValue())

	output, err := c.analysisService.QueryProbability(ctx, &analysis.QueryProbabilityInput{
		DieSize: dieSize,
		Target:  target,
	})
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidDieSize) {
			return RespondWithError(s, i, "A die needs at least 2 faces.")
		}
		log.Printf("Error querying probability: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Error computing probability: %v", err))
	}

	return renderProbabilityResponse(s, i, output)
}

// handleOdds handles the odds subcommand
func (c *ExplodeCommand) handleOdds(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	output, err := c.analysisService.QueryMaxProbability(ctx, &analysis.QueryMaxProbabilityInput{
		DieSizeA: int(options["die_a"].IntValue()),
		DieSizeB: int(options["die_b"].IntValue()),
		Target:   int(options["target"].IntValue()),
	})
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidDieSize) {
			return RespondWithError(s, i, "Both dice need at least 2 faces.")
		}
		log.Printf("Error querying max probability: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Error computing probability: %v", err))
	}

	return renderMaxProbabilityResponse(s, i, output)
}

// handleExpected handles the expected subcommand
func (c *ExplodeCommand) handleExpected(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	output, err := c.analysisService.QueryExpectedValue(ctx, &analysis.QueryExpectedValueInput{
		DieSize: int(options["die"].IntValue()),
	})
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidDieSize) {
			return RespondWithError(s, i, "A die needs at least 2 faces.")
		}
		log.Printf("Error querying expected value: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Error computing expected value: %v", err))
	}

	return renderExpectedValueResponse(s, i, output)
}

// handleSweep handles the sweep subcommand
func (c *ExplodeCommand) handleSweep(s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	kind := options["kind"].StringValue()

	switch kind {
	case "single":
		output, err := c.analysisService.SweepSingle(ctx, &analysis.SweepSingleInput{
			DieSizes: defaultSweepDieSizes,
			Targets:  defaultSweepTargets,
		})
		if err != nil {
			log.Printf("Error running single sweep: %v", err)
			return RespondWithError(s, i, fmt.Sprintf("Error running sweep: %v", err))
		}
		return renderSweepResponse(s, i, output.Sweep)

	case "max":
		fixedDieSize := defaultFixedDieSize
		if opt, ok := options["fixed_die"]; ok {
			fixedDieSize = int(opt.IntValue())
		}

		output, err := c.analysisService.SweepMax(ctx, &analysis.SweepMaxInput{
			FixedDieSize: fixedDieSize,
			DieSizes:     defaultSweepDieSizes,
			Targets:      defaultSweepTargets,
		})
		if err != nil {
			if errors.Is(err, analysis.ErrInvalidDieSize) {
				return RespondWithError(s, i, "The fixed die needs at least 2 faces.")
			}
			log.Printf("Error running max sweep: %v", err)
			return RespondWithError(s, i, fmt.Sprintf("Error running sweep: %v", err))
		}
		return renderSweepResponse(s, i, output.Sweep)

	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown sweep kind: %s", kind))
	}
}
