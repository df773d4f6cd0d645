package catalog

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
	catalogrepo "github.com/KirkDiggler/madking-api/internal/repositories/catalog"
	"github.com/KirkDiggler/madking-api/internal/services/catalog"
)

// maxBackgroundConnections is how many origin connections a background
// carries
const maxBackgroundConnections = 2

// BackgroundConfig holds the dependencies for background generation
type BackgroundConfig struct {
	OriginRepo catalogrepo.Repository[*entities.Origin]
	DiceRoller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *BackgroundConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.OriginRepo == nil {
		vb.RequiredField("OriginRepo")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}

	return vb.Build()
}

// BackgroundOrchestrator implements catalog.BackgroundService
type BackgroundOrchestrator struct {
	originRepo catalogrepo.Repository[*entities.Origin]
	roller     dice.Roller
}

// NewBackground creates a new background orchestrator
func NewBackground(cfg *BackgroundConfig) (*BackgroundOrchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &BackgroundOrchestrator{
		originRepo: cfg.OriginRepo,
		roller:     cfg.DiceRoller,
	}, nil
}

var _ catalog.BackgroundService = (*BackgroundOrchestrator)(nil)

// GenerateBackground picks one personality trait, ideal, bond, flaw and
// motivation from the origin, rolls starting wealth within its range and
// attaches its first connections. Empty lists leave their field empty.
func (o *BackgroundOrchestrator) GenerateBackground(
	ctx context.Context,
	input *catalog.GenerateBackgroundInput,
) (*catalog.GenerateBackgroundOutput, error) {
	if input == nil || input.OriginID == "" {
		return nil, errors.InvalidArgument("origin ID is required")
	}

	out, err := o.originRepo.Get(ctx, catalogrepo.GetInput{ID: input.OriginID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get origin %s", input.OriginID)
	}
	origin := out.Entry

	bg := &entities.Background{
		OriginID:    origin.ID,
		Connections: []entities.Connection{},
	}

	if bg.PersonalityTrait, err = pick(o.roller, origin.PersonalityTraits); err != nil {
		return nil, err
	}
	if bg.Bond, err = pick(o.roller, origin.Bonds); err != nil {
		return nil, err
	}
	if bg.Flaw, err = pick(o.roller, origin.Flaws); err != nil {
		return nil, err
	}
	if bg.Motivation, err = pick(o.roller, origin.Motivations); err != nil {
		return nil, err
	}
	if len(origin.Ideals) > 0 {
		ideal, err := pick(o.roller, origin.Ideals)
		if err != nil {
			return nil, err
		}
		bg.Ideal = &ideal
	}

	if bg.StartingWealth, err = rollWealth(o.roller, origin.StartingWealth); err != nil {
		return nil, err
	}

	n := min(len(origin.Connections), maxBackgroundConnections)
	bg.Connections = append(bg.Connections, origin.Connections[:n]...)

	return &catalog.GenerateBackgroundOutput{Background: bg}, nil
}

// pick returns a random element, or the zero value for an empty list
func pick[E any](roller dice.Roller, list []E) (E, error) {
	var zero E
	if len(list) == 0 {
		return zero, nil
	}

	roll, err := roller.Roll(len(list))
	if err != nil {
		return zero, errors.Wrap(err, "failed to roll background")
	}
	return list[roll-1], nil
}

// rollWealth returns a value in [min, max]
func rollWealth(roller dice.Roller, wealth entities.WealthRange) (int, error) {
	spread := wealth.Max - wealth.Min
	if spread <= 0 {
		return wealth.Min, nil
	}

	roll, err := roller.Roll(spread + 1)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll starting wealth")
	}
	return wealth.Min + roll - 1, nil
}
