package lights

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"

	"hue-cli/internal/hue"
	"hue-cli/internal/logger"
	"hue-cli/internal/render"
	"hue-cli/internal/service/common"
)

// Options configures the light commands.
type Options struct {
	common.Options

	// ID selects the light for Rename and Blink.
	ID int

	// Name is the new light name for Rename.
	Name string

	// On is the target state for SetAll.
	On bool

	// BlinkInterval overrides the toggle delay, used in tests.
	BlinkInterval time.Duration
}

// defaultBlinkInterval is the toggle delay for the blink command.
const defaultBlinkInterval = 1 * time.Second

// List prints the light table: id, name, reachable and on state.
func List(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "lights")

	client, err := common.Connect(ctx, &opts.Options)
	if err != nil {
		return err
	}

	lights, err := client.GetLights(ctx)
	if err != nil {
		return common.DescribeError(err)
	}

	logger.DebugKV(ctx, "Fetched lights", "count", len(lights))

	table := render.NewTable("id", "name", "reachable", "on")

	rows := lo.Map(lights, func(light hue.Light, _ int) []string {
		return []string{
			strconv.Itoa(light.ID),
			light.Name,
			yesNo(light.State.Reachable),
			onState(light.State.On),
		}
	})
	for _, row := range rows {
		table.AddRow(row...)
	}

	return table.Render(opts.Out)
}

// Rename changes one light's name and prints a confirmation.
func Rename(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "lights")

	client, err := common.Connect(ctx, &opts.Options)
	if err != nil {
		return err
	}

	if err = client.RenameLight(ctx, opts.ID, opts.Name); err != nil {
		return common.DescribeError(err)
	}

	_, _ = fmt.Fprintf(opts.Out, "Set light %d name to %q\n", opts.ID, opts.Name)

	return nil
}

// Blink toggles the light's on state until the context is canceled,
// leaving the light in whatever state the last toggle produced.
func Blink(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "lights")
	ctx = logger.WithKV(ctx, "light_id", opts.ID)

	if opts.BlinkInterval <= 0 {
		opts.BlinkInterval = defaultBlinkInterval
	}

	client, err := common.Connect(ctx, &opts.Options)
	if err != nil {
		return err
	}

	// Fail fast on unknown ids instead of blinking into the void.
	if _, err = client.GetLight(ctx, opts.ID); err != nil {
		return common.DescribeError(err)
	}

	_, _ = fmt.Fprintf(opts.ErrOut, "Blinking light %d, press Ctrl-C to stop\n", opts.ID)

	on := true
	if err = client.SetLightState(ctx, opts.ID, on); err != nil {
		return common.DescribeError(err)
	}

	ticker := time.NewTicker(opts.BlinkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug(ctx, "Blink interrupted, exiting")
			return nil
		case <-ticker.C:
			on = !on

			if err = client.SetLightState(ctx, opts.ID, on); err != nil {
				// Cancellation between the tick and the call is a clean exit.
				if ctx.Err() != nil {
					return nil
				}

				return common.DescribeError(err)
			}
		}
	}
}

// SetAll switches every light on the bridge to the desired state, in id order.
func SetAll(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "lights")

	client, err := common.Connect(ctx, &opts.Options)
	if err != nil {
		return err
	}

	lights, err := client.GetLights(ctx)
	if err != nil {
		return common.DescribeError(err)
	}

	for _, light := range lights {
		if err = client.SetLightState(ctx, light.ID, opts.On); err != nil {
			return common.DescribeError(err)
		}
	}

	state := "off"
	if opts.On {
		state = "on"
	}

	ids := lo.Map(lights, func(light hue.Light, _ int) int {
		return light.ID
	})
	logger.DebugKV(ctx, "Switched lights", "state", state, "ids", ids)

	noun := "lights"
	if len(lights) == 1 {
		noun = "light"
	}

	_, _ = fmt.Fprintf(opts.Out, "Turned %d %s %s\n", len(lights), noun, state)

	return nil
}

// yesNo renders a boolean the way the table expects it.
func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}

// onState renders the optional on field, "-" when the bridge omits it.
func onState(on *bool) string {
	if on == nil {
		return "-"
	}

	return yesNo(*on)
}
