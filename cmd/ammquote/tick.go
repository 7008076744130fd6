package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/tickmath"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/token"
	v3 "github.com/shibaone/shibaswap-v3-sdk/pkg/v3"
)

type tickReport struct {
	Tick         int    `json:"tick"`
	SqrtPriceX96 string `json:"sqrt_price_x96"`
	TickSpacing  int    `json:"tick_spacing,omitempty"`
	UsableTick   *int   `json:"usable_tick,omitempty"`
}

func runTick(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	hasTick := flags.Changed("tick")
	hasSqrt := flags.Changed("sqrt-price")
	if hasTick == hasSqrt {
		return fmt.Errorf("exactly one of --tick or --sqrt-price is required")
	}

	var report tickReport
	if hasTick {
		tick, _ := flags.GetInt("tick")
		sqrtRatio, err := tickmath.GetSqrtRatioAtTick(tick)
		if err != nil {
			return err
		}
		report.Tick = tick
		report.SqrtPriceX96 = sqrtRatio.String()
	} else {
		raw, _ := flags.GetString("sqrt-price")
		sqrtRatio, err := token.ParseInt(raw)
		if err != nil {
			return err
		}
		tick, err := tickmath.GetTickAtSqrtRatio(sqrtRatio)
		if err != nil {
			return err
		}
		report.Tick = tick
		report.SqrtPriceX96 = sqrtRatio.String()
	}

	spacing, err := resolveSpacing(cmd)
	if err != nil {
		return err
	}
	if spacing != 0 {
		usable, err := tickmath.NearestUsableTick(report.Tick, spacing)
		if err != nil {
			return err
		}
		report.TickSpacing = spacing
		report.UsableTick = &usable
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// resolveSpacing returns 0 when neither --tick-spacing nor --fee is set.
func resolveSpacing(cmd *cobra.Command) (int, error) {
	flags := cmd.Flags()
	if flags.Changed("tick-spacing") {
		spacing, _ := flags.GetInt("tick-spacing")
		if spacing <= 0 {
			return 0, fmt.Errorf("%w: %d", tickmath.ErrInvalidTickSpacing, spacing)
		}
		return spacing, nil
	}
	if flags.Changed("fee") {
		raw, _ := flags.GetString("fee")
		fee, err := v3.ParseFeeAmount(raw)
		if err != nil {
			return 0, err
		}
		return fee.TickSpacing()
	}
	return 0, nil
}
