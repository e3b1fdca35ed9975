// CLI tool to compute daily calorie and macro targets from a body profile.
// Any field not given as a flag is prompted for on stdin.
// Usage: go run ./cmd/macro-calc --gender male --height 170 --weight 70 --age 25 --activity moderate --goal maintain
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"lg/macro-tracker-api/macro"
)

// calcOptions holds the raw flag values; empty means "prompt for it".
type calcOptions struct {
	raw  macro.RawProfile
	json bool
}

func main() {
	// Optional .env may hold MACRO_CALC_* defaults.
	_ = godotenv.Load()

	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var opts calcOptions
	cmd := &cobra.Command{
		Use:           "macro-calc",
		Short:         "Compute daily calorie and macronutrient targets",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(in, out, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.raw.Gender, "gender", os.Getenv("MACRO_CALC_GENDER"), "male or female")
	f.StringVar(&opts.raw.Height, "height", os.Getenv("MACRO_CALC_HEIGHT"), "height in cm")
	f.StringVar(&opts.raw.Weight, "weight", os.Getenv("MACRO_CALC_WEIGHT"), "weight in kg")
	f.StringVar(&opts.raw.Age, "age", os.Getenv("MACRO_CALC_AGE"), "age in years")
	f.StringVar(&opts.raw.ActivityLevel, "activity", os.Getenv("MACRO_CALC_ACTIVITY"), "sedentary, light, moderate, active or very_active")
	f.StringVar(&opts.raw.Goal, "goal", os.Getenv("MACRO_CALC_GOAL"), "lose, maintain or gain")
	f.BoolVar(&opts.json, "json", false, "print the plan and summary as JSON")
	return cmd
}

// runCalc fills missing fields from in, computes the plan and writes it to out.
func runCalc(in io.Reader, out io.Writer, opts calcOptions) error {
	reader := bufio.NewReader(in)
	raw := opts.raw
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Gender (male/female)", &raw.Gender},
		{"Height (cm)", &raw.Height},
		{"Weight (kg)", &raw.Weight},
		{"Age (years)", &raw.Age},
		{"Activity level (sedentary/light/moderate/active/very_active)", &raw.ActivityLevel},
		{"Goal (lose/maintain/gain)", &raw.Goal},
	}
	for _, p := range prompts {
		if strings.TrimSpace(*p.dst) != "" {
			continue
		}
		fmt.Fprintf(out, "%s: ", p.label)
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read %s: %w", p.label, err)
		}
		*p.dst = strings.TrimSpace(line)
	}

	profile, err := macro.ParseProfile(raw)
	if err != nil {
		return err
	}
	plan, err := macro.Compute(profile)
	if err != nil {
		return err
	}
	summary := macro.Summarize(plan)

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Plan    macro.Plan    `json:"plan"`
			Summary macro.Summary `json:"summary"`
		}{plan, summary})
	}
	return printPlan(out, plan, summary)
}

// printPlan writes a human-readable plan table.
func printPlan(out io.Writer, plan macro.Plan, s macro.Summary) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nYour Macro Plan (%s)\n", s.GoalLabel)
	fmt.Fprintf(tw, "  Calories:\t%d kcal/day\n", plan.Calories)
	fmt.Fprintf(tw, "  Protein:\t%d g\t%d kcal\t%d%%\n", s.Protein.Grams, s.Protein.Kcal, s.Protein.Percent)
	fmt.Fprintf(tw, "  Carbs:\t%d g\t%d kcal\t%d%%\n", s.Carbs.Grams, s.Carbs.Kcal, s.Carbs.Percent)
	fmt.Fprintf(tw, "  Fat:\t%d g\t%d kcal\t%d%%\n", s.Fat.Grams, s.Fat.Kcal, s.Fat.Percent)
	fmt.Fprintf(tw, "  Meals:\t%d per day\t~%d kcal each\n", plan.MealsPerDay, s.CaloriesPerMeal)
	fmt.Fprintf(tw, "  BMR:\t%d kcal\n", plan.BMR)
	fmt.Fprintf(tw, "  TDEE:\t%d kcal\n", plan.TDEE)
	fmt.Fprintf(tw, "  Water:\t%d L/day\n", s.WaterLiters)
	fmt.Fprintf(tw, "  Fiber:\t%d g/day\n", s.FiberG)
	fmt.Fprintf(tw, "  Activity level:\t%s\n", plan.ActivityLevel)
	return tw.Flush()
}
