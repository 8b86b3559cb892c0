package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/coolbeans/edtf/pkg/edtf"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "edtf",
		Short: "EDTF Level 1 toolkit",
		Long: `Parse, validate, format and iterate Extended Date/Time Format
(EDTF) Level 1 values.

Supported forms:
  - Dates with partial precision: 2019, 2019-08, 201X, 2019-XX
  - Certainty markers: 1984?, 2004-06~, 2019-07-09%
  - Intervals: 1964/2008, 2019/.., /1985
  - Timestamps: 2019-07-15T01:56:00Z
  - Scientific years: Y170000002, Y17E7S3, 1950S2`,
		Version: version,
	}

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(formatCmd())
	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(iterateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [value]...",
		Short: "Validate EDTF values",
		Long: `Validate EDTF values given as arguments, or one per line from a
file.

Example:
  edtf validate 2019-XX "1984?" 2003-02-29
  edtf validate --file dates.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			quiet, _ := cmd.Flags().GetBool("quiet")

			inputs := args
			if file != "" {
				lines, err := readLines(file)
				if err != nil {
					return err
				}
				inputs = append(inputs, lines...)
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no values given; pass arguments or --file")
			}

			bad := 0
			for _, input := range inputs {
				_, err := edtf.Parse(input)
				switch {
				case err == nil:
					if !quiet {
						fmt.Printf("ok       %s\n", input)
					}
				case errors.Is(err, edtf.ErrOutOfRange):
					bad++
					fmt.Printf("range    %s\n", input)
				default:
					bad++
					fmt.Printf("invalid  %s\n", input)
				}
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d values failed validation", bad, len(inputs))
			}
			return nil
		},
	}
	cmd.Flags().String("file", "", "read values from a file, one per line")
	cmd.Flags().Bool("quiet", false, "only report failures")
	return cmd
}

func formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format [value]...",
		Short: "Parse values and print their canonical text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, input := range args {
				v, err := edtf.Parse(input)
				if err != nil {
					return fmt.Errorf("parse %q: %w", input, err)
				}
				fmt.Println(v)
			}
			return nil
		},
	}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [value]",
		Short: "Describe the structure of an EDTF value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := edtf.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			inspect(v)
			return nil
		},
	}
}

func inspect(v edtf.Edtf) {
	switch v.Kind() {
	case edtf.KindDate:
		d, _ := v.AsDate()
		inspectDate("date", d)
	case edtf.KindDateTime:
		dt, _ := v.AsDateTime()
		fmt.Printf("kind:      datetime\n")
		fmt.Printf("date:      %s\n", dt.Date())
		fmt.Printf("time:      %s\n", dt.Time())
		fmt.Printf("utc:       %s\n", dt.AsTime().UTC().Format("2006-01-02T15:04:05Z"))
	case edtf.KindYYear:
		y, _ := v.AsYYear()
		fmt.Printf("kind:      scientific year\n")
		fmt.Printf("value:     %d\n", y.Value())
		if exp, ok := y.Exponent(); ok {
			fmt.Printf("exponent:  %d\n", exp)
		}
		if sig, ok := y.SignificantDigits(); ok {
			min, max := y.Range()
			fmt.Printf("sig:       %d (denotes %d..%d)\n", sig, min, max)
		}
	case edtf.KindInterval:
		from, to, _ := v.AsInterval()
		fmt.Printf("kind:      interval\n")
		inspectDate("from", from)
		inspectDate("to", to)
	case edtf.KindIntervalFrom:
		from, term, _ := v.AsIntervalFrom()
		fmt.Printf("kind:      interval (%s right side)\n", terminalName(term))
		inspectDate("from", from)
	case edtf.KindIntervalTo:
		term, to, _ := v.AsIntervalTo()
		fmt.Printf("kind:      interval (%s left side)\n", terminalName(term))
		inspectDate("to", to)
	}
}

func terminalName(t edtf.Terminal) string {
	if t == edtf.TerminalOpen {
		return "open"
	}
	return "unknown"
}

func inspectDate(label string, d edtf.Date) {
	fmt.Printf("%-10s %s\n", label+":", d)
	p := d.Precision()
	fmt.Printf("precision: %s\n", precisionName(p))
	if c := d.Certainty(); c != edtf.Certain {
		fmt.Printf("certainty: %s\n", certaintyName(c))
	}
}

func precisionName(p edtf.Precision) string {
	switch p.Kind {
	case edtf.PrecisionCentury:
		return fmt.Sprintf("century starting %d", p.Year)
	case edtf.PrecisionDecade:
		return fmt.Sprintf("decade starting %d", p.Year)
	case edtf.PrecisionYear:
		return fmt.Sprintf("year %d", p.Year)
	case edtf.PrecisionSeason:
		return fmt.Sprintf("%s of %d", p.Season, p.Year)
	case edtf.PrecisionMonth:
		return fmt.Sprintf("month %d-%02d", p.Year, p.Month)
	case edtf.PrecisionDay:
		return fmt.Sprintf("day %d-%02d-%02d", p.Year, p.Month, p.Day)
	case edtf.PrecisionMonthOfYear:
		return fmt.Sprintf("unspecified month of %d", p.Year)
	case edtf.PrecisionDayOfYear:
		return fmt.Sprintf("unspecified day of %d", p.Year)
	case edtf.PrecisionDayOfMonth:
		return fmt.Sprintf("unspecified day of %d-%02d", p.Year, p.Month)
	default:
		return "unknown"
	}
}

func certaintyName(c edtf.Certainty) string {
	switch c {
	case edtf.Uncertain:
		return "uncertain (?)"
	case edtf.Approximate:
		return "approximate (~)"
	case edtf.ApproximateUncertain:
		return "approximate and uncertain (%)"
	default:
		return "certain"
	}
}

func iterateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iterate [interval]",
		Short: "Walk a closed interval at a chosen granularity",
		Long: `Walk a closed interval at a chosen granularity, or at the finest
granularity both endpoints support.

Example:
  edtf iterate 1783-06-28/1783-07-03
  edtf iterate --step year --reverse 1980/1989
  edtf iterate --step day --limit 10 2020-XX-XX`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			step, _ := cmd.Flags().GetString("step")
			reverse, _ := cmd.Flags().GetBool("reverse")
			limit, _ := cmd.Flags().GetInt("limit")

			v, err := edtf.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}

			// A single masked date is its own implicit interval.
			if d, ok := v.AsDate(); ok {
				return iterateDate(d, step, reverse, limit)
			}

			s, err := smallestFor(v, step)
			if err != nil {
				return err
			}
			printStep(s, reverse, limit)
			return nil
		},
	}
	cmd.Flags().String("step", "smallest", "granularity: century, decade, year, month, day or smallest")
	cmd.Flags().Bool("reverse", false, "walk from the back")
	cmd.Flags().Int("limit", 0, "stop after this many values (0 = no limit)")
	return cmd
}

func smallestFor(v edtf.Edtf, step string) (edtf.SmallestStep, error) {
	switch step {
	case "smallest":
		return v.IterSmallest()
	case "century":
		it, ok := v.IterCenturies()
		if !ok {
			return edtf.SmallestStep{}, fmt.Errorf("cannot iterate %s at century granularity", v)
		}
		return edtf.SmallestStep{Size: edtf.StepCentury, Centuries: it}, nil
	case "decade":
		it, ok := v.IterDecades()
		if !ok {
			return edtf.SmallestStep{}, fmt.Errorf("cannot iterate %s at decade granularity", v)
		}
		return edtf.SmallestStep{Size: edtf.StepDecade, Decades: it}, nil
	case "year":
		it, ok := v.IterYears()
		if !ok {
			return edtf.SmallestStep{}, fmt.Errorf("cannot iterate %s at year granularity", v)
		}
		return edtf.SmallestStep{Size: edtf.StepYear, Years: it}, nil
	case "month":
		it, ok := v.IterMonths()
		if !ok {
			return edtf.SmallestStep{}, fmt.Errorf("cannot iterate %s at month granularity", v)
		}
		return edtf.SmallestStep{Size: edtf.StepMonth, Months: it}, nil
	case "day":
		it, ok := v.IterDays()
		if !ok {
			return edtf.SmallestStep{}, fmt.Errorf("cannot iterate %s at day granularity", v)
		}
		return edtf.SmallestStep{Size: edtf.StepDay, Days: it}, nil
	default:
		return edtf.SmallestStep{}, fmt.Errorf("unknown granularity %q", step)
	}
}

func iterateDate(d edtf.Date, step string, reverse bool, limit int) error {
	switch step {
	case "day", "smallest":
		it, ok := d.IterPossibleDays()
		if !ok {
			return fmt.Errorf("cannot expand %s into days", d)
		}
		printStep(edtf.SmallestStep{Size: edtf.StepDay, Days: it}, reverse, limit)
		return nil
	case "month":
		it, ok := d.IterPossibleMonths()
		if !ok {
			return fmt.Errorf("cannot expand %s into months", d)
		}
		printStep(edtf.SmallestStep{Size: edtf.StepMonth, Months: it}, reverse, limit)
		return nil
	default:
		return fmt.Errorf("a single date expands at day or month granularity, not %q", step)
	}
}

func printStep(s edtf.SmallestStep, reverse bool, limit int) {
	n := 0
	emit := func(line string) bool {
		fmt.Println(line)
		n++
		return limit == 0 || n < limit
	}
	switch s.Size {
	case edtf.StepCentury, edtf.StepDecade, edtf.StepYear:
		next := yearsNext(s)
		for y, ok := next(reverse); ok; y, ok = next(reverse) {
			if !emit(fmt.Sprintf("%d", y)) {
				return
			}
		}
	case edtf.StepMonth:
		for {
			ym, ok := monthsNext(s.Months, reverse)
			if !ok {
				return
			}
			if !emit(fmt.Sprintf("%d-%02d", ym.Year, ym.Month)) {
				return
			}
		}
	case edtf.StepDay:
		for {
			var d edtf.DateComplete
			var ok bool
			if reverse {
				d, ok = s.Days.NextBack()
			} else {
				d, ok = s.Days.Next()
			}
			if !ok {
				return
			}
			if !emit(d.String()) {
				return
			}
		}
	}
}

func yearsNext(s edtf.SmallestStep) func(bool) (int32, bool) {
	return func(reverse bool) (int32, bool) {
		switch s.Size {
		case edtf.StepCentury:
			if reverse {
				return s.Centuries.NextBack()
			}
			return s.Centuries.Next()
		case edtf.StepDecade:
			if reverse {
				return s.Decades.NextBack()
			}
			return s.Decades.Next()
		default:
			if reverse {
				return s.Years.NextBack()
			}
			return s.Years.Next()
		}
	}
}

func monthsNext(it *edtf.YearMonthIter, reverse bool) (edtf.YearMonth, bool) {
	if reverse {
		return it.NextBack()
	}
	return it.Next()
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}
