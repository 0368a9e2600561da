package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jenilutfifauzi/dockbar/audit"
	"github.com/jenilutfifauzi/dockbar/config"
	"github.com/jenilutfifauzi/dockbar/theme"
)

var (
	auditTheme     string
	auditAllThemes bool
	auditLevel     string
	auditLargeText bool
	auditFormat    string
	auditOut       string
	auditSave      bool
	auditKeep      int
	auditDB        string
	auditBaseline  string
	auditFailOn    string
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check the configured bar against WCAG contrast rules",
	Long: `Audits the configured items and theme: text and badge contrast,
focus visibility, active-state distinction, labels, icons, overflow, and
route overlaps. Reports render as markdown, JSON, or HTML, and runs can
be recorded for baseline comparison.`,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&auditTheme, "theme", "",
		"audit a built-in theme instead of the configured one")
	auditCmd.Flags().BoolVar(&auditAllThemes, "all-themes", false,
		"audit every built-in theme and print one summary line each")
	auditCmd.Flags().StringVar(&auditLevel, "level", "", "conformance level: AA or AAA")
	auditCmd.Flags().BoolVar(&auditLargeText, "large-text", false,
		"use the relaxed contrast thresholds for large text")
	auditCmd.Flags().StringVar(&auditFormat, "format", "markdown",
		"report format: markdown, json, or html")
	auditCmd.Flags().StringVarP(&auditOut, "out", "o", "",
		"write the report to a file instead of stdout")
	auditCmd.Flags().BoolVar(&auditSave, "save", false,
		"record the run in the audit history database")
	auditCmd.Flags().IntVar(&auditKeep, "keep", 0,
		"with --save, prune history to the newest N runs (0 keeps all)")
	auditCmd.Flags().StringVar(&auditDB, "db", "",
		"audit history database path (default: XDG data dir)")
	auditCmd.Flags().StringVar(&auditBaseline, "baseline", "",
		"compare against a stored run ID, or \"latest\"")
	auditCmd.Flags().StringVar(&auditFailOn, "fail-on", "",
		"exit non-zero at this severity: error or warning")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	setup, err := audit.FromConfig(cfg)
	if err != nil {
		return err
	}
	if err := applyAuditFlags(&setup); err != nil {
		return err
	}

	failOn := cfg.Audit.FailOn
	if auditFailOn != "" {
		failOn = auditFailOn
	}
	threshold, err := audit.ParseSeverity(failOn)
	if err != nil {
		return err
	}

	if auditAllThemes {
		if auditBaseline != "" || auditOut != "" {
			return fmt.Errorf("--all-themes cannot be combined with --baseline or --out")
		}
		return auditAllBuiltins(setup, threshold)
	}

	report := audit.Run(setup)
	if err := renderReport(report); err != nil {
		return err
	}

	if auditSave || auditBaseline != "" {
		if err := recordRun(report); err != nil {
			return err
		}
	}

	if report.Failed(threshold) {
		fmt.Fprintf(os.Stderr, "audit failed: %s\n", report.Summary())
		os.Exit(1)
	}
	return nil
}

func applyAuditFlags(setup *audit.Setup) error {
	if auditTheme != "" {
		th, ok := theme.ByName(auditTheme)
		if !ok {
			return fmt.Errorf("unknown theme %q: have %s",
				auditTheme, strings.Join(theme.Names(), ", "))
		}
		setup.Theme = &th
	}
	if auditLevel != "" {
		switch l := theme.Level(strings.ToUpper(auditLevel)); l {
		case theme.AA, theme.AAA:
			setup.Level = l
		default:
			return fmt.Errorf("invalid level %q: must be AA or AAA", auditLevel)
		}
	}
	if auditLargeText {
		setup.LargeText = true
	}
	return nil
}

// auditAllBuiltins runs the same item set against every built-in theme.
func auditAllBuiltins(setup audit.Setup, threshold audit.Severity) error {
	names := theme.Names()
	bar := progressbar.NewOptions(len(names),
		progressbar.OptionSetDescription("Auditing themes"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	failed := false
	lines := make([]string, 0, len(names))
	for _, name := range names {
		bar.Describe("Auditing " + name)
		th, _ := theme.ByName(name)
		s := setup
		s.Theme = &th
		report := audit.Run(s)
		if auditSave {
			if err := recordRun(report); err != nil {
				return err
			}
		}
		if report.Failed(threshold) {
			failed = true
		}
		lines = append(lines, fmt.Sprintf("%-10s %s", name, report.Summary()))
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	for _, l := range lines {
		fmt.Println(l)
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

func renderReport(r *audit.Report) error {
	var data []byte
	switch auditFormat {
	case "markdown", "md":
		data = []byte(r.Markdown())
	case "json":
		b, err := r.JSON()
		if err != nil {
			return err
		}
		data = b
	case "html":
		b, err := r.HTML()
		if err != nil {
			return err
		}
		data = b
	default:
		return fmt.Errorf("unknown format %q: must be markdown, json, or html", auditFormat)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	if auditOut != "" {
		if err := os.WriteFile(auditOut, data, 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", auditOut)
		return nil
	}
	_, err := os.Stdout.Write(data)
	return err
}

// recordRun handles --baseline and --save against the history store. The
// baseline comparison runs before saving, so "--baseline latest --save"
// compares against the previous run, not the one being recorded.
func recordRun(report *audit.Report) error {
	ctx := context.Background()
	store, err := audit.OpenStore(auditDB)
	if err != nil {
		return fmt.Errorf("opening audit history: %w", err)
	}
	defer store.Close()

	if auditBaseline != "" {
		if err := compareBaseline(ctx, store, report); err != nil {
			return err
		}
	}
	if auditSave {
		if err := store.SaveReport(ctx, report); err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Run %s recorded\n", report.ID)
		if auditKeep > 0 {
			if err := store.Prune(ctx, auditKeep); err != nil {
				return fmt.Errorf("pruning history: %w", err)
			}
		}
	}
	return nil
}

func compareBaseline(ctx context.Context, store *audit.Store, report *audit.Report) error {
	var base *audit.Report
	var err error
	if auditBaseline == "latest" {
		base, err = store.Latest(ctx, report.Theme)
	} else {
		base, err = store.Report(ctx, auditBaseline)
	}
	if err != nil {
		return fmt.Errorf("loading baseline: %w", err)
	}

	introduced, fixed := audit.Diff(base, report)
	if len(introduced) == 0 && len(fixed) == 0 {
		fmt.Fprintf(os.Stderr, "No changes against baseline %s\n", base.ID)
		return nil
	}
	for _, f := range introduced {
		fmt.Fprintf(os.Stderr, "new:   %s\n", describeFinding(f))
	}
	for _, f := range fixed {
		fmt.Fprintf(os.Stderr, "fixed: %s\n", describeFinding(f))
	}
	return nil
}

func describeFinding(f audit.Finding) string {
	s := fmt.Sprintf("[%s] %s", f.Severity, f.Check)
	if f.Subject != "" {
		s += " " + f.Subject
	}
	return s + ": " + f.Message
}
