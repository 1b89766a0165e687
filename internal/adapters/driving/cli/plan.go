package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
)

var (
	planFrom        string
	planTo          string
	planComplexity  string
	planAreas       []string
	planService     string
	planInteractive bool
	planJSON        bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Draft a cloud migration plan",
	Long: `Builds a migration plan from a source to a target provider.

The plan combines a strategy for the workload complexity, advice for the
target provider, an optional equivalent-service mapping, a phase timeline
and checklists. Guidance is reference material, not a live assessment.

Sources: aws, azure, gcp, on-premise. Targets: AWS, Azure, GCP.
Complexity: simple, medium, complex.
Areas: compute, storage, database, serverless, networking, security.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planFrom, "from", "", "source provider or on-premise (default from settings)")
	planCmd.Flags().StringVar(&planTo, "to", "", "target provider (default from settings)")
	planCmd.Flags().StringVar(&planComplexity, "complexity", "", "simple, medium or complex (default from settings)")
	planCmd.Flags().StringSliceVar(&planAreas, "area", nil, "service areas to migrate")
	planCmd.Flags().StringVar(&planService, "service", "", "service id to map to its target equivalent")
	planCmd.Flags().BoolVarP(&planInteractive, "interactive", "i", false, "answer prompts instead of flags")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(planCmd)
}

// askPlan prompts for the request fields. Replaced in tests.
var askPlan = surveyPlan

func runPlan(cmd *cobra.Command, _ []string) error {
	if plannerService == nil {
		return errors.New("migration planner not configured")
	}

	req := planRequest()
	if planInteractive {
		if err := askPlan(&req); err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
	}

	plan, err := plannerService.Plan(req)
	if err != nil {
		return fmt.Errorf("failed to plan migration: %w", err)
	}

	if wantJSON(planJSON) {
		return printJSON(cmd, plan)
	}

	outputPlan(cmd, plan)
	return nil
}

// planRequest builds the request from flags and planner defaults.
func planRequest() domain.PlanRequest {
	defaults := domain.DefaultAppSettings().Planner
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			defaults = settings.Planner
		}
	}

	req := domain.PlanRequest{
		Source:     defaults.Source,
		Target:     defaults.Target,
		Complexity: defaults.Complexity,
		ServiceID:  planService,
	}
	if planFrom != "" {
		req.Source = planFrom
	}
	if planTo != "" {
		req.Target = domain.ParseProvider(planTo)
	}
	if planComplexity != "" {
		req.Complexity = domain.Complexity(strings.ToLower(planComplexity))
	}
	for _, a := range planAreas {
		req.Areas = append(req.Areas, domain.ServiceArea(strings.ToLower(strings.TrimSpace(a))))
	}
	return req
}

// surveyPlan asks for source, target, complexity and areas.
func surveyPlan(req *domain.PlanRequest) error {
	sources := []string{"aws", "azure", "gcp", domain.OnPremise}
	targets := make([]string, 0, len(domain.AllProviders()))
	for _, p := range domain.AllProviders() {
		targets = append(targets, p.String())
	}
	complexities := make([]string, 0, len(domain.AllComplexities()))
	for _, c := range domain.AllComplexities() {
		complexities = append(complexities, c.String())
	}
	areas := make([]string, 0, len(domain.AllServiceAreas()))
	for _, a := range domain.AllServiceAreas() {
		areas = append(areas, string(a))
	}

	answers := struct {
		Source     string
		Target     string
		Complexity string
		Areas      []string
	}{}

	qs := []*survey.Question{
		{Name: "source", Prompt: &survey.Select{
			Message: "Migrating from:", Options: sources, Default: defaultOption(sources, strings.ToLower(req.Source)),
		}},
		{Name: "target", Prompt: &survey.Select{
			Message: "Migrating to:", Options: targets, Default: defaultOption(targets, req.Target.String()),
		}},
		{Name: "complexity", Prompt: &survey.Select{
			Message: "Workload complexity:", Options: complexities, Default: defaultOption(complexities, req.Complexity.String()),
			Description: func(value string, _ int) string {
				return domain.Complexity(value).Description()
			},
		}},
		{Name: "areas", Prompt: &survey.MultiSelect{
			Message: "Service areas to migrate:", Options: areas,
		}},
	}
	if err := survey.Ask(qs, &answers); err != nil {
		return err
	}

	req.Source = answers.Source
	req.Target = domain.ParseProvider(answers.Target)
	req.Complexity = domain.Complexity(answers.Complexity)
	req.Areas = nil
	for _, a := range answers.Areas {
		req.Areas = append(req.Areas, domain.ServiceArea(a))
	}
	return nil
}

// defaultOption returns value when it is one of options, otherwise nil.
// survey rejects defaults missing from the option list.
func defaultOption(options []string, value string) any {
	if slices.Contains(options, value) {
		return value
	}
	return nil
}

func outputPlan(cmd *cobra.Command, plan *domain.MigrationPlan) {
	source := plan.Request.Source
	if p := domain.ParseProvider(source); p.IsValid() {
		source = p.String()
	}
	title := fmt.Sprintf("Migration plan: %s to %s", source, plan.Request.Target)
	cmd.Println(title)
	cmd.Println(strings.Repeat("=", len(title)))
	cmd.Println()

	s := plan.Strategy
	cmd.Printf("[Strategy: %s]\n", s.Complexity.Description())
	cmd.Printf("  Duration:  %s\n", s.Duration)
	cmd.Printf("  Approach:  %s\n", s.Approach)
	cmd.Printf("  Effort:    %s\n", s.Effort)
	cmd.Printf("  Risk:      %s\n", s.RiskLevel)
	cmd.Printf("  %s\n", s.Description)
	cmd.Println()
	printList(cmd, "Tools", s.Tools)

	printList(cmd, fmt.Sprintf("Why %s", plan.Advice.Provider), plan.Advice.Strengths)
	printList(cmd, "Considerations", plan.Advice.Considerations)

	if len(plan.Request.Areas) > 0 {
		labels := make([]string, len(plan.Request.Areas))
		for i, a := range plan.Request.Areas {
			labels[i] = a.Label()
		}
		cmd.Printf("Service areas: %s\n\n", strings.Join(labels, ", "))
	}

	if m := plan.Mapping; m != nil {
		cmd.Println("[Service mapping]")
		cmd.Printf("  %s (%s) -> %s\n\n", orPlaceholder(m.SourceName), m.SourceID, m.Target)
	}

	cmd.Println("[Timeline]")
	for i, phase := range plan.Timeline {
		cmd.Printf("  %d. %-13s %s\n", i+1, phase.Name, phase.Duration)
	}
	cmd.Println()

	printList(cmd, "Pre-migration checklist", plan.Checklists.PreMigration)
	printList(cmd, "Do", plan.Checklists.Dos)
	printList(cmd, "Don't", plan.Checklists.Donts)
	for _, group := range plan.Checklists.CostTips {
		printList(cmd, group.Title, group.Tips)
	}

	cmd.Printf("Services in scope: %d\n", len(plan.Candidates))
	if plan.Recommendation != "" {
		cmd.Println()
		cmd.Printf("Note: %s\n", plan.Recommendation)
	}
}
