package builtin

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/ports/driven"
)

//go:embed guidance.yaml
var guidanceYAML []byte

// Ensure GuidanceSource implements the interface.
var _ driven.GuidanceSource = (*GuidanceSource)(nil)

type strategyEntry struct {
	Duration    string   `yaml:"duration"`
	Approach    string   `yaml:"approach"`
	Description string   `yaml:"description"`
	Effort      string   `yaml:"effort"`
	RiskLevel   string   `yaml:"risk_level"`
	Tools       []string `yaml:"tools"`
}

type adviceEntry struct {
	Strengths      []string `yaml:"strengths"`
	Considerations []string `yaml:"considerations"`
}

type tipGroupEntry struct {
	Title string   `yaml:"title"`
	Tips  []string `yaml:"tips"`
}

type guidanceDoc struct {
	Strategies  map[string]strategyEntry     `yaml:"strategies"`
	Advice      map[string]adviceEntry       `yaml:"advice"`
	Equivalents map[string]map[string]string `yaml:"equivalents"`
	Checklists  struct {
		PreMigration []string        `yaml:"pre_migration"`
		Dos          []string        `yaml:"dos"`
		Donts        []string        `yaml:"donts"`
		CostTips     []tipGroupEntry `yaml:"cost_tips"`
	} `yaml:"checklists"`
}

// GuidanceSource serves the canned migration guidance.
type GuidanceSource struct {
	doc guidanceDoc
}

// NewGuidanceSource parses the embedded guidance tables.
func NewGuidanceSource() (*GuidanceSource, error) {
	var doc guidanceDoc
	if err := yaml.Unmarshal(guidanceYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse guidance: %w", err)
	}
	return &GuidanceSource{doc: doc}, nil
}

// MustGuidanceSource is NewGuidanceSource for wiring code; it panics on
// malformed embedded data.
func MustGuidanceSource() *GuidanceSource {
	g, err := NewGuidanceSource()
	if err != nil {
		panic(err)
	}
	return g
}

// Strategy returns the strategy for a complexity level.
func (g *GuidanceSource) Strategy(c domain.Complexity) (domain.MigrationStrategy, bool) {
	e, ok := g.doc.Strategies[c.String()]
	if !ok {
		return domain.MigrationStrategy{}, false
	}
	return domain.MigrationStrategy{
		Complexity:  c,
		Duration:    e.Duration,
		Approach:    e.Approach,
		Description: e.Description,
		Effort:      e.Effort,
		RiskLevel:   e.RiskLevel,
		Tools:       copyStrings(e.Tools),
	}, true
}

// Advice returns the strengths and considerations of a target provider.
func (g *GuidanceSource) Advice(p domain.Provider) (domain.ProviderAdvice, bool) {
	e, ok := g.doc.Advice[p.Key()]
	if !ok {
		return domain.ProviderAdvice{}, false
	}
	return domain.ProviderAdvice{
		Provider:       p,
		Strengths:      copyStrings(e.Strengths),
		Considerations: copyStrings(e.Considerations),
	}, true
}

// Equivalent returns the target-provider service matching sourceID.
func (g *GuidanceSource) Equivalent(sourceID string, target domain.Provider) (string, bool) {
	name, ok := g.doc.Equivalents[sourceID][target.Key()]
	return name, ok
}

// Checklists returns the checklists shared by every plan.
func (g *GuidanceSource) Checklists() domain.Checklists {
	c := domain.Checklists{
		PreMigration: copyStrings(g.doc.Checklists.PreMigration),
		Dos:          copyStrings(g.doc.Checklists.Dos),
		Donts:        copyStrings(g.doc.Checklists.Donts),
	}
	for _, group := range g.doc.Checklists.CostTips {
		c.CostTips = append(c.CostTips, domain.TipGroup{Title: group.Title, Tips: copyStrings(group.Tips)})
	}
	return c
}

func copyStrings(s []string) []string {
	return append([]string(nil), s...)
}
