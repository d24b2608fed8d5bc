package mockhook

import (
	_ "embed"
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/the-fine-print/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

// Rule flags a risk when any keyword appears in the contract.
type Rule struct {
	Name        string          `yaml:"name"`
	Severity    model.RiskLevel `yaml:"severity"`
	Description string          `yaml:"description"`
	Mitigation  string          `yaml:"mitigation"`
	Keywords    []string        `yaml:"keywords"`
}

type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// ParseRules decodes a YAML rule set.
func ParseRules(data []byte) ([]Rule, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}

	for i, r := range f.Rules {
		if r.Name == "" {
			return nil, fmt.Errorf("rule %d has no name", i)
		}
		if !r.Severity.IsKnown() {
			return nil, fmt.Errorf("rule %q has unknown severity %q", r.Name, r.Severity)
		}
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("rule %q has no keywords", r.Name)
		}
	}

	return f.Rules, nil
}

// DefaultRules returns the built-in rule set.
func DefaultRules() []Rule {
	rules, err := ParseRules(defaultRules)
	if err != nil {
		panic(err)
	}
	return rules
}

// Match reports whether the lowercased contract text triggers r.
func (r Rule) Match(lowered string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// Assess builds a webhook response for text from rules.
func Assess(text string, rules []Rule) model.WebhookResponse {
	lowered := strings.ToLower(text)

	risks := []model.WebhookRisk{}
	total := 0
	for _, r := range rules {
		if !r.Match(lowered) {
			continue
		}
		risks = append(risks, model.WebhookRisk{
			Name:        r.Name,
			Description: r.Description,
			Severity:    r.Severity,
			Mitigation:  r.Mitigation,
		})
		total += r.Severity.Score()
	}

	return model.WebhookResponse{
		DetectedRisks:   &risks,
		OverallRisk:     overall(risks),
		RiskScore:       math.Min(float64(total)*1.5, 10),
		ConfidenceScore: confidence(len(risks)),
		Summary:         summary(risks),
	}
}

func overall(risks []model.WebhookRisk) model.RiskLevel {
	level := model.RiskLow
	for _, r := range risks {
		if r.Severity.Score() > level.Score() {
			level = r.Severity
		}
	}
	return level
}

func confidence(matches int) float64 {
	return math.Min(70+float64(matches)*5, 95)
}

func summary(risks []model.WebhookRisk) string {
	if len(risks) == 0 {
		return "No common risk patterns were found in this contract."
	}

	names := make([]string, 0, len(risks))
	for _, r := range risks {
		names = append(names, r.Name)
	}
	return fmt.Sprintf("Found %d potential risk(s): %s.", len(risks), strings.Join(names, ", "))
}
