package domain

import "strings"

// Category is the vault folder a migrated document is filed under
type Category string

// DefaultCategory is returned when no taxonomy rule matches
const DefaultCategory Category = "Misc"

// CategoryRule pairs a category with the keywords that select it
type CategoryRule struct {
	Category Category
	Keywords []string
}

// Taxonomy is evaluated in order; the first rule with a matching keyword wins.
var Taxonomy = []CategoryRule{
	{"Credentials", []string{"password", "credential", "api key", "token", "secret"}},
	{"Compliance", []string{"compliance", "gdpr", "privacy", "legal", "policy"}},
	{"Finance", []string{"invoice", "payment", "revenue", "expense", "budget", "financial"}},
	{"Branding", []string{"brand", "logo", "style guide", "color", "typography"}},
	{"SaaS", []string{"saas", "subscription", "mrr", "churn", "retention"}},
	{"Services", []string{"service", "offering", "deliverable", "scope"}},
	{"Digital", []string{"digital", "website", "seo", "analytics", "marketing"}},
	{"Sales", []string{"sales", "deal", "proposal", "pipeline", "crm"}},
	{"Support", []string{"support", "ticket", "help", "customer service"}},
	{"Metrics", []string{"metric", "kpi", "dashboard", "report", "analytics"}},
	{"Marketing", []string{"marketing", "campaign", "content", "social media"}},
	{"Innovation", []string{"innovation", "research", "experiment", "prototype"}},
	{"Investor", []string{"investor", "funding", "pitch", "term sheet"}},
	{"Team", []string{"team", "org chart", "onboarding", "hr", "hiring"}},
	{"Automations", []string{"automation", "workflow", "zapier", "integration"}},
	{"Business", []string{"business", "strategy", "plan", "roadmap"}},
}

// Classify picks the category for an item from its title and content.
// Matching is plain substring matching, so "hr" also matches "three".
func Classify(title, content string) Category {
	title = strings.ToLower(title)
	content = strings.ToLower(content)

	for _, rule := range Taxonomy {
		for _, keyword := range rule.Keywords {
			if strings.Contains(title, keyword) || strings.Contains(content, keyword) {
				return rule.Category
			}
		}
	}
	return DefaultCategory
}

// Categories returns every label Classify can return, default last
func Categories() []Category {
	categories := make([]Category, 0, len(Taxonomy)+1)
	for _, rule := range Taxonomy {
		categories = append(categories, rule.Category)
	}
	return append(categories, DefaultCategory)
}

// IsKnownCategory reports whether c is a taxonomy label or the default
func IsKnownCategory(c Category) bool {
	for _, known := range Categories() {
		if known == c {
			return true
		}
	}
	return false
}
