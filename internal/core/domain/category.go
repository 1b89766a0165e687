package domain

import "strings"

const unknownDescription = "Unknown"

// Category is a functional grouping of services.
type Category string

// Supported categories, in display order.
const (
	CategoryCompute    Category = "Compute"
	CategoryStorage    Category = "Storage"
	CategoryDatabase   Category = "Database"
	CategoryNetworking Category = "Networking"
	CategoryAIML       Category = "AI/ML"
	CategorySecurity   Category = "Security"
	CategoryDevOps     Category = "DevOps"
	CategoryServerless Category = "Serverless"
	CategoryContainers Category = "Containers"
	CategoryAnalytics  Category = "Analytics"
)

// AllCategories returns the closed category enumeration in display order.
func AllCategories() []Category {
	return []Category{
		CategoryCompute,
		CategoryStorage,
		CategoryDatabase,
		CategoryNetworking,
		CategoryAIML,
		CategorySecurity,
		CategoryDevOps,
		CategoryServerless,
		CategoryContainers,
		CategoryAnalytics,
	}
}

// IsValid returns true if the category is part of the enumeration.
func (c Category) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// ServiceType returns the functional tag shown next to services of this category.
func (c Category) ServiceType() string {
	switch c {
	case CategoryCompute:
		return "Virtual Machines"
	case CategoryStorage:
		return "Data Storage"
	case CategoryDatabase:
		return "Data Management"
	case CategoryServerless:
		return "Event-Driven"
	case CategoryAIML:
		return "Machine Learning"
	case CategorySecurity:
		return "Access Control"
	case CategoryNetworking:
		return "Network Infrastructure"
	case CategoryDevOps:
		return "Automation"
	case CategoryContainers:
		return "Container Management"
	case CategoryAnalytics:
		return "Data Analytics"
	default:
		return "Cloud Service"
	}
}

// Slug returns the category name usable in a URL path segment ("ai-ml").
func (c Category) Slug() string {
	return strings.ToLower(strings.ReplaceAll(string(c), "/", "-"))
}

// ParseCategory resolves user input case-insensitively, by name ("ai/ml",
// "compute") or slug ("ai-ml"). Unknown input is returned as-is so that
// queries over it yield no records.
func ParseCategory(s string) Category {
	for _, c := range AllCategories() {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Slug()) {
			return c
		}
	}
	return Category(s)
}
