package domain

import "strings"

// Wildcard matches every provider or category in a search.
const Wildcard = "all"

// Provider identifies the cloud vendor offering a service.
type Provider string

// Supported providers, in display order.
const (
	ProviderAWS   Provider = "AWS"
	ProviderAzure Provider = "Azure"
	ProviderGCP   Provider = "GCP"
)

// AllProviders returns the closed provider enumeration in display order.
func AllProviders() []Provider {
	return []Provider{ProviderAWS, ProviderAzure, ProviderGCP}
}

// IsValid returns true if the provider is part of the enumeration.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderAWS, ProviderAzure, ProviderGCP:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Provider) String() string {
	return string(p)
}

// Key returns the lowercase identifier used in flags and config ("aws").
func (p Provider) Key() string {
	return strings.ToLower(string(p))
}

// Description returns the provider's full name.
func (p Provider) Description() string {
	switch p {
	case ProviderAWS:
		return "Amazon Web Services"
	case ProviderAzure:
		return "Microsoft Azure"
	case ProviderGCP:
		return "Google Cloud Platform"
	default:
		return unknownDescription
	}
}

// ParseProvider resolves user input case-insensitively ("aws", "AWS", "gcp").
// Unknown input is returned as-is so that queries over it yield no records.
func ParseProvider(s string) Provider {
	for _, p := range AllProviders() {
		if strings.EqualFold(s, string(p)) {
			return p
		}
	}
	return Provider(s)
}
