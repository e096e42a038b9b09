package models

// SiteInfo is the storefront branding shown in page headers.
type SiteInfo struct {
	Name    string `json:"name" mapstructure:"name"`
	Tagline string `json:"tagline" mapstructure:"tagline"`
}
