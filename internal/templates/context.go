package templates

// DefaultBrandName is substituted for {{brand}} when the brand document has
// no display name yet.
const DefaultBrandName = "Your Brand"

// Fixed sample values used for dashboard previews. Customers never see
// these; they exist so an unsaved template renders something plausible.
const (
	sampleCustomerName = "Alex Chen"
	sampleHandle       = "@alexchen"
	sampleProductName  = "Acme Analytics"
)

// PreviewContext assembles a substitution context for live previews. The
// context is built fresh per render and never persisted. brandName may be
// empty, in which case DefaultBrandName is used.
func PreviewContext(brandName string) map[string]string {
	if brandName == "" {
		brandName = DefaultBrandName
	}
	return map[string]string{
		TokenName:     sampleCustomerName,
		TokenUsername: sampleHandle,
		TokenBrand:    brandName,
		TokenProduct:  sampleProductName,
	}
}
