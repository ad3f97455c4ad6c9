//nolint:revive // types is a standard Go package name pattern
package types

// RecipientAddress is the postal address block of a cover letter.
// The downstream layout places it in an address window, so the tagged fields
// are mandatory and validated before rendering.
type RecipientAddress struct {
	Name    string `yaml:"name" validate:"required"`
	Company string `yaml:"company,omitempty"`
	Street  string `yaml:"street" validate:"required"`
	City    string `yaml:"city" validate:"required"` // postal code and city, e.g. "10115 Berlin"
}

// CoverLetter is the resolved cover letter model
type CoverLetter struct {
	Sender    ContactInfo      `yaml:"sender"`
	Recipient RecipientAddress `yaml:"recipient"`
	Subject   string           `yaml:"subject"`
	Body      string           `yaml:"body"`
	Date      string           `yaml:"date,omitempty"`
}
