package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfreitag/cvgen/internal/sources"
	"github.com/mfreitag/cvgen/internal/types"
)

func completeLetter() *types.CoverLetter {
	return &types.CoverLetter{
		Recipient: types.RecipientAddress{
			Name:   "Erika Beispiel",
			Street: "Beispielstraße 1",
			City:   "10115 Berlin",
		},
		Subject: "Bewerbung als Data Engineer",
		Body:    "Sehr geehrte Frau Beispiel,",
	}
}

func TestResolveCoverLetter_CompleteAddressPasses(t *testing.T) {
	err := New().ResolveCoverLetter(completeLetter(), sources.Set{}, Overrides{})

	assert.NoError(t, err)
}

func TestResolveCoverLetter_MissingAddressFieldsReportedByName(t *testing.T) {
	letter := completeLetter()
	letter.Recipient.Street = ""
	letter.Recipient.City = ""

	err := New().ResolveCoverLetter(letter, sources.Set{}, Overrides{})

	require.Error(t, err)
	var addrErr *AddressError
	require.ErrorAs(t, err, &addrErr)
	assert.Equal(t, []string{"street", "city"}, addrErr.Missing)
	assert.Contains(t, err.Error(), "street")
	assert.Contains(t, err.Error(), "city")
}

func TestResolveCoverLetter_AllAddressFieldsMissing(t *testing.T) {
	letter := &types.CoverLetter{Subject: "Bewerbung"}

	err := New().ResolveCoverLetter(letter, sources.Set{}, Overrides{})

	var addrErr *AddressError
	require.ErrorAs(t, err, &addrErr)
	assert.Equal(t, []string{"name", "street", "city"}, addrErr.Missing)
}

func TestResolveCoverLetter_CompanyIsOptional(t *testing.T) {
	letter := completeLetter()
	letter.Recipient.Company = ""

	err := New().ResolveCoverLetter(letter, sources.Set{}, Overrides{})

	assert.NoError(t, err)
}

func TestResolveCoverLetter_SenderFilledFromSources(t *testing.T) {
	letter := completeLetter()
	set := sources.Set{
		sources.Basis: map[string]any{
			"persoenliche_daten": map[string]any{
				"name":    "Max Mustermann",
				"email":   "max@example.de",
				"telefon": "+49 123",
			},
		},
	}

	err := New().ResolveCoverLetter(letter, set, Overrides{})

	require.NoError(t, err)
	assert.Equal(t, "Max Mustermann", letter.Sender.Name)
	assert.Equal(t, "max@example.de", letter.Sender.Email)
	assert.Equal(t, "+49 123", letter.Sender.Phone)
}

func TestResolveCoverLetter_ExplicitSenderNotOverwritten(t *testing.T) {
	letter := completeLetter()
	letter.Sender.Name = "Moritz Mustermann"
	set := sources.Set{
		sources.Basis: map[string]any{
			"persoenliche_daten": map[string]any{"name": "Max Mustermann"},
		},
	}

	err := New().ResolveCoverLetter(letter, set, Overrides{})

	require.NoError(t, err)
	assert.Equal(t, "Moritz Mustermann", letter.Sender.Name)
}
