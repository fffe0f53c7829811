package mutation

import (
	"github.com/levrofin/anvil-go/validation"
)

const generateEtchSigningURLDocument = `mutation generateEtchSignURL(
  $signerEid: String!,
  $clientUserId: String!
) {
  generateEtchSignURL(
    signerEid: $signerEid,
    clientUserId: $clientUserId
  )
}`

// GenerateEtchSigningURL builds the mutation that creates a signing URL
// for one signer on behalf of one of the caller's users.
type GenerateEtchSigningURL struct {
	SignerEid    string
	ClientUserID string
}

// Document returns the GraphQL mutation document.
func (m *GenerateEtchSigningURL) Document() string {
	return generateEtchSigningURLDocument
}

// Variables returns the operation variables after checking both
// identifiers are present.
func (m *GenerateEtchSigningURL) Variables() (map[string]any, error) {
	v := validation.New()
	v.Required("signerEid", m.SignerEid)
	v.Required("clientUserId", m.ClientUserID)
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return map[string]any{
		"signerEid":    m.SignerEid,
		"clientUserId": m.ClientUserID,
	}, nil
}
