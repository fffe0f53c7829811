package mutation

import (
	"github.com/levrofin/anvil-go/payload"
)

const forgeSubmitDocument = `mutation forgeSubmit(
  $forgeEid: String!,
  $weldDataEid: String,
  $submissionEid: String,
  $payload: JSON!,
  $currentStep: Int,
  $complete: Boolean,
  $isTest: Boolean
) {
  forgeSubmit(
    forgeEid: $forgeEid,
    weldDataEid: $weldDataEid,
    submissionEid: $submissionEid,
    payload: $payload,
    currentStep: $currentStep,
    complete: $complete,
    isTest: $isTest
  ) {
    id
    eid
    payloadValue
    currentStep
    completedAt
    createdAt
    updatedAt
    signer {
      name
      email
      status
      routingOrder
    }
    weldData {
      id
      eid
      isTest
      isComplete
      agents
    }
  }
}`

// ForgeSubmit wraps a webform submission payload with its mutation
// document.
type ForgeSubmit struct {
	Payload *payload.ForgeSubmit
}

// NewForgeSubmit builds the mutation for an already validated payload.
func NewForgeSubmit(p *payload.ForgeSubmit) *ForgeSubmit {
	return &ForgeSubmit{Payload: p}
}

// Document returns the GraphQL mutation document.
func (m *ForgeSubmit) Document() string {
	return forgeSubmitDocument
}

// Variables returns the operation variables.
func (m *ForgeSubmit) Variables() (map[string]any, error) {
	return toVariables(m.Payload)
}
