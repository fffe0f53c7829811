package mutation

import (
	"fmt"

	"github.com/levrofin/anvil-go/graphql"
	"github.com/levrofin/anvil-go/payload"
)

const createEtchPacketDocument = `mutation createEtchPacket(
  $name: String,
  $files: [EtchFile],
  $isDraft: Boolean,
  $isTest: Boolean,
  $signers: [JSON],
  $webhookURL: String,
  $signatureEmailSubject: String,
  $signatureEmailBody: String,
  $signaturePageOptions: JSON,
  $data: JSON,
  $mergePDFs: Boolean,
  $replyToName: String,
  $replyToEmail: String
) {
  createEtchPacket(
    name: $name,
    files: $files,
    isDraft: $isDraft,
    isTest: $isTest,
    signers: $signers,
    webhookURL: $webhookURL,
    signatureEmailSubject: $signatureEmailSubject,
    signatureEmailBody: $signatureEmailBody,
    signaturePageOptions: $signaturePageOptions,
    data: $data,
    mergePDFs: $mergePDFs,
    replyToName: $replyToName,
    replyToEmail: $replyToEmail
  ) {
    id
    eid
    name
    detailsURL
    documentGroup {
      id
      eid
      status
      files
      signers {
        id
        eid
        aliasId
        routingOrder
        name
        email
        status
        signActionType
      }
    }
  }
}`

// CreateEtchPacket wraps an etch-packet payload with its mutation
// document and multipart file extraction.
type CreateEtchPacket struct {
	Payload *payload.CreateEtchPacket
}

// NewCreateEtchPacket builds the mutation for an already validated
// payload.
func NewCreateEtchPacket(p *payload.CreateEtchPacket) *CreateEtchPacket {
	return &CreateEtchPacket{Payload: p}
}

// Document returns the GraphQL mutation document.
func (m *CreateEtchPacket) Document() string {
	return createEtchPacketDocument
}

// Variables returns the operation variables with uploads left embedded.
func (m *CreateEtchPacket) Variables() (map[string]any, error) {
	return toVariables(m.Payload)
}

// Operation returns the operation variables together with the extracted
// binary uploads. Files carrying raw bytes are replaced by a null
// placeholder in the variables and returned as multipart uploads bound
// to "variables.files.N.file" object paths; base64-embedded files stay
// in the variables untouched.
func (m *CreateEtchPacket) Operation() (map[string]any, []graphql.Upload, error) {
	vars, err := toVariables(m.Payload)
	if err != nil {
		return nil, nil, err
	}

	files, _ := vars["files"].([]any)
	var uploads []graphql.Upload
	for i, f := range m.Payload.Files {
		if f.File == nil || f.File.Raw == nil {
			continue
		}
		if i >= len(files) {
			break
		}
		entry, ok := files[i].(map[string]any)
		if !ok {
			continue
		}
		entry["file"] = nil
		uploads = append(uploads, graphql.Upload{
			Path:        fmt.Sprintf("variables.files.%d.file", i),
			FileName:    f.File.Filename,
			ContentType: f.File.Mimetype,
			Data:        f.File.Raw,
		})
	}
	return vars, uploads, nil
}
