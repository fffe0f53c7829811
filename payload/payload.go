package payload

import (
	"github.com/levrofin/anvil-go/util"
	"github.com/levrofin/anvil-go/validation"
)

// FillPDF is the request body for filling an existing template.
type FillPDF struct {
	Title     string         `json:"title,omitempty"`
	FontSize  int            `json:"fontSize,omitempty"`
	TextColor string         `json:"textColor,omitempty"`
	Data      map[string]any `json:"data" validate:"required"`
}

// Validate reports schema-level problems with the payload.
func (p *FillPDF) Validate() error {
	return validation.Validate(p)
}

// GeneratePDF is the request body for generating a new PDF from
// markdown or HTML content.
type GeneratePDF struct {
	// Type selects the content format. The API defaults to markdown.
	Type  string `json:"type,omitempty" validate:"omitempty,oneof=markdown html"`
	Title string `json:"title,omitempty"`
	// Data is a list of content blocks for markdown, or an
	// {html, css} object for HTML.
	Data     any            `json:"data" validate:"required"`
	Page     map[string]any `json:"page,omitempty"`
	Logo     map[string]any `json:"logo,omitempty"`
	FontSize int            `json:"fontSize,omitempty"`
}

// Validate reports schema-level problems with the payload.
func (p *GeneratePDF) Validate() error {
	return validation.Validate(p)
}

// CreateEtchPacket is the request body for creating an e-signature
// packet bundling signers and documents.
type CreateEtchPacket struct {
	Name                  string         `json:"name" validate:"required"`
	SignatureEmailSubject string         `json:"signatureEmailSubject,omitempty"`
	SignatureEmailBody    string         `json:"signatureEmailBody,omitempty"`
	SignaturePageOptions  map[string]any `json:"signaturePageOptions,omitempty"`
	Signers               []EtchSigner   `json:"signers" validate:"required,min=1,dive"`
	Files                 []EtchFile     `json:"files,omitempty" validate:"dive"`
	Data                  map[string]any `json:"data,omitempty"`
	IsDraft               bool           `json:"isDraft"`
	// IsTest defaults to true when unset so packets are not live by
	// accident.
	IsTest       *bool  `json:"isTest,omitempty"`
	MergePDFs    *bool  `json:"mergePDFs,omitempty"`
	WebhookURL   string `json:"webhookURL,omitempty" validate:"omitempty,url"`
	ReplyToName  string `json:"replyToName,omitempty"`
	ReplyToEmail string `json:"replyToEmail,omitempty" validate:"omitempty,email"`
}

// Validate reports schema-level problems with the payload.
func (p *CreateEtchPacket) Validate() error {
	return validation.Validate(p)
}

// ApplyDefaults fills unset optional fields with their API defaults.
func (p *CreateEtchPacket) ApplyDefaults() {
	if p.IsTest == nil {
		p.IsTest = util.Ptr(true)
	}
}

// ForgeSubmit is the request body for creating or updating a webform
// (forge) submission.
type ForgeSubmit struct {
	ForgeEid      string         `json:"forgeEid" validate:"required"`
	WeldDataEid   string         `json:"weldDataEid,omitempty"`
	SubmissionEid string         `json:"submissionEid,omitempty"`
	Payload       map[string]any `json:"payload" validate:"required"`
	CurrentStep   int            `json:"currentStep,omitempty"`
	Complete      *bool          `json:"complete,omitempty"`
	IsTest        *bool          `json:"isTest,omitempty"`
}

// Validate reports schema-level problems with the payload.
func (p *ForgeSubmit) Validate() error {
	return validation.Validate(p)
}

// ApplyDefaults fills unset optional fields with their API defaults.
func (p *ForgeSubmit) ApplyDefaults() {
	if p.IsTest == nil {
		p.IsTest = util.Ptr(true)
	}
}
