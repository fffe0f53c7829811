package anvil

import "encoding/json"

// Cast is a document template.
type Cast struct {
	Eid       string          `json:"eid"`
	Name      string          `json:"name,omitempty"`
	Title     string          `json:"title,omitempty"`
	FieldInfo json.RawMessage `json:"fieldInfo,omitempty"`
}

// Organization groups casts and welds under one account.
type Organization struct {
	Eid   string `json:"eid"`
	Name  string `json:"name,omitempty"`
	Slug  string `json:"slug,omitempty"`
	Casts []Cast `json:"casts,omitempty"`
	Welds []Weld `json:"welds,omitempty"`
}

// User is the authenticated API user.
type User struct {
	Name          string         `json:"name,omitempty"`
	Email         string         `json:"email,omitempty"`
	Eid           string         `json:"eid"`
	Role          string         `json:"role,omitempty"`
	Organizations []Organization `json:"organizations,omitempty"`
}

// Forge is a webform definition within a weld.
type Forge struct {
	Eid  string `json:"eid"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// Weld is a webform/workflow grouping of forges.
type Weld struct {
	Eid    string  `json:"eid"`
	Slug   string  `json:"slug,omitempty"`
	Name   string  `json:"name,omitempty"`
	Title  string  `json:"title,omitempty"`
	Forges []Forge `json:"forges,omitempty"`
}

// EtchPacketSigner is one signer on a created etch packet.
type EtchPacketSigner struct {
	ID             json.Number `json:"id,omitempty"`
	Eid            string      `json:"eid"`
	AliasID        string      `json:"aliasId,omitempty"`
	RoutingOrder   int         `json:"routingOrder,omitempty"`
	Name           string      `json:"name,omitempty"`
	Email          string      `json:"email,omitempty"`
	Status         string      `json:"status,omitempty"`
	SignActionType string      `json:"signActionType,omitempty"`
}

// DocumentGroup bundles the documents of an etch packet.
type DocumentGroup struct {
	ID      json.Number        `json:"id,omitempty"`
	Eid     string             `json:"eid"`
	Status  string             `json:"status,omitempty"`
	Files   json.RawMessage    `json:"files,omitempty"`
	Signers []EtchPacketSigner `json:"signers,omitempty"`
}

// EtchPacket is a created e-signature packet.
type EtchPacket struct {
	ID            json.Number    `json:"id,omitempty"`
	Eid           string         `json:"eid"`
	Name          string         `json:"name,omitempty"`
	DetailsURL    string         `json:"detailsURL,omitempty"`
	DocumentGroup *DocumentGroup `json:"documentGroup,omitempty"`
}

// WeldData is one workflow submission container.
type WeldData struct {
	ID         json.Number     `json:"id,omitempty"`
	Eid        string          `json:"eid"`
	IsTest     bool            `json:"isTest,omitempty"`
	IsComplete bool            `json:"isComplete,omitempty"`
	Agents     json.RawMessage `json:"agents,omitempty"`
}

// Submission is the result of a forge submit call.
type Submission struct {
	ID           json.Number       `json:"id,omitempty"`
	Eid          string            `json:"eid"`
	PayloadValue json.RawMessage   `json:"payloadValue,omitempty"`
	CurrentStep  int               `json:"currentStep,omitempty"`
	CompletedAt  string            `json:"completedAt,omitempty"`
	CreatedAt    string            `json:"createdAt,omitempty"`
	UpdatedAt    string            `json:"updatedAt,omitempty"`
	Signer       *EtchPacketSigner `json:"signer,omitempty"`
	WeldData     *WeldData         `json:"weldData,omitempty"`
}
