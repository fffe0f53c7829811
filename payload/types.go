package payload

// Base64Upload is an embedded document. Data carries base64-encoded
// content that travels inside the JSON payload; Raw carries plain bytes
// that the mutation layer extracts into a multipart file part instead.
type Base64Upload struct {
	Data     string `json:"data,omitempty" validate:"required_without=Raw"`
	Filename string `json:"filename" validate:"required"`
	Mimetype string `json:"mimetype,omitempty"`

	Raw []byte `json:"-"`
}

// Rect positions a field on a page.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// SignatureField places a fillable or signable field on an uploaded
// document.
type SignatureField struct {
	ID      string `json:"id" validate:"required"`
	Type    string `json:"type" validate:"required"`
	PageNum int    `json:"pageNum"`
	Rect    *Rect  `json:"rect,omitempty"`
}

// EtchFile is one entry in an etch packet's file list: either an
// uploaded document (File set) or a reference to an existing cast
// template (CastEid set).
type EtchFile struct {
	ID        string           `json:"id" validate:"required"`
	CastEid   string           `json:"castEid,omitempty"`
	Title     string           `json:"title,omitempty"`
	File      *Base64Upload    `json:"file,omitempty"`
	Fields    []SignatureField `json:"fields,omitempty" validate:"dive"`
	FontSize  int              `json:"fontSize,omitempty"`
	TextColor string           `json:"textColor,omitempty"`
}

// SignerField assigns one document field to a signer.
type SignerField struct {
	FileID  string `json:"fileId" validate:"required"`
	FieldID string `json:"fieldId" validate:"required"`
}

// EtchSigner is one signer in an etch packet.
type EtchSigner struct {
	ID           string        `json:"id,omitempty"`
	Name         string        `json:"name" validate:"required"`
	Email        string        `json:"email" validate:"required,email"`
	Fields       []SignerField `json:"fields" validate:"required,min=1,dive"`
	SignerType   string        `json:"signerType,omitempty"`
	RoutingOrder int           `json:"routingOrder,omitempty"`
	RedirectURL  string        `json:"redirectURL,omitempty" validate:"omitempty,url"`
}
