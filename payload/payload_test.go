package payload

import (
	"encoding/json"
	"testing"

	"github.com/levrofin/anvil-go/errors"
	"github.com/levrofin/anvil-go/util"
)

func TestFillPDFFrom_AllFormsSerializeIdentically(t *testing.T) {
	fromMap, err := FillPDFFrom(map[string]any{
		"title": "My Form",
		"data":  map[string]any{"firstName": "Sally"},
	})
	if err != nil {
		t.Fatalf("map form: %v", err)
	}

	fromJSON, err := FillPDFFrom(`{"title":"My Form","data":{"firstName":"Sally"}}`)
	if err != nil {
		t.Fatalf("json form: %v", err)
	}

	fromTyped, err := FillPDFFrom(&FillPDF{
		Title: "My Form",
		Data:  map[string]any{"firstName": "Sally"},
	})
	if err != nil {
		t.Fatalf("typed form: %v", err)
	}

	a, _ := json.Marshal(fromMap)
	b, _ := json.Marshal(fromJSON)
	c, _ := json.Marshal(fromTyped)
	if string(a) != string(b) || string(b) != string(c) {
		t.Errorf("serialized forms differ:\nmap:   %s\njson:  %s\ntyped: %s", a, b, c)
	}
}

func TestFillPDFFrom_MissingData(t *testing.T) {
	_, err := FillPDFFrom(map[string]any{"title": "no data"})
	if err == nil {
		t.Fatal("expected error for missing data field")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidPayload) {
		t.Errorf("expected INVALID_PAYLOAD, got %v", err)
	}
}

func TestFillPDFFrom_UnsupportedType(t *testing.T) {
	_, err := FillPDFFrom(42)
	if !errors.HasCode(err, errors.ErrCodeUnsupportedType) {
		t.Errorf("expected UNSUPPORTED_TYPE, got %v", err)
	}
}

func TestFillPDFFrom_Nil(t *testing.T) {
	_, err := FillPDFFrom(nil)
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
	var typed *FillPDF
	if _, err := FillPDFFrom(typed); !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT for typed nil, got %v", err)
	}
}

func TestFillPDFFrom_InvalidJSON(t *testing.T) {
	_, err := FillPDFFrom(`{"title":`)
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestGeneratePDFFrom_RequiresData(t *testing.T) {
	_, err := GeneratePDFFrom(map[string]any{"title": "empty"})
	if !errors.HasCode(err, errors.ErrCodeInvalidPayload) {
		t.Errorf("expected INVALID_PAYLOAD, got %v", err)
	}
}

func TestGeneratePDFFrom_RejectsUnknownType(t *testing.T) {
	_, err := GeneratePDFFrom(&GeneratePDF{
		Type: "docx",
		Data: []any{map[string]any{"content": "# Title"}},
	})
	if !errors.HasCode(err, errors.ErrCodeInvalidPayload) {
		t.Errorf("expected INVALID_PAYLOAD for unknown type, got %v", err)
	}
}

func validEtchPacket() *CreateEtchPacket {
	return &CreateEtchPacket{
		Name: "Test Packet",
		Signers: []EtchSigner{{
			ID:    "signer1",
			Name:  "Sally Signer",
			Email: "sally@example.com",
			Fields: []SignerField{{
				FileID:  "file1",
				FieldID: "sig1",
			}},
		}},
		Files: []EtchFile{{
			ID: "file1",
			File: &Base64Upload{
				Filename: "contract.pdf",
				Raw:      []byte("%PDF-1.4"),
			},
			Fields: []SignatureField{{
				ID:   "sig1",
				Type: "signature",
			}},
		}},
	}
}

func TestCreateEtchPacketFrom_DefaultsIsTest(t *testing.T) {
	p, err := CreateEtchPacketFrom(validEtchPacket())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.IsTest == nil || !*p.IsTest {
		t.Error("expected isTest to default to true")
	}
}

func TestCreateEtchPacketFrom_KeepsExplicitIsTest(t *testing.T) {
	pkt := validEtchPacket()
	pkt.IsTest = util.Ptr(false)
	p, err := CreateEtchPacketFrom(pkt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *p.IsTest {
		t.Error("expected explicit isTest=false to be kept")
	}
}

func TestCreateEtchPacketFrom_RequiresSigners(t *testing.T) {
	pkt := validEtchPacket()
	pkt.Signers = nil
	_, err := CreateEtchPacketFrom(pkt)
	if !errors.HasCode(err, errors.ErrCodeInvalidPayload) {
		t.Errorf("expected INVALID_PAYLOAD, got %v", err)
	}
}

func TestCreateEtchPacketFrom_SignerEmailValidated(t *testing.T) {
	pkt := validEtchPacket()
	pkt.Signers[0].Email = "not-an-email"
	_, err := CreateEtchPacketFrom(pkt)
	if !errors.HasCode(err, errors.ErrCodeInvalidPayload) {
		t.Errorf("expected INVALID_PAYLOAD, got %v", err)
	}
}

func TestForgeSubmitFrom_RequiredFields(t *testing.T) {
	_, err := ForgeSubmitFrom(map[string]any{"forgeEid": "forge1"})
	if !errors.HasCode(err, errors.ErrCodeInvalidPayload) {
		t.Errorf("expected INVALID_PAYLOAD for missing payload, got %v", err)
	}

	p, err := ForgeSubmitFrom(map[string]any{
		"forgeEid": "forge1",
		"payload":  map[string]any{"shortText": "hi"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.IsTest == nil || !*p.IsTest {
		t.Error("expected isTest default true")
	}
}

func TestBase64Upload_RawSkipsDataRequirement(t *testing.T) {
	pkt := validEtchPacket()
	if _, err := CreateEtchPacketFrom(pkt); err != nil {
		t.Fatalf("raw upload should satisfy validation: %v", err)
	}

	pkt.Files[0].File = &Base64Upload{Filename: "contract.pdf"}
	if _, err := CreateEtchPacketFrom(pkt); err == nil {
		t.Error("expected error when neither data nor raw content present")
	}
}
