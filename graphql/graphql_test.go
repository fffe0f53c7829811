package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/levrofin/anvil-go/httpclient"
)

func TestBuildQuery_WithArgs(t *testing.T) {
	q := BuildQuery("cast", []Arg{String("eid", "X")}, []string{"eid", "title", "fieldInfo"})
	if !strings.Contains(q, `cast (eid:"X")`) {
		t.Errorf("expected cast argument, got:\n%s", q)
	}
	if !strings.Contains(q, "eid title fieldInfo") {
		t.Errorf("expected field list, got:\n%s", q)
	}
}

func TestBuildQuery_MultipleArgs(t *testing.T) {
	q := BuildQuery("cast", []Arg{String("eid", "X"), Int("versionNumber", 3)}, []string{"eid"})
	if !strings.Contains(q, `(eid:"X",versionNumber:3)`) {
		t.Errorf("expected joined args, got:\n%s", q)
	}
}

func TestBuildQuery_NoArgs(t *testing.T) {
	q := BuildQuery("currentUser", nil, []string{"name", "email"})
	if strings.Contains(q, "(") {
		t.Errorf("expected no argument list, got:\n%s", q)
	}
}

func TestRaw_Boolean(t *testing.T) {
	a := Raw("isTemplate", "true")
	if a.Value != "true" {
		t.Errorf("expected unquoted true, got %q", a.Value)
	}
}

func TestResponse_Err(t *testing.T) {
	var r Response
	if err := r.Err(); err != nil {
		t.Errorf("expected nil for no errors, got %v", err)
	}

	r.Errors = []ResponseError{{Message: "weld not found"}}
	err := r.Err()
	if err == nil || !strings.Contains(err.Error(), "weld not found") {
		t.Errorf("expected weld not found, got %v", err)
	}

	r.Errors = append(r.Errors, ResponseError{Message: "forbidden"})
	err = r.Err()
	if err == nil || !strings.Contains(err.Error(), "forbidden") {
		t.Errorf("expected joined messages, got %v", err)
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	hc, err := httpclient.New(httpclient.Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewClient(hc)
}

func TestClient_Do_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != Path {
			t.Errorf("expected %s, got %s", Path, r.URL.Path)
		}
		var req Request
		json.NewDecoder(r.Body).Decode(&req)
		if !strings.Contains(req.Query, "currentUser") {
			t.Errorf("unexpected query %q", req.Query)
		}
		w.Write([]byte(`{"data":{"currentUser":{"name":"Sally"}}}`))
	})

	res, err := c.Do(context.Background(), Request{Query: "{ currentUser { name } }"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(res.Data), "Sally") {
		t.Errorf("expected data, got %s", res.Data)
	}
}

func TestClient_Do_GraphQLError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null,"errors":[{"message":"invalid eid"}]}`))
	})

	_, err := c.Do(context.Background(), Request{Query: "{ weld { eid } }"})
	if err == nil || !strings.Contains(err.Error(), "invalid eid") {
		t.Fatalf("expected graphql error, got %v", err)
	}
}

func TestClient_DoMultipart_SpecShape(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}

		var ops Request
		if err := json.Unmarshal([]byte(r.FormValue("operations")), &ops); err != nil {
			t.Fatalf("operations not JSON: %v", err)
		}
		if !strings.Contains(ops.Query, "createEtchPacket") {
			t.Errorf("unexpected operations query %q", ops.Query)
		}

		var fileMap map[string][]string
		if err := json.Unmarshal([]byte(r.FormValue("map")), &fileMap); err != nil {
			t.Fatalf("map not JSON: %v", err)
		}
		if got := fileMap["1"]; len(got) != 1 || got[0] != "variables.files.0.file" {
			t.Errorf("unexpected file map %v", fileMap)
		}

		if _, _, err := r.FormFile("1"); err != nil {
			t.Errorf("missing file part 1: %v", err)
		}
		w.Write([]byte(`{"data":{"createEtchPacket":{"eid":"pkt1"}}}`))
	})

	res, err := c.DoMultipart(context.Background(),
		Request{Query: "mutation createEtchPacket { }"},
		[]Upload{{
			Path:        "variables.files.0.file",
			FileName:    "doc.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.4"),
		}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(res.Data), "pkt1") {
		t.Errorf("expected packet eid, got %s", res.Data)
	}
}
