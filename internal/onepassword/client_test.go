package onepassword

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/nvinuesa/opmigrate/internal/opitem"
)

type fakeRunner struct {
	calls []call
	out   []byte
	err   error
}

type call struct {
	stdin []byte
	env   []string
	name  string
	args  []string
}

func (f *fakeRunner) Run(_ context.Context, stdin []byte, env []string, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, call{stdin: stdin, env: env, name: name, args: args})
	return f.out, f.err
}

func TestCreateItem(t *testing.T) {
	runner := &fakeRunner{out: []byte(`{"id": "new-item-1", "title": "Site"}`)}
	client := NewClient("", "my-account", "Private", runner)

	doc := &opitem.Document{
		Title:    "Site",
		Category: opitem.CategoryLogin,
		Fields: []opitem.Field{
			{ID: "username", Type: opitem.TypeString, Purpose: opitem.PurposeUsername, Value: "alice"},
		},
	}

	id, err := client.CreateItem(context.Background(), doc)
	if err != nil {
		t.Fatalf("CreateItem() error = %v", err)
	}
	if id != "new-item-1" {
		t.Errorf("id = %q, want new-item-1", id)
	}

	got := runner.calls[0]
	if got.name != "op" {
		t.Errorf("binary = %q, want op (default)", got.name)
	}
	wantArgs := []string{"--account", "my-account", "item", "create", "--vault", "Private", "--format=json", "-"}
	if !reflect.DeepEqual(got.args, wantArgs) {
		t.Errorf("args = %v, want %v", got.args, wantArgs)
	}

	// The document travels on stdin as JSON.
	var sent opitem.Document
	if err := json.Unmarshal(got.stdin, &sent); err != nil {
		t.Fatalf("stdin is not a JSON document: %v", err)
	}
	if sent.Title != "Site" || sent.Category != opitem.CategoryLogin {
		t.Errorf("sent document = %+v", sent)
	}
}

func TestCreateItemErrors(t *testing.T) {
	doc := &opitem.Document{Title: "X", Category: opitem.CategoryLogin}

	t.Run("Command failure", func(t *testing.T) {
		client := NewClient("op", "a", "v", &fakeRunner{err: errors.New("denied")})
		if _, err := client.CreateItem(context.Background(), doc); err == nil {
			t.Error("CreateItem() succeeded, want error")
		}
	})

	t.Run("Missing id", func(t *testing.T) {
		client := NewClient("op", "a", "v", &fakeRunner{out: []byte(`{"title": "X"}`)})
		if _, err := client.CreateItem(context.Background(), doc); err == nil {
			t.Error("CreateItem() accepted output without an id")
		}
	})

	t.Run("Bad JSON", func(t *testing.T) {
		client := NewClient("op", "a", "v", &fakeRunner{out: []byte("oops")})
		if _, err := client.CreateItem(context.Background(), doc); err == nil {
			t.Error("CreateItem() accepted non-JSON output")
		}
	})
}

func TestAttachFile(t *testing.T) {
	runner := &fakeRunner{}
	client := NewClient("op", "my-account", "Private", runner)

	if err := client.AttachFile(context.Background(), "item-1", "data/attachments/item-1/scan.pdf"); err != nil {
		t.Fatalf("AttachFile() error = %v", err)
	}

	wantArgs := []string{"--account", "my-account", "item", "edit", "item-1", "[file]=data/attachments/item-1/scan.pdf"}
	if !reflect.DeepEqual(runner.calls[0].args, wantArgs) {
		t.Errorf("args = %v, want %v", runner.calls[0].args, wantArgs)
	}
}
