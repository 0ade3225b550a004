package bind

import (
	"net/http"
	"strings"
	"testing"

	perr "forgeapi/internal/platform/errors"
)

type lookup struct {
	Owner string `json:"owner" validate:"required,max=8"`
	Repo  string `json:"repo"  validate:"required,min=2"`
	Skip  string `json:"-"     validate:"omitempty,max=1"`
	Ref   string `json:"ref,omitempty" validate:"omitempty,refname"`
}

func TestInitIsSingleton(t *testing.T) {
	if Init() != Get() || Get().Validator == nil || Get().Translator == nil {
		t.Fatalf("validator singleton not shared")
	}
}

func TestStruct(t *testing.T) {
	if err := RegisterTag("refname", func(fl FieldLevel) bool {
		return !strings.Contains(fl.Field().String(), "..")
	}, "{0} must be a valid ref"); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := []struct {
		name  string
		in    lookup
		field string
		msg   string
	}{
		{"ok", lookup{Owner: "NixOS", Repo: "nix"}, "", ""},
		{"required uses json name", lookup{Repo: "nix"}, "owner", "owner is a required field"},
		{"short max", lookup{Owner: "a-very-long-owner", Repo: "nix"}, "owner", "owner must be at most 8"},
		{"short min", lookup{Owner: "NixOS", Repo: "n"}, "repo", "repo must be at least 2"},
		{"dash tag keeps go name", lookup{Owner: "NixOS", Repo: "nix", Skip: "xx"}, "Skip", "Skip must be at most 1"},
		{"custom tag", lookup{Owner: "NixOS", Repo: "nix", Ref: "v1..2"}, "ref", "ref must be a valid ref"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Struct(c.in)
			if c.msg == "" {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			if perr.HTTPStatus(err) != http.StatusBadRequest {
				t.Fatalf("status = %d", perr.HTTPStatus(err))
			}
			w := perr.WireFrom(err)
			if w.Field != c.field || w.Message != c.msg {
				t.Fatalf("wire = %+v", w)
			}
		})
	}
}

func TestStruct_InvalidInput(t *testing.T) {
	err := Struct(42)
	if perr.CodeOf(err) != perr.ErrorCodeValidation || perr.WireFrom(err).Message != "validation error" {
		t.Fatalf("err = %v", err)
	}
}
