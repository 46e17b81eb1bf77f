package validation

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/laracore/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("app.providers[0]", "events")
	if v.HasErrors() {
		t.Error("expected no errors for non-empty value")
	}

	v.Required("app.providers[1]", "   ")
	if !v.HasErrors() {
		t.Fatal("expected an error for blank value")
	}
	if v.Errors()[0].Field != "app.providers[1]" {
		t.Errorf("unexpected field %q", v.Errors()[0].Field)
	}
}

func TestValidatorPattern(t *testing.T) {
	v := New().Pattern("name", "events", `^[a-z.]+$`)
	if v.HasErrors() {
		t.Error("expected match")
	}
	v.Pattern("name", "Bad Name", `^[a-z.]+$`)
	if !v.HasErrors() {
		t.Error("expected pattern error")
	}
	if New().Pattern("name", "", `^x$`).HasErrors() {
		t.Error("empty value must be skipped")
	}
}

func TestValidatorOneOf(t *testing.T) {
	allowed := []string{"http", "grpc"}
	if New().OneOf("protocol", "http", allowed).HasErrors() {
		t.Error("expected http to be allowed")
	}
	v := New().OneOf("protocol", "udp", allowed)
	if !v.HasErrors() {
		t.Fatal("expected error for udp")
	}
	if !strings.Contains(v.Errors()[0].Message, "http, grpc") {
		t.Errorf("unexpected message %q", v.Errors()[0].Message)
	}
}

func TestValidatorValidate(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	err := New().
		Required("a", "").
		Custom(false, "b", "is wrong").
		Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Errorf("expected VALIDATION_FAILED, got %v", err)
	}
	if !strings.Contains(err.Error(), "a: is required; b: is wrong") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

type settings struct {
	Name string   `mapstructure:"name" validate:"required"`
	Env  string   `mapstructure:"env" validate:"required,oneof=local testing staging production"`
	Key  string   `mapstructure:"key" validate:"app_key"`
	List []string `mapstructure:"providers" validate:"dive,required"`
}

func TestStructValidateValid(t *testing.T) {
	key := AppKeyPrefix + base64.StdEncoding.EncodeToString(make([]byte, 32))
	err := Validate(settings{Name: "Laracore", Env: "local", Key: key, List: []string{"events"}})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	err := Validate(settings{Name: "", Env: "moon", Key: "short", List: []string{""}})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("expected field details, got %T", appErr.Details["fields"])
	}
	got := map[string]bool{}
	for _, f := range fields {
		got[f.Field] = true
	}
	for _, want := range []string{"name", "env", "key", "providers[0]"} {
		if !got[want] {
			t.Errorf("expected an error for %q, got %v", want, fields)
		}
	}
}

func TestDecodeAppKey(t *testing.T) {
	raw := []byte("0123456789abcdef0123456789abcdef")
	got, err := DecodeAppKey(AppKeyPrefix + base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(raw) {
		t.Errorf("expected decoded key to match")
	}

	got, _ = DecodeAppKey(string(raw))
	if len(got) != 32 {
		t.Errorf("expected raw key to pass through, got %d bytes", len(got))
	}

	if _, err := DecodeAppKey(AppKeyPrefix + "!!!"); err == nil {
		t.Error("expected error for bad base64")
	}
}

func TestValidateUUID(t *testing.T) {
	valid := uuid.New().String()
	id, err := ValidateUUID("instance_id", valid)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id.String() != valid {
		t.Errorf("expected %s, got %s", valid, id)
	}

	for _, bad := range []string{"", "bad", uuid.Nil.String()} {
		if _, err := ValidateUUID("instance_id", bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
