package utils

import (
	"strings"
	"testing"
)

type profileForm struct {
	BusinessName string `json:"business_name" validate:"required,nameok"`
	Location     string `json:"location" validate:"nameok"`
	Industry     string `json:"industry"`
}

func TestValidateStructRequired(t *testing.T) {
	if err := ValidateStruct(&profileForm{}); err == nil {
		t.Fatal("expected error for missing required field")
	}
	if err := ValidateStruct(&profileForm{BusinessName: "Gita Foods"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStructNameOK(t *testing.T) {
	valid := []string{"Gita Foods", "A-1 Traders", "O'Brien & Sons"}
	for _, name := range valid {
		if err := ValidateStruct(&profileForm{BusinessName: name}); err != nil {
			t.Errorf("%q rejected: %v", name, err)
		}
	}

	invalid := []string{"<script>", "a;drop table", strings.Repeat("a", 101)}
	for _, name := range invalid {
		if err := ValidateStruct(&profileForm{BusinessName: name}); err == nil {
			t.Errorf("%q accepted, want rejection", name)
		}
	}
}

func TestValidateStructOptionalNameOK(t *testing.T) {
	// nameok without required passes on empty values.
	if err := ValidateStruct(&profileForm{BusinessName: "B", Location: ""}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateStruct(&profileForm{BusinessName: "B", Location: "Pune!"}); err == nil {
		t.Fatal("expected rejection for invalid optional value")
	}
}
