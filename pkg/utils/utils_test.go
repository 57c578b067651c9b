package utils

import (
	"strings"
	"testing"
)

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer", "Bearer abc.def", "abc.def"},
		{"lowercase scheme", "bearer abc.def", "abc.def"},
		{"extra spaces", "  Bearer   abc.def  ", "abc.def"},
		{"empty", "", ""},
		{"no token", "Bearer", ""},
		{"basic scheme", "Basic dXNlcjpwdw==", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTokenFromHeader(tt.header); got != tt.want {
				t.Errorf("ExtractTokenFromHeader(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

type sampleRequest struct {
	Title   string `json:"title" validate:"required,notblank,max=5"`
	DueDate string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status  string `json:"status" validate:"omitempty,oneof=pending completed"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		req       sampleRequest
		wantField string
		wantTag   string
	}{
		{"valid", sampleRequest{Title: "ok", DueDate: "2026-01-31", Status: "pending"}, "", ""},
		{"empty optional fields", sampleRequest{Title: "ok"}, "", ""},
		{"missing title", sampleRequest{}, "title", "required"},
		{"blank title", sampleRequest{Title: "   "}, "title", "notblank"},
		{"title too long", sampleRequest{Title: "toolong"}, "title", "max"},
		{"bad date", sampleRequest{Title: "ok", DueDate: "31/01/2026"}, "due_date", "datetime"},
		{"bad status", sampleRequest{Title: "ok", Status: "done"}, "status", "oneof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			details := GetValidationErrors(err)
			if len(details) != 1 || details[0].Field != tt.wantField || details[0].Tag != tt.wantTag {
				t.Fatalf("details = %+v, want field %q tag %q", details, tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestValidateMaxBytes(t *testing.T) {
	type passwordRequest struct {
		Password string `json:"password" validate:"required,maxbytes=72"`
	}

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"72 ascii bytes", strings.Repeat("a", 72), false},
		{"73 ascii bytes", strings.Repeat("a", 73), true},
		{"72 bytes of two-byte runes", strings.Repeat("é", 36), false},
		{"80 bytes in 40 runes", strings.Repeat("é", 40), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&passwordRequest{Password: tt.password})
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				details := GetValidationErrors(err)
				if details[0].Field != "password" || details[0].Tag != "maxbytes" {
					t.Errorf("details = %+v", details)
				}
			}
		})
	}
}
