package model

import (
	"encoding/json"
	"testing"
)

func TestNumericString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NumericString
		wantErr bool
	}{
		{name: "integer literal", input: `{"bytes":1024}`, want: "1024"},
		{name: "big integer literal keeps digits", input: `{"bytes":123456789012345678901234567890}`, want: "123456789012345678901234567890"},
		{name: "float literal", input: `{"bytes":1.5e3}`, want: "1.5e3"},
		{name: "string", input: `{"bytes":"2048"}`, want: "2048"},
		{name: "non numeric string kept as is", input: `{"bytes":"abc"}`, want: "abc"},
		{name: "null", input: `{"bytes":null}`, want: ""},
		{name: "missing", input: `{}`, want: ""},
		{name: "boolean", input: `{"bytes":true}`, wantErr: true},
		{name: "object", input: `{"bytes":{}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req BytesRequest
			err := json.Unmarshal([]byte(tt.input), &req)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %s, got value %q", tt.input, req.Bytes)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Bytes != tt.want {
				t.Errorf("Bytes = %q, want %q", req.Bytes, tt.want)
			}
		})
	}
}
