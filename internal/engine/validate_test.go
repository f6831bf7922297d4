package engine

import (
	"errors"
	"testing"

	"trivia/internal/core"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     int64
		wantKind core.Kind
		wantErr  bool
	}{
		{name: "Absent", raw: "", wantErr: true, wantKind: core.KindMissingParameter},
		{name: "Whitespace", raw: "   ", wantErr: true, wantKind: core.KindMissingParameter},
		{name: "NonNumeric", raw: "abc", wantErr: true, wantKind: core.KindInvalidParameter},
		{name: "SignOnly", raw: "-", wantErr: true, wantKind: core.KindInvalidParameter},
		{name: "Plain", raw: "7", want: 7},
		{name: "Padded", raw: " 12 ", want: 12},
		{name: "Negative", raw: "-3", want: -3},
		{name: "ExplicitPlus", raw: "+5", want: 5},
		// Permissive leading-prefix policy: trailing junk is ignored
		{name: "TrailingJunk", raw: "7x", want: 7},
		{name: "DecimalPoint", raw: "4.9", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if tt.wantErr {
				var qerr *core.Error
				if !errors.As(err, &qerr) {
					t.Fatalf("ParseID(%q) err = %v, want *core.Error", tt.raw, err)
				}
				if qerr.Kind != tt.wantKind {
					t.Errorf("ParseID(%q) kind = %v, want %v", tt.raw, qerr.Kind, tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseID(%q) failed: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseID(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
