package auth

import (
	"errors"
	"testing"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer tok", want: "tok"},
		{name: "missing header", header: "", wantErr: ErrMissingHeader},
		{name: "wrong scheme", header: "Basic dXNlcg==", wantErr: ErrInvalidFormat},
		{name: "no token part", header: "Bearer", wantErr: ErrInvalidFormat},
		{name: "blank token", header: "Bearer    ", wantErr: ErrEmptyToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BearerToken(tc.header)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("expected token %q, got %q", tc.want, got)
			}
		})
	}
}
