package httpx

import (
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParseIDParam(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		wantID int64
		wantOK bool
	}{
		{"numeric", "42", 42, true},
		{"one", "1", 1, true},
		{"zero", "0", 0, false},
		{"negative", "-5", 0, false},
		{"text", "abc", 0, false},
		{"empty", "", 0, false},
		{"float", "3.5", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &gin.Context{Params: gin.Params{{Key: "id", Value: tc.raw}}}
			id, ok := ParseIDParam(c, "id")
			if ok != tc.wantOK || id != tc.wantID {
				t.Fatalf("ParseIDParam(%q) = (%d, %v), want (%d, %v)", tc.raw, id, ok, tc.wantID, tc.wantOK)
			}
		})
	}
}
