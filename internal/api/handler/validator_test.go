package handler

import (
	"strings"
	"testing"
)

func TestEchoValidator_Messages(t *testing.T) {
	v := NewValidator()

	cases := []struct {
		name string
		req  any
		want string
	}{
		{
			"missing required field",
			&loginRequest{Email: "jane@site.com"},
			"password is required",
		},
		{
			"malformed email",
			&loginRequest{Email: "not-an-email", Password: "pw"},
			"email must be a valid email",
		},
		{
			"non-positive published year",
			&addBookRequest{Title: "t", Author: "a", ISBN: "i", Category: "c", PublishedYear: -1},
			"publishedyear must be positive",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("message %q does not contain %q", err.Error(), tc.want)
			}
		})
	}
}

func TestEchoValidator_AcceptsValidRequest(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(&loginRequest{Email: "jane@site.com", Password: "pw"}); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
