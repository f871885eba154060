package signal

import "testing"

func TestShouldRedact(t *testing.T) {
	redacted := []string{
		"password",
		"PASSWORD",
		"user_password",
		"passwordConfirm",
		"wifi_passwd",
		"pwd",
		"client_secret",
		"auth_token",
		"api_key",
		"ApiKey",
		"gpg_passphrase",
	}
	for _, field := range redacted {
		if !ShouldRedact(field) {
			t.Errorf("ShouldRedact(%q) = false, want true", field)
		}
	}

	clear := []string{"email", "username", "name", "pass_rate", "keyboard"}
	for _, field := range clear {
		if ShouldRedact(field) {
			t.Errorf("ShouldRedact(%q) = true, want false", field)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<script>alert(1)</script>", "scriptalert(1)/script"},
		{"a & b", "a  b"},
		{"&lt;b&gt;bold&amp;", "bbold"},
		{"plain text", "plain text"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeString(tt.in); got != tt.want {
			t.Errorf("SanitizeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeForError(t *testing.T) {
	in := map[string]any{
		"email":    "a@b.com",
		"password": "hunter2",
		"bio":      "<b>hi</b>",
		"nested": map[string]any{
			"api_key": "xyz",
			"note":    "fine",
		},
		"count": 3,
	}

	got := SanitizeForError(in)

	if got["password"] != RedactionPlaceholder {
		t.Errorf("password = %v, want placeholder", got["password"])
	}
	if got["bio"] != "bhi/b" {
		t.Errorf("bio = %v, want sanitized", got["bio"])
	}
	nested := got["nested"].(map[string]any)
	if nested["api_key"] != RedactionPlaceholder {
		t.Errorf("nested api_key = %v, want placeholder", nested["api_key"])
	}
	if nested["note"] != "fine" || got["email"] != "a@b.com" || got["count"] != 3 {
		t.Error("SanitizeForError() mangled non-sensitive fields")
	}

	// The original value must never appear anywhere in the output.
	if in["password"] == got["password"] {
		t.Error("original password value survived sanitization")
	}
}
