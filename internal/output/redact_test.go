package output

import "testing"

func TestRedactValue_SensitiveKeys(t *testing.T) {
	tests := []struct {
		key      string
		value    string
		expected string
	}{
		{"GITHUB_TOKEN", "ghp_abcdef123456", "ghp_***"},
		{"AWS_SECRET_ACCESS_KEY", "wJalrXUtnFEMI", "wJal***"},
		{"DB_PASSWORD", "hunter2", "hunt***"},
		{"API_KEY", "sk-12345", "sk-1***"},
		{"SPLUNK_CREDENTIAL", "abc", "***"},
		{"github_token", "ghp_abcdef", "ghp_***"},
		{"LOG_LEVEL", "info", "info"},
		{"OUTPUT_FORMAT", "json", "json"},
		{"AWS_REGION", "us-east-1", "us-east-1"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := RedactValue(tt.key, tt.value)
			if result != tt.expected {
				t.Errorf("RedactValue(%q, %q) = %q, want %q", tt.key, tt.value, result, tt.expected)
			}
		})
	}
}

func TestRedactValue_ShortValues(t *testing.T) {
	if result := RedactValue("MY_SECRET", "ab"); result != "***" {
		t.Errorf("expected ***, got %s", result)
	}
	if result := RedactValue("MY_SECRET", ""); result != "***" {
		t.Errorf("expected ***, got %s", result)
	}
}
