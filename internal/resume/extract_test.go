package resume

import "testing"

func TestExtractPersonalInfo(t *testing.T) {
	tests := []struct {
		name      string
		summary   string
		wantName  string
		wantEmail string
	}{
		{
			name:      "i am with email",
			summary:   "I am Jane Doe, reach me at jane.doe@example.org for roles.",
			wantName:  "Jane Doe",
			wantEmail: "jane.doe@example.org",
		},
		{
			name:      "my name is",
			summary:   "My name is John Smith. Backend engineer.",
			wantName:  "John Smith",
			wantEmail: DefaultCandidateEmail,
		},
		{
			name:      "contraction",
			summary:   "Hi, I'm Ada Lovelace, mathematician",
			wantName:  "Ada Lovelace",
			wantEmail: DefaultCandidateEmail,
		},
		{
			name:      "nothing found",
			summary:   "Ten years of distributed systems work.",
			wantName:  DefaultCandidateName,
			wantEmail: DefaultCandidateEmail,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPersonalInfo(tt.summary)
			if got.Name != tt.wantName {
				t.Fatalf("name = %q, want %q", got.Name, tt.wantName)
			}
			if got.Email != tt.wantEmail {
				t.Fatalf("email = %q, want %q", got.Email, tt.wantEmail)
			}
		})
	}
}
