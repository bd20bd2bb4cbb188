// Package secrets extracts credential call sites from Jenkins pipeline text
// and maps them to target-platform CI/CD variable declarations.
package secrets

import (
	"regexp"
	"strings"

	"github.com/pipeshift/pipeshift/internal/domain"
)

// credentialPattern binds one Jenkins secret-declaration form to its kind.
// Binding-step patterns come before the generic credentials() helper so a
// withCredentials block classifies by its binding type.
type credentialPattern struct {
	kind domain.CredentialKind
	re   *regexp.Regexp
}

var credentialPatterns = []credentialPattern{
	{domain.CredUsernamePassword, regexp.MustCompile(`usernamePassword\s*\(\s*credentialsId\s*:\s*['"]([^'"]+)['"]`)},
	{domain.CredSecretText, regexp.MustCompile(`\bstring\s*\(\s*credentialsId\s*:\s*['"]([^'"]+)['"]`)},
	{domain.CredFile, regexp.MustCompile(`\bfile\s*\(\s*credentialsId\s*:\s*['"]([^'"]+)['"]`)},
	{domain.CredSSHKey, regexp.MustCompile(`sshUserPrivateKey\s*\(\s*credentialsId\s*:\s*['"]([^'"]+)['"]`)},
	{domain.CredCertificate, regexp.MustCompile(`certificate\s*\(\s*credentialsId\s*:\s*['"]([^'"]+)['"]`)},
	// environment FOO = credentials('id'): the credential type lives in the
	// Jenkins store, not the text, so the kind is taken to be secret text.
	{domain.CredSecretText, regexp.MustCompile(`\bcredentials\s*\(\s*['"]([^'"]+)['"]\s*\)`)},
}

// contextCap truncates the surrounding line kept for audit display.
const contextCap = 120

// Extract scans text line by line for credential declarations. Line numbers
// are 1-indexed. Duplicate ids are preserved as separate hits; the function
// never fails, unmatched lines simply contribute nothing.
func Extract(text string) []domain.CredentialHit {
	var hits []domain.CredentialHit

	for i, line := range strings.Split(text, "\n") {
		matchedSpans := make([][2]int, 0, 2)
		for _, p := range credentialPatterns {
			for _, m := range p.re.FindAllStringSubmatchIndex(line, -1) {
				if overlaps(matchedSpans, m[0], m[1]) {
					continue
				}
				matchedSpans = append(matchedSpans, [2]int{m[0], m[1]})
				hits = append(hits, domain.CredentialHit{
					ID:       line[m[2]:m[3]],
					Line:     i + 1,
					Kind:     p.kind,
					RawMatch: line[m[0]:m[1]],
					Context:  truncate(strings.TrimSpace(line), contextCap),
				})
			}
		}
	}

	return hits
}

// overlaps prevents the generic credentials() pattern from re-reporting a
// call site already claimed by a binding-step pattern on the same line.
func overlaps(spans [][2]int, start, end int) bool {
	for _, s := range spans {
		if start < s[1] && end > s[0] {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
