package secrets

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"
	"github.com/pipeshift/pipeshift/internal/domain"
)

var (
	invalidKeyRuns = regexp.MustCompile(`[^A-Z0-9_]+`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// SanitizeKey turns a source credential id into a target-platform variable
// key: camelCase segments split into words, uppercased, runs of anything
// outside [A-Z0-9_] collapsed to single underscores. Already-sanitized ids
// (API_TOKEN) pass through unchanged.
func SanitizeKey(id string) string {
	words := camelcase.Split(id)
	key := strings.ToUpper(strings.Join(words, "_"))
	key = invalidKeyRuns.ReplaceAllString(key, "_")
	key = underscoreRuns.ReplaceAllString(key, "_")
	key = strings.Trim(key, "_")
	if key == "" {
		return "SECRET"
	}
	return key
}

// MapVariables converts credential hits to variable specs in first-seen
// order. Key collisions are resolved deterministically by suffixing _2, _3, …
// so proposed keys are always unique within one inventory.
func MapVariables(hits []domain.CredentialHit, protectedTokens []string) []domain.VariableSpec {
	if len(protectedTokens) == 0 {
		protectedTokens = domain.DefaultProtectedTokens
	}

	specs := make([]domain.VariableSpec, 0, len(hits))
	taken := make(map[string]bool, len(hits))

	for _, hit := range hits {
		key := SanitizeKey(hit.ID)
		if taken[key] {
			base := key
			for n := 2; ; n++ {
				key = fmt.Sprintf("%s_%d", base, n)
				if !taken[key] {
					break
				}
			}
		}
		taken[key] = true

		specs = append(specs, domain.VariableSpec{
			OriginalID:  hit.ID,
			ProposedKey: key,
			Type:        variableType(hit.Kind),
			Masked:      maskedKind(hit.Kind),
			Protected:   isProtected(hit, protectedTokens),
			Description: describe(hit),
		})
	}

	return specs
}

func variableType(kind domain.CredentialKind) domain.VariableType {
	if kind == domain.CredFile {
		return domain.VarTypeFile
	}
	return domain.VarTypeVariable
}

// maskedKind marks secret-valued kinds whose value must never appear in job
// logs.
func maskedKind(kind domain.CredentialKind) bool {
	switch kind {
	case domain.CredSecretText, domain.CredSSHKey, domain.CredCertificate:
		return true
	}
	return false
}

// isProtected applies the production heuristic: a production-indicating token
// in the credential id or its surrounding context scopes the variable to
// protected refs.
func isProtected(hit domain.CredentialHit, tokens []string) bool {
	id := strings.ToLower(hit.ID)
	ctx := strings.ToLower(hit.Context)
	for _, t := range tokens {
		t = strings.ToLower(t)
		if strings.Contains(id, t) || strings.Contains(ctx, t) {
			return true
		}
	}
	return false
}

func describe(hit domain.CredentialHit) string {
	kindWords := strings.ToLower(strings.Join(camelcase.Split(string(hit.Kind)), " "))
	return fmt.Sprintf("Migrated from Jenkins %s credential %q (line %d)", kindWords, hit.ID, hit.Line)
}

// ValidateSpecs checks a mapped inventory. Empty keys and post-resolution
// duplicates are errors (both structurally impossible when the inventory came
// from MapVariables); missing descriptions are warnings.
func ValidateSpecs(specs []domain.VariableSpec) domain.SpecValidation {
	v := domain.SpecValidation{Valid: true}
	seen := make(map[string]bool, len(specs))

	for _, s := range specs {
		if s.ProposedKey == "" {
			v.Errors = append(v.Errors, fmt.Sprintf("variable for %q has an empty key", s.OriginalID))
			continue
		}
		if seen[s.ProposedKey] {
			v.Errors = append(v.Errors, fmt.Sprintf("duplicate proposed key %q", s.ProposedKey))
		}
		seen[s.ProposedKey] = true
		if s.Description == "" {
			v.Warnings = append(v.Warnings, fmt.Sprintf("variable %s has no description", s.ProposedKey))
		}
	}

	v.Valid = len(v.Errors) == 0
	return v
}
