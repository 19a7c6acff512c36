package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/findocgpt/findocgpt/pkg/models"
)

// fingerprintKey is the canonical metadata tuple folded into the fingerprint.
// Field order is fixed by the alphabetically sorted JSON keys, so the digest
// is deterministic across processes.
type fingerprintKey struct {
	AccessionNumber string `json:"accession_number"`
	CompanyName     string `json:"company_name"`
	ContentHash     string `json:"content_hash"`
	FilingDate      string `json:"filing_date"`
	FormType        string `json:"form_type"`
}

// ContentHash returns the hex SHA-256 of the raw document content.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Fingerprint computes the content-address of a document: the SHA-256 of a
// canonical JSON combining the content hash with the lowercased metadata key.
// Recomputing for the same (content, metadata) always yields the same value.
func Fingerprint(content string, meta models.DocumentMetadata) string {
	key := fingerprintKey{
		AccessionNumber: meta.AccessionNumber,
		CompanyName:     strings.ToLower(meta.CompanyName),
		ContentHash:     ContentHash(content),
		FilingDate:      meta.FilingDate,
		FormType:        strings.ToLower(meta.FormType),
	}

	// encoding/json emits struct fields in declaration order, which matches
	// the sorted key order above.
	canonical, _ := json.Marshal(key)
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}

// tripleKey identifies the looser duplicate tier: same company, form type,
// and filing date regardless of content.
func tripleKey(meta models.DocumentMetadata) string {
	return strings.ToLower(meta.CompanyName) + "|" + strings.ToLower(meta.FormType) + "|" + meta.FilingDate
}
