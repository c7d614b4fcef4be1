package gate

import "github.com/MKhiriev/go-autofill-keeper/models"

// Check reports whether candidate equals the stored credential exactly. No
// normalisation (trimming, case folding) is applied.
func Check(candidate, stored models.Credential) bool {
	return candidate == stored
}
