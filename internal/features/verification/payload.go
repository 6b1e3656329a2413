// Package verification builds and validates the encoded payload embedded in
// document QR codes. Rasterization is an external concern; this package owns
// only the wire format, which must stay bit-compatible between the encode and
// decode paths.
package verification

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"metchera-backend/internal/common/errors"
	"metchera-backend/internal/features/identity/models"
)

const validationBaseURL = "https://metchera-id.verify.com/v/"

// Payload is the verification bundle for an identity's active document. Field
// names are part of the wire contract.
type Payload struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DocType       string    `json:"docType"`
	DocNumber     string    `json:"docNumber"`
	IssuedAt      time.Time `json:"issuedAt"`
	Expires       time.Time `json:"expires"`
	ValidationURL string    `json:"validationUrl"`
}

// Result is the outcome of decoding a payload. Invalid input yields a
// structured result, never an error.
type Result struct {
	Valid bool     `json:"valid"`
	Data  *Payload `json:"data,omitempty"`
	Error string   `json:"error,omitempty"`
}

// FromIdentity builds the payload for the identity's active document. An
// identity whose active document is absent cannot be verified.
func FromIdentity(identity *models.Identity) (*Payload, error) {
	if !identity.HasActiveDocument() {
		return nil, errors.New(errors.ErrCodeValidation, "Identity has no document for its document type").
			WithDetail("document_type", string(identity.DocumentType))
	}

	issued, expires := identity.ActiveDocumentDates()

	return &Payload{
		ID:            identity.ID,
		Name:          identity.FirstName + " " + identity.LastName,
		DocType:       string(identity.DocumentType),
		DocNumber:     identity.ActiveDocumentNumber(),
		IssuedAt:      issued,
		Expires:       expires,
		ValidationURL: validationBaseURL + identity.ID,
	}, nil
}

// Encode serializes the payload as base64-wrapped JSON, the form consumed by
// the external QR encoder.
func (p *Payload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternal, "Failed to encode verification payload")
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode validates an encoded payload. Missing required fields and malformed
// encodings each produce their own documented error string.
func Decode(encoded string) Result {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Result{Valid: false, Error: "Invalid QR code data format"}
	}

	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Result{Valid: false, Error: "Invalid QR code data format"}
	}

	if payload.ID == "" || payload.Name == "" || payload.DocType == "" || payload.DocNumber == "" {
		return Result{Valid: false, Error: "Missing required fields in QR code data"}
	}

	return Result{Valid: true, Data: &payload}
}
