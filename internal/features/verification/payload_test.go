package verification

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metchera-backend/internal/features/identity/generator"
	"metchera-backend/internal/features/identity/models"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	identity, err := generator.NewSeeded(1).Generate(models.DocumentTypePassport, 0)
	require.NoError(t, err)

	payload, err := FromIdentity(identity)
	require.NoError(t, err)

	assert.Equal(t, identity.ID, payload.ID)
	assert.Equal(t, identity.FirstName+" "+identity.LastName, payload.Name)
	assert.Equal(t, "passport", payload.DocType)
	assert.Equal(t, identity.Documents.Passport.Number, payload.DocNumber)
	assert.Equal(t, "https://metchera-id.verify.com/v/"+identity.ID, payload.ValidationURL)

	encoded, err := payload.Encode()
	require.NoError(t, err)

	result := Decode(encoded)
	require.True(t, result.Valid)
	require.NotNil(t, result.Data)
	assert.Equal(t, payload.ID, result.Data.ID)
	assert.Equal(t, payload.DocNumber, result.Data.DocNumber)
	assert.True(t, result.Data.IssuedAt.Equal(payload.IssuedAt))
	assert.True(t, result.Data.Expires.Equal(payload.Expires))
}

func TestDecodeMissingRequiredFields(t *testing.T) {
	// docNumber intentionally absent.
	data, err := json.Marshal(map[string]interface{}{
		"id":       "abc",
		"name":     "Jane Doe",
		"docType":  "passport",
		"issuedAt": time.Now(),
	})
	require.NoError(t, err)

	result := Decode(base64.StdEncoding.EncodeToString(data))
	assert.False(t, result.Valid)
	assert.Equal(t, "Missing required fields in QR code data", result.Error)
	assert.Nil(t, result.Data)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"not base64", "%%% not base64 %%%"},
		{"base64 of non-json", base64.StdEncoding.EncodeToString([]byte("not json"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Decode(tt.encoded)
			assert.False(t, result.Valid)
			assert.Equal(t, "Invalid QR code data format", result.Error)
		})
	}
}

func TestFromIdentityWithoutDocument(t *testing.T) {
	identity, err := generator.NewSeeded(2).Generate(models.DocumentTypeIDCard, 0)
	require.NoError(t, err)
	identity.Documents.IDCard = nil

	_, err = FromIdentity(identity)
	require.Error(t, err)
}

func TestWireFieldNames(t *testing.T) {
	payload := &Payload{
		ID: "abc", Name: "Jane Doe", DocType: "idcard", DocNumber: "ID12345678",
		IssuedAt: time.Now(), Expires: time.Now(), ValidationURL: "https://metchera-id.verify.com/v/abc",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, field := range []string{"id", "name", "docType", "docNumber", "issuedAt", "expires", "validationUrl"} {
		assert.Contains(t, raw, field)
	}
}
