package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_DecodeData(t *testing.T) {
	env := &Envelope{
		Success: true,
		Data:    json.RawMessage(`{"user":{"email":"a@b.c"}}`),
	}

	var payload struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, env.DecodeData(&payload, "failed to get profile"))
	assert.Equal(t, "a@b.c", payload.User.Email)
}

func TestEnvelope_DecodeData_MissingPayload(t *testing.T) {
	env := &Envelope{Success: true, Message: "ok"}

	var payload struct{}
	err := env.DecodeData(&payload, "login failed")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, "login failed", apiErr.Message)
}
