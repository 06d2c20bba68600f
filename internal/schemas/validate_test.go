package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1}
	}
}`

func TestValidateJSONStringValid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "ok"}`)
	assert.NoError(t, err)
}

func TestValidateJSONStringInvalid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": 42}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSONStringMissingRequired(t *testing.T) {
	err := ValidateJSONString(testSchema, `{}`)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateJSONStringBadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
