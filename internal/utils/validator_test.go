// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type skuHolder struct {
	SKU string `validate:"required,sku_id"`
}

type tagHolder struct {
	Tags []string `validate:"dive,tag"`
}

func TestSKUValidation(t *testing.T) {
	valid := []string{"GEM-RSJL88-00042", "JWL-ACME-1", "RUD-X9-100000"}
	for _, sku := range valid {
		assert.NoError(t, ValidateStruct(&skuHolder{SKU: sku}), sku)
	}

	invalid := []string{"", "gem-rsjl88-00042", "GEMS-X-1", "GEM-X-", "GEM--1", "GEM-toolongcode-1"}
	for _, sku := range invalid {
		assert.Error(t, ValidateStruct(&skuHolder{SKU: sku}), sku)
	}
}

func TestTagValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(&tagHolder{Tags: []string{"blue-sapphire", "5-mukhi"}}))
	assert.Error(t, ValidateStruct(&tagHolder{Tags: []string{"Blue Sapphire"}}))
	assert.Error(t, ValidateStruct(&tagHolder{Tags: []string{""}}))
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(&skuHolder{SKU: "bogus"})
	require.Error(t, err)

	details := GetValidationErrors(err)
	require.Len(t, details, 1)
	assert.Equal(t, "sku", details[0].Field)
	assert.Equal(t, "sku_id", details[0].Tag)
	assert.NotEmpty(t, details[0].Message)
}
