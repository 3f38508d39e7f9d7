package utils

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashString(t *testing.T) {
	first := HashString("correct horse battery staple")
	second := HashString("correct horse battery staple")

	assert.Equal(t, first, second)
	assert.Len(t, first, 128)
	assert.NotEqual(t, first, HashString("correct horse battery staples"))
}

func TestStringToInt(t *testing.T) {
	val, err := StringToInt("42")
	require.NoError(t, err)
	assert.Equal(t, 42, val)

	_, err = StringToInt("forty-two")
	assert.Error(t, err)
}

func TestNewReceiptID(t *testing.T) {
	first := NewReceiptID()
	second := NewReceiptID()

	assert.True(t, strings.HasPrefix(first, "receipt_"))
	assert.NotEqual(t, first, second)
}

func TestGetPageParams(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", url: "/api/products", wantPage: 1, wantPageSize: 8},
		{name: "both set", url: "/api/products?page=3&pageSize=20", wantPage: 3, wantPageSize: 20},
		{name: "zero page falls back", url: "/api/products?page=0", wantPage: 1, wantPageSize: 8},
		{name: "negative size falls back", url: "/api/products?pageSize=-5", wantPage: 1, wantPageSize: 8},
		{name: "garbage ignored", url: "/api/products?page=abc&pageSize=xyz", wantPage: 1, wantPageSize: 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			page, pageSize := GetPageParams(r, 8)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantPageSize, pageSize)
		})
	}
}
