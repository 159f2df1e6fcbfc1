package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	tests := map[string]string{
		"":                            "",
		"time":                        "time",
		"net/url":                     "url",
		"mock-generator/store":        "store",
		"gopkg.in/yaml.v3":            "yaml",
		"github.com/goccy/go-json":    "json",
		"example.com/mod/v2":          "mod",
		"golang.org/x/image/math/f64": "f64",
		"example.com/my-pkg":          "my_pkg",
		"v2":                          "v2",
	}

	for in, want := range tests {
		assert.Equal(t, want, PkgAlias(in), in)
	}
}

func TestIdentifiers(t *testing.T) {
	assert.True(t, IsExported("Order"))
	assert.False(t, IsExported("order"))
	assert.False(t, IsExported(""))
	assert.Equal(t, "Order", Capitalize("order"))
	assert.Empty(t, Capitalize(""))
}
