package util

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Hello   --  World  ", "hello-world"},
		{"Café Crème", "cafe-creme"},
		{"Go 1.24 released!", "go-124-released"},
		{"snake_case stays", "snake_case-stays"},
		{"数据", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title, 50))
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	slug := Slugify("a very long title that keeps going well past the fifty character limit", 50)
	assert.LessOrEqual(t, len(slug), 50)
	assert.NotEqual(t, '-', rune(slug[len(slug)-1]))
}

type sampleDTO struct {
	Username string `validate:"required,username"`
	Slug     string `validate:"omitempty,slug"`
}

func TestValidateDTO(t *testing.T) {
	require.NoError(t, ValidateDTO(&sampleDTO{Username: "alice.w@x+y-z_1", Slug: "hello-world"}))
	require.NoError(t, ValidateDTO(&sampleDTO{Username: "Élodie"}))

	err := ValidateDTO(&sampleDTO{Username: "bad name"})
	require.Error(t, err)
	var vErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &vErrs))
	assert.Contains(t, err.Error(), "Username")

	assert.Error(t, ValidateDTO(&sampleDTO{Username: "ok", Slug: "no spaces"}))
}

func TestGetSafeContentType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	reader := bytes.NewReader(png)

	ct, err := GetSafeContentType(reader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.True(t, IsMediaType(ct))

	pos, _ := reader.Seek(0, 1)
	assert.Zero(t, pos)

	ct, err = GetSafeContentType(bytes.NewReader([]byte("plain text")))
	require.NoError(t, err)
	assert.False(t, IsMediaType(ct))
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, uint64(42), id)

	for _, raw := range []string{"0", "-1", "abc", ""} {
		_, ok = ParseID(raw)
		assert.False(t, ok, raw)
	}
}
