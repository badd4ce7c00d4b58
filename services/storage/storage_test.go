package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicIDBase(t *testing.T) {
	assert.Equal(t, "bridal-look_2", publicIDBase("Bridal Look_2.JPG"))
	assert.Equal(t, "salon", publicIDBase("/tmp/uploads/salon.png"))
	assert.Equal(t, "", publicIDBase("???.png"))
}

func TestUploadParamsNeverShareAPublicID(t *testing.T) {
	first := uploadParams("banner.jpg", "salonify/hero")
	second := uploadParams("uploads/Banner.PNG", "salonify/hero")
	again := uploadParams("banner.jpg", "salonify/hero")

	assert.NotEqual(t, first.PublicID, second.PublicID)
	assert.NotEqual(t, first.PublicID, again.PublicID)
	assert.True(t, strings.HasPrefix(first.PublicID, "banner-"))
	assert.Equal(t, "salonify/hero", first.Folder)
	require.NotNil(t, first.Overwrite)
	assert.False(t, *first.Overwrite)

	unnamed := uploadParams("???.png", "salonify/gallery")
	assert.NotEmpty(t, unnamed.PublicID)
}

func TestDisabledStorage(t *testing.T) {
	_, err := DisabledStorage{}.Upload(t.Context(), nil, "a.png", "gallery")
	assert.ErrorIs(t, err, ErrStorageDisabled)
	assert.NoError(t, DisabledStorage{}.DeleteFile(t.Context(), "x"))
}
