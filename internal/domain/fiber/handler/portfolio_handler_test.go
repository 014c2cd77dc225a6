package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadFilenameKeepsBaseName(t *testing.T) {
	name := uploadFilename("cv.pdf")
	assert.True(t, strings.HasSuffix(name, "-cv.pdf"))
	assert.NotEqual(t, "cv.pdf", name)
}

func TestUploadFilenameUniquePerCall(t *testing.T) {
	assert.NotEqual(t, uploadFilename("cv.pdf"), uploadFilename("cv.pdf"))
}

func TestUploadFilenameStripsDirectories(t *testing.T) {
	name := uploadFilename("../../etc/passwd")
	assert.NotContains(t, name, "/")
	assert.True(t, strings.HasSuffix(name, "-passwd"))
}
