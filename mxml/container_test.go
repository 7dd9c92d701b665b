package mxml

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainer_WriteReadRoundTrip(t *testing.T) {
	score := fourQuartersScore()

	var buf bytes.Buffer
	require.NoError(t, WriteContainer(&buf, "score.xml", score))

	got, err := ReadContainer(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, score, got)
}

func TestContainer_ManifestNamesRootEntry(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteContainer(&buf, "nested/partita.musicxml", fourQuartersScore()))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "META-INF/container.xml")
	assert.Contains(t, names, "nested/partita.musicxml")

	got, err := ReadContainer(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, "P1", got.PartList[0].ID)
}

func TestContainer_MissingManifestFallsBackToFirstEntry(t *testing.T) {
	doc, err := Emit(fourQuartersScore())
	require.NoError(t, err)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("score.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	got, err := ReadContainer(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Equal(t, fourQuartersScore(), got)
}

func TestContainer_EmptyArchiveRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	require.NoError(t, zw.Close())

	_, err := ReadContainer(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no manifest")
}

func TestContainer_NotAZipRejected(t *testing.T) {
	junk := []byte("<score-partwise/>")
	_, err := ReadContainer(bytes.NewReader(junk), int64(len(junk)))
	require.Error(t, err)
}
