package mxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zip"
)

// Compressed container support. The interchange envelope for this
// document format is a zip archive whose META-INF/container.xml names
// the root score entry.

const (
	containerEntry = "META-INF/container.xml"
	containerMedia = "application/vnd.recordare.musicxml+xml"
)

// ReadContainer opens a compressed container and parses the score named
// by its manifest.
func ReadContainer(r io.ReaderAt, size int64) (*Score, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	rootPath, err := containerRootPath(zr)
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.Name != rootPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open container entry %q: %w", rootPath, err)
		}
		defer rc.Close()
		return ParseReader(rc)
	}
	return nil, fmt.Errorf("container manifest names %q but the archive has no such entry", rootPath)
}

// ReadContainerFile opens a .mxl file from disk.
func ReadContainerFile(path string) (*Score, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return ReadContainer(f, st.Size())
}

// containerRootPath reads the manifest for the score entry path. When
// the manifest is absent (some producers skip it) the first score-like
// entry outside META-INF is used.
func containerRootPath(zr *zip.Reader) (string, error) {
	for _, f := range zr.File {
		if f.Name != containerEntry {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open container manifest: %w", err)
		}
		path, err := manifestRootfile(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		return path, nil
	}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "META-INF/") {
			continue
		}
		if strings.HasSuffix(f.Name, ".xml") || strings.HasSuffix(f.Name, ".musicxml") {
			return f.Name, nil
		}
	}
	return "", fmt.Errorf("container has no manifest and no score entry")
}

// manifestRootfile extracts the first rootfile's full-path attribute.
func manifestRootfile(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return "", fmt.Errorf("container manifest has no rootfile entry")
			}
			return "", fmt.Errorf("container manifest: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "rootfile" {
			continue
		}
		for _, a := range se.Attr {
			if a.Name.Local == "full-path" {
				return a.Value, nil
			}
		}
		return "", fmt.Errorf("container rootfile entry missing full-path")
	}
}

// WriteContainer emits the score and wraps it in a compressed container
// with a manifest naming entryName as the root score.
func WriteContainer(w io.Writer, entryName string, s *Score) error {
	doc, err := Emit(s)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(w)

	mf, err := zw.Create(containerEntry)
	if err != nil {
		return fmt.Errorf("write container manifest: %w", err)
	}
	var manifest bytes.Buffer
	manifest.WriteString(xmlDeclaration)
	manifest.WriteByte('\n')
	manifest.WriteString("<container>\n  <rootfiles>\n")
	fmt.Fprintf(&manifest, "    <rootfile full-path=%q media-type=%q/>\n", entryName, containerMedia)
	manifest.WriteString("  </rootfiles>\n</container>\n")
	if _, err := mf.Write(manifest.Bytes()); err != nil {
		return fmt.Errorf("write container manifest: %w", err)
	}

	sf, err := zw.Create(entryName)
	if err != nil {
		return fmt.Errorf("write container entry %q: %w", entryName, err)
	}
	if _, err := io.WriteString(sf, doc); err != nil {
		return fmt.Errorf("write container entry %q: %w", entryName, err)
	}
	return zw.Close()
}

// WriteContainerFile writes a .mxl file to disk.
func WriteContainerFile(path, entryName string, s *Score) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteContainer(f, entryName, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
