// Package pkginfo reads the metadata embedded in built package archives.
package pkginfo

import (
	"archive/tar"
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/zerr"
)

// MetadataFile is the archive member holding package metadata.
const MetadataFile = ".PKGINFO"

const maxMetadataSize = 1 << 20

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z'}

	errNoMetadata  = errors.New("archive has no " + MetadataFile)
	errUnsupported = errors.New("unsupported package compression")
)

// Info is the subset of .PKGINFO fields rauri uses.
type Info struct {
	Name    string
	Version string
}

// Inspector implements ports.ArtifactInspector by reading .PKGINFO directly.
type Inspector struct{}

// NewInspector creates an Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Identity opens the package at path and returns its embedded name and version.
func (i *Inspector) Identity(_ context.Context, path string) (domain.BuildArtifact, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from scanning the build directory
	if err != nil {
		return domain.BuildArtifact{}, zerr.With(zerr.Wrap(err, domain.ErrArtifactQueryFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	info, err := Read(f)
	if err != nil {
		return domain.BuildArtifact{}, zerr.With(zerr.Wrap(err, domain.ErrArtifactQueryFailed.Error()), "path", path)
	}

	return domain.BuildArtifact{Path: path, Name: info.Name, Version: info.Version}, nil
}

// Read extracts the metadata from a package archive compressed with zstd or gzip,
// or not compressed at all. xz archives are rejected.
func Read(r io.Reader) (Info, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(xzMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return Info{}, err
	}

	var stream io.Reader
	switch {
	case bytes.HasPrefix(magic, zstdMagic):
		dec, err := zstd.NewReader(br)
		if err != nil {
			return Info{}, err
		}
		defer dec.Close()
		stream = dec
	case bytes.HasPrefix(magic, xzMagic):
		return Info{}, errUnsupported
	case bytes.HasPrefix(magic, gzipMagic):
		dec, err := gzip.NewReader(br)
		if err != nil {
			return Info{}, err
		}
		defer func() { _ = dec.Close() }()
		stream = dec
	default:
		stream = br
	}

	tr := tar.NewReader(stream)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return Info{}, errNoMetadata
		}
		if err != nil {
			return Info{}, err
		}
		if strings.TrimPrefix(hdr.Name, "./") != MetadataFile {
			continue
		}

		data, err := io.ReadAll(io.LimitReader(tr, maxMetadataSize))
		if err != nil {
			return Info{}, err
		}
		return Parse(data)
	}
}

// Parse decodes the "key = value" lines of a .PKGINFO file.
func Parse(data []byte) (Info, error) {
	var info Info

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		switch key {
		case "pkgname":
			info.Name = value
		case "pkgver":
			info.Version = value
		}
	}

	if info.Name == "" || info.Version == "" {
		return Info{}, errNoMetadata
	}
	return info, nil
}
