package pdf

import (
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/llennemann/badgepress/pkg/errors"
)

// Icon is SVG artwork parsed into gofpdf's basic path representation,
// ready to stroke onto any sheet.
type Icon struct {
	path string
	sig  gofpdf.SVGBasicType
}

// Size returns the icon's intrinsic width and height in points.
func (i *Icon) Size() (float64, float64) {
	return i.sig.Wd, i.sig.Ht
}

// Path returns the file the icon was loaded from.
func (i *Icon) Path() string { return i.path }

// LoadIcon reads and parses an SVG file. Only path-based SVGs (the
// gofpdf basic subset) are supported, which covers single-color line
// art like logos and markers.
func LoadIcon(path string) (*Icon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetNotFound, err, "failed to read icon %s", path)
	}

	sig, err := gofpdf.SVGBasicParse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAssetParse, err, "failed to parse icon %s", path)
	}
	if sig.Wd <= 0 || sig.Ht <= 0 {
		return nil, errors.New(errors.ErrCodeAssetParse,
			"icon %s has no intrinsic size; the svg needs width and height attributes", path)
	}

	return &Icon{path: path, sig: sig}, nil
}

// Icons parses each icon file once per run and hands out the cached
// result afterward. Badge runs draw the same two icons hundreds of
// times; parsing per badge would dominate the run.
type Icons struct {
	cache map[string]*Icon
}

// NewIcons returns an empty icon cache.
func NewIcons() *Icons {
	return &Icons{cache: make(map[string]*Icon)}
}

// Load returns the icon at path, parsing it on first use.
func (s *Icons) Load(path string) (*Icon, error) {
	if ic, ok := s.cache[path]; ok {
		return ic, nil
	}
	ic, err := LoadIcon(path)
	if err != nil {
		return nil, err
	}
	s.cache[path] = ic
	return ic, nil
}
