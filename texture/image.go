package texture

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/blezek/tga"
	_ "github.com/ftrvxmtrx/tga"
	_ "github.com/oov/psd"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Decode reads an image file. The decoder is picked by extension first; tga has no magic number.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f, strings.ToLower(filepath.Ext(path)))
}

func decode(r io.ReadSeeker, ext string) (image.Image, error) {
	switch ext {
	case ".png":
		return png.Decode(r)
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	case ".gif":
		return gif.Decode(r)
	case ".bmp":
		return bmp.Decode(r)
	}
	img, _, err := image.Decode(r)
	if err != nil && ext == ".tga" {
		// retry
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, errors.Wrap(err, "rewind tga")
		}
		img, err = tga.Decode(r)
	}
	return img, err
}

// Scale shrinks img so that neither side exceeds limit. 0: unlimited
func Scale(img image.Image, limit int) image.Image {
	rect := img.Bounds()
	sz := rect.Dx()
	if rect.Dy() > sz {
		sz = rect.Dy()
	}
	if limit <= 0 || sz <= limit {
		return img
	}
	scale := float32(limit) / float32(sz)
	w, h := int(float32(rect.Dx())*scale), int(float32(rect.Dy())*scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, rect, draw.Over, nil)
	return dst
}

func EncodePNG(img image.Image, limit int) ([]byte, error) {
	w := new(bytes.Buffer)
	if err := png.Encode(w, Scale(img, limit)); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// MimeType returns the glTF image type for path. Other formats are re-encoded as png.
func MimeType(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png", true
	case ".jpg", ".jpeg":
		return "image/jpeg", true
	}
	return "image/png", false
}
