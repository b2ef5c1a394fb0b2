package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/jung-kurt/gofpdf"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/lvillar/pdftree/block"
)

// Formats gofpdf embeds directly. Everything else image.Decode understands
// is re-encoded as PNG first.
var nativeImageTypes = map[string]string{
	"png":  "PNG",
	"jpeg": "JPG",
	"gif":  "GIF",
}

// loadImage reads src and returns data gofpdf can embed along with its
// image type.
func loadImage(src string) ([]byte, string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, "", err
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", src, err)
	}
	if typ, ok := nativeImageTypes[format]; ok {
		return data, typ, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", src, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("converting %s (%s) to png: %w", src, format, err)
	}
	return buf.Bytes(), "PNG", nil
}

func (f *FPDF) DrawImage(img ImageRun) error {
	opts := gofpdf.ImageOptions{}
	info := f.pdf.GetImageInfo(img.Src)
	if info == nil {
		data, typ, err := loadImage(img.Src)
		if err != nil {
			return err
		}
		opts.ImageType = typ
		info = f.pdf.RegisterImageOptionsReader(img.Src, opts, bytes.NewReader(data))
		if f.pdf.Err() {
			return fmt.Errorf("registering %s: %w", img.Src, f.pdf.Error())
		}
	}

	x, y, w, h := img.X, img.Y, img.Width, img.Height
	if img.Fit == block.FitContain && info.Width() > 0 && info.Height() > 0 {
		scale := min(w/info.Width(), h/info.Height())
		cw, ch := info.Width()*scale, info.Height()*scale
		x += (w - cw) / 2
		y += (h - ch) / 2
		w, h = cw, ch
	}
	f.pdf.ImageOptions(img.Src, x, f.flip(y+h), w, h, false, opts, 0, "")
	if f.pdf.Err() {
		return fmt.Errorf("placing %s: %w", img.Src, f.pdf.Error())
	}
	return nil
}
