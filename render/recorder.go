package render

import (
	"sync"
	"unicode/utf8"
)

// Recorder is an in-memory Surface that records every paint call. It
// measures text as half the font size per rune unless Measure is set.
type Recorder struct {
	PageHeight float64
	Measure    func(f Font, size float64, text string) float64

	mu       sync.Mutex
	Embedded []StandardFont
	Texts    []TextRun
	Lines    []Line
	Rects    []Rect
	Images   []ImageRun
	Barcodes []BarcodeRun
	Alphas   []float64
}

// NewRecorder returns a recorder for a page of the given height.
func NewRecorder(pageHeight float64) *Recorder {
	return &Recorder{PageHeight: pageHeight}
}

func (r *Recorder) Height() float64 { return r.PageHeight }

func (r *Recorder) EmbedFont(name StandardFont) (Font, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Embedded = append(r.Embedded, name)
	return Font{Name: name, Ref: string(name)}, nil
}

func (r *Recorder) MeasureText(f Font, size float64, text string) float64 {
	if r.Measure != nil {
		return r.Measure(f, size, text)
	}
	return float64(utf8.RuneCountInString(text)) * size / 2
}

func (r *Recorder) DrawText(run TextRun) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Texts = append(r.Texts, run)
}

func (r *Recorder) DrawLine(l Line) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lines = append(r.Lines, l)
}

func (r *Recorder) FillRect(rect Rect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Rects = append(r.Rects, rect)
}

func (r *Recorder) SetOpacity(alpha float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Alphas = append(r.Alphas, alpha)
}

func (r *Recorder) DrawImage(img ImageRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Images = append(r.Images, img)
	return nil
}

func (r *Recorder) DrawBarcode(bc BarcodeRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Barcodes = append(r.Barcodes, bc)
	return nil
}

// Calls returns the total number of recorded paint calls.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Texts) + len(r.Lines) + len(r.Rects) + len(r.Images) + len(r.Barcodes)
}
