package pdftree

import (
	"github.com/lvillar/pdftree/render"
	"github.com/lvillar/pdftree/tree"
)

// DryRun validates t, lays it out and paints it onto a render.Recorder
// instead of a PDF. Image files are not opened, so a missing image is not
// reported.
func DryRun(t tree.Tree, opts ...Option) (*render.Recorder, error) {
	cfg := newConfig(opts)
	if err := t.Validate(); err != nil {
		return nil, newError("DryRun", ErrInvalid, err)
	}
	geo := t.FirstPage().Resolve()
	rec := render.NewRecorder(geo.Height)
	boxes := place(t.Elements, geo)
	cfg.logger.Debug("dry run", "boxes", len(boxes), "height", geo.Height)
	if err := render.Page(rec, boxes, render.NewContext(cfg.logger)); err != nil {
		return nil, newError("DryRun", ErrRender, err)
	}
	return rec, nil
}
