package inspect

// Summary describes a document for reports.
type Summary struct {
	Version  string            `json:"version"`
	Metadata map[string]string `json:"metadata"`
	Pages    []PageSummary     `json:"pages"`
}

// PageSummary describes one page.
type PageSummary struct {
	Number   int       `json:"number"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	TextRuns []TextRun `json:"textRuns,omitempty"`
}

// Summarize collects metadata, page sizes and, when withText is set, the
// text runs of every page.
func (d *Document) Summarize(withText bool) (Summary, error) {
	s := Summary{Version: d.Version, Metadata: d.Metadata(), Pages: make([]PageSummary, 0, d.NumPages())}
	for n, p := range d.Pages() {
		ps := PageSummary{Number: n, Width: p.MediaBox.Width(), Height: p.MediaBox.Height()}
		if withText {
			runs, err := p.TextRuns()
			if err != nil {
				return Summary{}, err
			}
			ps.TextRuns = runs
		}
		s.Pages = append(s.Pages, ps)
	}
	return s, nil
}
