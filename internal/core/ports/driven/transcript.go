package driven

// TranscriptReader turns a pre-extracted transcript file into per-page
// texts. PDF extraction is an external collaborator: readers consume its
// plain-text output, split on a page-delimiter boundary.
type TranscriptReader interface {
	// Ext returns the file extension this reader handles (".txt").
	Ext() string

	// ReadPages returns the document title and the ordered page texts.
	ReadPages(path string) (title string, pages []string, err error)
}
