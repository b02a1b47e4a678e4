package entity

import "strings"

const (
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatBoth = "both"

	BackgroundWhite       = "white"
	BackgroundTransparent = "transparent"

	DefaultDPI = 300
	MinDPI     = 50
	MaxDPI     = 1200
)

type CompileRequest struct {
	TikzCode     string `json:"tikz_code"`
	OutputFormat string `json:"output_format"`
	DPI          int    `json:"dpi"`
	Background   string `json:"background"`
}

type CompileResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PDFBase64 string `json:"pdf_base64,omitempty"`
	PNGBase64 string `json:"png_base64,omitempty"`
	FileID    string `json:"file_id,omitempty"`
}

// Artifacts holds the encoded outputs of one successful compilation,
// the unit stored in the cache.
type Artifacts struct {
	PDFBase64 string `json:"pdf_base64,omitempty"`
	PNGBase64 string `json:"png_base64,omitempty"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	PDFLatex    string `json:"pdflatex"`
	TikZ        string `json:"tikz"`
	ImageMagick string `json:"imagemagick"`
}

// Normalize fills defaults for omitted request fields
func (r *CompileRequest) Normalize() {
	if r.OutputFormat == "" {
		r.OutputFormat = FormatPNG
	}
	if r.DPI == 0 {
		r.DPI = DefaultDPI
	}
	if r.Background == "" {
		r.Background = BackgroundWhite
	}
}

func (r *CompileRequest) Validate() error {
	if strings.TrimSpace(r.TikzCode) == "" {
		return ErrEmptySource
	}

	switch r.OutputFormat {
	case FormatPNG, FormatPDF, FormatBoth:
	default:
		return ErrInvalidFormat
	}

	switch r.Background {
	case BackgroundWhite, BackgroundTransparent:
	default:
		return ErrInvalidBackground
	}

	if r.DPI < MinDPI || r.DPI > MaxDPI {
		return ErrInvalidDPI
	}

	return nil
}

func (r *CompileRequest) WantsPDF() bool {
	return r.OutputFormat == FormatPDF || r.OutputFormat == FormatBoth
}

func (r *CompileRequest) WantsPNG() bool {
	return r.OutputFormat == FormatPNG || r.OutputFormat == FormatBoth
}
