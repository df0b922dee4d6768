package models

type UploadStatus string

const (
	UploadProcessing UploadStatus = "processing"
	UploadCompleted  UploadStatus = "completed"
	UploadError      UploadStatus = "error"
)

// Row is one flat key-value row extracted from a document.
type Row map[string]any

// UploadedFile is a document submitted for simulated extraction.
type UploadedFile struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Size          string       `json:"size"`
	Type          string       `json:"type"`
	UploadDate    string       `json:"upload_date"`
	Status        UploadStatus `json:"status"`
	Summary       string       `json:"summary,omitempty"`
	ExtractedData []Row        `json:"extracted_data,omitempty"`
}

// Clone returns a copy that shares nothing mutable with f.
func (f UploadedFile) Clone() UploadedFile {
	out := f
	if f.ExtractedData != nil {
		out.ExtractedData = make([]Row, len(f.ExtractedData))
		for i, row := range f.ExtractedData {
			cp := make(Row, len(row))
			for k, v := range row {
				cp[k] = v
			}
			out.ExtractedData[i] = cp
		}
	}
	return out
}
