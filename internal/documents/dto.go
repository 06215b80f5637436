package documents

import "time"

// DocumentResponse is the API shape of an uploaded resume.
type DocumentResponse struct {
	DocumentID  string    `json:"documentId"`
	FileName    string    `json:"fileName"`
	MimeType    string    `json:"mimeType"`
	SizeBytes   int64     `json:"sizeBytes"`
	DownloadURL string    `json:"downloadUrl"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// DownloadPath is the owner-only download route for a document.
func DownloadPath(id string) string {
	return "/api/v1/documents/" + id + "/download"
}

// ToResponse maps a Document to its API shape.
func ToResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:  doc.ID,
		FileName:    doc.FileName,
		MimeType:    doc.MimeType,
		SizeBytes:   doc.SizeBytes,
		DownloadURL: DownloadPath(doc.ID),
		UploadedAt:  doc.CreatedAt,
	}
}

// ToResponses maps a page of documents, never returning nil.
func ToResponses(docs []Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, ToResponse(doc))
	}
	return out
}
