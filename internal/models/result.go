package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
	SizeBytes    int64  `json:"size_bytes"`
}

type ParseRequest struct {
	DocumentID string `json:"document_id" validate:"required,uuid"`
	Enrich     *bool  `json:"enrich"`
}

type ParseTextRequest struct {
	Markdown   string `json:"markdown" validate:"required"`
	SourceFile string `json:"source_file"`
	Enrich     *bool  `json:"enrich"`
}

type ParseResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string        `json:"id"`
	Status       string        `json:"status"`
	Result       *ResumeRecord `json:"result,omitempty"`
	ErrorMessage *string       `json:"error_message,omitempty"`
}
