package dto

// UploadMediaRequest is the JSON body of POST /api/media: the payload is
// base64-encoded, the file name is kept verbatim.
type UploadMediaRequest struct {
	File     string `json:"file" validate:"required"`
	FileName string `json:"fileName" validate:"required"`
}

// EntriesResponse wraps a page of records.
type EntriesResponse struct {
	Entries interface{} `json:"entries"`
}
