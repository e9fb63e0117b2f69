package models

// UploadStatus tracks one file through the pipeline. Transitions are strictly
// pending -> uploading -> done|failed; a failed file re-enters only by being
// re-added as a fresh item.
type UploadStatus string

const (
	UploadPending   UploadStatus = "pending"
	UploadUploading UploadStatus = "uploading"
	UploadDone      UploadStatus = "done"
	UploadFailed    UploadStatus = "failed"
)

// UploadItem is the dialog-local tracking state for one file in a batch.
// The key disambiguates same-name files added together; never keyed by name.
type UploadItem struct {
	Key       string       `json:"key"`
	FileName  string       `json:"fileName"`
	SizeBytes int64        `json:"sizeBytes"`
	Progress  int          `json:"progress"`
	Status    UploadStatus `json:"status"`
	Error     string       `json:"error,omitempty"`
}

// Settled reports whether the item finished, successfully or not.
func (i UploadItem) Settled() bool {
	return i.Status == UploadDone || i.Status == UploadFailed
}

// BatchSummary aggregates one pipeline run.
type BatchSummary struct {
	SuccessCount int `json:"successCount"`
	TotalCount   int `json:"totalCount"`
}

// AllSucceeded reports whether every file in the batch uploaded.
func (s BatchSummary) AllSucceeded() bool {
	return s.TotalCount > 0 && s.SuccessCount == s.TotalCount
}
