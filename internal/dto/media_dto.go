package dto

type UploadedFile struct {
	URL          string `json:"url"`
	OriginalName string `json:"originalName"`
	MediaType    string `json:"mediaType"`
}

type UploadResponse struct {
	Files []UploadedFile `json:"files"`
}

type DirectUploadRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// DirectUploadResponse is the handshake for the client-direct path: the
// client PUTs the file to URL, then uses PublicURL as the item's mediaUrl.
type DirectUploadResponse struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	PublicURL string `json:"publicUrl"`
	MediaType string `json:"mediaType"`
}

type EmbedRequest struct {
	URL string `json:"url"`
}

type EmbedResponse struct {
	Type     string `json:"type"`
	EmbedID  string `json:"embedId"`
	MediaURL string `json:"mediaUrl"`
}
