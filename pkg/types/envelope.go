package types

// Envelope status values used by every backend response.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ListData is the payload of a collection response.
type ListData struct {
	Items []Record `json:"items"`
	Total int      `json:"total"`
}

// ListEnvelope is the response shape of GET /{resource}.
type ListEnvelope struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Data    ListData `json:"data"`
}

// ItemData is the payload of a detail response.
type ItemData struct {
	Item Record `json:"item"`
}

// ItemEnvelope is the response shape of GET /{resource}/{id}.
type ItemEnvelope struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Data    ItemData `json:"data"`
}

// BatchRequest is the body of POST /{resource}/batch.
type BatchRequest struct {
	IDs []string `json:"ids"`
}

// BatchData is the payload of a batch response.
type BatchData struct {
	Items []Record `json:"items"`
}

// BatchEnvelope is the response shape of POST /{resource}/batch.
type BatchEnvelope struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Data    BatchData `json:"data"`
}
