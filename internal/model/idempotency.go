package model

// SavedHeader is a single HTTP header captured in an idempotency record.
// Values are kept as raw bytes so a replayed response is bit-identical to
// the original.
type SavedHeader struct {
	Name  string `json:"name"`
	Value []byte `json:"value"`
}

// StoredResponse is the HTTP response cached for an (user, idempotency key)
// pair. Header order is preserved.
type StoredResponse struct {
	StatusCode int           `json:"status_code"`
	Headers    []SavedHeader `json:"headers"`
	Body       []byte        `json:"body"`
}
