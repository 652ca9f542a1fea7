package asset

import (
	"mime"
	"path/filepath"
	"time"
)

// Kind represents the supported asset payloads
type Kind string

const (
	KindAudio Kind = "audio"
	KindImage Kind = "image"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindAudio, KindImage:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// Asset is a durably stored binary payload referenced by key from
// tiles. The name is the original filename, advisory only.
type Asset struct {
	Key       string    `json:"key"`
	Kind      Kind      `json:"kind"`
	Name      string    `json:"name"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`

	// Blob is omitted from JSON; list/get responses carry metadata
	// only and bytes travel through handles.
	Blob []byte `json:"-"`
}

// ContentType guesses the MIME type from the advisory filename,
// falling back to a generic type per kind.
func (a *Asset) ContentType() string {
	if ct := mime.TypeByExtension(filepath.Ext(a.Name)); ct != "" {
		return ct
	}
	switch a.Kind {
	case KindImage:
		return "image/png"
	case KindAudio:
		return "audio/mpeg"
	default:
		return "application/octet-stream"
	}
}

// Handle is a transient, revocable reference to an asset's bytes.
// Each GetHandle call mints a new independent handle; the caller owns
// it and must release it exactly once. A handle holds its own copy of
// the bytes, so deleting the durable asset never invalidates handles
// already issued.
type Handle struct {
	ID          string    `json:"id"`
	AssetKey    string    `json:"asset_key"`
	Kind        Kind      `json:"kind"`
	ContentType string    `json:"content_type"`
	IssuedAt    time.Time `json:"issued_at"`

	Data []byte `json:"-"`
}
