package storage

import (
	"mime/multipart"
)

// Storage abstracts where uploaded files live. The local-disk implementation
// serves the marketing site; an object-store implementation can be swapped in
// without touching the controllers.
type Storage interface {
	// Save stores one uploaded file under a collision-resistant name and
	// returns its public URL.
	Save(file *multipart.FileHeader) (string, error)

	// Remove deletes the file behind a URL previously returned by Save.
	// URLs this storage does not own are ignored, as are already-missing
	// files.
	Remove(url string) error
}
