package usecase

import (
	"context"
	"io"
)

// TokenVerifier validates an external identity token and yields the verified
// identity attached to it.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (email, firstName, lastName string, err error)
}

// Mailer is the outbound notification sink.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ImageStore persists binary image payloads and returns stable URLs.
type ImageStore interface {
	UploadImage(ctx context.Context, file io.Reader, contentType string) (string, error)
}
