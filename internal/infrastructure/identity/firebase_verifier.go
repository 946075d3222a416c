package identity

import (
	"context"
	"strings"

	"firebase.google.com/go/v4/auth"
)

// FirebaseVerifier validates Google ID tokens through Firebase Auth and
// extracts the verified identity the resolver works with.
type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{
		client: client,
	}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (email, firstName, lastName string, err error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", "", err
	}

	email, _ = token.Claims["email"].(string)
	firstName, _ = token.Claims["given_name"].(string)
	lastName, _ = token.Claims["family_name"].(string)

	// Google tokens minted without profile scopes carry only a display name.
	if firstName == "" {
		if name, ok := token.Claims["name"].(string); ok && name != "" {
			parts := strings.SplitN(name, " ", 2)
			firstName = parts[0]
			if len(parts) > 1 {
				lastName = parts[1]
			}
		}
	}

	return email, firstName, lastName, nil
}
