package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"firebase.google.com/go/v4/auth"

	"tutorhub/pkg/errors"
)

type FirebaseAuthClient struct {
	client *auth.Client
	apiKey string
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		apiKey: apiKey,
	}
}

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *FirebaseAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).
		Password(newPassword)

	_, err := f.client.UpdateUser(ctx, uid, params)
	if err != nil {
		return err
	}

	return nil
}

type signInResponse struct {
	IDToken string `json:"idToken"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPassword exchanges credentials for an ID token through the
// Identity Toolkit REST endpoint; the admin SDK has no password sign-in.
func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	url := fmt.Sprintf("https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword?key=%s", f.apiKey)

	body, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", errors.Internal("Authentication service unreachable", err)
	}
	defer resp.Body.Close()

	var result signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Internal("Failed to decode sign-in response", err)
	}

	if result.Error != nil {
		return "", errors.Unauthorized(FriendlyAuthMessage(result.Error.Message), nil)
	}

	return result.IDToken, nil
}

// FriendlyAuthMessage maps provider error codes to user-facing messages.
// Unknown codes never leak raw provider text.
func FriendlyAuthMessage(code string) string {
	switch code {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return "Invalid email or password."
	case "INVALID_EMAIL":
		return "Invalid email address format."
	case "USER_DISABLED":
		return "This account has been disabled."
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return "Too many failed attempts. Please try again later."
	case "EMAIL_EXISTS":
		return "An account with this email already exists."
	case "WEAK_PASSWORD":
		return "Password should be at least 6 characters."
	default:
		return "An error occurred. Please try again."
	}
}
