// internal/member/client.go
package member

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"diet-client/internal/api"
	"diet-client/internal/models"
	"diet-client/internal/notify"
	"diet-client/pkg/logger"
)

const basePath = "/api/members"

// Client translates session-lifecycle intents into member API calls.
// Credentials travel in cookies held by the underlying api.Client; no
// method accepts or returns a token.
type Client struct {
	api      *api.Client
	retry    api.RetryPolicy
	notifier notify.Notifier
	logger   *logger.Logger
}

func NewClient(apiClient *api.Client, retry api.RetryPolicy, notifier notify.Notifier, l *logger.Logger) *Client {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Client{
		api:      apiClient,
		retry:    retry,
		notifier: notifier,
		logger:   l,
	}
}

type loginRequest struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// Login authenticates with nickname and password. The first attempt is
// JSON; a 415 or 400 response triggers exactly one form-encoded
// fallback with the same credentials. A 401 is reported through the
// notifier and returned immediately. Only network-level failures are
// retried, bounded by the retry policy with linearly growing delays.
func (c *Client) Login(ctx context.Context, nickname, password string) (*models.Member, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		member, err := c.loginOnce(ctx, nickname, password)
		if err == nil {
			c.logger.Info("Login succeeded", "nickname", nickname)
			return member, nil
		}

		// Any response from the server, 401 included, ends the retry loop.
		if api.StatusOf(err) != 0 {
			return nil, err
		}

		lastErr = err
		if attempt >= c.retry.MaxRetries {
			break
		}

		api.RecordRetry("login")
		c.logger.Warn("Login failed with network error, retrying", "attempt", attempt+1, "error", err)
		if sleepErr := c.retry.Sleep(ctx, attempt); sleepErr != nil {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

// loginOnce runs one full login attempt: the JSON request plus, when
// the server rejects the media type, the form-encoded fallback.
func (c *Client) loginOnce(ctx context.Context, nickname, password string) (*models.Member, error) {
	creds := loginRequest{Nickname: nickname, Password: password}

	var member models.Member
	err := c.api.PostJSON(ctx, "login", basePath+"/login", creds, &member)
	if err == nil {
		return &member, nil
	}

	switch api.StatusOf(err) {
	case http.StatusUnsupportedMediaType, http.StatusBadRequest:
		api.RecordLoginFallback()
		c.logger.Info("Login rejected as JSON, retrying form-encoded")

		form := url.Values{}
		form.Set("nickname", nickname)
		form.Set("password", password)

		var fallback models.Member
		if formErr := c.api.PostForm(ctx, "login", basePath+"/login", form, &fallback); formErr != nil {
			return nil, formErr
		}
		return &fallback, nil

	case http.StatusUnauthorized:
		c.notifier.Notify(notify.OpLogin, err)
		return nil, err
	}

	return nil, err
}

// Logout is best-effort: backend failures are logged and swallowed so
// local session teardown can proceed regardless.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.api.PostJSON(ctx, "logout", basePath+"/logout", struct{}{}, nil); err != nil {
		c.logger.Warn("Logout request failed, continuing with local teardown", "error", err)
	}
	return nil
}

// Signup registers a new member. The profile travels as a JSON part and
// the photo, when present, as an image part of the same multipart body.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest, photo []byte, photoName string) (*models.Member, error) {
	var member models.Member
	if err := c.api.Multipart(ctx, "signup", http.MethodPost, basePath+"/multipart", req, photo, photoName, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// CurrentMember fetches the session owner's profile.
func (c *Client) CurrentMember(ctx context.Context) (*models.Member, error) {
	var member models.Member
	if err := c.api.GetJSON(ctx, "current-member", basePath+"/me", nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateProfileImage uploads binary image data for the given member.
func (c *Client) UpdateProfileImage(ctx context.Context, id int64, image []byte, imageName string) error {
	path := fmt.Sprintf("%s/%d/profile-image", basePath, id)
	return c.api.Multipart(ctx, "profile-image-upload", http.MethodPatch, path, nil, image, imageName, nil)
}

// UpdatePhotoURL stores a pre-hosted photo URL on the current member.
// The upload itself happens elsewhere; only the reference is sent here.
func (c *Client) UpdatePhotoURL(ctx context.Context, photoURL string) (*models.Member, error) {
	payload := struct {
		PhotoURL string `json:"photoUrl"`
	}{PhotoURL: photoURL}

	var member models.Member
	if err := c.api.PatchJSON(ctx, "photo-url-update", basePath+"/me/profile-image", payload, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// DeleteAccount removes the current member's account.
func (c *Client) DeleteAccount(ctx context.Context) error {
	return c.api.Delete(ctx, "delete-account", basePath+"/me", nil)
}

// CheckEmailExists reports whether the email is already registered.
func (c *Client) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	query := url.Values{}
	query.Set("email", email)
	return c.checkExists(ctx, "check-email", basePath+"/check-email", query)
}

// CheckNicknameExists reports whether the nickname is already taken.
func (c *Client) CheckNicknameExists(ctx context.Context, nickname string) (bool, error) {
	query := url.Values{}
	query.Set("nickname", nickname)
	return c.checkExists(ctx, "check-nickname", basePath+"/check-nickname", query)
}

func (c *Client) checkExists(ctx context.Context, op, path string, query url.Values) (bool, error) {
	var raw json.RawMessage
	if err := c.api.GetJSON(ctx, op, path, query, &raw); err != nil {
		return false, err
	}
	return decodeExists(raw, op)
}

// decodeExists accepts the shapes the backend has been seen to produce:
// a bare boolean, {"exists": bool} or {"data": bool}.
func decodeExists(raw json.RawMessage, op string) (bool, error) {
	var bare bool
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Exists *bool `json:"exists"`
		Data   *bool `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if wrapped.Exists != nil {
			return *wrapped.Exists, nil
		}
		if wrapped.Data != nil {
			return *wrapped.Data, nil
		}
	}

	return false, fmt.Errorf("unexpected %s response: %s", op, raw)
}

// SearchNickname recovers a forgotten nickname from name and email.
func (c *Client) SearchNickname(ctx context.Context, name, email string) (string, error) {
	form := url.Values{}
	form.Set("name", name)
	form.Set("email", email)

	var result struct {
		Nickname string `json:"nickname"`
	}
	if err := c.api.PostForm(ctx, "search-nickname", basePath+"/search-nickname", form, &result); err != nil {
		return "", err
	}
	return result.Nickname, nil
}

// RequestPasswordReset asks the backend to start a password reset for
// the member matching name and email.
func (c *Client) RequestPasswordReset(ctx context.Context, name, email string) error {
	payload := struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}{Name: name, Email: email}

	return c.api.PostJSON(ctx, "password-reset", basePath+"/reset-password", payload, nil)
}

// SearchProfiles searches members by nickname or email.
func (c *Client) SearchProfiles(ctx context.Context, search string) ([]models.Member, error) {
	query := url.Values{}
	query.Set("query", search)

	var members []models.Member
	if err := c.api.GetJSON(ctx, "search-profiles", basePath+"/search", query, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateProfile replaces the current member's profile. Failures are
// reported through the notifier with a status-specific message, then
// returned to the caller.
func (c *Client) UpdateProfile(ctx context.Context, data models.ProfileUpdate) (*models.Member, error) {
	var member models.Member
	if err := c.api.PutJSON(ctx, "profile-update", basePath+"/me", data, &member); err != nil {
		c.notifier.Notify(notify.OpProfileUpdate, err)
		return nil, err
	}
	return &member, nil
}

// UpdateProfileWithImage replaces the profile and, when photo is set,
// the profile image in one multipart request.
func (c *Client) UpdateProfileWithImage(ctx context.Context, id int64, data models.ProfileUpdate, photo []byte, photoName string) (*models.Member, error) {
	path := fmt.Sprintf("%s/%d/multipart", basePath, id)

	var member models.Member
	if err := c.api.Multipart(ctx, "profile-update-image", http.MethodPut, path, data, photo, photoName, &member); err != nil {
		c.notifier.Notify(notify.OpProfileImageUpdate, err)
		return nil, err
	}
	return &member, nil
}
