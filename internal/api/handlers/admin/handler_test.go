package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authsvc "github.com/aliskhannn/newsletter/internal/auth"
	mocks "github.com/aliskhannn/newsletter/internal/mocks/api/handlers/admin"
	"github.com/aliskhannn/newsletter/internal/model"
)

type handlerMocks struct {
	newsletters *mocks.MocknewsletterService
	auth        *mocks.MockauthService
	users       *mocks.MockuserRepository
}

func setupHandler(t *testing.T) (*Handler, handlerMocks) {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		newsletters: mocks.NewMocknewsletterService(ctrl),
		auth:        mocks.NewMockauthService(ctrl),
		users:       mocks.NewMockuserRepository(ctrl),
	}
	handler := NewHandler(m.newsletters, m.auth, m.users, validator.New())
	return handler, m
}

func newFormContext(w *httptest.ResponseRecorder, userID uuid.UUID, target string, form url.Values) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Set("user_id", userID)
	return c
}

func publishForm(key string) url.Values {
	form := url.Values{}
	form.Set("title", "Issue #1")
	form.Set("text_content", "plain text")
	form.Set("html_content", "<p>html</p>")
	form.Set("idempotency_key", key)
	return form
}

func TestHandler_Publish_FirstAttempt(t *testing.T) {
	handler, m := setupHandler(t)

	userID := uuid.New()
	key := uuid.NewString()
	issueID := uuid.New()

	w := httptest.NewRecorder()
	c := newFormContext(w, userID, "/admin/newsletter", publishForm(key))

	var savedResp model.StoredResponse
	m.newsletters.EXPECT().TryBegin(gomock.Any(), userID, key).Return(nil, nil)
	m.newsletters.EXPECT().
		PublishIssue(gomock.Any(), "Issue #1", "plain text", "<p>html</p>").
		Return(issueID, int64(3), nil)
	m.newsletters.EXPECT().
		SaveResponse(gomock.Any(), userID, key, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, resp model.StoredResponse) error {
			savedResp = resp
			return nil
		})

	handler.Publish(c)
	c.Writer.WriteHeaderNow()

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/newsletter", resp.Header.Get("Location"))
	assert.NotEmpty(t, resp.Header.Get("Set-Cookie"))

	// The saved response must mirror what was written to the client.
	assert.Equal(t, http.StatusSeeOther, savedResp.StatusCode)
	require.Len(t, savedResp.Headers, 2)
	assert.Equal(t, "Location", savedResp.Headers[0].Name)
	assert.Equal(t, "/admin/newsletter", string(savedResp.Headers[0].Value))
	assert.Equal(t, "Set-Cookie", savedResp.Headers[1].Name)
}

// A retried key must replay the cached response verbatim and never publish a
// second issue.
func TestHandler_Publish_ReplaysSavedResponse(t *testing.T) {
	handler, m := setupHandler(t)

	userID := uuid.New()
	key := uuid.NewString()
	saved := &model.StoredResponse{
		StatusCode: http.StatusSeeOther,
		Headers: []model.SavedHeader{
			{Name: "Location", Value: []byte("/admin/newsletter")},
			{Name: "Set-Cookie", Value: []byte("_flash=replayed; Path=/; HttpOnly")},
		},
		Body: []byte("cached body"),
	}

	w := httptest.NewRecorder()
	c := newFormContext(w, userID, "/admin/newsletter", publishForm(key))

	m.newsletters.EXPECT().TryBegin(gomock.Any(), userID, key).Return(saved, nil)

	handler.Publish(c)

	resp := w.Result()
	assert.Equal(t, saved.StatusCode, resp.StatusCode)
	assert.Equal(t, "/admin/newsletter", resp.Header.Get("Location"))
	assert.Equal(t, "_flash=replayed; Path=/; HttpOnly", resp.Header.Get("Set-Cookie"))
	assert.Equal(t, "cached body", w.Body.String())
}

func TestHandler_Publish_MissingIdempotencyKey(t *testing.T) {
	handler, _ := setupHandler(t)

	form := publishForm("")
	form.Del("idempotency_key")

	w := httptest.NewRecorder()
	c := newFormContext(w, uuid.New(), "/admin/newsletter", form)

	handler.Publish(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Publish_ServiceError(t *testing.T) {
	handler, m := setupHandler(t)

	userID := uuid.New()
	key := uuid.NewString()

	w := httptest.NewRecorder()
	c := newFormContext(w, userID, "/admin/newsletter", publishForm(key))

	m.newsletters.EXPECT().TryBegin(gomock.Any(), userID, key).Return(nil, nil)
	m.newsletters.EXPECT().
		PublishIssue(gomock.Any(), "Issue #1", "plain text", "<p>html</p>").
		Return(uuid.Nil, int64(0), assert.AnError)

	handler.Publish(c)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
}

func TestHandler_Dashboard(t *testing.T) {
	handler, m := setupHandler(t)

	userID := uuid.New()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	c.Set("user_id", userID)

	m.users.EXPECT().GetUsername(gomock.Any(), userID).Return("admin", nil)

	handler.Dashboard(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "Welcome admin!")
}

func TestHandler_ShowNewsletterForm_EmbedsFreshKey(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/newsletter", nil)
	c.Set("user_id", uuid.New())

	handler.ShowNewsletterForm(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), `name="idempotency_key"`)
}

func passwordForm(current, newPass, check string) url.Values {
	form := url.Values{}
	form.Set("current_password", current)
	form.Set("new_password", newPass)
	form.Set("new_password_check", check)
	return form
}

func TestHandler_ChangePassword_Success(t *testing.T) {
	handler, m := setupHandler(t)

	userID := uuid.New()

	w := httptest.NewRecorder()
	c := newFormContext(w, userID, "/admin/password", passwordForm("old", "new password", "new password"))

	m.users.EXPECT().GetUsername(gomock.Any(), userID).Return("admin", nil)
	m.auth.EXPECT().Verify(gomock.Any(), "admin", "old").Return(userID, nil)
	m.auth.EXPECT().ChangePassword(gomock.Any(), userID, "new password").Return(nil)

	handler.ChangePassword(c)
	c.Writer.WriteHeaderNow()

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/password", resp.Header.Get("Location"))
}

func TestHandler_ChangePassword_Mismatch(t *testing.T) {
	handler, _ := setupHandler(t)

	w := httptest.NewRecorder()
	c := newFormContext(w, uuid.New(), "/admin/password", passwordForm("old", "one", "two"))

	handler.ChangePassword(c)
	c.Writer.WriteHeaderNow()

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/password", resp.Header.Get("Location"))
	assert.Contains(t, resp.Header.Get("Set-Cookie"), "_flash")
}

func TestHandler_ChangePassword_WrongCurrentPassword(t *testing.T) {
	handler, m := setupHandler(t)

	userID := uuid.New()

	w := httptest.NewRecorder()
	c := newFormContext(w, userID, "/admin/password", passwordForm("wrong", "new password", "new password"))

	m.users.EXPECT().GetUsername(gomock.Any(), userID).Return("admin", nil)
	m.auth.EXPECT().
		Verify(gomock.Any(), "admin", "wrong").
		Return(uuid.Nil, authsvc.ErrInvalidCredentials)

	handler.ChangePassword(c)
	c.Writer.WriteHeaderNow()

	resp := w.Result()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/password", resp.Header.Get("Location"))
	assert.Contains(t, resp.Header.Get("Set-Cookie"), "_flash")
}
