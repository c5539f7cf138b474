package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"breachwatch/internal/api/handler"
	"breachwatch/internal/auth"
	mockauth "breachwatch/internal/auth/mock"
	"breachwatch/internal/monitor"
	mockmonitor "breachwatch/internal/monitor/mock"
	"breachwatch/pkg/domain"
	"breachwatch/pkg/logger"
	"breachwatch/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestMux(t *testing.T) (*mockauth.MockService, *mockmonitor.MockMonitor, *http.ServeMux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	authSvc := mockauth.NewMockService(ctrl)
	mon := mockmonitor.NewMockMonitor(ctrl)

	mux := http.NewServeMux()
	handler.New(handler.Deps{Auth: authSvc, Monitor: mon}).Register(mux)

	return authSvc, mon, mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (status, message string) {
	t.Helper()

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Status, body.Message
}

func TestRegister(t *testing.T) {
	authSvc, _, mux := newTestMux(t)

	authSvc.EXPECT().Register(gomock.Any(), "a@x.com", "p1").Return(&domain.User{
		ID:    domain.UserID(uuid.New()),
		Email: "a@x.com",
	}, nil)

	rec := doJSON(t, mux, http.MethodPost, "/register", "", map[string]string{
		"identifier": "a@x.com",
		"secret":     "p1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.Equal(t, "a@x.com", user.Email)
	require.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestRegister_Duplicate(t *testing.T) {
	authSvc, _, mux := newTestMux(t)

	authSvc.EXPECT().Register(gomock.Any(), "a@x.com", "p1").
		Return(nil, serrors.With(auth.ErrDuplicateIdentifier, "email already registered"))

	rec := doJSON(t, mux, http.MethodPost, "/register", "", map[string]string{
		"identifier": "a@x.com",
		"secret":     "p1",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	status, _ := decodeError(t, rec)
	require.Equal(t, "DUPLICATE_IDENTIFIER", status)
}

func TestRegister_MissingFields(t *testing.T) {
	_, _, mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/register", "", map[string]string{"identifier": "a@x.com"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	status, _ := decodeError(t, rec)
	require.Equal(t, "MISSING_FIELD", status)
}

func TestLogin(t *testing.T) {
	authSvc, _, mux := newTestMux(t)

	authSvc.EXPECT().Login(gomock.Any(), "a@x.com", "p1").Return("token-t", nil)

	rec := doJSON(t, mux, http.MethodPost, "/login", "", map[string]string{
		"identifier": "a@x.com",
		"secret":     "p1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "token-t", body.Token)
}

func TestLogin_BadCredentials(t *testing.T) {
	authSvc, _, mux := newTestMux(t)

	authSvc.EXPECT().Login(gomock.Any(), "a@x.com", "wrong").
		Return("", serrors.With(auth.ErrInvalidCredentials, "invalid email or password"))

	rec := doJSON(t, mux, http.MethodPost, "/login", "", map[string]string{
		"identifier": "a@x.com",
		"secret":     "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	status, _ := decodeError(t, rec)
	require.Equal(t, "INVALID_CREDENTIALS", status)
}

func TestListItems(t *testing.T) {
	authSvc, mon, mux := newTestMux(t)

	user := &domain.User{ID: domain.UserID(uuid.New())}
	authSvc.EXPECT().Authenticate(gomock.Any(), "token-t").Return(user, nil)
	mon.EXPECT().UserItems(gomock.Any(), user.ID).Return(nil, nil)

	rec := doJSON(t, mux, http.MethodGet, "/items", "token-t", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestListItems_NoToken(t *testing.T) {
	_, _, mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/items", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	status, _ := decodeError(t, rec)
	require.Equal(t, "MISSING_TOKEN", status)
}

func TestListItems_RevokedToken(t *testing.T) {
	authSvc, _, mux := newTestMux(t)

	authSvc.EXPECT().Authenticate(gomock.Any(), "token-t").
		Return(nil, serrors.With(auth.ErrTokenRevoked, "token has been revoked"))

	rec := doJSON(t, mux, http.MethodGet, "/items", "token-t", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	status, _ := decodeError(t, rec)
	require.Equal(t, "TOKEN_REVOKED", status)
}

func TestAddItem(t *testing.T) {
	authSvc, mon, mux := newTestMux(t)

	user := &domain.User{ID: domain.UserID(uuid.New())}
	authSvc.EXPECT().Authenticate(gomock.Any(), "token-t").Return(user, nil)
	mon.EXPECT().AddItem(gomock.Any(), user.ID, domain.ItemKindEmail, "a@x.com").
		Return(&domain.MonitoredItem{
			ID:          domain.ItemID(uuid.New()),
			UserID:      user.ID,
			Kind:        domain.ItemKindEmail,
			Value:       "a@x.com",
			BreachCount: 1,
		}, nil)

	rec := doJSON(t, mux, http.MethodPost, "/items", "token-t", map[string]string{
		"kind":  "email",
		"value": "a@x.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item domain.MonitoredItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	require.Equal(t, 1, item.BreachCount)

	// never-checked items must report lastChecked as JSON null, not a zero
	// timestamp.
	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Contains(t, raw, "lastChecked")
	require.Nil(t, raw["lastChecked"])
}

func TestAddItem_InvalidFormat(t *testing.T) {
	authSvc, mon, mux := newTestMux(t)

	user := &domain.User{ID: domain.UserID(uuid.New())}
	authSvc.EXPECT().Authenticate(gomock.Any(), "token-t").Return(user, nil)
	mon.EXPECT().AddItem(gomock.Any(), user.ID, domain.ItemKindEmail, "not-an-email").
		Return(nil, serrors.With(monitor.ErrInvalidFormat, "not a valid email address"))

	rec := doJSON(t, mux, http.MethodPost, "/items", "token-t", map[string]string{
		"kind":  "email",
		"value": "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	status, _ := decodeError(t, rec)
	require.Equal(t, "INVALID_FORMAT", status)
}

func TestCheckItems(t *testing.T) {
	authSvc, mon, mux := newTestMux(t)

	user := &domain.User{ID: domain.UserID(uuid.New())}
	authSvc.EXPECT().Authenticate(gomock.Any(), "token-t").Return(user, nil)
	mon.EXPECT().CheckAll(gomock.Any(), user.ID).
		Return(&monitor.CheckSummary{ItemsChecked: 1, NewExposures: 0}, nil)

	rec := doJSON(t, mux, http.MethodPost, "/items/check", "token-t", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary monitor.CheckSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	require.Equal(t, 1, summary.ItemsChecked)
	require.Zero(t, summary.NewExposures)
}

func TestListEvents(t *testing.T) {
	authSvc, mon, mux := newTestMux(t)

	user := &domain.User{ID: domain.UserID(uuid.New())}
	authSvc.EXPECT().Authenticate(gomock.Any(), "token-t").Return(user, nil)
	mon.EXPECT().UserEvents(gomock.Any(), user.ID).Return([]domain.BreachReport{
		{
			BreachEvent: domain.BreachEvent{
				Source:  "SiteX",
				Details: "Compromised in 2019 leak breach",
			},
			ItemKind:  domain.ItemKindEmail,
			ItemValue: "a@x.com",
		},
	}, nil)

	rec := doJSON(t, mux, http.MethodGet, "/events", "token-t", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "SiteX")
}

func TestLogout(t *testing.T) {
	authSvc, _, mux := newTestMux(t)

	authSvc.EXPECT().Logout(gomock.Any(), "token-t").Return(nil)

	rec := doJSON(t, mux, http.MethodPost, "/logout", "token-t", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	authSvc, mon, mux := newTestMux(t)

	user := &domain.User{ID: domain.UserID(uuid.New())}
	authSvc.EXPECT().Authenticate(gomock.Any(), "token-t").Return(user, nil)
	mon.EXPECT().UserItems(gomock.Any(), user.ID).
		Return(nil, serrors.With(serrors.ErrInternal, "pg connection refused"))

	rec := doJSON(t, mux, http.MethodGet, "/items", "token-t", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	status, message := decodeError(t, rec)
	require.Equal(t, "INTERNAL", status)
	require.Equal(t, "internal error", message)
}
