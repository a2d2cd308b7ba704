//go:build e2e

package profile_test

import (
	"net/http"
	"testing"

	"fieldbook/internal/handler/dto/response"
	"fieldbook/internal/pkg/cookie"
	"fieldbook/internal/usecase/shared"
	httptesthelper "fieldbook/tests/common/httptest"
	"fieldbook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
)

type ProfileE2ESuite struct {
	e2e.SharedSuite
}

func (s *ProfileE2ESuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestProfileE2ESuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ProfileE2ESuite))
}

var newcomer = shared.Actor{UserID: "user-9", Email: "nong@example.com", Name: "Nong", Role: "member"}

func (s *ProfileE2ESuite) TestContact() {
	s.Run("Normal case: first visit falls back to the token identity", func() {
		token := s.Tokens.GenerateToken(s.T(), newcomer)

		w := httptesthelper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/me", nil, token)
		var me response.ProfileResponse
		httptesthelper.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)

		want := response.ProfileResponse{
			ID:          newcomer.UserID,
			Email:       newcomer.Email,
			DisplayName: newcomer.Name,
			Role:        "member",
		}
		s.Empty(cmp.Diff(want, me))
	})

	s.Run("Normal case: contact saved through the session cookie", func() {
		token := s.Tokens.GenerateToken(s.T(), newcomer)
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}
		body := map[string]any{"phone": " 0812345678 "}

		w := httptesthelper.PerformRequestWithCookies(s.T(), s.Router, http.MethodPut, "/api/me/contact", body, cookies, "")
		var saved response.ProfileResponse
		httptesthelper.AssertSuccessResponse(s.T(), w, http.StatusOK, &saved)
		s.Equal("0812345678", saved.Phone)
		s.Equal("Nong", saved.DisplayName)
		s.True(saved.HasContact)

		w = httptesthelper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/me", nil, token)
		var me response.ProfileResponse
		httptesthelper.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Empty(cmp.Diff(saved, me))
	})

	s.Run("Error case: missing phone", func() {
		token := s.Tokens.GenerateToken(s.T(), newcomer)

		w := httptesthelper.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/me/contact", map[string]any{}, token)
		httptesthelper.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("Error case: expired token", func() {
		token := s.Tokens.CreateExpiredToken(s.T(), newcomer)

		w := httptesthelper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/me", nil, token)
		httptesthelper.AssertErrorCode(s.T(), w, http.StatusUnauthorized, "AUTH_REQUIRED")
		httptesthelper.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("Error case: anonymous", func() {
		w := httptesthelper.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/me", nil, "")
		httptesthelper.AssertErrorCode(s.T(), w, http.StatusUnauthorized, "AUTH_REQUIRED")
	})
}
