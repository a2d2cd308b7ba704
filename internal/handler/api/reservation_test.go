//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fieldbook/internal/handler/api"
	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"
	"fieldbook/tests/common/builder"
	commonhttp "fieldbook/tests/common/httptest"
	"fieldbook/tests/common/testutil"
	commandsmock "fieldbook/tests/mock/commands"
	queriesmock "fieldbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.Use(stubAuth)
	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations", s.handler.List)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.POST("/reservations/:id/cancel", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func performWithHeaders(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 Created with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateReservationInput) (*commands.CreateReservationResult, error) {
				s.Equal(member, in.Actor)
				s.Equal(reqBody.FieldID, in.FieldID)
				s.Equal("2030-01-15", in.Date)
				s.Equal("10:00", in.Time)
				s.Nil(in.IdempotencyKey)
				return &commands.CreateReservationResult{Reservation: view}, nil
			}).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, memberToken)

		var body resdto.ReservationResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("150.00", body.TotalPrice)
		s.Equal("active", body.Status)
		commonhttp.AssertHeaders(s.T(), rec, map[string]string{
			"Location":            "/api/reservations/" + view.ID.String(),
			"Idempotent-Replayed": "",
		})
	})

	s.Run("success: replay returns 200 with replay header", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateReservationInput) (*commands.CreateReservationResult, error) {
				s.Require().NotNil(in.IdempotencyKey)
				s.Equal(key, *in.IdempotencyKey)
				return &commands.CreateReservationResult{Reservation: view, IsReplayed: true}, nil
			}).Times(1)

		rec := performWithHeaders(s.router, http.MethodPost, url,
			`{"field_id":"`+reqBody.FieldID.String()+`","date":"2030-01-15","time":"10:00"}`,
			map[string]string{"Authorization": "Bearer " + memberToken, "Idempotency-Key": key.String()})

		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		commonhttp.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 Bad Request for malformed idempotency key", func() {
		rec := performWithHeaders(s.router, http.MethodPost, url, `{}`,
			map[string]string{"Authorization": "Bearer " + memberToken, "Idempotency-Key": "not-a-uuid"})
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid idempotency key format")
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field_id", mutate: testutil.Field("field_id", nil)},
			{name: "field_id not a uuid", mutate: testutil.Field("field_id", "pitch-a")},
			{name: "date too long", mutate: testutil.Field("date", "2030-01-15T10:00")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, memberToken)
				commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps command errors to statuses and codes", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{name: "anonymous", err: errs.ErrAuthRequired, status: http.StatusUnauthorized, code: "AUTH_REQUIRED"},
			{name: "no phone", err: errs.ErrMissingContactInfo, status: http.StatusUnprocessableEntity, code: "MISSING_CONTACT_INFO"},
			{name: "incomplete selection", err: errs.ErrIncompleteSelection, status: http.StatusBadRequest, code: "INCOMPLETE_SELECTION"},
			{name: "past time", err: errs.ErrPastTimeSelected, status: http.StatusUnprocessableEntity, code: "PAST_TIME_SELECTED"},
			{name: "duplicate", err: errs.ErrDuplicateReservation, status: http.StatusConflict, code: "DUPLICATE_RESERVATION"},
			{name: "full", err: errs.ErrCapacityExceeded, status: http.StatusConflict, code: "CAPACITY_EXCEEDED"},
			{name: "unknown field", err: errs.ErrFieldNotFound, status: http.StatusNotFound, code: "FIELD_NOT_FOUND"},
			{name: "slot busy", err: errs.Mark(errors.New("lock wait timeout"), errs.ErrSlotBusy), status: http.StatusConflict, code: "SLOT_BUSY"},
			{name: "key reused", err: errs.ErrIdempotencyKeyMismatch, status: http.StatusUnprocessableEntity, code: "IDEMPOTENCY_KEY_MISMATCH"},
			{name: "store down", err: errs.Mark(errors.New("dial tcp"), errs.ErrStoreUnavailable), status: http.StatusServiceUnavailable, code: "STORE_UNAVAILABLE"},
			{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, memberToken)
				commonhttp.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()
	url := "/reservations/" + view.ID.String()

	s.Run("success: returns the caller's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), member.UserID, view.ID).Return(view, nil).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, memberToken)

		var body resdto.ReservationResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.FieldName, body.FieldName)
		s.Equal(60, body.DurationMinutes)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/invalid-uuid", nil, memberToken)
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for another user's reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), member.UserID, view.ID).
			Return(nil, errs.Mark(queries.ErrReservationAccess, errs.ErrReservationNotFound)).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, memberToken)
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	first := builder.NewReservationBuilder().BuildView()
	second := builder.NewReservationBuilder().WithSlot("2030-01-16", "11:00").BuildView()

	s.Run("success: returns items and next cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), member.UserID, &queries.Cursor{After: "abc"}, 2).
			Return([]*queries.ReservationView{first, second}, &queries.Cursor{After: "next"}, nil).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=2&after=abc", nil, memberToken)

		var body resdto.ReservationListResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal("11:00", body.Items[1].Time)
		s.Equal("next", body.NextCursor)
	})

	s.Run("success: empty first page", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), member.UserID, (*queries.Cursor)(nil), 0).
			Return([]*queries.ReservationView{}, nil, nil).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, memberToken)

		var body resdto.ReservationListResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Empty(body.NextCursor)
	})

	s.Run("error: 400 Bad Request for limit over 100", func() {
		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=500", nil, memberToken)
		commonhttp.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 Bad Request for a corrupt cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), member.UserID, gomock.Any(), 0).
			Return(nil, nil, errs.Mark(errs.Mark(errors.New("bad base64"), queries.ErrInvalidCursor), errs.ErrDomainValidation)).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?after=garbage", nil, memberToken)
		commonhttp.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	view := builder.NewReservationBuilder().AsCancelled().BuildView()
	url := "/reservations/" + view.ID.String() + "/cancel"

	s.Run("success: returns the cancelled reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), member, view.ID).Return(view, nil).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, memberToken)

		var body resdto.ReservationResponse
		commonhttp.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
	})

	s.Run("error: 409 Conflict when already cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), member, view.ID).Return(nil, errs.ErrReservationCancelled).Times(1)

		rec := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, memberToken)
		commonhttp.AssertErrorCode(s.T(), rec, http.StatusConflict, "RESERVATION_CANCELLED")
	})
}
