package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-social-media/internal/models"
	"github.com/sbilibin2017/gw-social-media/internal/services"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// serve routes the request through chi so URL parameters resolve.
func serve(method, pattern string, h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreateMessageHandler(t *testing.T) {
	ann := &models.Account{AccountID: 1, Username: "ann"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(a *MockAccountGetter, m *MockMessageCreator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"posted_by":1,"message_text":"hello","time_posted_epoch":1000}`,
			mockSetup: func(a *MockAccountGetter, m *MockMessageCreator) {
				a.EXPECT().GetAccountByID(gomock.Any(), 1).Return(ann, nil)
				m.EXPECT().
					CreateMessage(gomock.Any(), models.Message{PostedBy: 1, MessageText: "hello", TimePostedEpoch: 1000}, ann).
					Return(&models.Message{MessageID: 7, PostedBy: 1, MessageText: "hello", TimePostedEpoch: 1000}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message_id":7,"posted_by":1,"message_text":"hello","time_posted_epoch":1000}`,
		},
		{
			name: "unknown author",
			body: `{"posted_by":42,"message_text":"hello"}`,
			mockSetup: func(a *MockAccountGetter, m *MockMessageCreator) {
				a.EXPECT().GetAccountByID(gomock.Any(), 42).Return(nil, nil)
				m.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), nil).Return(nil, services.ErrAccountRequired)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "empty text",
			body: `{"posted_by":1,"message_text":""}`,
			mockSetup: func(a *MockAccountGetter, m *MockMessageCreator) {
				a.EXPECT().GetAccountByID(gomock.Any(), 1).Return(ann, nil)
				m.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), ann).Return(nil, services.ErrEmptyMessageText)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "not the owner",
			body: `{"posted_by":1,"message_text":"hello"}`,
			mockSetup: func(a *MockAccountGetter, m *MockMessageCreator) {
				a.EXPECT().GetAccountByID(gomock.Any(), 1).Return(ann, nil)
				m.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), ann).Return(nil, services.ErrUnauthorized)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "account lookup fails",
			body: `{"posted_by":1,"message_text":"hello"}`,
			mockSetup: func(a *MockAccountGetter, m *MockMessageCreator) {
				a.EXPECT().GetAccountByID(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name: "insert fails",
			body: `{"posted_by":1,"message_text":"hello"}`,
			mockSetup: func(a *MockAccountGetter, m *MockMessageCreator) {
				a.EXPECT().GetAccountByID(gomock.Any(), 1).Return(ann, nil)
				m.EXPECT().CreateMessage(gomock.Any(), gomock.Any(), ann).
					Return(nil, &services.ServiceError{Op: "insert message", Err: errors.New("db down")})
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name:         "invalid json",
			body:         "{",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			accounts := NewMockAccountGetter(ctrl)
			svc := NewMockMessageCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(accounts, svc)
			}

			h := NewCreateMessageHandler(accounts, svc, zap.NewNop().Sugar())
			rr := serve(http.MethodPost, "/messages", h, "/messages", tt.body)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestListMessagesHandler(t *testing.T) {
	t.Run("messages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockMessageLister(ctrl)
		svc.EXPECT().GetAllMessages(gomock.Any()).Return([]models.Message{
			{MessageID: 1, PostedBy: 1, MessageText: "a", TimePostedEpoch: 10},
			{MessageID: 2, PostedBy: 2, MessageText: "b", TimePostedEpoch: 20},
		}, nil)

		rr := serve(http.MethodGet, "/messages", NewListMessagesHandler(svc, zap.NewNop().Sugar()), "/messages", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[
			{"message_id":1,"posted_by":1,"message_text":"a","time_posted_epoch":10},
			{"message_id":2,"posted_by":2,"message_text":"b","time_posted_epoch":20}
		]`, rr.Body.String())
	})

	t.Run("empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockMessageLister(ctrl)
		svc.EXPECT().GetAllMessages(gomock.Any()).Return(nil, nil)

		rr := serve(http.MethodGet, "/messages", NewListMessagesHandler(svc, zap.NewNop().Sugar()), "/messages", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockMessageLister(ctrl)
		svc.EXPECT().GetAllMessages(gomock.Any()).Return(nil, errors.New("db down"))

		rr := serve(http.MethodGet, "/messages", NewListMessagesHandler(svc, zap.NewNop().Sugar()), "/messages", "")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestListAccountMessagesHandler(t *testing.T) {
	const pattern = "/accounts/{account_id}/messages"

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockAccountMessageLister)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "messages",
			target: "/accounts/3/messages",
			mockSetup: func(m *MockAccountMessageLister) {
				m.EXPECT().GetMessagesByAccountID(gomock.Any(), 3).
					Return([]models.Message{{MessageID: 4, PostedBy: 3, MessageText: "x", TimePostedEpoch: 1}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"message_id":4,"posted_by":3,"message_text":"x","time_posted_epoch":1}]`,
		},
		{
			name:   "account without messages",
			target: "/accounts/9/messages",
			mockSetup: func(m *MockAccountMessageLister) {
				m.EXPECT().GetMessagesByAccountID(gomock.Any(), 9).Return([]models.Message{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "malformed id",
			target:       "/accounts/abc/messages",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid account id"}`,
		},
		{
			name:   "service error",
			target: "/accounts/3/messages",
			mockSetup: func(m *MockAccountMessageLister) {
				m.EXPECT().GetMessagesByAccountID(gomock.Any(), 3).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockAccountMessageLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := serve(http.MethodGet, pattern, NewListAccountMessagesHandler(svc, zap.NewNop().Sugar()), tt.target, "")

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestGetMessageHandler(t *testing.T) {
	const pattern = "/messages/{message_id}"

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockMessageGetter)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "found",
			target: "/messages/5",
			mockSetup: func(m *MockMessageGetter) {
				m.EXPECT().GetMessageByID(gomock.Any(), 5).
					Return(&models.Message{MessageID: 5, PostedBy: 2, MessageText: "old", TimePostedEpoch: 500}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message_id":5,"posted_by":2,"message_text":"old","time_posted_epoch":500}`,
		},
		{
			name:   "not found answers empty body",
			target: "/messages/6",
			mockSetup: func(m *MockMessageGetter) {
				m.EXPECT().GetMessageByID(gomock.Any(), 6).Return(nil, services.ErrMessageNotFound)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "malformed id",
			target:       "/messages/0",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid message id"}`,
		},
		{
			name:   "service error",
			target: "/messages/5",
			mockSetup: func(m *MockMessageGetter) {
				m.EXPECT().GetMessageByID(gomock.Any(), 5).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockMessageGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := serve(http.MethodGet, pattern, NewGetMessageHandler(svc, zap.NewNop().Sugar()), tt.target, "")

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody == "" {
				assert.Empty(t, rr.Body.String())
				return
			}
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestDeleteMessageHandler(t *testing.T) {
	const pattern = "/messages/{message_id}"
	stored := &models.Message{MessageID: 5, PostedBy: 2, MessageText: "old", TimePostedEpoch: 500}

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockMessageDeleter)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "deleted",
			target: "/messages/5",
			mockSetup: func(m *MockMessageDeleter) {
				m.EXPECT().GetMessageByID(gomock.Any(), 5).Return(stored, nil)
				m.EXPECT().DeleteMessage(gomock.Any(), *stored).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message_id":5,"posted_by":2,"message_text":"old","time_posted_epoch":500}`,
		},
		{
			name:   "absent",
			target: "/messages/6",
			mockSetup: func(m *MockMessageDeleter) {
				m.EXPECT().GetMessageByID(gomock.Any(), 6).Return(nil, services.ErrMessageNotFound)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "removed concurrently",
			target: "/messages/5",
			mockSetup: func(m *MockMessageDeleter) {
				m.EXPECT().GetMessageByID(gomock.Any(), 5).Return(stored, nil)
				m.EXPECT().DeleteMessage(gomock.Any(), *stored).Return(services.ErrMessageNotFound)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "delete fails",
			target: "/messages/5",
			mockSetup: func(m *MockMessageDeleter) {
				m.EXPECT().GetMessageByID(gomock.Any(), 5).Return(stored, nil)
				m.EXPECT().DeleteMessage(gomock.Any(), *stored).Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name:         "malformed id",
			target:       "/messages/x",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid message id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockMessageDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := serve(http.MethodDelete, pattern, NewDeleteMessageHandler(svc, zap.NewNop().Sugar()), tt.target, "")

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody == "" {
				assert.Empty(t, rr.Body.String())
				return
			}
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestUpdateMessageHandler(t *testing.T) {
	const pattern = "/messages/{message_id}"

	tests := []struct {
		name         string
		target       string
		body         string
		mockSetup    func(m *MockMessageUpdater)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "updated",
			target: "/messages/5",
			body:   `{"message_text":"new text"}`,
			mockSetup: func(m *MockMessageUpdater) {
				m.EXPECT().UpdateMessage(gomock.Any(), models.Message{MessageID: 5, MessageText: "new text"}).
					Return(&models.Message{MessageID: 5, PostedBy: 2, MessageText: "new text", TimePostedEpoch: 500}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message_id":5,"posted_by":2,"message_text":"new text","time_posted_epoch":500}`,
		},
		{
			name:   "unknown message",
			target: "/messages/6",
			body:   `{"message_text":"new text"}`,
			mockSetup: func(m *MockMessageUpdater) {
				m.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).Return(nil, services.ErrMessageNotFound)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"` + services.ErrMessageNotFound.Error() + `"}`,
		},
		{
			name:   "text too long",
			target: "/messages/5",
			body:   `{"message_text":"` + strings.Repeat("x", 300) + `"}`,
			mockSetup: func(m *MockMessageUpdater) {
				m.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).Return(nil, services.ErrMessageTextTooLong)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"` + services.ErrMessageTextTooLong.Error() + `"}`,
		},
		{
			name:   "service error",
			target: "/messages/5",
			body:   `{"message_text":"new text"}`,
			mockSetup: func(m *MockMessageUpdater) {
				m.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal server error"}`,
		},
		{
			name:         "invalid json",
			target:       "/messages/5",
			body:         "[",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid request body"}`,
		},
		{
			name:         "malformed id",
			target:       "/messages/-1",
			body:         `{"message_text":"new text"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"invalid message id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockMessageUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(svc)
			}

			rr := serve(http.MethodPatch, pattern, NewUpdateMessageHandler(svc, zap.NewNop().Sugar()), tt.target, tt.body)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
