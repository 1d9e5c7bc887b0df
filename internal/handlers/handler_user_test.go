package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/taxtrackng/taxtrack_backend/internal/apperrors"
	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
)

type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	userID          string
}

func (suite *UserHandlerTestSuite) SetupTest() {
	suite.mockUserService = new(MockUserService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		User: suite.mockUserService,
	})
	suite.userID = uuid.NewString()
}

func (suite *UserHandlerTestSuite) deleteMe(token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodDelete, "/api/users/me", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *UserHandlerTestSuite) TestDeleteAccount_Success() {
	suite.mockUserService.On("DeleteUser", mock.Anything, suite.userID).Return(nil).Once()

	w := suite.deleteMe(generateTestToken(suite.userID))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestDeleteAccount_RequiresAuth() {
	w := suite.deleteMe("")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestDeleteAccount_AlreadyDeleted() {
	suite.mockUserService.On("DeleteUser", mock.Anything, suite.userID).
		Return(fmt.Errorf("user gone: %w", apperrors.ErrNotFound)).Once()

	w := suite.deleteMe(generateTestToken(suite.userID))

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
