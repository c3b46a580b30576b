package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/postalis/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestHandleValidationError(t *testing.T) {
	type createRequest struct {
		Code string `json:"code" binding:"required,min=1,max=50"`
		Kind string `json:"kind" binding:"required,oneof=color side envelope speed"`
	}

	SetupValidator()

	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("reports each invalid field with its json name", func(t *testing.T) {
		body := strings.NewReader(`{"code": "", "kind": "paper"}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "Request validation failed", resp.Error.Message)
		require.Len(t, resp.Error.Details, 2)

		fields := map[string]string{}
		for _, d := range resp.Error.Details {
			fields[d.Field] = d.Message
		}
		assert.Equal(t, "This field is required", fields["code"])
		assert.Equal(t, "Must be one of: color side envelope speed", fields["kind"])
	})

	t.Run("passes valid input through", func(t *testing.T) {
		body := strings.NewReader(`{"code": "c4", "kind": "envelope"}`)
		req := httptest.NewRequest("POST", "/test", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestValidationMessage(t *testing.T) {
	type request struct {
		Name  string `json:"name" binding:"required,min=2,max=5"`
		Count int    `json:"count" binding:"gte=1,lte=10"`
	}

	SetupValidator()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	tests := []struct {
		name     string
		input    request
		field    string
		expected string
	}{
		{"required", request{Count: 5}, "name", "This field is required"},
		{"min string", request{Name: "a", Count: 5}, "name", "Must be at least 2 characters"},
		{"max string", request{Name: "toolong", Count: 5}, "name", "Must be at most 5 characters"},
		{"gte", request{Name: "ok", Count: 0}, "count", "Must be greater than or equal to 1"},
		{"lte", request{Name: "ok", Count: 11}, "count", "Must be less than or equal to 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			require.Error(t, err)
			validationErrors, ok := err.(validator.ValidationErrors)
			require.True(t, ok)

			found := false
			for _, e := range validationErrors {
				if e.Field() == tt.field {
					assert.Equal(t, tt.expected, validationMessage(e))
					found = true
				}
			}
			assert.True(t, found)
		})
	}
}
