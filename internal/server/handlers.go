package server

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lightmeal/calorie-helper/internal/domain"
	apperrors "github.com/lightmeal/calorie-helper/internal/errors"
)

func (s *Server) login(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Username == "" || body.Password == "" {
		apiError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	session, err := s.sessions.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Type == apperrors.ErrorTypeAuth {
			apiError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		apiError(c, http.StatusInternalServerError, "login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": session.Token, "username": session.Username})
}

func (s *Server) logout(c *gin.Context) {
	view, err := s.sessions.Logout(c.Request.Context())
	if err != nil {
		apiError(c, http.StatusInternalServerError, "logout failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"defaultView": view})
}

func (s *Server) dashboard(c *gin.Context) {
	summary, err := s.records.Summary(c.Request.Context())
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) listRecords(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"records": s.records.All()})
}

func (s *Server) addRecord(c *gin.Context) {
	var input domain.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		apiError(c, http.StatusBadRequest, "name is required")
		return
	}
	if input.Calories < 0 {
		apiError(c, http.StatusBadRequest, "calories must not be negative")
		return
	}
	if !validMealType(input.MealType) {
		apiError(c, http.StatusBadRequest, "unknown meal type")
		return
	}
	if input.Quantity == "" {
		input.Quantity = "1 serving"
	}

	record, err := s.records.Add(c.Request.Context(), input)
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save record")
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (s *Server) getProfile(c *gin.Context) {
	c.JSON(http.StatusOK, s.profiles.Get())
}

func (s *Server) putProfile(c *gin.Context) {
	var next domain.UserProfile
	if err := c.ShouldBindJSON(&next); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.profiles.Set(c.Request.Context(), next); err != nil {
		apiError(c, http.StatusInternalServerError, "failed to save profile")
		return
	}
	c.JSON(http.StatusOK, next)
}

func (s *Server) quickFoods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quickFoods": domain.QuickFoods})
}

func (s *Server) analyzeImage(c *gin.Context) {
	var body struct {
		ImageBase64 string `json:"imageBase64"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ImageBase64 == "" {
		apiError(c, http.StatusBadRequest, "imageBase64 is required")
		return
	}
	imageData, err := base64.StdEncoding.DecodeString(body.ImageBase64)
	if err != nil {
		apiError(c, http.StatusBadRequest, "imageBase64 is not valid base64")
		return
	}

	result := s.assistant.AnalyzeImage(c.Request.Context(), imageData)
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "name": result.Name, "calories": result.Calories})
}

func (s *Server) searchFood(c *gin.Context) {
	var body struct {
		Query string `json:"query"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Query) == "" {
		apiError(c, http.StatusBadRequest, "query is required")
		return
	}

	result := s.assistant.SearchFood(c.Request.Context(), body.Query)
	if result == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"found":    true,
		"name":     result.Name,
		"calories": result.Calories,
		"unit":     result.Unit,
	})
}

func (s *Server) chat(c *gin.Context) {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Message) == "" {
		apiError(c, http.StatusBadRequest, "message is required")
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": s.assistant.Chat(c.Request.Context(), body.Message)})
}

func (s *Server) editImage(c *gin.Context) {
	var body struct {
		ImageBase64 string `json:"imageBase64"`
		Instruction string `json:"instruction"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ImageBase64 == "" || body.Instruction == "" {
		apiError(c, http.StatusBadRequest, "imageBase64 and instruction are required")
		return
	}
	imageData, err := base64.StdEncoding.DecodeString(body.ImageBase64)
	if err != nil {
		apiError(c, http.StatusBadRequest, "imageBase64 is not valid base64")
		return
	}

	edited := s.assistant.EditImage(c.Request.Context(), imageData, body.Instruction)
	if edited == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"found":       true,
		"imageBase64": base64.StdEncoding.EncodeToString(edited),
	})
}

func (s *Server) advice(c *gin.Context) {
	summary, err := s.records.Summary(c.Request.Context())
	if err != nil {
		apiError(c, http.StatusInternalServerError, "failed to compute summary")
		return
	}
	text := s.assistant.SmartAdvice(c.Request.Context(), s.profiles.Get(), summary.Intake, summary.DailyGoal)
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func validMealType(m domain.MealType) bool {
	for _, known := range domain.MealTypes {
		if m == known {
			return true
		}
	}
	return false
}
