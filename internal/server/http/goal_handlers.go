package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nsplatform/backend/internal/service"
)

type createGoalRequest struct {
	TypeID         int64  `json:"type_id"`
	ResultTypeID   int64  `json:"result_type_id"`
	Name           string `json:"name"`
	Reason         string `json:"reason"`
	Visible        bool   `json:"visible"`
	PriorityWeight int    `json:"priority_weight"`
}

func (s *Server) createGoal(c *gin.Context) {
	userID, _, _ := identity(c)
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	g, err := s.goals.Create(c.Request.Context(), userID, service.CreateGoalInput{
		TypeID:         req.TypeID,
		ResultTypeID:   req.ResultTypeID,
		Name:           req.Name,
		Reason:         req.Reason,
		Visible:        req.Visible,
		PriorityWeight: req.PriorityWeight,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, toGoalView(g))
}

// listGoals returns only the caller's backlog.
func (s *Server) listGoals(c *gin.Context) {
	userID, _, _ := identity(c)
	gs, err := s.goals.ListOwn(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": toGoalViews(gs)})
}

func (s *Server) getGoal(c *gin.Context) {
	userID, _, _ := identity(c)
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	g, err := s.goals.GetOwn(c.Request.Context(), userID, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toGoalView(g))
}

func (s *Server) goalTypes(c *gin.Context) {
	vs, err := s.goals.Types(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"types": toVocabViews(vs)})
}

func (s *Server) goalResultTypes(c *gin.Context) {
	vs, err := s.goals.ResultTypes(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"types": toVocabViews(vs)})
}

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// pageParams reads limit/offset query parameters with sane bounds.
func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
