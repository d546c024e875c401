package handlers

import (
	"net/http"

	"safarihub/models"
	"safarihub/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func GetTeam(c *gin.Context) {
	members, _ := dataStore.ActiveTeam(c.Request.Context())
	c.JSON(http.StatusOK, members)
}

func GetAllTeam(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	members, kind := dataStore.AllTeam(c.Request.Context(), principal)
	if kind == store.KindForbidden {
		abortForKind(c, kind)
		return
	}
	c.JSON(http.StatusOK, members)
}

func CreateTeamMember(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		Name     string `json:"name" binding:"required"`
		Nickname string `json:"nickname"`
		Position string `json:"position"`
		Image    string `json:"image"`
		Bio      string `json:"bio"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member := models.Team{
		Name:     input.Name,
		Nickname: input.Nickname,
		Position: input.Position,
		Image:    input.Image,
		Bio:      input.Bio,
		Status:   true,
	}

	if kind := dataStore.CreateTeamMember(c.Request.Context(), principal, &member); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusCreated, member)
}

func UpdateTeamMember(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team member ID"})
		return
	}

	var input struct {
		Name     *string `json:"name"`
		Nickname *string `json:"nickname"`
		Position *string `json:"position"`
		Image    *string `json:"image"`
		Bio      *string `json:"bio"`
		Status   *bool   `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := store.TeamPatch{
		Name:     input.Name,
		Nickname: input.Nickname,
		Position: input.Position,
		Image:    input.Image,
		Bio:      input.Bio,
		Status:   input.Status,
	}

	member, kind := dataStore.UpdateTeamMember(c.Request.Context(), principal, id, patch)
	if kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, member)
}

func DeleteTeamMember(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team member ID"})
		return
	}

	if kind := dataStore.DeleteTeamMember(c.Request.Context(), principal, id); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
}
