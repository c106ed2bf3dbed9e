package dto

import "litreview/internal/microservices/http-api/models"

// FollowUserDTO names the user to follow
type FollowUserDTO struct {
	Username string `json:"username" form:"username" binding:"required,max=150"`
}

// FollowEdgeResponse describes one edge from the viewer's point of view:
// UserID/Username is the other party.
type FollowEdgeResponse struct {
	ID       int64  `json:"id"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// FollowPageResponse lists who the viewer follows and who follows them
type FollowPageResponse struct {
	Following  []FollowEdgeResponse `json:"following"`
	FollowedBy []FollowEdgeResponse `json:"followed_by"`
	Message    string               `json:"message,omitempty"`
}

func FromModelToFollowingResponse(edge *models.UserFollows) FollowEdgeResponse {
	return FollowEdgeResponse{
		ID:       edge.ID,
		UserID:   edge.FollowedUserID,
		Username: edge.FollowedUser.Username,
	}
}

func FromModelToFollowerResponse(edge *models.UserFollows) FollowEdgeResponse {
	return FollowEdgeResponse{
		ID:       edge.ID,
		UserID:   edge.UserID,
		Username: edge.User.Username,
	}
}
