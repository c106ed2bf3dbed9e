package models

// UserFollows is a directed edge: UserID follows FollowedUserID.
type UserFollows struct {
	ID             int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID         string `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_follows_pair"`
	FollowedUserID string `json:"followed_user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_follows_pair;index"`

	// Associations
	User         User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	FollowedUser User `json:"followed_user,omitempty" gorm:"foreignKey:FollowedUserID;constraint:OnDelete:CASCADE;"`
}

func (UserFollows) TableName() string {
	return "user_follows"
}
