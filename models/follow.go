package models

// Follow records the asymmetric "follower follows followee" relation.
type Follow struct {
	FollowerID uint `json:"followerId" db:"follower_id" gorm:"not null;uniqueIndex:idx_follow_unique;index"`
	FolloweeID uint `json:"followeeId" db:"followee_id" gorm:"not null;uniqueIndex:idx_follow_unique;index"`
}
