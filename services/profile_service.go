package services

import (
	"github.com/borovikovd/realworld-backend-go/database"
	"github.com/borovikovd/realworld-backend-go/errs"
)

// ProfileService resolves user profiles and manages the follow relation.
type ProfileService struct {
	db database.Database
}

func NewProfileService(db database.Database) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile returns a user's profile with the viewer's following flag; an
// absent viewer yields following=false.
func (s *ProfileService) GetProfile(username string, viewerID *uint) (*Profile, error) {
	user, err := s.db.UserRepo().FindByUsername(username)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, errs.NewNotFound("user")
	}

	following := false
	if viewerID != nil {
		following, err = s.db.FollowRepo().IsFollowing(*viewerID, user.ID)
		if err != nil {
			return nil, errs.NewDatabaseError("check", "follow", err)
		}
	}

	return &Profile{
		Username:  user.Username,
		Bio:       user.Bio,
		Image:     user.Image,
		Following: following,
	}, nil
}

func (s *ProfileService) FollowUser(followerID uint, username string) (*Profile, error) {
	err := s.db.Transaction(func(tx database.Database) error {
		followee, err := tx.UserRepo().FindByUsername(username)
		if err != nil {
			return errs.NewDatabaseError("find", "user", err)
		}
		if followee == nil {
			return errs.NewNotFound("user")
		}
		if followee.ID == followerID {
			return errs.NewBadRequestError("cannot follow yourself")
		}
		if err := tx.FollowRepo().Follow(followerID, followee.ID); err != nil {
			return errs.NewDatabaseError("create", "follow", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetProfile(username, &followerID)
}

func (s *ProfileService) UnfollowUser(followerID uint, username string) (*Profile, error) {
	err := s.db.Transaction(func(tx database.Database) error {
		followee, err := tx.UserRepo().FindByUsername(username)
		if err != nil {
			return errs.NewDatabaseError("find", "user", err)
		}
		if followee == nil {
			return errs.NewNotFound("user")
		}
		if err := tx.FollowRepo().Unfollow(followerID, followee.ID); err != nil {
			return errs.NewDatabaseError("delete", "follow", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetProfile(username, &followerID)
}
