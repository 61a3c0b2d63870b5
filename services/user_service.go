package services

import (
	"github.com/borovikovd/realworld-backend-go/auth"
	"github.com/borovikovd/realworld-backend-go/database"
	"github.com/borovikovd/realworld-backend-go/errs"
	"github.com/borovikovd/realworld-backend-go/models"
)

const minPasswordLength = 8

// UserService handles registration, login and account updates.
type UserService struct {
	db     database.Database
	hasher auth.PasswordHasher
}

func NewUserService(db database.Database, hasher auth.PasswordHasher) *UserService {
	return &UserService{db: db, hasher: hasher}
}

func (s *UserService) Register(email, username, password string) (*models.User, error) {
	var created *models.User
	err := s.db.Transaction(func(tx database.Database) error {
		fieldErrs := errs.FieldErrors{}

		emailTaken, err := tx.UserRepo().ExistsByEmail(email)
		if err != nil {
			return errs.NewDatabaseError("check", "email", err)
		}
		if emailTaken {
			fieldErrs.Add("email", "is already taken")
		}

		usernameTaken, err := tx.UserRepo().ExistsByUsername(username)
		if err != nil {
			return errs.NewDatabaseError("check", "username", err)
		}
		if usernameTaken {
			fieldErrs.Add("username", "is already taken")
		}

		if len(password) < minPasswordLength {
			fieldErrs.Add("password", "must be at least 8 characters")
		}

		if !fieldErrs.Empty() {
			return errs.NewValidationError(fieldErrs)
		}

		passwordHash, err := s.hasher.Hash(password)
		if err != nil {
			return errs.NewInternalErrorWithCause("hashing password", err)
		}

		user, err := models.NewUser(email, username, passwordHash)
		if err != nil {
			return err
		}
		if err := tx.UserRepo().Create(user); err != nil {
			return errs.NewDatabaseError("create", "user", err)
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies credentials; the failure reason is never disclosed.
func (s *UserService) Login(email, password string) (*models.User, error) {
	user, err := s.db.UserRepo().FindByEmail(email)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil || !s.hasher.Verify(user.PasswordHash, password) {
		return nil, errs.NewUnauthorizedError("invalid email or password")
	}
	return user, nil
}

func (s *UserService) GetCurrentUser(userID uint) (*models.User, error) {
	user, err := s.db.UserRepo().FindByID(userID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, errs.NewUnauthorizedError("user not found")
	}
	return user, nil
}

func (s *UserService) UpdateUser(userID uint, email, username, password, bio, image *string) (*models.User, error) {
	var updated *models.User
	err := s.db.Transaction(func(tx database.Database) error {
		user, err := tx.UserRepo().FindByID(userID)
		if err != nil {
			return errs.NewDatabaseError("find", "user", err)
		}
		if user == nil {
			return errs.NewUnauthorizedError("user not found")
		}

		fieldErrs := errs.FieldErrors{}

		if email != nil && *email != user.Email {
			taken, err := tx.UserRepo().ExistsByEmail(*email)
			if err != nil {
				return errs.NewDatabaseError("check", "email", err)
			}
			if taken {
				fieldErrs.Add("email", "is already taken")
			}
		}

		if username != nil && *username != user.Username {
			taken, err := tx.UserRepo().ExistsByUsername(*username)
			if err != nil {
				return errs.NewDatabaseError("check", "username", err)
			}
			if taken {
				fieldErrs.Add("username", "is already taken")
			}
		}

		if password != nil && len(*password) < minPasswordLength {
			fieldErrs.Add("password", "must be at least 8 characters")
		}

		if !fieldErrs.Empty() {
			return errs.NewValidationError(fieldErrs)
		}

		user.UpdateProfile(email, username, bio, image)

		if password != nil {
			passwordHash, err := s.hasher.Hash(*password)
			if err != nil {
				return errs.NewInternalErrorWithCause("hashing password", err)
			}
			user.UpdatePassword(passwordHash)
		}

		if err := tx.UserRepo().Update(user); err != nil {
			return errs.NewDatabaseError("update", "user", err)
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
