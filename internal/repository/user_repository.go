package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"helpugee/internal/auth"
	errs "helpugee/internal/errors"
	"helpugee/internal/model"
)

// usernameMaxLen is the width of the username column.
const usernameMaxLen = 50

// UserRepository defines persistence operations over user records and
// enforces the invariants the schema cannot: non-empty credentials, the
// admin-remains rule, and the soft-delete/privacy-scrub transition.
type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindBySection(ctx context.Context, sectionID uint) ([]model.User, error)
	FindByRole(ctx context.Context, role model.Role) ([]model.User, error)
	Add(ctx context.Context, user *model.User) error
	Edit(ctx context.Context, user *model.User) error
	ChangePassword(ctx context.Context, user *model.User) error
	Remove(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindAll returns all non-deleted users with the password blanked out.
func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("is_deleted = FALSE").
		Order("surname, forename, username").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	blankPasswords(users)
	return users, nil
}

// FindByID returns a single user with the password blanked out.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := loadUser(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// FindByUsername returns a single user including the stored password hash.
// Only the authentication service may use this lookup; generic read paths go
// through FindByID/FindAll which never return a live hash.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND is_deleted = FALSE", username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUsernameNotPresent
		}
		return nil, err
	}
	return &user, nil
}

// FindBySection returns all non-deleted users of a section, passwords blanked.
func (r *userRepository) FindBySection(ctx context.Context, sectionID uint) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("section = ? AND is_deleted = FALSE", sectionID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	blankPasswords(users)
	return users, nil
}

// FindByRole returns all non-deleted users whose section grants the given
// role, passwords blanked.
func (r *userRepository) FindByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	users, err := findUsersByRole(r.db.WithContext(ctx), role, false)
	if err != nil {
		return nil, err
	}
	blankPasswords(users)
	return users, nil
}

// Add validates and inserts a new user with server-stamped audit fields.
func (r *userRepository) Add(ctx context.Context, user *model.User) error {
	if err := checkConstraints(user); err != nil {
		return err
	}
	user.ID = 0
	user.CreatedAt = time.Now()
	user.CreatedBy = auth.UsernameFrom(ctx)
	user.ModifiedAt = nil
	user.ModifiedBy = nil
	user.IsDeleted = false

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.ErrUsernameNotUnique
		}
		return err
	}
	return nil
}

// Edit updates a user. The password and the soft-delete flag are carried over
// from the stored row: a generic edit can neither change a password nor
// resurrect a deleted account. When the edit changes section or isActive the
// admin-remains check runs against the old assignment, inside the same
// transaction as the write.
func (r *userRepository) Edit(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// lock order: administrator rows before the target row. Every mutating
		// path takes its locks in this order, so two transactions touching the
		// last administrators queue up instead of deadlocking.
		peek, err := loadUser(tx, user.ID)
		if err != nil {
			return err
		}
		checked := false
		if peek.SectionID != user.SectionID || peek.IsActive != user.IsActive {
			if err := checkAdminRemove(tx, peek); err != nil {
				return err
			}
			checked = true
		}

		old, err := loadUserForUpdate(tx, user.ID)
		if err != nil {
			return err
		}
		// the unlocked read raced a concurrent section move; redo the check
		// against the locked row
		if (old.SectionID != user.SectionID || old.IsActive != user.IsActive) &&
			(!checked || old.SectionID != peek.SectionID) {
			if err := checkAdminRemove(tx, old); err != nil {
				return err
			}
		}

		next := *user
		next.Password = old.Password
		next.IsDeleted = old.IsDeleted
		next.CreatedAt = old.CreatedAt
		next.CreatedBy = old.CreatedBy
		if err := checkConstraints(&next); err != nil {
			return err
		}

		stampModified(ctx, &next)
		return tx.Save(&next).Error
	})
}

// ChangePassword replaces only the password field of the stored row.
func (r *userRepository) ChangePassword(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, err := loadUserForUpdate(tx, user.ID)
		if err != nil {
			return err
		}
		old.Password = user.Password
		if err := checkConstraints(old); err != nil {
			return err
		}
		stampModified(ctx, old)
		return tx.Save(old).Error
	})
}

// Remove soft-deletes a user and irreversibly scrubs its PII. Removal always
// risks reducing the administrator count, so the admin-remains check runs
// unconditionally; check and write share one transaction so that concurrent
// removals of the two last administrators serialize and exactly one fails.
func (r *userRepository) Remove(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// lock order as in Edit: administrator rows before the target row
		peek, err := loadUser(tx, id)
		if err != nil {
			return err
		}
		if err := checkAdminRemove(tx, peek); err != nil {
			return err
		}

		user, err := loadUserForUpdate(tx, id)
		if err != nil {
			return err
		}
		if user.SectionID != peek.SectionID {
			if err := checkAdminRemove(tx, user); err != nil {
				return err
			}
		}

		user.IsDeleted = true
		SuppressUserDetails(user)
		stampModified(ctx, user)
		return tx.Save(user).Error
	})
}

// SuppressUserDetails scrubs the PII of a user record. The username keeps the
// original as a suffix behind a random prefix so audit references stay
// traceable while the row becomes unusable as a credential.
func SuppressUserDetails(user *model.User) {
	user.Username = uuid.NewString() + "_" + user.Username
	// truncate on a rune boundary, the column limit counts characters
	if runes := []rune(user.Username); len(runes) > usernameMaxLen {
		user.Username = string(runes[:usernameMaxLen-1])
	}
	user.IsActive = false
	user.Password = ""
	user.Forename = nil
	user.Surname = nil
	user.Phone = nil
	user.RadioCallName = nil
}

// checkConstraints enforces the non-empty username/password invariant before
// every insert and update.
func checkConstraints(user *model.User) error {
	if len(user.Username) == 0 {
		return errs.ErrUsernameEmpty
	}
	if len(user.Password) == 0 {
		return errs.ErrPasswordEmpty
	}
	return nil
}

// checkAdminRemove fails when taking the given user's current assignment away
// would leave zero active administrators. The candidate rows are locked so a
// concurrent removal cannot pass the same check.
func checkAdminRemove(tx *gorm.DB, user *model.User) error {
	var section model.Section
	err := tx.Where("id = ? AND is_deleted = FALSE", user.SectionID).First(&section).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrSectionIDNotPresent
		}
		return err
	}
	if section.Role != model.RoleAdministrator {
		return nil
	}

	admins, err := findUsersByRole(tx, model.RoleAdministrator, true)
	if err != nil {
		return err
	}
	return adminRemains(admins, user.ID)
}

// adminRemains reports ErrLastAdminRemoved when excluding the target user
// would leave no active administrator.
func adminRemains(admins []model.User, excludeID uint) error {
	for _, admin := range admins {
		if admin.ID != excludeID && admin.IsActive {
			return nil
		}
	}
	return errs.ErrLastAdminRemoved
}

// findUsersByRole scans in id order so FOR UPDATE locks are acquired in a
// deterministic sequence across concurrent transactions.
func findUsersByRole(tx *gorm.DB, role model.Role, lock bool) ([]model.User, error) {
	q := tx.
		Joins("JOIN sections ON sections.id = users.section").
		Where("sections.role = ? AND users.is_deleted = FALSE", role).
		Order("users.id")
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "users"}})
	}
	var users []model.User
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func loadUser(tx *gorm.DB, id uint) (*model.User, error) {
	var user model.User
	err := tx.Where("id = ? AND is_deleted = FALSE", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserIDNotPresent
		}
		return nil, err
	}
	return &user, nil
}

func loadUserForUpdate(tx *gorm.DB, id uint) (*model.User, error) {
	return loadUser(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func stampModified(ctx context.Context, user *model.User) {
	now := time.Now()
	by := auth.UsernameFrom(ctx)
	user.ModifiedAt = &now
	user.ModifiedBy = &by
}

func blankPasswords(users []model.User) {
	for i := range users {
		users[i].Password = ""
	}
}
