package postgres

import (
	"context"

	"bookswap/internal/domain/entity"
	domainerrors "bookswap/internal/domain/errors"
	"bookswap/internal/domain/repository"
	"bookswap/internal/errors"
	"bookswap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).First(&accountM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(&accountM), nil
}

// FindByMobile retrieves a single account by its mobile number. Reads on the
// primary: login flows must not see a replica lagging behind a registration.
func (repo *accountRepository) FindByMobile(ctx context.Context, mobile string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		First(&accountM, "mobile = ?", mobile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(&accountM), nil
}

// FindByOpenID retrieves a single account by its external identity reference.
func (repo *accountRepository) FindByOpenID(ctx context.Context, openID string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		First(&accountM, "open_id = ?", openID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. The unique constraints on mobile and
// open_id make the uniqueness check atomic with the insert: of two racing
// registrations exactly one sees a duplicate error here.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Clauses(clause.Returning{}).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatesConstraint(err, "open_id") {
				return repository.ErrDuplicateOpenID
			}

			return repository.ErrDuplicateMobile
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("id = ?", accountM.ID).
		Updates(map[string]any{
			"mobile":         accountM.Mobile,
			"password_hash":  accountM.PasswordHash,
			"open_id":        accountM.OpenID,
			"name":           accountM.Name,
			"avatar":         accountM.Avatar,
			"last_active_at": accountM.LastActiveAt,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			if violatesConstraint(result.Error, "open_id") {
				return repository.ErrDuplicateOpenID
			}

			return repository.ErrDuplicateMobile
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	account := &entity.Account{
		ID:           data.ID,
		Mobile:       data.Mobile,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		Avatar:       data.Avatar,
		LastActiveAt: data.LastActiveAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.OpenID != nil {
		account.OpenID = *data.OpenID
	}

	return account
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.AccountModel{
		ID:           data.ID,
		Mobile:       data.Mobile,
		PasswordHash: data.PasswordHash,
		Name:         data.Name,
		Avatar:       data.Avatar,
		LastActiveAt: data.LastActiveAt,
	}
	if data.OpenID != "" {
		openID := data.OpenID
		accountM.OpenID = &openID
	}

	return accountM
}
