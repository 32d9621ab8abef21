package services

import (
	"context"
	"log"
	"mime/multipart"

	"github.com/google/uuid"

	"growstory/internal/models/db_models"
	"growstory/internal/models/request_models"
	"growstory/internal/models/response_models"
	"growstory/internal/repositories"
	"growstory/pkg/utils"
)

const accountImageProcessType = "profiles"

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest, profileImage *multipart.FileHeader) (uuid.UUID, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error)
	UpdateDisplayName(ctx context.Context, accountID uuid.UUID, displayName string) error
	UpdatePassword(ctx context.Context, accountID uuid.UUID, request request_models.PasswordPatchRequest) error
	UpdateProfileImage(ctx context.Context, accountID uuid.UUID, profileImage *multipart.FileHeader) error
	CheckAttendance(ctx context.Context, accountID uuid.UUID) (int, error)
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
	FindVerifiedAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Account, error)
	IsAuthIDMatching(authAccountID uuid.UUID, accountID uuid.UUID) error
	Buy(account *db_models.Account, price int) error
	Resell(account *db_models.Account, price int) error
}

type AccountService struct {
	accountRepo  repositories.AccountRepository
	pointService PointServiceInterface
	storage      StorageService
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	pointService PointServiceInterface,
	storage StorageService,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:  accountRepo,
		pointService: pointService,
		storage:      storage,
	}
}

// CreateAccount registers a new account with a fresh point ledger and an
// uploaded profile image. A registered email fails before anything is
// persisted or uploaded.
func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest, profileImage *multipart.FileHeader) (uuid.UUID, error) {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return uuid.Nil, utils.ErrAccountAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}

	profileImageURL := ""
	if profileImage != nil {
		profileImageURL, err = a.storage.UploadImage(ctx, profileImage, accountImageProcessType)
		if err != nil {
			return uuid.Nil, err
		}
	}

	point := a.pointService.CreatePoint()

	newAccount := &db_models.Account{
		DisplayName:     request.DisplayName,
		Email:           request.Email,
		PasswordHash:    hashedPassword,
		ProfileImageURL: profileImageURL,
		Roles:           utils.CreateRoles(request.Email),
		Point:           point,
	}

	if err := a.accountRepo.InsertTx(ctx, newAccount); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}

	point.UpdateAccount(newAccount)

	if err := a.pointService.RecordHistory(ctx, newAccount.ID, db_models.PointEventSignup, point.Score, point.Score, nil); err != nil {
		log.Printf("Failed to record signup point history: %v", err)
	}

	return newAccount.ID, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return utils.CreateToken(account.ID, account.Roles)
}

func (a *AccountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.findWithPoint(ctx, accountID)
	if err != nil {
		return nil, err
	}

	score := 0
	if account.Point != nil {
		score = account.Point.Score
	}

	return &response_models.AccountResponse{
		AccountID:       account.ID.String(),
		DisplayName:     account.DisplayName,
		ProfileImageURL: account.ProfileImageURL,
		Point:           score,
		Grade:           string(account.Grade),
		Attendance:      account.Attendance,
	}, nil
}

func (a *AccountService) UpdateDisplayName(ctx context.Context, accountID uuid.UUID, displayName string) error {
	account, err := a.FindVerifiedAccount(ctx, accountID)
	if err != nil {
		return err
	}

	account.DisplayName = displayName
	if err := a.accountRepo.Save(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// UpdatePassword rejects a wrong current password and a new password
// equal to the current one. The equality check compares the new
// plaintext against the stored hash; comparing two bcrypt hashes would
// never match because of the per-hash salt.
func (a *AccountService) UpdatePassword(ctx context.Context, accountID uuid.UUID, request request_models.PasswordPatchRequest) error {
	account, err := a.FindVerifiedAccount(ctx, accountID)
	if err != nil {
		return err
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.PresentPassword); err != nil {
		return utils.ErrInvalidCredentials
	}
	if utils.ComparePasswords(account.PasswordHash, request.ChangedPassword) == nil {
		return utils.ErrPasswordUnchanged
	}

	hashedPassword, err := utils.HashPassword(request.ChangedPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account.PasswordHash = hashedPassword
	if err := a.accountRepo.Save(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// UpdateProfileImage deletes the previous image best-effort before
// uploading the replacement; a failed delete leaves a stale object in
// storage but never blocks the update.
func (a *AccountService) UpdateProfileImage(ctx context.Context, accountID uuid.UUID, profileImage *multipart.FileHeader) error {
	account, err := a.FindVerifiedAccount(ctx, accountID)
	if err != nil {
		return err
	}

	if account.ProfileImageURL != "" {
		if err := a.storage.DeleteImage(ctx, account.ProfileImageURL, accountImageProcessType); err != nil {
			log.Printf("Failed to delete old profile image: %v", err)
		}
	}

	profileImageURL, err := a.storage.UploadImage(ctx, profileImage, accountImageProcessType)
	if err != nil {
		return err
	}

	account.ProfileImageURL = profileImageURL
	if err := a.accountRepo.Save(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// CheckAttendance credits the daily bonus once: a second call while the
// flag is still set earns nothing. Returns the current balance.
func (a *AccountService) CheckAttendance(ctx context.Context, accountID uuid.UUID) (int, error) {
	account, err := a.findWithPoint(ctx, accountID)
	if err != nil {
		return 0, err
	}
	if account.Point == nil {
		return 0, utils.ErrDatabaseError
	}

	if account.Attendance {
		return account.Point.Score, nil
	}

	bonus := a.pointService.AttendanceBonus()
	account.Point.Credit(bonus)
	account.UpdatePoint(account.Point)
	account.UpdateAttendance(true)

	if err := a.accountRepo.Save(ctx, account); err != nil {
		return 0, utils.ErrDatabaseError
	}

	if err := a.pointService.RecordHistory(ctx, account.ID, db_models.PointEventAttendance, bonus, account.Point.Score, nil); err != nil {
		log.Printf("Failed to record attendance point history: %v", err)
	}

	return account.Point.Score, nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	account, err := a.FindVerifiedAccount(ctx, accountID)
	if err != nil {
		return err
	}

	if account.ProfileImageURL != "" {
		if err := a.storage.DeleteImage(ctx, account.ProfileImageURL, accountImageProcessType); err != nil {
			log.Printf("Failed to delete profile image: %v", err)
		}
	}

	if err := a.accountRepo.Delete(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) FindVerifiedAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func (a *AccountService) IsAuthIDMatching(authAccountID uuid.UUID, accountID uuid.UUID) error {
	if authAccountID != accountID {
		return utils.ErrAccountNotAllowed
	}
	return nil
}

// Buy debits the ledger through the synchronizer-governed update path.
// The balance is untouched when it cannot cover the price. Persistence
// is the caller's concern; the purchase path runs this inside a
// row-locked transaction.
func (a *AccountService) Buy(account *db_models.Account, price int) error {
	if price < 0 {
		return utils.ErrInvalidPointPrice
	}

	point := account.Point
	if point == nil {
		return utils.ErrInsufficientPoints
	}
	if err := point.Debit(price); err != nil {
		return err
	}

	account.UpdatePoint(point)
	return nil
}

func (a *AccountService) Resell(account *db_models.Account, price int) error {
	if price < 0 {
		return utils.ErrInvalidPointPrice
	}

	point := account.Point
	if point == nil {
		return utils.ErrInsufficientPoints
	}

	point.Credit(price)
	account.UpdatePoint(point)
	return nil
}

func (a *AccountService) findWithPoint(ctx context.Context, accountID uuid.UUID) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByIDWithPoint(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}
