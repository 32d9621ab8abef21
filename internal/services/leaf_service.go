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

const leafImageProcessType = "leaves"

type LeafServiceInterface interface {
	CreateLeaf(ctx context.Context, accountID uuid.UUID, request request_models.LeafPostRequest, image *multipart.FileHeader) (uuid.UUID, error)
	UpdateLeaf(ctx context.Context, accountID uuid.UUID, leafID uuid.UUID, request request_models.LeafPatchRequest, image *multipart.FileHeader) error
	GetLeaf(ctx context.Context, leafID uuid.UUID) (*response_models.LeafResponse, error)
	ListLeaves(ctx context.Context, accountID uuid.UUID) ([]response_models.LeafResponse, error)
	AddJournal(ctx context.Context, accountID uuid.UUID, leafID uuid.UUID, request request_models.JournalPostRequest, image *multipart.FileHeader) error
	DeleteLeaf(ctx context.Context, accountID uuid.UUID, leafID uuid.UUID) error
}

type LeafService struct {
	leafRepo       repositories.LeafRepository
	accountService AccountServiceInterface
	storage        StorageService
}

func NewLeafService(
	leafRepo repositories.LeafRepository,
	accountService AccountServiceInterface,
	storage StorageService,
) LeafServiceInterface {
	return &LeafService{
		leafRepo:       leafRepo,
		accountService: accountService,
		storage:        storage,
	}
}

func (l *LeafService) CreateLeaf(ctx context.Context, accountID uuid.UUID, request request_models.LeafPostRequest, image *multipart.FileHeader) (uuid.UUID, error) {
	account, err := l.accountService.FindVerifiedAccount(ctx, accountID)
	if err != nil {
		return uuid.Nil, err
	}

	imageURL := ""
	if image != nil {
		imageURL, err = l.storage.UploadImage(ctx, image, leafImageProcessType)
		if err != nil {
			return uuid.Nil, err
		}
	}

	leaf := db_models.Leaf{
		LeafName:     request.LeafName,
		Content:      request.Content,
		LeafImageURL: imageURL,
		AccountID:    &account.ID,
	}
	account.AddLeaf(leaf)

	if err := l.leafRepo.InsertTx(ctx, &leaf); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return leaf.ID, nil
}

func (l *LeafService) UpdateLeaf(ctx context.Context, accountID uuid.UUID, leafID uuid.UUID, request request_models.LeafPatchRequest, image *multipart.FileHeader) error {
	leaf, err := l.ownedLeaf(ctx, accountID, leafID)
	if err != nil {
		return err
	}

	if request.LeafName != "" {
		leaf.LeafName = request.LeafName
	}
	if request.Content != "" {
		leaf.Content = request.Content
	}

	if image != nil {
		if leaf.LeafImageURL != "" {
			if err := l.storage.DeleteImage(ctx, leaf.LeafImageURL, leafImageProcessType); err != nil {
				log.Printf("Failed to delete old leaf image: %v", err)
			}
		}
		imageURL, err := l.storage.UploadImage(ctx, image, leafImageProcessType)
		if err != nil {
			return err
		}
		leaf.LeafImageURL = imageURL
	}

	if err := l.leafRepo.Save(ctx, leaf); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (l *LeafService) GetLeaf(ctx context.Context, leafID uuid.UUID) (*response_models.LeafResponse, error) {
	leaf, err := l.leafRepo.FindByID(ctx, leafID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if leaf == nil {
		return nil, utils.ErrLeafNotFound
	}

	response := toLeafResponse(leaf)
	return &response, nil
}

func (l *LeafService) ListLeaves(ctx context.Context, accountID uuid.UUID) ([]response_models.LeafResponse, error) {
	leaves, err := l.leafRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.LeafResponse, 0, len(leaves))
	for i := range leaves {
		responses = append(responses, toLeafResponse(&leaves[i]))
	}
	return responses, nil
}

func (l *LeafService) AddJournal(ctx context.Context, accountID uuid.UUID, leafID uuid.UUID, request request_models.JournalPostRequest, image *multipart.FileHeader) error {
	leaf, err := l.ownedLeaf(ctx, accountID, leafID)
	if err != nil {
		return err
	}

	imageURL := ""
	if image != nil {
		imageURL, err = l.storage.UploadImage(ctx, image, leafImageProcessType)
		if err != nil {
			return err
		}
	}

	journal := db_models.Journal{
		Title:    request.Title,
		Content:  request.Content,
		ImageURL: imageURL,
		LeafID:   leaf.ID,
	}
	leaf.AddJournal(journal)

	if err := l.leafRepo.InsertJournal(ctx, &journal); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (l *LeafService) DeleteLeaf(ctx context.Context, accountID uuid.UUID, leafID uuid.UUID) error {
	leaf, err := l.ownedLeaf(ctx, accountID, leafID)
	if err != nil {
		return err
	}

	if leaf.LeafImageURL != "" {
		if err := l.storage.DeleteImage(ctx, leaf.LeafImageURL, leafImageProcessType); err != nil {
			log.Printf("Failed to delete leaf image: %v", err)
		}
	}

	leaf.RemovePlantObj()

	if err := l.leafRepo.Delete(ctx, leaf); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (l *LeafService) ownedLeaf(ctx context.Context, accountID uuid.UUID, leafID uuid.UUID) (*db_models.Leaf, error) {
	leaf, err := l.leafRepo.FindByID(ctx, leafID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if leaf == nil {
		return nil, utils.ErrLeafNotFound
	}
	if leaf.AccountID == nil {
		return nil, utils.ErrAccountNotAllowed
	}
	if err := l.accountService.IsAuthIDMatching(accountID, *leaf.AccountID); err != nil {
		return nil, err
	}
	return leaf, nil
}

func toLeafResponse(leaf *db_models.Leaf) response_models.LeafResponse {
	response := response_models.LeafResponse{
		LeafID:       leaf.ID.String(),
		LeafName:     leaf.LeafName,
		Content:      leaf.Content,
		LeafImageURL: leaf.LeafImageURL,
	}
	if leaf.PlantObj != nil {
		plantObjID := leaf.PlantObj.ID.String()
		response.PlantObjID = &plantObjID
	}
	for _, journal := range leaf.Journals {
		response.Journals = append(response.Journals, response_models.JournalResponse{
			JournalID: journal.ID.String(),
			Title:     journal.Title,
			Content:   journal.Content,
			ImageURL:  journal.ImageURL,
			CreatedAt: journal.CreatedAt,
		})
	}
	return response
}
