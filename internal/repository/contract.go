package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zhenweng/contract-parser/gen/ent"
	entcontract "github.com/zhenweng/contract-parser/gen/ent/contract"
	"github.com/zhenweng/contract-parser/internal/entity"
	"github.com/zhenweng/contract-parser/internal/utils"
)

type ContractRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error)
	ListContracts(ctx context.Context, projectID uuid.UUID) ([]*entity.Contract, error)
	// EnsureForFile returns the contract a file is linked to, creating and
	// linking an empty one when the file has no contract yet.
	EnsureForFile(ctx context.Context, file *ent.DocumentFile) (*entity.Contract, error)
	// SaveFields persists the business fields and audit blob of a contract
	// that went through the merge policy.
	SaveFields(ctx context.Context, c *entity.Contract) (*entity.Contract, error)
}

type contractRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContractRepository(client *ent.Client, logger *slog.Logger) ContractRepository {
	return &contractRepository{
		client: client,
		logger: logger,
	}
}

func (r *contractRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contract, error) {
	row, err := r.client.Contract.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToContract(row), nil
}

func (r *contractRepository) ListContracts(ctx context.Context, projectID uuid.UUID) ([]*entity.Contract, error) {
	rows, err := r.client.Contract.Query().
		Where(entcontract.ProjectID(projectID)).
		Order(entcontract.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list contracts", "project_id", projectID, "error", err)
		return nil, err
	}
	out := make([]*entity.Contract, len(rows))
	for i, row := range rows {
		out[i] = utils.ToContract(row)
	}
	return out, nil
}

func (r *contractRepository) EnsureForFile(ctx context.Context, file *ent.DocumentFile) (*entity.Contract, error) {
	if file.ContractID != nil && *file.ContractID != uuid.Nil {
		return r.GetByID(ctx, *file.ContractID)
	}
	row, err := r.client.Contract.Create().
		SetProjectID(file.ProjectID).
		SetFilePath(file.SourcePath).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create contract for file", "file_id", file.ID, "error", err)
		return nil, err
	}
	if err := r.client.DocumentFile.UpdateOneID(file.ID).SetContractID(row.ID).Exec(ctx); err != nil {
		r.logger.Error("failed to link file to contract", "file_id", file.ID, "contract_id", row.ID, "error", err)
		return nil, err
	}
	r.logger.Info("contract created for file", "file_id", file.ID, "contract_id", row.ID)
	return utils.ToContract(row), nil
}

func (r *contractRepository) SaveFields(ctx context.Context, c *entity.Contract) (*entity.Contract, error) {
	row, err := r.client.Contract.UpdateOneID(c.ID).
		SetNillableContractNumber(c.ContractNumber).
		SetNillableContractName(c.ContractName).
		SetNillablePartyA(c.PartyA).
		SetNillablePartyB(c.PartyB).
		SetNillableAmount(c.Amount).
		SetNillableSignDate(c.SignDate).
		SetNillableEffectiveDate(c.EffectiveDate).
		SetNillableExpiryDate(c.ExpiryDate).
		SetParsedData(c.ParsedData).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save contract fields", "contract_id", c.ID, "error", err)
		return nil, err
	}
	return utils.ToContract(row), nil
}
