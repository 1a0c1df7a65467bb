package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/hotel-brand-api/models"
	"github.com/yeremiapane/hotel-brand-api/policy"
	"github.com/yeremiapane/hotel-brand-api/repository"
	"github.com/yeremiapane/hotel-brand-api/utils"
	"github.com/yeremiapane/hotel-brand-api/validation"
)

type CreateTableRequest struct {
	Number   string `json:"number" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
}

type UpdateTableRequest struct {
	Number   *string `json:"number"`
	Capacity *int    `json:"capacity" validate:"omitempty,gt=0"`
}

// TableService only ever acts inside the caller's own branch.
type TableService struct {
	store *repository.Store
}

func NewTableService(store *repository.Store) *TableService {
	return &TableService{store: store}
}

func (s *TableService) List(ctx context.Context, id policy.Identity) ([]models.Table, error) {
	if err := policy.Authorize(id, policy.ActionTableList); err != nil {
		return nil, err
	}
	return s.store.Tables.Find(ctx, policy.ScopeFilter(id, policy.KindTable))
}

// Create places the table in the caller's branch; any branch in the payload
// is ignored.
func (s *TableService) Create(ctx context.Context, id policy.Identity, decode validation.Decoder) (*models.Table, error) {
	if err := policy.Authorize(id, policy.ActionTableCreate); err != nil {
		return nil, err
	}
	if !id.HasBranch() {
		return nil, utils.NewNotFound("branch not found")
	}

	req, err := validation.Decode[CreateTableRequest](decode)
	if err != nil {
		return nil, err
	}

	table := &models.Table{
		Number:   req.Number,
		Capacity: req.Capacity,
		BranchID: *id.BranchID,
	}
	if err := s.store.Tables.Create(ctx, table); err != nil {
		if utils.IsKind(err, utils.KindConflict) {
			return nil, utils.NewConflict("table number already exists in this branch")
		}
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"table_id":  table.ID,
		"branch_id": table.BranchID,
		"number":    table.Number,
	}).Info("table created")
	return table, nil
}

// Update fails with NotFound for a table outside the caller's branch.
func (s *TableService) Update(ctx context.Context, id policy.Identity, tableID string, decode validation.Decoder) (*models.Table, error) {
	if err := policy.Authorize(id, policy.ActionTableUpdate); err != nil {
		return nil, err
	}
	scope := policy.Scoped(id, policy.KindTable, tableID)
	current, err := s.store.Tables.FindOne(ctx, scope)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, utils.NewNotFound("table not found")
	}

	req, err := validation.Decode[UpdateTableRequest](decode)
	if err != nil {
		return nil, err
	}
	fields := repository.Fields{}
	mergeString(fields, "number", req.Number)
	mergeInt(fields, "capacity", req.Capacity)

	updated, err := s.store.Tables.FindOneAndUpdate(ctx, scope, fields)
	if err != nil {
		if utils.IsKind(err, utils.KindConflict) {
			return nil, utils.NewConflict("table number already exists in this branch")
		}
		return nil, err
	}
	if updated == nil {
		return nil, utils.NewNotFound("table not found")
	}
	return updated, nil
}

func (s *TableService) Delete(ctx context.Context, id policy.Identity, tableID string) error {
	if err := policy.Authorize(id, policy.ActionTableDelete); err != nil {
		return err
	}
	deleted, err := s.store.Tables.FindOneAndDelete(ctx, policy.Scoped(id, policy.KindTable, tableID))
	if err != nil {
		return err
	}
	if deleted == nil {
		return utils.NewNotFound("table not found")
	}
	utils.InfoLogger.WithField("table_id", tableID).Info("table deleted")
	return nil
}
