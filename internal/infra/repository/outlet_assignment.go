package repository

import (
	"context"

	"github.com/google/uuid"

	"pourup/internal/infra"
)

// OutletAssignmentRepository reads the manager-to-outlet assignment table.
// It backs both the write-side actor loading and the read-side access checks.
type OutletAssignmentRepository struct {
	db DB
}

func NewOutletAssignmentRepository(db DB) *OutletAssignmentRepository {
	return &OutletAssignmentRepository{db: db}
}

func (r *OutletAssignmentRepository) ManagedOutletIDs(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := qb.Select("outlet_id").
		From("outlet_managers").
		Where("manager_id = ?", managerID).
		Where("is_active = true").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build outlet assignment select", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find managed outlets", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan managed outlet row", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read managed outlet rows", err)
	}

	return ids, nil
}
