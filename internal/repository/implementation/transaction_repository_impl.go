package implementation

import (
	"context"
	"errors"

	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/mapper"
	"bundle-store-be/internal/model"
	"bundle-store-be/internal/repository/contract"
	"bundle-store-be/internal/repository/scope"
	"bundle-store-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TransactionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TransactionMapper
}

func NewTransactionRepository(db *gorm.DB) contract.TransactionRepository {
	return &TransactionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTransactionMapper(),
	}
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, tx *entity.Transaction) error {
	modelTx := r.mapper.ToModel(tx)
	if err := r.db.WithContext(ctx).Create(modelTx).Error; err != nil {
		return err
	}
	*tx = *r.mapper.ToEntity(modelTx)
	return nil
}

func (r *TransactionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error) {
	var modelTx model.Transaction
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelTx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelTx), nil
}

func (r *TransactionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	var modelTxs []*model.Transaction
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelTxs).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelTxs), nil
}

func (r *TransactionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Transaction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *TransactionRepositoryImpl) UpdateStatus(ctx context.Context, id string, status entity.TransactionStatus) error {
	return r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

// detailRow carries the join columns the history and receipt views need.
type detailRow struct {
	model.Transaction
	BundleName   string
	DataAmount   string
	ProviderName string
}

func (r *TransactionRepositoryImpl) detailQuery(ctx context.Context, specs ...specification.Specification) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("transactions.*, bundles.name AS bundle_name, bundles.data_amount AS data_amount, providers.name AS provider_name").
		Joins("LEFT JOIN bundles ON bundles.id = transactions.bundle_id").
		Joins("LEFT JOIN providers ON providers.id = transactions.provider_id")
	return applySpecifications(query, specs...)
}

func (r *TransactionRepositoryImpl) rowToEntity(row *detailRow) *entity.Transaction {
	tx := r.mapper.ToEntity(&row.Transaction)
	tx.BundleName = row.BundleName
	tx.DataAmount = row.DataAmount
	tx.ProviderName = row.ProviderName
	return tx
}

func (r *TransactionRepositoryImpl) FindAllWithDetails(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	var rows []*detailRow
	if err := r.detailQuery(ctx, specs...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	txs := make([]*entity.Transaction, len(rows))
	for i, row := range rows {
		txs[i] = r.rowToEntity(row)
	}
	return txs, nil
}

func (r *TransactionRepositoryImpl) FindOneWithDetails(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error) {
	var rows []*detailRow
	if err := r.detailQuery(ctx, specs...).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return r.rowToEntity(rows[0]), nil
}

func (r *TransactionRepositoryImpl) CreateEvent(ctx context.Context, event *entity.TransactionEvent) error {
	modelEvent := r.mapper.EventToModel(event)
	if err := r.db.WithContext(ctx).Create(modelEvent).Error; err != nil {
		return err
	}
	*event = *r.mapper.EventToEntity(modelEvent)
	return nil
}

func (r *TransactionRepositoryImpl) FindEvents(ctx context.Context, specs ...specification.Specification) ([]*entity.TransactionEvent, error) {
	var modelEvents []*model.TransactionEvent
	// Audit rows always come back newest first.
	query := applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedDesc), specs...)

	if err := query.Find(&modelEvents).Error; err != nil {
		return nil, err
	}

	events := make([]*entity.TransactionEvent, len(modelEvents))
	for i, e := range modelEvents {
		events[i] = r.mapper.EventToEntity(e)
	}
	return events, nil
}
