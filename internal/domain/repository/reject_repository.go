package repository

import "github.com/neonflow/neonflow-api/internal/domain/entity"

// RejectMasterRepository puerto de persistencia del catálogo maestro de mermas.
type RejectMasterRepository interface {
	Upsert(item *entity.RejectMasterItem) error
	List() ([]*entity.RejectMasterItem, error)
}

// RejectRecordRepository puerto de persistencia de registros de merma.
type RejectRecordRepository interface {
	Create(record *entity.RejectRecord) error
	// List devuelve registros completos ordenados por fecha descendente.
	List(limit, offset int) ([]*entity.RejectRecord, error)
}
