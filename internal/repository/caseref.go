package repository

import (
	"github.com/linskybing/consult-go/internal/domain/caseref"
	"gorm.io/gorm"
)

// CaseRepo is the engine's adapter to case records. Reads authorize queue
// access; the single write persists the advisor assignment after an
// appointment claim.
type CaseRepo interface {
	GetCaseByID(id uint) (caseref.Case, error)
	SetAssignedAdvisor(id uint, advisorID uint) error
	WithTx(tx *gorm.DB) CaseRepo
}

type DBCaseRepo struct {
	db *gorm.DB
}

func NewCaseRepo(db *gorm.DB) *DBCaseRepo {
	return &DBCaseRepo{
		db: db,
	}
}

func (r *DBCaseRepo) GetCaseByID(id uint) (caseref.Case, error) {
	var c caseref.Case
	if err := r.db.Where("c_id = ?", id).First(&c).Error; err != nil {
		return c, err
	}
	return c, nil
}

func (r *DBCaseRepo) SetAssignedAdvisor(id uint, advisorID uint) error {
	return r.db.Model(&caseref.Case{}).
		Where("c_id = ?", id).
		Update("assigned_advisor_id", advisorID).Error
}

func (r *DBCaseRepo) WithTx(tx *gorm.DB) CaseRepo {
	if tx == nil {
		return r
	}
	return &DBCaseRepo{
		db: tx,
	}
}
