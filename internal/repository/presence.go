package repository

import (
	"errors"
	"time"

	"github.com/linskybing/consult-go/internal/domain/advisor"
	"gorm.io/gorm"
)

type PresenceRepo interface {
	Get(advisorID uint) (advisor.Presence, error)
	SetOnline(advisorID uint, online bool, at time.Time) (advisor.Presence, error)
	WithTx(tx *gorm.DB) PresenceRepo
}

type DBPresenceRepo struct {
	db *gorm.DB
}

func NewPresenceRepo(db *gorm.DB) *DBPresenceRepo {
	return &DBPresenceRepo{
		db: db,
	}
}

func (r *DBPresenceRepo) Get(advisorID uint) (advisor.Presence, error) {
	var p advisor.Presence
	if err := r.db.Where("advisor_id = ?", advisorID).First(&p).Error; err != nil {
		return p, err
	}
	return p, nil
}

// SetOnline upserts the flag. online_since is stamped only on the
// offline -> online edge so a repeated "online" heartbeat keeps the
// original timestamp.
func (r *DBPresenceRepo) SetOnline(advisorID uint, online bool, at time.Time) (advisor.Presence, error) {
	var p advisor.Presence
	err := r.db.Where("advisor_id = ?", advisorID).First(&p).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return p, err
		}
		p = advisor.Presence{AdvisorID: advisorID}
	}

	if online && !p.IsOnline {
		p.OnlineSince = &at
	}
	p.IsOnline = online

	if err := r.db.Save(&p).Error; err != nil {
		return p, err
	}
	return p, nil
}

func (r *DBPresenceRepo) WithTx(tx *gorm.DB) PresenceRepo {
	if tx == nil {
		return r
	}
	return &DBPresenceRepo{
		db: tx,
	}
}
