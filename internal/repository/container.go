package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Ticket   TicketRepo
	Presence PresenceRepo
	Case     CaseRepo
	User     UserRepo
	Audit    AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Ticket:   NewTicketRepo(db),
		Presence: NewPresenceRepo(db),
		Case:     NewCaseRepo(db),
		User:     NewUserRepo(db),
		Audit:    NewAuditRepo(db),
		db:       db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Ticket:   r.Ticket.WithTx(tx),
		Presence: r.Presence.WithTx(tx),
		Case:     r.Case.WithTx(tx),
		User:     r.User.WithTx(tx),
		Audit:    r.Audit.WithTx(tx),
		db:       tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
