// internals/features/school/repository/generic_repository.go
package repository

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

// ErrNoDatabaseSession: repo dipakai tanpa engine handle & tanpa session eksternal.
var ErrNoDatabaseSession = errors.New("no database session available")

// GenericRepository menyediakan CRUD generik untuk satu jenis entity.
// Semua operasi lewat withSession: session eksternal (caller yang pegang
// commit/rollback/close) atau session internal (repo buka transaksi sendiri).
// Repo stateless selain handle engine, aman dipakai banyak goroutine —
// tiap call bikin / menerima session-nya sendiri.
type GenericRepository[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) *GenericRepository[T] {
	return &GenericRepository[T]{db: db}
}

// withSession menjalankan fn dalam satu unit-of-work.
//
//   - session != nil → externally managed: fn jalan di session milik caller,
//     repo TIDAK commit / rollback / close. Lifecycle penuh di caller.
//   - session == nil → internally managed: buka transaksi dari engine handle.
//     fn error → log + rollback + error diteruskan apa adanya.
//     fn sukses → commit kalau commit=true, selain itu rollback (jalur
//     release; transaksi GORM berakhir lewat tepat satu Commit/Rollback).
func (r *GenericRepository[T]) withSession(session *gorm.DB, commit bool, fn func(s *gorm.DB) error) error {
	if session != nil {
		return fn(session)
	}

	if r.db == nil {
		return ErrNoDatabaseSession
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(tx); err != nil {
		log.Printf("[ERROR] session scope: %v", err)
		tx.Rollback()
		return err
	}

	if commit {
		return tx.Commit().Error
	}
	return tx.Rollback().Error
}

func (r *GenericRepository[T]) Save(instance *T, session *gorm.DB) error {
	return r.withSession(session, true, func(s *gorm.DB) error {
		return s.Save(instance).Error
	})
}

func (r *GenericRepository[T]) SaveAll(instances []*T, session *gorm.DB) error {
	return r.withSession(session, true, func(s *gorm.DB) error {
		return s.Save(instances).Error
	})
}

// FindByID mengembalikan nil (bukan error) kalau id tidak ada.
func (r *GenericRepository[T]) FindByID(id int, session *gorm.DB) (*T, error) {
	var out *T
	err := r.withSession(session, true, func(s *gorm.DB) error {
		var row T
		if err := s.First(&row, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		out = &row
		return nil
	})
	return out, err
}

// FindAll full scan tanpa limit — caller yang batasi sendiri untuk tabel besar.
func (r *GenericRepository[T]) FindAll(session *gorm.DB) ([]*T, error) {
	var out []*T
	err := r.withSession(session, false, func(s *gorm.DB) error {
		return s.Find(&out).Error
	})
	return out, err
}

func (r *GenericRepository[T]) Delete(instance *T, session *gorm.DB) error {
	return r.withSession(session, true, func(s *gorm.DB) error {
		return s.Delete(instance).Error
	})
}

// DeleteByID: no-op kalau id tidak ada.
func (r *GenericRepository[T]) DeleteByID(id int, session *gorm.DB) error {
	return r.withSession(session, true, func(s *gorm.DB) error {
		// nested call share session yang sama
		instance, err := r.FindByID(id, s)
		if err != nil {
			return err
		}
		if instance == nil {
			return nil
		}
		return r.Delete(instance, s)
	})
}
