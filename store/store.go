// Package store persists named matrices through GORM. A single sqlite file
// is the common deployment; postgres with optional read-only replicas is
// supported through the same configuration surface.
package store

import (
	"errors"

	"github.com/artie-nazarov/CULgebra/config"
	_ "github.com/artie-nazarov/CULgebra/env"
	"github.com/artie-nazarov/CULgebra/logger"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// ErrNotFound is returned when a named matrix does not exist in the store.
var ErrNotFound = errors.New("store: matrix not found")

// Store wraps the underlying gorm handle.
type Store struct {
	*gorm.DB
}

// New opens the configured database, registers read replicas when present,
// and migrates the Record model.
func New(cfg config.Database) (store *Store, err error) {
	// get dialectors from config
	readwrite, readonly := cfg.GetDialectors()
	if len(readwrite) == 0 {
		return nil, errors.New("store: no writable database configured")
	}

	// open primary database connection
	db, err := gorm.Open(readwrite[0], &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, errors.Join(errors.New("store: failed to connect database"), err)
	}
	err = db.Clauses(dbresolver.Write).AutoMigrate(&Record{})
	if err != nil {
		return nil, errors.Join(errors.New("store: migration failed"), err)
	}

	// add resolver connections
	if len(readonly)+len(readwrite) > 1 {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Sources:           readwrite,
			Replicas:          readonly,
			Policy:            dbresolver.StrictRoundRobinPolicy(),
			TraceResolverMode: true,
		}))
		if err != nil {
			logger.Sugar().Errorf("failed to register database resolver: %v", err)
			return nil, err
		}
	}
	return &Store{DB: db}, nil
}
