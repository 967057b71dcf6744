package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/artie-nazarov/CULgebra/codec"
	"github.com/artie-nazarov/CULgebra/config"
	"github.com/artie-nazarov/CULgebra/matrix"
	"github.com/schollz/progressbar/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// Save persists a matrix under a name, replacing any previous matrix of the
// same name.
func Save[T matrix.Element](ctx context.Context, s *Store, name string, m *matrix.Matrix[T]) error {
	record := Record{
		Name:    name,
		DType:   codec.DTypeOf[T]().String(),
		Rank:    m.Rank(),
		DimX:    m.DimX(),
		DimY:    m.DimY(),
		DimZ:    m.DimZ(),
		Payload: codec.Marshal(m),
	}
	err := s.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(&record).Error
	if err != nil {
		return errors.Join(fmt.Errorf("store: failed to save matrix %q", name), err)
	}
	return nil
}

// SaveQuantized persists a float matrix in the lossy 8-bit form.
func SaveQuantized[T codec.Float](ctx context.Context, s *Store, name string, m *matrix.Matrix[T]) error {
	record := Record{
		Name:      name,
		DType:     codec.DTypeOf[T]().String(),
		Rank:      m.Rank(),
		DimX:      m.DimX(),
		DimY:      m.DimY(),
		DimZ:      m.DimZ(),
		Quantized: true,
		Payload:   codec.MarshalQuantized(m),
	}
	err := s.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}).Create(&record).Error
	if err != nil {
		return errors.Join(fmt.Errorf("store: failed to save matrix %q", name), err)
	}
	return nil
}

// Load reads a named matrix back. The element kind must match the one the
// matrix was saved with; the codec rejects mismatches.
func Load[T matrix.Element](ctx context.Context, s *Store, name string) (*matrix.Matrix[T], error) {
	var record Record
	err := s.WithContext(ctx).Clauses(dbresolver.Read).
		Where("name = ?", name).
		Take(&record).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, errors.Join(fmt.Errorf("store: failed to load matrix %q", name), err)
	}
	if record.Quantized {
		return nil, fmt.Errorf("store: matrix %q is quantized, use LoadQuantized", name)
	}
	return codec.Unmarshal[T](record.Payload)
}

// LoadQuantized reads back a matrix saved with SaveQuantized.
func LoadQuantized[T codec.Float](ctx context.Context, s *Store, name string) (*matrix.Matrix[T], error) {
	var record Record
	err := s.WithContext(ctx).Clauses(dbresolver.Read).
		Where("name = ?", name).
		Take(&record).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, errors.Join(fmt.Errorf("store: failed to load matrix %q", name), err)
	}
	if !record.Quantized {
		return nil, fmt.Errorf("store: matrix %q is not quantized, use Load", name)
	}
	return codec.UnmarshalQuantized[T](record.Payload)
}

// Delete removes a named matrix. Deleting a missing name is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := s.WithContext(ctx).Where("name = ?", name).Delete(&Record{}).Error
	if err != nil {
		return errors.Join(fmt.Errorf("store: failed to delete matrix %q", name), err)
	}
	return nil
}

// List returns all records without payloads, newest first.
func (s *Store) List(ctx context.Context) (records []Record, err error) {
	err = s.WithContext(ctx).Clauses(dbresolver.Read).
		Omit("payload").
		Order("updated_at desc").
		Find(&records).
		Error
	if err != nil {
		return nil, errors.Join(errors.New("store: failed to list matrices"), err)
	}
	return records, nil
}

// ExportAll streams every record through fn in batches, with a progress bar
// for long-running exports. fn returning an error aborts the export.
func (s *Store) ExportAll(ctx context.Context, fn func(record Record) error) error {
	bar := progressbar.Default(-1, "Export matrix records")
	defer bar.Close()
	var batch []Record
	err := s.WithContext(ctx).Clauses(dbresolver.Read).
		Model(&Record{}).
		FindInBatches(&batch, config.BATCH_SIZE_DATABASE, func(tx *gorm.DB, _ int) error {
			for _, record := range batch {
				if err := fn(record); err != nil {
					return err
				}
			}
			bar.Add(len(batch))
			return nil
		}).
		Error
	if err != nil {
		return errors.Join(errors.New("store: export failed"), err)
	}
	return nil
}
