package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dishlens/backend/internal/domain"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// FileLoader reads dish records from a JSON file holding an array of objects
type FileLoader struct {
	path   string
	logger *zap.Logger
}

// NewFileLoader creates a loader for the dataset at path
func NewFileLoader(path string, logger *zap.Logger) *FileLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileLoader{path: path, logger: logger}
}

// Source returns the dataset path
func (l *FileLoader) Source() string {
	return l.path
}

// LoadDishes reads and decodes the dataset. Records are returned in file order
// and are not deduplicated.
func (l *FileLoader) LoadDishes(ctx context.Context) ([]domain.DishRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: file %s was not found", domain.ErrDatasetUnavailable, l.path)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDatasetUnavailable, err)
	}

	result, err := ParseDishes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}

	if result.Skipped > 0 {
		l.logger.Warn("skipped dataset entries without a usable dish_name",
			zap.String("path", l.path),
			zap.Int("skipped", result.Skipped))
	}
	if len(result.Records) == 0 {
		l.logger.Warn("dish dataset is empty", zap.String("path", l.path))
	}

	l.logger.Info("loaded dish dataset",
		zap.String("path", l.path),
		zap.Int("records", len(result.Records)))

	return result.Records, nil
}

// ParseResult is the outcome of decoding a dataset document
type ParseResult struct {
	Records []domain.DishRecord
	// Skipped counts entries that were not objects or had no string dish_name
	Skipped int
}

// ParseDishes decodes a JSON array of dish objects. Entries that are not
// objects, or whose dish_name is missing or not a string, are skipped. A
// non-empty array in which no entry has a dish_name at all is rejected.
func ParseDishes(data []byte) (*ParseResult, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", domain.ErrDatasetMalformed)
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected a JSON array of dishes", domain.ErrDatasetMalformed)
	}

	entries := root.Array()
	result := &ParseResult{Records: make([]domain.DishRecord, 0, len(entries))}
	sawDishName := false

	for _, entry := range entries {
		if !entry.IsObject() {
			result.Skipped++
			continue
		}

		fields := objectFields(entry)
		if _, ok := fields[domain.FieldDishName]; ok {
			sawDishName = true
		}

		record, ok := domain.NewDishRecord(fields)
		if !ok {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, record)
	}

	if len(entries) > 0 && !sawDishName {
		return nil, domain.ErrMissingDishName
	}

	return result, nil
}

// toRawValue maps a gjson result onto the RawValue tagged union
func toRawValue(r gjson.Result) domain.RawValue {
	switch r.Type {
	case gjson.Null:
		return domain.AbsentValue()
	case gjson.Number:
		return domain.NumberLiteral(r.Num, r.Raw)
	case gjson.String:
		return domain.StringValue(r.Str)
	case gjson.True, gjson.False:
		return domain.OtherValue(r.Raw)
	case gjson.JSON:
		if r.IsArray() {
			elements := r.Array()
			items := make([]domain.RawValue, len(elements))
			for i, e := range elements {
				items[i] = toRawValue(e)
			}
			return domain.ListValue(items...).WithRaw(r.Raw)
		}
		return domain.ObjectValue(objectFields(r)).WithRaw(r.Raw)
	default:
		return domain.OtherValue(r.Raw)
	}
}

func objectFields(r gjson.Result) map[string]domain.RawValue {
	fields := make(map[string]domain.RawValue)
	r.ForEach(func(key, value gjson.Result) bool {
		fields[key.String()] = toRawValue(value)
		return true
	})
	return fields
}
