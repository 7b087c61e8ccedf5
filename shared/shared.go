package shared

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"trek/shared/constant"
	"trek/shared/dto"
	"trek/shared/timezone"

	"github.com/rs/zerolog/log"
)

// CacheCleaner is the subset of the cache used for invalidation.
type CacheCleaner interface {
	Clear(ctx context.Context, prefix string) error
}

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the entity prefix and key parts with colons.
func BuildCacheKey(entity string, parts ...string) string {
	if len(parts) == 0 {
		return entity
	}

	return entity + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from list query params and
// filters, so each distinct page or filter combination caches separately.
func BuildCacheKeyWithQuery(entity string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	keys := make([]string, 0, len(args))
	for key := range args {
		keys = append(keys, fmt.Sprintf("%s=%v", key, args[key]))
	}

	// map iteration order is random, keep the key stable
	sortStrings(keys)

	return BuildCacheKey(
		entity,
		"list",
		fmt.Sprintf("page=%d", params.Page),
		fmt.Sprintf("limit=%d", params.Limit),
		fmt.Sprintf("sort=%s:%s", params.SortBy, params.SortDir),
		fmt.Sprintf("where=%s", where),
		strings.Join(keys, "&"),
	)
}

// InvalidateCaches clears every cache entry under the given entity prefixes.
func InvalidateCaches(ctx context.Context, cache CacheCleaner, entities ...string) {
	for _, entity := range entities {
		if err := cache.Clear(ctx, entity+constant.Asterix); err != nil {
			log.Error().Err(err).Str("entity", entity).Msg("failed to invalidate cache")
		}
	}
}

func sortStrings(values []string) {
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j] < values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}
}
