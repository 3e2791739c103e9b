package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopadmin/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// likeEscaper escapes LIKE wildcards so search text matches literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns a lower-cased, escaped "%term%" pattern for
// case-insensitive LIKE ... ESCAPE '\' matching.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}

// translateFindError maps gorm.ErrRecordNotFound to a not-found domain error
// naming the resource and wraps anything else.
func translateFindError(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFoundError(resource)
	}
	return fmt.Errorf("failed to find %s: %w", strings.ToLower(resource), err)
}

// findPage counts the rows selected by query, then loads one ordered page.
// query must return a fresh statement on every call. The page query is
// skipped when the window is past the last row, and Items is never nil.
func findPage[M any, T any](query func() *gorm.DB, page shared.Page, order string, toDomain func(*M) T) (shared.ListResult[T], error) {
	page = shared.NewPage(page.Number, page.Size)
	result := shared.ListResult[T]{Items: make([]T, 0), Page: page}

	if err := query().Count(&result.Total).Error; err != nil {
		return result, fmt.Errorf("failed to count rows: %w", err)
	}
	if result.Total == 0 || int64(page.Offset()) >= result.Total {
		return result, nil
	}

	var rows []M
	if err := query().Order(order).Offset(page.Offset()).Limit(page.Size).Find(&rows).Error; err != nil {
		return result, fmt.Errorf("failed to list rows: %w", err)
	}
	for i := range rows {
		result.Items = append(result.Items, toDomain(&rows[i]))
	}
	return result, nil
}
