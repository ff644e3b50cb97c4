package alarm_db

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Raimguhinov/alarmlog/internal/domain"
)

const table = "alarms"

var columns = []string{
	domain.FieldID,
	domain.FieldTimestamp,
	domain.FieldTemperature,
	domain.FieldSmokeDetected,
	domain.FieldFireDetected,
	domain.FieldCleared,
}

// where compiles the filter into a squirrel conjunction; ok is false when nothing filters.
func where(filter domain.AlarmFilter) (sq.And, bool, error) {
	conds := filter.Conditions()
	and := make(sq.And, 0, len(conds))

	for _, c := range conds {
		switch c.Op {
		case domain.OpEq:
			and = append(and, sq.Eq{c.Field: c.Value})
		case domain.OpGte:
			and = append(and, sq.GtOrEq{c.Field: c.Value})
		case domain.OpLte:
			and = append(and, sq.LtOrEq{c.Field: c.Value})
		default:
			return nil, false, fmt.Errorf("unsupported operator %d on %s", c.Op, c.Field)
		}
	}

	return and, len(and) > 0, nil
}

func findQuery(b sq.StatementBuilderType, filter domain.AlarmFilter) (string, []any, error) {
	and, ok, err := where(filter)
	if err != nil {
		return "", nil, err
	}

	q := b.Select(columns...).From(table)
	if ok {
		q = q.Where(and)
	}
	return q.OrderBy(domain.FieldID).ToSql()
}

func insertQuery(b sq.StatementBuilderType, a *domain.Alarm) (string, []any, error) {
	return b.Insert(table).
		Columns(
			domain.FieldTimestamp,
			domain.FieldTemperature,
			domain.FieldSmokeDetected,
			domain.FieldFireDetected,
			domain.FieldCleared,
		).
		Values(a.Timestamp, a.Temperature, a.SmokeDetected, a.FireDetected, a.Cleared).
		Suffix("RETURNING " + domain.FieldID).
		ToSql()
}

func clearQuery(b sq.StatementBuilderType, ids []int64) (string, []any, error) {
	return b.Update(table).
		Set(domain.FieldCleared, true).
		Where(sq.Eq{domain.FieldID: ids}).
		ToSql()
}

func deleteQuery(b sq.StatementBuilderType, ids []int64) (string, []any, error) {
	return b.Delete(table).
		Where(sq.Eq{domain.FieldID: ids}).
		ToSql()
}
