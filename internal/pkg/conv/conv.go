// Пакет conv решает нужно ли генерировать автоматическое преобразование
// значения поля в тип семейства ошибок.
//
// Решение принимается только по количеству полей варианта:
// ровно одно поле - преобразование генерируется, ноль полей - преобразовывать
// нечего, два и более - неизвестно какое поле заполнять.
package conv

import (
	"github.com/mailru/errgen/internal/pkg/ds"
)

type Outcome uint8

const (
	SkipNoPayload Outcome = iota // вариант без полей
	Emit                         // ровно одно поле
	SkipAmbiguous                // несколько полей
)

func (o Outcome) String() string {
	switch o {
	case SkipNoPayload:
		return "skip: no payload"
	case Emit:
		return "emit"
	case SkipAmbiguous:
		return "skip: ambiguous"
	default:
		return "unknown"
	}
}

// Решение по одному варианту. Field заполнено только для Emit
type Decision struct {
	Outcome Outcome
	Field   ds.PayloadField
}

// Classify классифицирует вариант по количеству полей
func Classify(v ds.VariantDeclaration) Decision {
	switch len(v.Fields) {
	case 0:
		return Decision{Outcome: SkipNoPayload}
	case 1:
		return Decision{Outcome: Emit, Field: v.Fields[0]}
	default:
		return Decision{Outcome: SkipAmbiguous}
	}
}

// FuncName имя функции преобразования для семейства declName
func (d Decision) FuncName(declName string) string {
	if d.Outcome != Emit {
		return ""
	}

	return declName + "From" + d.Field.Mangle
}
