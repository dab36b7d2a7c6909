package parser

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"github.com/mailru/errgen/internal/pkg/egerror"
)

// checkName имя должно быть идентификатором и не может быть `_`
func checkName(name string) error {
	if name == "_" || !token.IsIdentifier(name) {
		return egerror.ErrParseNameInvalid
	}

	return nil
}

// docLines комментарии переносятся в сгенерированный код как есть,
// кроме директив компилятора
func docLines(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}

	lines := []string{}

	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, "//go:") {
			continue
		}

		lines = append(lines, c.Text)
	}

	return lines
}

// splitTag разбор тега в привычном для go формате `key:"value" key2:"value2"`
// Возвращает пары ключ-значение в порядке объявления, значения уже раскавычены
func splitTag(literal string) ([][]string, error) {
	tag, err := strconv.Unquote(literal)
	if err != nil {
		return nil, egerror.ErrParseTagInvalidFormat
	}

	ret := [][]string{}

	for {
		tag = strings.TrimLeft(tag, " ")
		if tag == "" {
			break
		}

		i := 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}

		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			return nil, egerror.ErrParseTagInvalidFormat
		}

		name := tag[:i]
		tag = tag[i+1:]

		// Ищем закрывающую кавычку с учётом экранирования
		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}

		if i >= len(tag) {
			return nil, egerror.ErrParseTagInvalidFormat
		}

		value, err := strconv.Unquote(tag[:i+1])
		if err != nil {
			return nil, egerror.ErrParseTagInvalidFormat
		}

		ret = append(ret, []string{name, value})
		tag = tag[i+1:]
	}

	return ret, nil
}
