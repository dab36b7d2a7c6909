package generator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mailru/errgen/internal/pkg/egerror"
)

var tmplErrRx = regexp.MustCompile(TemplateName + `:(\d+):`)

// getTmplErrorLine вырезает из шаблона строки, на которые указывает ошибка text/template.
// Строка с ошибкой помечается стрелкой
func getTmplErrorLine(lines []string, tmplerror string) (string, error) {
	lineTmpl := tmplErrRx.FindStringSubmatch(tmplerror)
	if len(lineTmpl) < 2 {
		return "", egerror.ErrGeneragorErrorLineNotFound
	}

	lineNum, err := strconv.Atoi(lineTmpl[1])
	if err != nil || lineNum < 1 {
		return "", egerror.ErrGeneragorGetTmplLine
	}

	if len(lines) == 0 {
		return "", egerror.ErrGeneragorEmptyTmplLine
	}

	if lineNum > len(lines) {
		lineNum = len(lines)
	}

	cntline := 3

	startLine := lineNum - cntline - 1
	if startLine < 0 {
		startLine = 0
	}

	errorLines := make([]string, 0, lineNum-startLine)

	for num := startLine; num < lineNum; num++ {
		prefix := "     "
		if num == lineNum-1 {
			prefix = "-->> "
		}

		errorLines = append(errorLines, prefix+lines[num])
	}

	return "\n" + strings.Join(errorLines, ""), nil
}
