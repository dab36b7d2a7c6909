package main

import "strings"

const (
	colorRed   = "\033[31m"
	colorDim   = "\033[2m"
	colorReset = "\033[0m"
)

// colorize подсвечивает вложенные ошибки: промежуточные уровни тусклым,
// первопричину (последняя строка) красным
func colorize(message string) string {
	lines := strings.Split(message, "\n")

	for i, line := range lines {
		switch {
		case i == len(lines)-1 && i > 0:
			lines[i] = colorRed + line + colorReset
		case strings.HasPrefix(line, "\t"):
			lines[i] = colorDim + line + colorReset
		}
	}

	return strings.Join(lines, "\n")
}
