// Пакет example показывает как подключить генератор через go generate.
// Декларации лежат в errors/declaration, результат появляется в errors/generated.
package example

//go:generate go run github.com/mailru/errgen/cmd/errgen --path errors --module github.com/mailru/errgen/example
