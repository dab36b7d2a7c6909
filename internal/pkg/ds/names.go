package ds

import (
	"go/token"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var toTitle = cases.Title(language.Und, cases.NoLower)

// Exported семейство экспортируется, если экспортируется имя декларации.
// Все сгенерированные идентификаторы наследуют это свойство
func (td *TypeDeclaration) Exported() bool {
	return token.IsExported(td.Name)
}

// VariantTypeName имя структуры варианта: Storage + NotFound
func (td *TypeDeclaration) VariantTypeName(v VariantDeclaration) string {
	return td.Name + toTitle.String(v.Name)
}

// ConstructorName имя конструктора варианта
func (td *TypeDeclaration) ConstructorName(v VariantDeclaration) string {
	if td.Exported() {
		return "New" + td.VariantTypeName(v)
	}

	return "new" + toTitle.String(td.VariantTypeName(v))
}

// MarkerMethod метод, которым варианты привязываются к интерфейсу семейства.
// Имя семейства не меняется, иначе у Foo и foo окажется общий метод
func (td *TypeDeclaration) MarkerMethod() string {
	return "is" + td.Name
}

// DefaultMessage сообщение для вариантов без шаблона
func (td *TypeDeclaration) DefaultMessage(v VariantDeclaration) string {
	return td.Name + "::" + v.Name
}

// MessageOf текст, который возвращает Error() варианта.
// Шаблон используется как есть, данные варианта в него не подставляются
func (td *TypeDeclaration) MessageOf(v VariantDeclaration) string {
	if v.HasMessage {
		return v.Message
	}

	return td.DefaultMessage(v)
}
