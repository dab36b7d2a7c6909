package ds

import (
	"fmt"
)

// MarkerFile признак того, что каталогом назначения владеет генератор.
// Без него непустой каталог не будет перезаписан
const MarkerFile = ".errgen"

// Описание приложения. Информация необходимая для разметки артефактов
// Остаётся в сгенерированных файлах, что бы было понятно какой версией они сгенерированны
type AppInfo struct {
	appName     string
	version     string
	buildTime   string
	buildOS     string
	buildCommit string
}

// Конструктор для AppInfo
func NewAppInfo() *AppInfo {
	return &AppInfo{
		appName: "errgen",
	}
}

// Опции для конструктора, используются для модификации полей структуры
func (i *AppInfo) WithVersion(version string) *AppInfo {
	i.version = version
	return i
}

func (i *AppInfo) WithBuildTime(buildTime string) *AppInfo {
	i.buildTime = buildTime
	return i
}

func (i *AppInfo) WithBuildOS(buildOS string) *AppInfo {
	i.buildOS = buildOS
	return i
}

func (i *AppInfo) WithBuildCommit(commit string) *AppInfo {
	i.buildCommit = commit
	return i
}

// Строковое представление версии генератора
func (i *AppInfo) String() string {
	return fmt.Sprintf("%s@%s (Commit: %s)", i.appName, i.version, i.buildCommit)
}

// Подробное описание сборки, выводится командой version
func (i *AppInfo) Details() string {
	return fmt.Sprintf("%s\nBuild time: %s\nBuild OS: %s", i.String(), i.buildTime, i.buildOS)
}

// Структура описывающая один файл декларации.
// Из каждого файла получается отдельный пакет с семействами ошибок
type ErrorPackage struct {
	PackageName  string            // Имя пакета, берётся из имени файла декларации
	ModuleName   string            // Полный путь для импорта сгенерированного пакета
	Declarations []TypeDeclaration // Семейства ошибок, важна последовательность объявления
	DeclMap      map[string]int    // Обратный индекс от имён семейств
	ImportPackage
}

// Конструктор для ErrorPackage, инициализирует ссылочные типы
func NewErrorPackage() *ErrorPackage {
	return &ErrorPackage{
		Declarations:  []TypeDeclaration{},
		DeclMap:       map[string]int{},
		ImportPackage: NewImportPackage(),
	}
}

// Семейство ошибок: перечислимый тип с вариантами
type TypeDeclaration struct {
	Name       string               // Имя типа
	Doc        []string             // Комментарии к декларации, переносятся в сгенерированный код
	Variants   []VariantDeclaration // Варианты в порядке объявления
	VariantMap map[string]int       // Обратный индекс от имён вариантов
}

// Конструктор для TypeDeclaration
func NewTypeDeclaration(name string, doc []string) TypeDeclaration {
	return TypeDeclaration{
		Name:       name,
		Doc:        doc,
		Variants:   []VariantDeclaration{},
		VariantMap: map[string]int{},
	}
}

// Вариант семейства ошибок
type VariantDeclaration struct {
	Name       string         // Имя варианта
	Doc        []string       // Комментарии к варианту
	Fields     []PayloadField // Поля с данными, важна последовательность
	Message    string         // Текст сообщения, используется как есть
	HasMessage bool           // Признак того, что сообщение задано (в том числе пустое)
}

// Поле с данными варианта
type PayloadField struct {
	Name       string   // Имя поля
	Type       string   // Тип поля в виде go-выражения
	Mangle     string   // Имя типа пригодное для использования в идентификаторе
	Qualifiers []string // Пакеты на которые ссылается тип поля
}

// Структура описывающая дополнительные импорты
type ImportDeclaration struct {
	Path       string // Путь к пакету
	ImportName string // Симлинк для пакета при импорте
}

// Список импортов с обратными индексами
type ImportPackage struct {
	Imports      []ImportDeclaration // Список импортов, формируется из директивы import
	ImportMap    map[string]int      // Обратный индекс от путей к импортам
	ImportPkgMap map[string]int      // Обратный индекс от пакетов к импортам
}

func NewImportPackage() ImportPackage {
	return ImportPackage{
		Imports:      []ImportDeclaration{},
		ImportMap:    map[string]int{},
		ImportPkgMap: map[string]int{},
	}
}
